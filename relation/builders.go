package relation

import (
	"fmt"

	"github.com/syssam/modelgraph"
)

// mustRelated guards relation construction against a missing target model.
// The panic is recovered by the scan engine's probe sandbox and surfaced
// as an unresolved-related-type failure.
func mustRelated(parent, related modelgraph.Model) {
	if related == nil {
		panic(fmt.Sprintf("relation: related model of %s was not found", TypeName(parent)))
	}
}

// HasOneRel is a direct one-to-one relation (parent owns one child row;
// the foreign key lives on the child's table).
type HasOneRel struct {
	d Descriptor
}

// HasOne declares a one-to-one relation from parent to related.
// The foreign key defaults to "<parent>_id" on the related table and the
// local key to "id".
func HasOne(parent, related modelgraph.Model) *HasOneRel {
	mustRelated(parent, related)
	return &HasOneRel{d: Descriptor{Kind: ToOne, Parent: parent, Related: related}}
}

// ForeignKey overrides the foreign-key column on the related table.
func (r *HasOneRel) ForeignKey(column string) *HasOneRel {
	r.d.ForeignKey = column
	return r
}

// LocalKey overrides the referenced column on the parent table.
func (r *HasOneRel) LocalKey(column string) *HasOneRel {
	r.d.LocalKey = column
	return r
}

// Kind implements Relation. Safe on a zero value.
func (*HasOneRel) Kind() Kind { return ToOne }

// Descriptor implements Relation.
func (r *HasOneRel) Descriptor() *Descriptor {
	d := r.d
	resolveDirect(&d)
	return &d
}

// HasManyRel is a direct one-to-many relation (parent owns many child
// rows; the foreign key lives on the children's table).
type HasManyRel struct {
	d Descriptor
}

// HasMany declares a one-to-many relation from parent to related.
// The foreign key defaults to "<parent>_id" on the related table and the
// local key to "id".
func HasMany(parent, related modelgraph.Model) *HasManyRel {
	mustRelated(parent, related)
	return &HasManyRel{d: Descriptor{Kind: ToMany, Parent: parent, Related: related}}
}

// ForeignKey overrides the foreign-key column on the related table.
func (r *HasManyRel) ForeignKey(column string) *HasManyRel {
	r.d.ForeignKey = column
	return r
}

// LocalKey overrides the referenced column on the parent table.
func (r *HasManyRel) LocalKey(column string) *HasManyRel {
	r.d.LocalKey = column
	return r
}

// Kind implements Relation. Safe on a zero value.
func (*HasManyRel) Kind() Kind { return ToMany }

// Descriptor implements Relation.
func (r *HasManyRel) Descriptor() *Descriptor {
	d := r.d
	resolveDirect(&d)
	return &d
}

// BelongsToRel is the inverse side of a has-one/has-many relation (the
// declaring model's table carries the foreign key; the authoritative key,
// the owner key, lives on the related table).
type BelongsToRel struct {
	d Descriptor
}

// BelongsTo declares the child -> parent side of a relation.
// The foreign key defaults to "<related>_id" on the declaring table and
// the owner key to "id" on the related table.
func BelongsTo(child, parent modelgraph.Model) *BelongsToRel {
	mustRelated(child, parent)
	return &BelongsToRel{d: Descriptor{Kind: ToOne, Parent: child, Related: parent, Inverse: true}}
}

// ForeignKey overrides the foreign-key column on the declaring table.
func (r *BelongsToRel) ForeignKey(column string) *BelongsToRel {
	r.d.ForeignKey = column
	return r
}

// OwnerKey overrides the referenced column on the related table.
func (r *BelongsToRel) OwnerKey(column string) *BelongsToRel {
	r.d.OwnerKey = column
	return r
}

// Kind implements Relation. Safe on a zero value.
func (*BelongsToRel) Kind() Kind { return ToOne }

// Descriptor implements Relation.
func (r *BelongsToRel) Descriptor() *Descriptor {
	d := r.d
	if d.Related == nil {
		d.Err = fmt.Errorf("relation: related model of %s was not found", TypeName(d.Parent))
		return &d
	}
	if d.ForeignKey == "" {
		d.ForeignKey = ForeignKeyName(TypeName(d.Related))
	}
	if d.OwnerKey == "" {
		d.OwnerKey = "id"
	}
	return &d
}

// BelongsToManyRel is a many-to-many relation joined through a pivot
// table holding one foreign key per side.
type BelongsToManyRel struct {
	d Descriptor
}

// BelongsToMany declares a many-to-many relation between parent and
// related. The pivot table defaults to the two singular snake-case model
// names joined in alphabetical order; the pivot keys default to
// "<parent>_id"/"<related>_id" and both owner keys to "id".
func BelongsToMany(parent, related modelgraph.Model) *BelongsToManyRel {
	mustRelated(parent, related)
	return &BelongsToManyRel{d: Descriptor{Kind: ManyToMany, Parent: parent, Related: related}}
}

// Through overrides the pivot table name.
func (r *BelongsToManyRel) Through(table string) *BelongsToManyRel {
	r.d.PivotTable = table
	return r
}

// ForeignPivotKey overrides the pivot column referencing the declaring model.
func (r *BelongsToManyRel) ForeignPivotKey(column string) *BelongsToManyRel {
	r.d.ForeignPivotKey = column
	return r
}

// RelatedPivotKey overrides the pivot column referencing the related model.
func (r *BelongsToManyRel) RelatedPivotKey(column string) *BelongsToManyRel {
	r.d.RelatedPivotKey = column
	return r
}

// ParentKey overrides the referenced column on the declaring table.
func (r *BelongsToManyRel) ParentKey(column string) *BelongsToManyRel {
	r.d.ParentKey = column
	return r
}

// RelatedKey overrides the referenced column on the related table.
func (r *BelongsToManyRel) RelatedKey(column string) *BelongsToManyRel {
	r.d.RelatedKey = column
	return r
}

// Kind implements Relation. Safe on a zero value.
func (*BelongsToManyRel) Kind() Kind { return ManyToMany }

// PivotTable implements Pivoter.
func (r *BelongsToManyRel) PivotTable() string {
	return r.Descriptor().PivotTable
}

// Descriptor implements Relation.
func (r *BelongsToManyRel) Descriptor() *Descriptor {
	d := r.d
	if d.Parent == nil || d.Related == nil {
		d.Err = fmt.Errorf("relation: related model of %s was not found", TypeName(d.Parent))
		return &d
	}
	parent, related := TypeName(d.Parent), TypeName(d.Related)
	if d.PivotTable == "" {
		d.PivotTable = JoinTableName(parent, related)
	}
	if d.ForeignPivotKey == "" {
		d.ForeignPivotKey = ForeignKeyName(parent)
	}
	if d.RelatedPivotKey == "" {
		d.RelatedPivotKey = ForeignKeyName(related)
	}
	if d.ParentKey == "" {
		d.ParentKey = "id"
	}
	if d.RelatedKey == "" {
		d.RelatedKey = "id"
	}
	return &d
}

// resolveDirect fills the defaults shared by the direct (parent -> child)
// relation kinds.
func resolveDirect(d *Descriptor) {
	if d.Parent == nil || d.Related == nil {
		d.Err = fmt.Errorf("relation: related model of %s was not found", TypeName(d.Parent))
		return
	}
	if d.ForeignKey == "" {
		d.ForeignKey = ForeignKeyName(TypeName(d.Parent))
	}
	if d.LocalKey == "" {
		d.LocalKey = "id"
	}
}

var (
	_ Relation = (*HasOneRel)(nil)
	_ Relation = (*HasManyRel)(nil)
	_ Relation = (*BelongsToRel)(nil)
	_ Pivoter  = (*BelongsToManyRel)(nil)
)
