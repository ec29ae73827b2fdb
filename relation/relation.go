package relation

import (
	"github.com/syssam/modelgraph"
)

// Kind is the variant of a relation edge.
type Kind int

// Relation kinds.
const (
	// ToOne is a single-row association (has-one, or the inverse
	// belongs-to side of a has-one/has-many).
	ToOne Kind = iota
	// ToMany is a multi-row association (has-many).
	ToMany
	// ManyToMany is a multi-row association joined through a pivot table.
	ManyToMany
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ToOne:
		return "to-one"
	case ToMany:
		return "to-many"
	case ManyToMany:
		return "many-to-many"
	}
	return "unknown"
}

// Relation is the base contract returned by model relation methods.
// The scan engine classifies a method as relation-producing when its
// declared return type, or the value it actually returns, satisfies this
// interface.
type Relation interface {
	// Kind returns the relation variant. Implementations must be safe to
	// call on a zero value, so the classifier can resolve the kind from a
	// declared return type without executing the method.
	Kind() Kind
	// Descriptor returns the relation's structural metadata with defaults
	// resolved. The returned value is a private copy of the builder state.
	Descriptor() *Descriptor
}

// Pivoter marks relations joined through a pivot table. It is the
// capability the classifier checks to distinguish many-to-many edges.
type Pivoter interface {
	Relation
	// PivotTable returns the join table name, derived from the two model
	// names when not set explicitly.
	PivotTable() string
}

// Descriptor holds the resolved structural metadata of a relation.
// The key fields are populated according to the kind: non-pivot relations
// carry ForeignKey plus LocalKey (direct) or OwnerKey (inverse), pivot
// relations carry the four pivot keys and the join table.
type Descriptor struct {
	Kind    Kind
	Parent  modelgraph.Model // the model declaring the relation
	Related modelgraph.Model // the model the relation points to
	Inverse bool             // true when the relation points child -> parent

	// Non-pivot keys.
	ForeignKey string
	LocalKey   string
	OwnerKey   string

	// Pivot keys.
	PivotTable      string
	ForeignPivotKey string
	RelatedPivotKey string
	ParentKey       string
	RelatedKey      string

	// Err holds a configuration error detected while building the
	// relation. Extraction fails for this edge when it is set.
	Err error
}
