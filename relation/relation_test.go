package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/relation"
)

type Author struct{ modelgraph.Base }

type Book struct{ modelgraph.Base }

type Student struct{ modelgraph.Base }

type Course struct{ modelgraph.Base }

type OrderItem struct{ modelgraph.Base }

func TestNaming(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "authors", relation.Tableize("Author"))
	assert.Equal(t, "order_items", relation.Tableize("OrderItem"))
	assert.Equal(t, "author_id", relation.ForeignKeyName("Author"))
	assert.Equal(t, "order_item_id", relation.ForeignKeyName("OrderItem"))
	assert.Equal(t, "course_student", relation.JoinTableName("Student", "Course"))
	assert.Equal(t, "course_student", relation.JoinTableName("Course", "Student"))
	assert.Equal(t, "Author", relation.TypeName(&Author{}))
}

func TestHasManyDefaults(t *testing.T) {
	t.Parallel()

	rel := relation.HasMany(&Author{}, &Book{})
	assert.Equal(t, relation.ToMany, rel.Kind())

	d := rel.Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "author_id", d.ForeignKey)
	assert.Equal(t, "id", d.LocalKey)
	assert.False(t, d.Inverse)
}

func TestHasManyOverrides(t *testing.T) {
	t.Parallel()

	d := relation.HasMany(&Author{}, &Book{}).
		ForeignKey("writer_id").
		LocalKey("uuid").
		Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "writer_id", d.ForeignKey)
	assert.Equal(t, "uuid", d.LocalKey)
}

func TestHasOneDefaults(t *testing.T) {
	t.Parallel()

	rel := relation.HasOne(&Author{}, &Book{})
	assert.Equal(t, relation.ToOne, rel.Kind())

	d := rel.Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "author_id", d.ForeignKey)
	assert.Equal(t, "id", d.LocalKey)
}

func TestBelongsToDefaults(t *testing.T) {
	t.Parallel()

	rel := relation.BelongsTo(&Book{}, &Author{})
	assert.Equal(t, relation.ToOne, rel.Kind())

	d := rel.Descriptor()
	require.NoError(t, d.Err)
	assert.True(t, d.Inverse)
	assert.Equal(t, "author_id", d.ForeignKey)
	assert.Equal(t, "id", d.OwnerKey)
	assert.Empty(t, d.LocalKey)
}

func TestBelongsToManyDefaults(t *testing.T) {
	t.Parallel()

	rel := relation.BelongsToMany(&Student{}, &Course{})
	assert.Equal(t, relation.ManyToMany, rel.Kind())
	assert.Equal(t, "course_student", rel.PivotTable())

	d := rel.Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "student_id", d.ForeignPivotKey)
	assert.Equal(t, "course_id", d.RelatedPivotKey)
	assert.Equal(t, "id", d.ParentKey)
	assert.Equal(t, "id", d.RelatedKey)
}

func TestBelongsToManyOverrides(t *testing.T) {
	t.Parallel()

	d := relation.BelongsToMany(&Student{}, &Course{}).
		Through("enrollments").
		ForeignPivotKey("sid").
		RelatedPivotKey("cid").
		ParentKey("uuid").
		RelatedKey("uuid").
		Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "enrollments", d.PivotTable)
	assert.Equal(t, "sid", d.ForeignPivotKey)
	assert.Equal(t, "cid", d.RelatedPivotKey)
	assert.Equal(t, "uuid", d.ParentKey)
	assert.Equal(t, "uuid", d.RelatedKey)
}

func TestMissingRelatedPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t,
		"relation: related model of Author was not found",
		func() { relation.HasMany(&Author{}, nil) },
	)
	assert.PanicsWithValue(t,
		"relation: related model of Book was not found",
		func() { relation.BelongsTo(&Book{}, nil) },
	)
}

func TestKindSafeOnZeroValue(t *testing.T) {
	t.Parallel()

	// The classifier resolves kinds from declared return types without
	// executing anything, which requires Kind to work on zero values.
	assert.Equal(t, relation.ToOne, (*relation.HasOneRel)(nil).Kind())
	assert.Equal(t, relation.ToMany, (*relation.HasManyRel)(nil).Kind())
	assert.Equal(t, relation.ToOne, (*relation.BelongsToRel)(nil).Kind())
	assert.Equal(t, relation.ManyToMany, (*relation.BelongsToManyRel)(nil).Kind())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "to-one", relation.ToOne.String())
	assert.Equal(t, "to-many", relation.ToMany.String())
	assert.Equal(t, "many-to-many", relation.ManyToMany.String())
	assert.Equal(t, "unknown", relation.Kind(42).String())
}
