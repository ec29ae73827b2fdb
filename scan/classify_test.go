package scan

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/relation"
)

type classifyModel struct {
	modelgraph.Base
}

func (m *classifyModel) Typed() *relation.HasManyRel {
	return relation.HasMany(m, &classifyModel{})
}

func (m *classifyModel) Pivoted() *relation.BelongsToManyRel {
	return relation.BelongsToMany(m, &classifyModel{})
}

func (m *classifyModel) Loose() relation.Relation {
	return relation.HasOne(m, &classifyModel{})
}

func (m *classifyModel) Total() float64 { return 0 }

func (m *classifyModel) Touch() {}

func methodOf(t *testing.T, name string) reflect.Method {
	t.Helper()
	m, ok := reflect.TypeOf(&classifyModel{}).MethodByName(name)
	require.True(t, ok)
	return m
}

func TestClassifyStatic(t *testing.T) {
	t.Parallel()

	t.Run("ConcreteRelation", func(t *testing.T) {
		c := classifyStatic(methodOf(t, "Typed"))
		assert.True(t, c.ok)
		assert.False(t, c.needsProbe)
		assert.Equal(t, relation.ToMany, c.kind)
		assert.False(t, c.pivot)
	})

	t.Run("ConcretePivot", func(t *testing.T) {
		c := classifyStatic(methodOf(t, "Pivoted"))
		assert.True(t, c.ok)
		assert.Equal(t, relation.ManyToMany, c.kind)
		assert.True(t, c.pivot)
	})

	t.Run("InterfaceDefersToProbe", func(t *testing.T) {
		c := classifyStatic(methodOf(t, "Loose"))
		assert.False(t, c.ok)
		assert.True(t, c.needsProbe)
	})

	t.Run("ConcreteNonRelationRejected", func(t *testing.T) {
		c := classifyStatic(methodOf(t, "Total"))
		assert.False(t, c.ok)
		assert.False(t, c.needsProbe)
	})

	t.Run("NoResultRejected", func(t *testing.T) {
		c := classifyStatic(methodOf(t, "Touch"))
		assert.False(t, c.ok)
		assert.False(t, c.needsProbe)
	})
}

func TestClassifyValue(t *testing.T) {
	t.Parallel()

	m := &classifyModel{}
	rel, c := classifyValue(m.Loose())
	require.True(t, c.ok)
	assert.Equal(t, relation.ToOne, c.kind)
	assert.False(t, c.pivot)
	assert.NotNil(t, rel)

	_, c = classifyValue(m.Pivoted())
	require.True(t, c.ok)
	assert.True(t, c.pivot)

	_, c = classifyValue(42)
	assert.False(t, c.ok)

	_, c = classifyValue(nil)
	assert.False(t, c.ok)
}
