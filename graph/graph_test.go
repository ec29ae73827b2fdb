package graph_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgraph/graph"
	"github.com/syssam/modelgraph/relation"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	b.AddEntity("schema.Author", "authors")
	b.AddEntity("schema.Book", "books")
	b.AddEntity("schema.Student", "students")
	require.NoError(t, b.AddEdge("schema.Author", "Books", &graph.Edge{
		Kind:         relation.ToMany,
		RelatedModel: "schema.Book",
		ForeignKey:   "author_id",
		LocalKey:     "id",
	}))
	require.NoError(t, b.AddEdge("schema.Student", "Courses", &graph.Edge{
		Kind:            relation.ManyToMany,
		IsPivot:         true,
		RelatedModel:    "schema.Course",
		Table:           "course_student",
		ForeignKey:      "student_id",
		ParentKey:       "id",
		RelatedPivotKey: "course_id",
		RelatedKey:      "id",
	}))
	return b.Graph()
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("MetadataOncePerEntity", func(t *testing.T) {
		b := graph.NewBuilder()
		first := b.AddEntity("schema.Author", "authors")
		second := b.AddEntity("schema.Author", "ignored")
		assert.Same(t, first, second)
		assert.Equal(t, "authors", second.Metadata.Table)
	})

	t.Run("DuplicateEdgeRejected", func(t *testing.T) {
		b := graph.NewBuilder()
		b.AddEntity("schema.Author", "authors")
		e := &graph.Edge{RelatedModel: "schema.Book"}
		require.NoError(t, b.AddEdge("schema.Author", "Books", e))
		assert.Error(t, b.AddEdge("schema.Author", "Books", e))
	})

	t.Run("UnknownEntityRejected", func(t *testing.T) {
		b := graph.NewBuilder()
		assert.Error(t, b.AddEdge("schema.Ghost", "Books", &graph.Edge{}))
	})
}

func TestGraphLookup(t *testing.T) {
	t.Parallel()

	g := buildGraph(t)
	assert.Equal(t, 3, g.Len())
	e, ok := g.Lookup("schema.Author")
	require.True(t, ok)
	assert.Equal(t, "authors", e.Metadata.Table)
	_, ok = g.Lookup("schema.Ghost")
	assert.False(t, ok)
}

// TestEdgeShape pins the serialized field sets: non-pivot edges carry
// exactly foreignKey/localKey, pivot edges exactly the five pivot fields.
func TestEdgeShape(t *testing.T) {
	t.Parallel()

	g := buildGraph(t)
	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded []struct {
		Metadata  graph.Metadata            `json:"metadata"`
		Relations map[string]map[string]any `json:"relations"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)

	books := decoded[0].Relations["Books"]
	assert.Equal(t, false, books["isPivot"])
	assert.Equal(t, "author_id", books["foreignKey"])
	assert.Equal(t, "id", books["localKey"])
	assert.NotContains(t, books, "table")
	assert.NotContains(t, books, "parentKey")
	assert.NotContains(t, books, "relatedPivotKey")
	assert.NotContains(t, books, "relatedKey")

	courses := decoded[2].Relations["Courses"]
	assert.Equal(t, true, courses["isPivot"])
	assert.Equal(t, "course_student", courses["table"])
	assert.Equal(t, "student_id", courses["foreignKey"])
	assert.Equal(t, "id", courses["parentKey"])
	assert.Equal(t, "course_id", courses["relatedPivotKey"])
	assert.Equal(t, "id", courses["relatedKey"])
	assert.NotContains(t, courses, "localKey")
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	g := buildGraph(t)
	data, err := graph.Marshal(g)
	require.NoError(t, err)

	restored, err := graph.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, g.Len(), restored.Len())

	author, ok := restored.Lookup("schema.Author")
	require.True(t, ok)
	books := author.Relations["Books"]
	require.NotNil(t, books)
	assert.Equal(t, relation.ToMany, books.Kind, "kind survives the snapshot")
	assert.Equal(t, "author_id", books.ForeignKey)
}

func TestJSONSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, graph.NewJSONSink(&buf).Write(buildGraph(t)))
	assert.Contains(t, buf.String(), `"class": "schema.Author"`)
	assert.Contains(t, buf.String(), `"foreignKey": "author_id"`)
}

func TestYAMLSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, graph.NewYAMLSink(&buf).Write(buildGraph(t)))
	assert.Contains(t, buf.String(), "table: authors")
	assert.Contains(t, buf.String(), "relatedPivotKey: course_id")
}

func TestTableSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, graph.NewTableSink(&buf).Write(buildGraph(t)))
	out := buf.String()
	assert.Contains(t, out, "schema.Author")
	assert.Contains(t, out, "to-many")
	assert.Contains(t, out, "course_student(student_id, course_id)")
}

func TestMermaidSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, graph.NewMermaidSink(&buf).Write(buildGraph(t)))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "erDiagram\n"))
	assert.Contains(t, out, `authors ||--o{ books : "Books"`)
	// Course was not scanned; its table falls back to the naming convention.
	assert.Contains(t, out, `students }o--o{ courses : "Courses"`)
}
