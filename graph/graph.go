package graph

import (
	"encoding/json"
	"fmt"

	"github.com/syssam/modelgraph/relation"
)

// Metadata identifies a graph node: the model class and its backing table.
type Metadata struct {
	Table string `json:"table" yaml:"table" msgpack:"table"`
	Class string `json:"class" yaml:"class" msgpack:"class"`
}

// Edge is one relation discovered on a model. Non-pivot edges carry
// ForeignKey and LocalKey; pivot edges carry the join table and its four
// keys instead. The kind is internal routing information and is not part
// of the serialized shape.
type Edge struct {
	Kind relation.Kind `json:"-" yaml:"-" msgpack:"kind"`

	IsPivot      bool   `json:"isPivot" yaml:"isPivot" msgpack:"isPivot"`
	RelatedModel string `json:"relatedModel" yaml:"relatedModel" msgpack:"relatedModel"`

	// Non-pivot keys.
	ForeignKey string `json:"foreignKey,omitempty" yaml:"foreignKey,omitempty" msgpack:"foreignKey,omitempty"`
	LocalKey   string `json:"localKey,omitempty" yaml:"localKey,omitempty" msgpack:"localKey,omitempty"`

	// Pivot keys. ForeignKey above doubles as the pivot column referencing
	// the declaring model.
	ParentKey       string `json:"parentKey,omitempty" yaml:"parentKey,omitempty" msgpack:"parentKey,omitempty"`
	RelatedPivotKey string `json:"relatedPivotKey,omitempty" yaml:"relatedPivotKey,omitempty" msgpack:"relatedPivotKey,omitempty"`
	RelatedKey      string `json:"relatedKey,omitempty" yaml:"relatedKey,omitempty" msgpack:"relatedKey,omitempty"`
	Table           string `json:"table,omitempty" yaml:"table,omitempty" msgpack:"table,omitempty"`
}

// Entity is one graph node with its outgoing relation edges, keyed by
// relation (method) name.
type Entity struct {
	Metadata  Metadata         `json:"metadata" yaml:"metadata" msgpack:"metadata"`
	Relations map[string]*Edge `json:"relations" yaml:"relations" msgpack:"relations"`
}

// Graph is the aggregate scan output: entities as nodes, relations as
// directed metadata-bearing edges. It is built once per scan and immutable
// once returned.
type Graph struct {
	entities []*Entity
	index    map[string]*Entity
}

// Entities returns the graph nodes in catalog order.
func (g *Graph) Entities() []*Entity { return g.entities }

// Lookup returns the node for the given model class.
func (g *Graph) Lookup(class string) (*Entity, bool) {
	e, ok := g.index[class]
	return e, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.entities) }

// MarshalJSON encodes the graph as an ordered array of entities.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.entities)
}

// Builder accumulates per-entity metadata and relation edges and produces
// the final Graph.
type Builder struct {
	entities []*Entity
	index    map[string]*Entity
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]*Entity)}
}

// AddEntity records a graph node. The metadata record is created exactly
// once: adding an already-known class returns the existing node untouched.
func (b *Builder) AddEntity(class, table string) *Entity {
	if e, ok := b.index[class]; ok {
		return e
	}
	e := &Entity{
		Metadata:  Metadata{Table: table, Class: class},
		Relations: make(map[string]*Edge),
	}
	b.entities = append(b.entities, e)
	b.index[class] = e
	return e
}

// AddEdge records a relation edge on a previously added entity. A
// duplicate relation name indicates a defect in candidate filtering and is
// rejected rather than overwritten.
func (b *Builder) AddEdge(class, name string, e *Edge) error {
	node, ok := b.index[class]
	if !ok {
		return fmt.Errorf("graph: unknown entity %q for relation %q", class, name)
	}
	if _, dup := node.Relations[name]; dup {
		return fmt.Errorf("graph: duplicate relation %q on %s", name, class)
	}
	node.Relations[name] = e
	return nil
}

// Graph returns the built graph. The builder must not be used afterwards.
func (b *Builder) Graph() *Graph {
	return &Graph{entities: b.entities, index: b.index}
}
