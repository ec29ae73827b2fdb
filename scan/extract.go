package scan

import (
	"errors"
	"reflect"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/graph"
	"github.com/syssam/modelgraph/relation"
)

// extract turns a confirmed relation into a graph edge. Metadata comes
// from the relation's resolved descriptor; a descriptor carrying a
// configuration error, or missing its target, fails this edge only.
func extract(entity, name string, rel relation.Relation) (*graph.Edge, error) {
	d := rel.Descriptor()
	if d.Err != nil {
		return nil, &modelgraph.ExtractionError{Entity: entity, Relation: name, Err: d.Err}
	}
	if d.Related == nil {
		return nil, &modelgraph.ExtractionError{
			Entity:   entity,
			Relation: name,
			Err:      errors.New("related model missing from descriptor"),
		}
	}
	related := qualifiedName(d.Related)

	if _, ok := rel.(relation.Pivoter); ok {
		return &graph.Edge{
			Kind:            rel.Kind(),
			IsPivot:         true,
			RelatedModel:    related,
			Table:           d.PivotTable,
			ForeignKey:      d.ForeignPivotKey,
			ParentKey:       d.ParentKey,
			RelatedPivotKey: d.RelatedPivotKey,
			RelatedKey:      d.RelatedKey,
		}, nil
	}

	// For inverse relations the authoritative key lives on the related
	// table (the owner key); for direct ones it is the declaring side's
	// local key.
	local := d.LocalKey
	if d.Inverse {
		local = d.OwnerKey
	}
	if d.ForeignKey == "" || local == "" {
		return nil, &modelgraph.ExtractionError{
			Entity:   entity,
			Relation: name,
			Err:      errors.New("relation keys unresolved"),
		}
	}
	return &graph.Edge{
		Kind:         rel.Kind(),
		RelatedModel: related,
		ForeignKey:   d.ForeignKey,
		LocalKey:     local,
	}, nil
}

// qualifiedName returns the pkg-qualified identity of a model value,
// matching the registry's naming.
func qualifiedName(m modelgraph.Model) string {
	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
