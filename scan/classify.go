package scan

import (
	"reflect"

	"github.com/syssam/modelgraph/relation"
)

var (
	relationType = reflect.TypeOf((*relation.Relation)(nil)).Elem()
	pivoterType  = reflect.TypeOf((*relation.Pivoter)(nil)).Elem()
)

// classification is the outcome of inspecting a candidate method.
type classification struct {
	ok         bool          // the method produces a relation
	needsProbe bool          // only an invocation can settle it
	kind       relation.Kind // valid when ok and not needsProbe
	pivot      bool          // the relation is joined through a pivot table
}

// classifyStatic resolves a candidate from its declared return type alone,
// without invoking it. Three outcomes are possible:
//
//   - a concrete relation type: classified, kind read from a zero value
//     (Relation.Kind is zero-value safe by contract);
//   - a concrete non-relation type: rejected, the method is never invoked;
//   - an interface type: deferred to the dynamic tier, since the concrete
//     value is unknowable until the method runs.
func classifyStatic(m reflect.Method) classification {
	if m.Type.NumOut() == 0 {
		return classification{}
	}
	out := m.Type.Out(0)
	if out.Kind() == reflect.Interface {
		return classification{needsProbe: true}
	}
	if !out.Implements(relationType) {
		return classification{}
	}
	return classification{
		ok:    true,
		kind:  kindOf(out),
		pivot: out.Implements(pivoterType),
	}
}

// classifyValue resolves a candidate from the value an invocation actually
// returned.
func classifyValue(v any) (relation.Relation, classification) {
	rel, ok := v.(relation.Relation)
	if !ok {
		return nil, classification{}
	}
	_, pivot := v.(relation.Pivoter)
	return rel, classification{ok: true, kind: rel.Kind(), pivot: pivot}
}

// kindOf reads the relation kind off a zero value of a concrete relation
// type.
func kindOf(t reflect.Type) relation.Kind {
	var v reflect.Value
	if t.Kind() == reflect.Pointer {
		v = reflect.New(t.Elem())
	} else {
		v = reflect.Zero(t)
	}
	return v.Interface().(relation.Relation).Kind()
}
