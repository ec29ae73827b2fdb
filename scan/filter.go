package scan

import (
	"reflect"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/catalog"
)

// mutators are method names that write to the backing store. They are
// excluded unconditionally, regardless of configuration, because probing
// them would have unacceptable side effects.
var mutators = map[string]struct{}{
	"Save":        {},
	"Update":      {},
	"Delete":      {},
	"ForceDelete": {},
}

// baseMethods are the framework lifecycle methods promoted from the
// embedded modelgraph.Base. They are plumbing, never relations.
var baseMethods = func() map[string]struct{} {
	set := make(map[string]struct{})
	t := reflect.TypeOf(&modelgraph.Base{})
	for i := 0; i < t.NumMethod(); i++ {
		set[t.Method(i).Name] = struct{}{}
	}
	return set
}()

// eligibleMethods reduces a model's method set to the candidates worth
// probing: exported (reflection only exposes those), callable with no
// arguments, not Base plumbing, not a mutator, and not excluded by
// configuration. Methods come back in reflect's name order, which keeps
// per-entity probing deterministic.
func eligibleMethods(d *catalog.Descriptor, ex Exclusions) []reflect.Method {
	t := d.Type()
	out := make([]reflect.Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.Type.NumIn() != 1 { // anything beyond the receiver
			continue
		}
		if _, ok := baseMethods[m.Name]; ok {
			continue
		}
		if _, ok := mutators[m.Name]; ok {
			continue
		}
		if ex.excluded(d.Name(), m.Name) {
			continue
		}
		out = append(out, m)
	}
	return out
}
