// Package catalog supplies the set of model types a scan enumerates.
//
// Discovery is explicit: the host application registers its model values
// (or anything else; non-models are silently skipped) and the registry
// hands the scan engine one immutable descriptor per concrete model, in a
// deterministic order.
package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/relation"
)

// Descriptor identifies one scannable model: its pkg-qualified identity,
// its backing table, and the reflective handles needed to enumerate its
// methods and mint fresh instances. Descriptors are created once per
// registration and never mutated.
type Descriptor struct {
	name  string
	table string
	typ   reflect.Type // the underlying struct type
}

// Name returns the pkg-qualified model identity (e.g. "schema.Author").
func (d *Descriptor) Name() string { return d.name }

// Table returns the model's backing table name.
func (d *Descriptor) Table() string { return d.table }

// Type returns the pointer type whose method set is probed.
func (d *Descriptor) Type() reflect.Type { return reflect.PointerTo(d.typ) }

// New returns a fresh zero instance of the model.
func (d *Descriptor) New() modelgraph.Model {
	return reflect.New(d.typ).Interface().(modelgraph.Model)
}

// Registry is the entity catalog. The zero value is not usable; create it
// with NewRegistry.
type Registry struct {
	models  map[string]*Descriptor
	skipped []*modelgraph.DiscoveryError
}

// NewRegistry returns a registry holding the given models. Entries that
// are not concrete model types are skipped, not rejected; inspect Skipped
// for diagnostics.
func NewRegistry(models ...any) *Registry {
	r := &Registry{models: make(map[string]*Descriptor)}
	r.Register(models...)
	return r
}

// Register adds models to the registry. A value that is nil, does not
// satisfy the Model contract, or is not backed by an addressable struct is
// recorded as skipped and otherwise ignored. Re-registering a model
// replaces its descriptor.
func (r *Registry) Register(models ...any) {
	for _, m := range models {
		d, err := describe(m)
		if err != nil {
			var de *modelgraph.DiscoveryError
			if !errors.As(err, &de) {
				de = &modelgraph.DiscoveryError{Name: fmt.Sprintf("%T", m), Err: err}
			}
			r.skipped = append(r.skipped, de)
			continue
		}
		r.models[d.name] = d
	}
}

// Descriptors returns the registered descriptors sorted by name. The order
// is deterministic so that repeated scans over the same set produce
// diffable output.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.models))
	for _, d := range r.models {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Lookup returns the descriptor registered under the given identity.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.models[name]
	return d, ok
}

// Len returns the number of registered models.
func (r *Registry) Len() int { return len(r.models) }

// Skipped returns the entries rejected during registration. Skips are not
// scan failures; they are exposed for diagnostics only.
func (r *Registry) Skipped() []*modelgraph.DiscoveryError {
	return r.skipped
}

// describe validates a registration candidate and builds its descriptor.
func describe(v any) (*Descriptor, error) {
	if v == nil {
		return nil, &modelgraph.DiscoveryError{Name: "<nil>", Err: errors.New("nil model")}
	}
	m, ok := v.(modelgraph.Model)
	if !ok {
		return nil, &modelgraph.DiscoveryError{
			Name: fmt.Sprintf("%T", v),
			Err:  errors.New("does not embed modelgraph.Base"),
		}
	}
	t := reflect.TypeOf(m)
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, &modelgraph.DiscoveryError{
			Name: t.String(),
			Err:  errors.New("not a pointer to a struct model"),
		}
	}
	elem := t.Elem()
	table := relation.Tableize(elem.Name())
	if tb, ok := m.(modelgraph.Tabler); ok {
		table = tb.TableName()
	}
	return &Descriptor{
		name:  elem.String(),
		table: table,
		typ:   elem,
	}, nil
}
