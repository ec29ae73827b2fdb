// Package codegen renders a scanned schema graph back into Go source:
// one constant per table and foreign-key column, so application code can
// reference the discovered schema without string literals.
package codegen

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/modelgraph/graph"
)

// Generator emits schema constants for a graph.
type Generator struct {
	pkg string
}

// New returns a Generator emitting into the named package.
func New(pkg string) *Generator {
	return &Generator{pkg: pkg}
}

// Generate renders the graph as a formatted Go source file. For every
// entity it emits a <Model>Table constant; for every relation a
// <Model><Relation>Column constant holding the foreign key, plus a
// <Model><Relation>Table constant for pivot relations.
func (g *Generator) Generate(gr *graph.Graph) ([]byte, error) {
	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by modelgraph. DO NOT EDIT.")

	var defs []jen.Code
	for _, e := range gr.Entities() {
		model := shortName(e.Metadata.Class)
		defs = append(defs,
			jen.Comment(e.Metadata.Class),
			jen.Id(model+"Table").Op("=").Lit(e.Metadata.Table),
		)
		for _, name := range sortedRelations(e) {
			edge := e.Relations[name]
			if edge.IsPivot {
				defs = append(defs,
					jen.Id(model+name+"Table").Op("=").Lit(edge.Table),
					jen.Id(model+name+"Column").Op("=").Lit(edge.ForeignKey),
				)
				continue
			}
			defs = append(defs, jen.Id(model+name+"Column").Op("=").Lit(edge.ForeignKey))
		}
	}
	f.Const().Defs(defs...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the graph and writes it to path.
func (g *Generator) WriteFile(gr *graph.Graph, path string) error {
	src, err := g.Generate(gr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, src, 0644)
}

// shortName strips the package qualifier off an entity identity.
func shortName(class string) string {
	if i := strings.LastIndex(class, "."); i >= 0 {
		return class[i+1:]
	}
	return class
}

func sortedRelations(e *graph.Entity) []string {
	names := make([]string, 0, len(e.Relations))
	for name := range e.Relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
