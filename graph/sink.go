package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/syssam/modelgraph/relation"
)

// Sink receives a completed schema graph. Sinks are collaborators outside
// the scan core: the engine builds the graph and hands it over, nothing
// more.
type Sink interface {
	Write(*Graph) error
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(*Graph) error

// Write calls f(g).
func (f SinkFunc) Write(g *Graph) error { return f(g) }

// NewJSONSink returns a sink encoding the graph as indented JSON.
func NewJSONSink(w io.Writer) Sink {
	return SinkFunc(func(g *Graph) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	})
}

// NewYAMLSink returns a sink encoding the graph as YAML.
func NewYAMLSink(w io.Writer) Sink {
	return SinkFunc(func(g *Graph) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g.Entities()); err != nil {
			return err
		}
		return enc.Close()
	})
}

// NewTableSink returns a sink rendering the graph as a console table.
func NewTableSink(w io.Writer) Sink {
	return SinkFunc(func(g *Graph) error {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Model", "Table", "Relation", "Kind", "Related", "Keys"})
		for _, e := range g.Entities() {
			for _, name := range sortedRelations(e) {
				edge := e.Relations[name]
				t.AppendRow(table.Row{
					e.Metadata.Class,
					e.Metadata.Table,
					name,
					edge.Kind.String(),
					edge.RelatedModel,
					keysCell(edge),
				})
			}
		}
		t.Render()
		return nil
	})
}

// NewMermaidSink returns a sink rendering the graph as a Mermaid
// erDiagram, one line per relation edge.
func NewMermaidSink(w io.Writer) Sink {
	return SinkFunc(func(g *Graph) error {
		var sb strings.Builder
		sb.WriteString("erDiagram\n")
		for _, e := range g.Entities() {
			for _, name := range sortedRelations(e) {
				edge := e.Relations[name]
				fmt.Fprintf(&sb, "    %s %s %s : \"%s\"\n",
					e.Metadata.Table,
					cardinality(edge.Kind),
					relatedTable(g, edge),
					name,
				)
			}
		}
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func sortedRelations(e *Entity) []string {
	names := make([]string, 0, len(e.Relations))
	for name := range e.Relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cardinality(k relation.Kind) string {
	switch k {
	case relation.ToMany:
		return "||--o{"
	case relation.ManyToMany:
		return "}o--o{"
	default:
		return "||--||"
	}
}

// relatedTable resolves the related entity's table, falling back to the
// naming convention when the target was not part of the scanned set.
func relatedTable(g *Graph, e *Edge) string {
	if node, ok := g.Lookup(e.RelatedModel); ok {
		return node.Metadata.Table
	}
	name := e.RelatedModel
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return relation.Tableize(name)
}

func keysCell(e *Edge) string {
	if e.IsPivot {
		return fmt.Sprintf("%s(%s, %s)", e.Table, e.ForeignKey, e.RelatedPivotKey)
	}
	return fmt.Sprintf("%s -> %s", e.ForeignKey, e.LocalKey)
}
