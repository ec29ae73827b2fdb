package relation

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/modelgraph"
)

var rules = ruleset()

// ruleset returns the naming rules used to derive default table and key
// names from model type names.
func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ID", "API", "SQL", "URL", "UUID", "HTTP", "JSON",
	} {
		r.AddAcronym(w)
	}
	return r
}

// TypeName returns the bare struct name of a model (e.g. "Author").
func TypeName(m modelgraph.Model) string {
	if m == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Tableize derives the default backing table for a model name:
// "Author" -> "authors", "OrderItem" -> "order_items".
func Tableize(name string) string {
	return rules.Underscore(rules.Pluralize(name))
}

// ForeignKeyName derives the conventional foreign-key column referencing a
// model name: "Author" -> "author_id".
func ForeignKeyName(name string) string {
	return rules.Underscore(rules.Singularize(name)) + "_id"
}

// JoinTableName derives the conventional pivot table for two model names:
// the singular snake-case forms, joined in alphabetical order
// ("Student", "Course" -> "course_student").
func JoinTableName(a, b string) string {
	names := []string{
		rules.Underscore(rules.Singularize(a)),
		rules.Underscore(rules.Singularize(b)),
	}
	sort.Strings(names)
	return strings.Join(names, "_")
}
