// Package modelgraph infers the relational schema implied by a set of
// active-record style model types, without reading any declarative schema
// or migration files.
//
// Models embed [Base] and describe their associations as ordinary methods
// returning relation builders:
//
//	type Author struct{ modelgraph.Base }
//
//	func (a *Author) Books() relation.Relation {
//	    return relation.HasMany(a, &Book{})
//	}
//
// The scan engine (package scan) enumerates the models registered in a
// catalog, decides which public zero-argument methods look like relations,
// executes the undecidable ones inside a write-vetoing, always-rolled-back
// sandbox, and extracts the join keys and related tables into a schema
// graph (package graph) suitable for ER-diagram rendering or structural
// analysis.
//
// This root package holds the contracts shared by every layer: the Model
// interface, the error taxonomy, and the Cache used to memoize scans.
package modelgraph
