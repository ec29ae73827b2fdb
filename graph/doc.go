// Package graph holds the schema-graph representation produced by a scan.
//
// # Structure
//
// A Graph maps each scanned model to a node carrying its backing-table
// metadata and the relation edges discovered on it:
//
//	[
//	  {
//	    "metadata": { "table": "authors", "class": "schema.Author" },
//	    "relations": {
//	      "Books": {
//	        "isPivot": false,
//	        "relatedModel": "schema.Book",
//	        "foreignKey": "author_id",
//	        "localKey": "id"
//	      }
//	    }
//	  }
//	]
//
// Pivot edges carry the join table and its four keys instead of
// foreignKey/localKey:
//
//	{
//	  "isPivot": true,
//	  "relatedModel": "schema.Course",
//	  "table": "course_student",
//	  "foreignKey": "student_id",
//	  "parentKey": "id",
//	  "relatedPivotKey": "course_id",
//	  "relatedKey": "id"
//	}
//
// # Builder
//
// The scan engine accumulates nodes and edges through Builder, which
// enforces the one-metadata-record-per-entity and unique-relation-name
// invariants, and seals the result into an immutable Graph.
//
// # Sinks
//
// Where the graph goes is the caller's business: Sink implementations
// render JSON, YAML, a console table, or a Mermaid erDiagram to any
// io.Writer. Marshal/Unmarshal provide a compact msgpack snapshot used by
// the scan cache.
package graph
