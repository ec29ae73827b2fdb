// Package relation provides the builders model methods return to describe
// their associations.
//
// Four builders cover the supported relation shapes:
//
//	relation.HasOne(a, &Profile{})            // one-to-one, FK on profiles
//	relation.HasMany(a, &Book{})              // one-to-many, FK on books
//	relation.BelongsTo(b, &Author{})          // inverse, FK on the declaring table
//	relation.BelongsToMany(s, &Course{})      // many-to-many through a pivot
//
// Keys and tables default to the usual conventions derived from the model
// type names (Author -> table "authors", foreign key "author_id"; pivot
// table "course_student" for Student/Course) and can be overridden with
// chainable setters:
//
//	relation.HasMany(a, &Book{}).ForeignKey("writer_id").LocalKey("uuid")
//	relation.BelongsToMany(s, &Course{}).Through("enrollments")
//
// The scan engine treats any value satisfying [Relation] as a relation
// edge, and any value additionally satisfying [Pivoter] as a many-to-many
// edge. Structural metadata is read through [Relation.Descriptor].
package relation
