// Package scan implements relation discovery over a registry of models.
//
// The engine walks every registered model, reduces its method set to the
// no-argument candidates worth probing, and classifies each candidate in
// two tiers: statically from the declared return type when it is a
// concrete relation type, or dynamically by invoking the method inside a
// sandbox when only an interface type is declared. Confirmed relations
// are re-invoked for a fresh instance whose resolved descriptor becomes a
// graph edge.
//
// Probing untrusted methods is safe by construction: each entity runs in
// its own session, a transaction that is always rolled back and whose
// connection rejects writes outright. Without a driver the session denies
// all storage access instead. A method that panics, errors, or produces a
// misconfigured relation costs exactly that one edge; the failure lands
// in the scan report and discovery continues.
package scan
