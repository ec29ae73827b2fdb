// Package dialect provides the storage abstraction modelgraph probes
// against.
//
// The scan engine never owns a database of its own; it borrows whatever
// backend the host application uses, through the small Driver interface
// defined here. Three dialects are recognized out of the box:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver and Tx
//
// Driver is the connection-level interface:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// Tx extends the same Exec/Query surface with Commit and Rollback. A probe
// session always runs inside a Tx that is rolled back on exit, so nothing a
// probed method does can reach the store.
//
// # The read-only guard
//
// ReadOnly wraps any ExecQuerier so that Exec fails with ErrReadOnly while
// Query passes through. Together with the rolled-back transaction it forms
// the two layers of the probing sandbox: the guard vetoes writes up front,
// and the rollback discards anything that slips past it.
//
// The dialect/sql sub-package implements Driver on top of database/sql.
package dialect
