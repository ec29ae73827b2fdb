package dialect

import (
	"context"
	"errors"
)

// Supported dialect names. These match the driver names the standard
// sql.Open accepts for the corresponding database/sql drivers.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// ErrReadOnly is returned by the read-only guard for any statement that
// would write to the backing store.
var ErrReadOnly = errors.New("dialect: write rejected by read-only guard")

// ErrNoConnection is returned when a model attempts a storage operation
// but no connection was configured for the session.
var ErrNoConnection = errors.New("dialect: no storage connection configured")

// ExecQuerier wraps the two basic operations a connection supports.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. The v argument
	// receives the execution result (e.g. *sql.Result), or is ignored if nil.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows, which are bound to
	// the v argument (e.g. *sql.Rows).
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the minimal interface a storage backend exposes.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx is a transactional connection. Rolling it back discards every
// statement executed through it.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// ReadOnly wraps an ExecQuerier with a guard that vetoes all writes.
// Query is forwarded untouched; Exec unconditionally fails with ErrReadOnly.
// It is the write sandbox installed for the duration of a probe session.
func ReadOnly(c ExecQuerier) ExecQuerier {
	return readOnly{c}
}

type readOnly struct {
	ExecQuerier
}

func (readOnly) Exec(context.Context, string, any, any) error {
	return ErrReadOnly
}

// Deny returns an ExecQuerier that rejects every operation. It is bound to
// model instances when no storage backend is configured at all, so that a
// probed method touching storage fails cleanly instead of dereferencing nil.
func Deny() ExecQuerier {
	return deny{}
}

type deny struct{}

func (deny) Exec(context.Context, string, any, any) error {
	return ErrReadOnly
}

func (deny) Query(context.Context, string, any, any) error {
	return ErrNoConnection
}

// NopTx returns a no-op transaction wrapping the given ExecQuerier.
// Commit and Rollback do nothing. It is useful for drivers that do not
// support transactions, and in tests.
func NopTx(c ExecQuerier) Tx {
	return nopTx{c}
}

type nopTx struct {
	ExecQuerier
}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }
