package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgraph/dialect"

	_ "modernc.org/sqlite"
)

func TestDriverDialect(t *testing.T) {
	t.Parallel()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	assert.Equal(t, dialect.Postgres, OpenDB(dialect.Postgres, db).Dialect())
	assert.Equal(t, dialect.MySQL, OpenDB("mysql-otel", db).Dialect())
}

func TestDriverExecQuery(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	err = drv.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	rows := &Rows{}
	err = drv.Query(context.Background(), "SELECT 1", []any{}, rows)
	require.NoError(t, err)
	require.NoError(t, rows.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRollback(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.SQLite, db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectRollback()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	rows := &Rows{}
	require.NoError(t, tx.Query(context.Background(), "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestReadOnlyGuard asserts that no Exec ever reaches the underlying
// connection when a transaction is wrapped with the read-only guard.
func TestReadOnlyGuard(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM books").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	guarded := dialect.ReadOnly(tx)

	// Writes are vetoed before touching the connection.
	err = guarded.Exec(context.Background(), "DELETE FROM books", []any{}, nil)
	assert.ErrorIs(t, err, dialect.ErrReadOnly)

	// Reads pass through.
	rows := &Rows{}
	require.NoError(t, guarded.Query(context.Background(), "SELECT * FROM books", []any{}, rows))
	require.NoError(t, rows.Close())

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestRollbackDiscardsWrites runs against a real in-memory SQLite database
// and verifies that a write issued inside a probe-style transaction is gone
// after rollback.
func TestRollbackDiscardsWrites(t *testing.T) {
	t.Parallel()
	drv, err := Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer drv.Close()
	ctx := context.Background()

	require.NoError(t, drv.Exec(ctx, "CREATE TABLE books (id INTEGER PRIMARY KEY)", []any{}, nil))
	require.NoError(t, drv.Exec(ctx, "INSERT INTO books (id) VALUES (1)", []any{}, nil))

	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "INSERT INTO books (id) VALUES (2)", []any{}, nil))
	require.NoError(t, tx.Rollback())

	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "SELECT COUNT(*) FROM books", []any{}, rows))
	defer rows.Close()
	require.True(t, rows.Next())
	var n int
	require.NoError(t, rows.Scan(&n))
	assert.Equal(t, 1, n, "rolled back insert must not be visible")
}
