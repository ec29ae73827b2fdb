// Package sql implements dialect.Driver on top of database/sql.
//
// Open a driver with a registered database/sql driver name and DSN:
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db")
//
// or wrap an existing pool:
//
//	drv := sql.OpenDB(dialect.Postgres, db)
//
// The returned Driver supports transactions via Tx, which the scan engine
// uses as the always-rolled-back probe boundary.
package sql
