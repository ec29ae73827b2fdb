package modelgraph

import (
	"github.com/syssam/modelgraph/dialect"
)

// Model is the contract implemented by every scannable model type.
// Concrete models obtain it by embedding Base:
//
//	type Author struct {
//	    modelgraph.Base
//	}
//
//	func (a *Author) Books() relation.Relation {
//	    return relation.HasMany(a, &Book{})
//	}
//
// The interface carries the storage binding used by the probe sandbox,
// plus an unexported marker so arbitrary types cannot satisfy it by
// accident.
type Model interface {
	// Bind attaches the storage connection the model operates on.
	// The scan engine binds a guarded, transactional connection for the
	// duration of a probe session.
	Bind(dialect.ExecQuerier)
	// Conn returns the bound storage connection, or a denying connection
	// if none was bound.
	Conn() dialect.ExecQuerier
	mustEmbedBase()
}

// Tabler is implemented by models that override their backing table name.
// Models without it get a pluralized snake-case default derived from the
// type name (Author -> "authors").
type Tabler interface {
	TableName() string
}

// Base is the embeddable half of the Model contract. It holds the storage
// binding and nothing else; all schema information is expressed through
// the model's relation methods.
type Base struct {
	conn dialect.ExecQuerier
}

// Bind implements Model.
func (b *Base) Bind(c dialect.ExecQuerier) { b.conn = c }

// Conn implements Model.
func (b *Base) Conn() dialect.ExecQuerier {
	if b.conn == nil {
		return dialect.Deny()
	}
	return b.conn
}

func (*Base) mustEmbedBase() {}
