package scan

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/syssam/modelgraph"
	"github.com/syssam/modelgraph/dialect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// session is the sandbox one entity is probed in. With a driver it is a
// transaction that is always rolled back, wrapped in a read-only guard so
// writes fail before reaching the store at all. Without a driver every
// storage touch fails fast on a denying connection.
type session struct {
	tx      dialect.Tx
	conn    dialect.ExecQuerier
	timeout time.Duration
}

func newSession(ctx context.Context, drv dialect.Driver, timeout time.Duration) (*session, error) {
	if drv == nil {
		return &session{conn: dialect.Deny(), timeout: timeout}, nil
	}
	tx, err := drv.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &session{tx: tx, conn: dialect.ReadOnly(tx), timeout: timeout}, nil
}

// Close rolls back the transactional boundary, discarding anything a probe
// managed to touch. It runs on every exit path.
func (s *session) Close() error {
	if s.tx == nil {
		return nil
	}
	return s.tx.Rollback()
}

// invoke calls the candidate with no arguments. Panics and returned errors
// surface as ordinary errors; with a timeout configured the call runs on
// its own goroutine and is abandoned when the deadline passes.
func (s *session) invoke(inst modelgraph.Model, m reflect.Method) (any, error) {
	if s.timeout <= 0 {
		return call(inst, m)
	}
	type result struct {
		v   any
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := call(inst, m)
		ch <- result{v, err}
	}()
	select {
	case r := <-ch:
		return r.v, r.err
	case <-time.After(s.timeout):
		return nil, fmt.Errorf("timed out after %s", s.timeout)
	}
}

func call(inst modelgraph.Model, m reflect.Method) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, fmt.Errorf("%v", p)
		}
	}()
	out := m.Func.Call([]reflect.Value{reflect.ValueOf(inst)})
	if len(out) == 0 {
		return nil, nil
	}
	// A trailing error result aborts the probe when set.
	if last := out[len(out)-1]; last.Type() == errType && !last.IsNil() {
		return nil, last.Interface().(error)
	}
	first := out[0]
	if first.Type() == errType {
		return nil, nil
	}
	return first.Interface(), nil
}
