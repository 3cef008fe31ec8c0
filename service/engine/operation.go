package engine

import (
	"context"

	"pegvault/core"
)

// operation is one atomic unit of work following strict ordering: ledger
// mutations apply immediately and register their inverse, external
// collaborator calls and events are buffered and run only at commit,
// after every check has passed. A failed check or external call unwinds
// all ledger mutations, so no partial state is ever observable.
type operation struct {
	undo      []func(ctx context.Context) error
	externals []externalCall
	events    []core.Event
}

type externalCall struct {
	fn func(ctx context.Context) error
	// compensate reverses an executed call when a later one fails. Calls
	// without one are irreversible and must be scheduled last.
	compensate func(ctx context.Context) error
	// failure surfaces as this code
	code core.ErrorCode
}

func (op *operation) deferUndo(fn func(ctx context.Context) error) {
	op.undo = append(op.undo, fn)
}

func (op *operation) deferExternal(code core.ErrorCode, fn, compensate func(ctx context.Context) error) {
	op.externals = append(op.externals, externalCall{fn: fn, compensate: compensate, code: code})
}

func (op *operation) emit(event core.Event) {
	op.events = append(op.events, event)
}

// rollback unwinds registered ledger mutations in reverse order. The
// engine exclusively owns both ledgers, so an inverse cannot fail.
func (op *operation) rollback(ctx context.Context) {
	for i := len(op.undo) - 1; i >= 0; i-- {
		_ = op.undo[i](ctx)
	}
	op.undo = nil
	op.externals = nil
	op.events = nil
}

// commit runs the buffered external calls in order, then delivers the
// buffered events. An external failure compensates the calls already
// executed, unwinds the ledgers and aborts.
func (op *operation) commit(ctx context.Context, sink core.EventSink) error {
	for i, call := range op.externals {
		if err := call.fn(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				if op.externals[j].compensate != nil {
					_ = op.externals[j].compensate(ctx)
				}
			}

			op.rollback(ctx)
			return call.code
		}
	}

	if sink == nil || len(op.events) == 0 {
		return nil
	}

	return sink.Emit(ctx, op.events...)
}
