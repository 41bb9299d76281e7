// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pollHandler implements kont.Handler for channel and poll effects.
// Waits past iox.ErrWouldBlock with adaptive backoff, converting
// non-blocking dispatch into blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type pollHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (pollHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(pollDispatcher)
	if !ok {
		panic("pollq: unhandled effect in pollHandler")
	}
	return dispatchWait(pop), true
}

// dispatchWait blocks until DispatchPoll succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (I/O readiness waiting).
func dispatchWait(pop pollDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := pop.DispatchPoll()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world channel protocol to completion.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, pollHandler[R]{})
}

// ExecExpr runs an Expr-world channel protocol to completion.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, pollHandler[R]{})
}
