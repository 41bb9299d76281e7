// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a channel protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended operation. Operations carry their
// own channel or poll handles, so no endpoint argument is needed.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be
// retried after a sender makes progress.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	pop, ok := susp.Op().(pollDispatcher)
	if !ok {
		panic("pollq: unhandled effect in Advance")
	}
	v, err := pop.DispatchPoll()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
