// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"time"

	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a
// heap escape per combinator when boxing the empty struct into
// kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSendThen sends v on tx and continues with next, discarding the
// send outcome.
// Fuses ExprPerform(Send[T]{...}) + ExprThen.
func ExprSendThen[T, B any](tx *Sender[T], v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Send[T]{To: tx, Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func recvBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T, error) kont.Expr[B])
	e := current.(kont.Either[error, T])
	var result kont.Expr[B]
	if v, ok := e.GetRight(); ok {
		result = f(v, nil)
	} else {
		err, _ := e.GetLeft()
		var zero T
		result = f(zero, err)
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprRecvBind receives from rx, blocking past empty, and passes the
// value to f; err is non-nil only for a closed channel.
// Fuses ExprPerform(Recv[T]{...}) + ExprBind + Either branch.
func ExprRecvBind[T, B any](rx *Receiver[T], f func(v T, err error) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = recvBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{From: rx}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func waitBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Serial) kont.Expr[B])
	result := f(current.(Serial))
	return kont.Erased(result.Value), result.Frame
}

// ExprWaitBind waits on p for up to timeout and passes the ready
// serial, or None, to f.
// Fuses ExprPerform(Wait{...}) + ExprBind.
func ExprWaitBind[B any](p *Poll, timeout time.Duration, f func(Serial) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = waitBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Wait{On: p, Timeout: timeout}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
