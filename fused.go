// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"time"

	"code.hybscloud.com/kont"
)

// SendThen sends v on tx and continues with next, discarding the send
// outcome. Use SendBind to observe a closed receiver.
// Fuses Perform(Send[T]{...}) + Then.
func SendThen[T, B any](tx *Sender[T], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Send[T]{To: tx, Value: v}), next)
}

// SendBind sends v on tx and passes the outcome to f, nil on success.
// Fuses Perform(Send[T]{...}) + Bind + Either branch.
func SendBind[T, B any](tx *Sender[T], v T, f func(error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Send[T]{To: tx, Value: v}), func(e kont.Either[error, struct{}]) kont.Eff[B] {
		if err, ok := e.GetLeft(); ok {
			return f(err)
		}
		return f(nil)
	})
}

// RecvBind receives from rx, blocking past empty, and passes the value
// to f; err is non-nil only for a closed channel.
// Fuses Perform(Recv[T]{...}) + Bind + Either branch.
func RecvBind[T, B any](rx *Receiver[T], f func(v T, err error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv[T]{From: rx}), func(e kont.Either[error, T]) kont.Eff[B] {
		if v, ok := e.GetRight(); ok {
			return f(v, nil)
		}
		err, _ := e.GetLeft()
		var zero T
		return f(zero, err)
	})
}

// TryRecvBind receives from rx without blocking and passes the value
// to f; err is iox.ErrWouldBlock when the queue is momentarily empty.
// Fuses Perform(TryRecv[T]{...}) + Bind + Either branch.
func TryRecvBind[T, B any](rx *Receiver[T], f func(v T, err error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(TryRecv[T]{From: rx}), func(e kont.Either[error, T]) kont.Eff[B] {
		if v, ok := e.GetRight(); ok {
			return f(v, nil)
		}
		err, _ := e.GetLeft()
		var zero T
		return f(zero, err)
	})
}

// WaitBind waits on p for up to timeout and passes the ready serial,
// or None, to f.
// Fuses Perform(Wait{...}) + Bind.
func WaitBind[B any](p *Poll, timeout time.Duration, f func(Serial) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Wait{On: p, Timeout: timeout}), f)
}
