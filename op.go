// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pollDispatcher is the structural interface for channel and poll
// effect operations. DispatchPoll is non-blocking for receive-style
// operations: it returns iox.ErrWouldBlock at the I/O boundary when
// the queue cannot make progress yet.
type pollDispatcher interface {
	DispatchPoll() (kont.Resumed, error)
}

// sendOK is the pre-boxed Resumed value for successful Send dispatch,
// avoiding a per-send heap escape when boxing into Resumed (any).
var sendOK kont.Resumed = kont.Right[error](struct{}{})

// Send is the effect operation for sending a value on a channel pair.
// Perform(Send[T]{To: tx, Value: v}) enqueues v and resumes with
// Either[error, struct{}]: Right on success, Left(*SendError) on a
// closed receiver. The resumed value is never a bare nil, which
// Cont-world resumption cannot assert to its result type.
type Send[T any] struct {
	kont.Phantom[kont.Either[error, struct{}]]
	To    *Sender[T]
	Value T
}

// DispatchPoll handles Send. Never blocks: the queue is unbounded, so
// the operation completes in one dispatch.
func (op Send[T]) DispatchPoll() (kont.Resumed, error) {
	if err := op.To.Send(op.Value); err != nil {
		return kont.Left[error, struct{}](err), nil
	}
	return sendOK, nil
}

// Recv is the effect operation for receiving a value.
// Resumes with Either[error, T]: Right on success, Left(ErrClosed)
// once every sender handle is gone and the queue is drained.
type Recv[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	From *Receiver[T]
}

// DispatchPoll handles Recv on the pair's queue.
// Non-blocking: returns iox.ErrWouldBlock while the queue is empty.
func (op Recv[T]) DispatchPoll() (kont.Resumed, error) {
	v, err := op.From.TryRecv()
	if err == nil {
		return kont.Right[error, T](v), nil
	}
	if iox.IsWouldBlock(err) {
		return nil, err
	}
	return kont.Left[error, T](err), nil
}

// TryRecv is the effect operation for a single non-blocking receive.
// Resumes with Either[error, T]; an empty queue resumes with
// Left(iox.ErrWouldBlock) rather than suspending.
type TryRecv[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	From *Receiver[T]
}

// DispatchPoll handles TryRecv. Never retried: the would-block case
// is part of the resumed value.
func (op TryRecv[T]) DispatchPoll() (kont.Resumed, error) {
	v, err := op.From.TryRecv()
	if err != nil {
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error, T](v), nil
}

// Wait is the effect operation for waiting on a Poll.
// Bounded: dispatch blocks the calling goroutine for up to Timeout
// and resumes with the ready serial, or None on timeout.
type Wait struct {
	kont.Phantom[Serial]
	On      *Poll
	Timeout time.Duration
}

// DispatchPoll handles Wait. The bound is enforced inside the poll
// wait itself, so the dispatch completes in one call.
func (op Wait) DispatchPoll() (kont.Resumed, error) {
	return op.On.Wait(op.Timeout), nil
}
