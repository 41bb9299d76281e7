// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Sender is the producing half of a channel pair.
// Clone creates additional handles sharing the same queue, serial,
// and notification link; handles are closed independently.
type Sender[T any] struct {
	q      *queue[T]
	link   *link
	serial Serial
	done   atomix.Uint32 // nonzero once this handle is closed
}

// Receiver is the consuming half of a channel pair. Single consumer:
// at most one goroutine may receive at a time.
type Receiver[T any] struct {
	q      *queue[T]
	link   *link
	serial Serial
}

// New creates a connected channel pair. The queue is unbounded: Send
// never blocks and fails only after the receiver is closed. Each pair
// is assigned the next monotonically increasing serial.
func New[T any]() (*Sender[T], *Receiver[T]) {
	q := newQueue[T]()
	l := &link{}
	s := nextSerial()
	tx := &Sender[T]{q: q, link: l, serial: s}
	rx := &Receiver[T]{q: q, link: l, serial: s}
	return tx, rx
}

// Send enqueues v and, when the pair is bound to a [Poll], pushes the
// pair's serial onto that Poll's readiness queue. Never blocks.
//
// The payload enqueue is authoritative: its outcome is the return
// value, and the advisory readiness push can neither fail nor delay
// it. Send fails only when the receiver has been closed, returning a
// *[SendError] carrying the undelivered value.
func (s *Sender[T]) Send(v T) error {
	if err := s.q.enqueue(v); err != nil {
		return &SendError[T]{Value: v}
	}
	s.link.notify(s.serial)
	return nil
}

// Clone returns a new sender handle sharing the queue, serial, and
// notification link.
func (s *Sender[T]) Clone() *Sender[T] {
	s.q.senders.Add(1)
	return &Sender[T]{q: s.q, link: s.link, serial: s.serial}
}

// Close releases this sender handle. Once every handle is closed and
// the queue is drained, the receive operations return ErrClosed.
// Close is idempotent per handle.
func (s *Sender[T]) Close() {
	if s.done.Add(1) == 1 {
		s.q.senders.Add(-1)
	}
}

// Serial returns the serial assigned to this channel pair.
func (s *Sender[T]) Serial() Serial {
	return s.serial
}

// Serial returns the serial assigned to this channel pair. It is the
// value [Poll.Wait] reports when this pair becomes ready.
func (r *Receiver[T]) Serial() Serial {
	return r.serial
}

// Len reports the number of queued values not yet received.
func (r *Receiver[T]) Len() int {
	return r.q.len()
}

// TryRecv dequeues without blocking. Returns iox.ErrWouldBlock while
// the queue is momentarily empty, ErrClosed once every sender handle
// is closed and the queue is drained.
func (r *Receiver[T]) TryRecv() (T, error) {
	return r.q.dequeue()
}

// Recv blocks until a value arrives or the channel is closed.
// Waits past empty with adaptive backoff (iox.Backoff). There is no
// way to interrupt an in-flight Recv; RecvTimeout is the bounded
// variant.
func (r *Receiver[T]) Recv() (T, error) {
	var bo iox.Backoff
	for {
		v, err := r.q.dequeue()
		if err == nil || !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}

// RecvTimeout blocks until a value arrives, the channel is closed, or
// d elapses, whichever comes first. Returns ErrTimeout on elapse.
// A non-positive d degenerates to a single non-blocking attempt.
func (r *Receiver[T]) RecvTimeout(d time.Duration) (T, error) {
	deadline := time.Now().Add(d)
	var bo iox.Backoff
	for {
		v, err := r.q.dequeue()
		if err == nil || !iox.IsWouldBlock(err) {
			return v, err
		}
		if !time.Now().Before(deadline) {
			var zero T
			return zero, ErrTimeout
		}
		bo.Wait()
	}
}

// Close destroys the consumer side: queued values become
// unretrievable and subsequent sends fail. Close is idempotent.
func (r *Receiver[T]) Close() {
	r.q.closed.Add(1)
}

// pollLink implements Pollable.
func (r *Receiver[T]) pollLink() *link {
	return r.link
}
