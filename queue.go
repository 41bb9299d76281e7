// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ringCapacity is the bounded capacity of the lock-free fast path.
// Values beyond it spill into the locked overflow tier, so the queue
// as a whole never rejects an enqueue.
const ringCapacity = 64

// queue is an unbounded multi-producer single-consumer FIFO.
//
// The fast path is a bounded lock-free SPSC ring from lfq. Producers
// are serialized by sendMu, which upholds the ring's single-producer
// contract while letting sender clones share one queue. When the ring
// is full, values spill into the overflow slice.
//
// FIFO across the two tiers holds because spilled is set by producers
// and cleared by the consumer only under ovMu: while overflow is
// non-empty no producer enqueues the ring, so the ring always holds
// the oldest values and is drained first.
type queue[T any] struct {
	sendMu sync.Mutex // serializes producers on the ring
	ring   lfq.SPSC[T]

	ovMu     sync.Mutex // guards overflow and the spilled transitions
	overflow []T
	spilled  atomix.Uint32 // nonzero while overflow may hold values

	length  atomix.Int64  // queued values across both tiers
	senders atomix.Int64  // live sender handles; 1 held by the owner
	closed  atomix.Uint32 // nonzero once the consumer side is closed
	dropped atomix.Uint64 // readiness pushes rejected after close
}

// newQueue returns an empty queue with one live sender reference,
// held by the creating side.
func newQueue[T any]() *queue[T] {
	q := &queue[T]{}
	q.ring.Init(ringCapacity)
	q.senders.Add(1)
	return q
}

// enqueue appends v in FIFO position. Never blocks: when the ring is
// full the value spills into the overflow tier. Fails only after the
// consumer side has been closed.
func (q *queue[T]) enqueue(v T) error {
	if q.closed.Load() != 0 {
		return ErrClosed
	}
	q.sendMu.Lock()
	q.length.Add(1)
	if q.spilled.Load() == 0 {
		if err := q.ring.Enqueue(&v); err == nil {
			q.sendMu.Unlock()
			return nil
		}
	}
	q.ovMu.Lock()
	if q.spilled.Load() == 0 {
		// The consumer may have drained the ring since the failed
		// fast-path attempt; retry before committing to a spill.
		if err := q.ring.Enqueue(&v); err == nil {
			q.ovMu.Unlock()
			q.sendMu.Unlock()
			return nil
		}
		q.spilled.Store(1)
	}
	q.overflow = append(q.overflow, v)
	q.ovMu.Unlock()
	q.sendMu.Unlock()
	return nil
}

// dequeue removes the oldest value. Consumer side only: at most one
// goroutine may call dequeue at a time.
//
// Returns iox.ErrWouldBlock while no value is queued, ErrClosed once
// the consumer side is closed or every sender handle is gone and the
// queue is drained.
func (q *queue[T]) dequeue() (T, error) {
	var zero T
	if q.closed.Load() != 0 {
		return zero, ErrClosed
	}
	v, err := q.ring.Dequeue()
	if err == nil {
		q.length.Add(-1)
		return v, nil
	}
	// Ring empty. While spilled, producers only append overflow, so
	// overflow now holds the oldest values.
	if q.spilled.Load() != 0 {
		q.ovMu.Lock()
		if len(q.overflow) > 0 {
			v = q.overflow[0]
			q.overflow[0] = zero
			q.overflow = q.overflow[1:]
			if len(q.overflow) == 0 {
				q.overflow = nil
				q.spilled.Store(0)
			}
			q.ovMu.Unlock()
			q.length.Add(-1)
			return v, nil
		}
		q.ovMu.Unlock()
	}
	if q.senders.Load() == 0 && q.length.Load() == 0 {
		return zero, ErrClosed
	}
	return zero, iox.ErrWouldBlock
}

// len reports the number of queued values across both tiers.
func (q *queue[T]) len() int {
	return int(q.length.Load())
}
