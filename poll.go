// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"time"

	"code.hybscloud.com/iox"
)

// Pollable is a receiving half that can be bound to a [Poll].
// Satisfied only by [Receiver]: the binding capability is an
// unexported method of the pair's notification link.
type Pollable interface {
	// Serial returns the channel identifier reported by Poll.Wait.
	Serial() Serial

	pollLink() *link
}

// Poll multiplexes readiness across an arbitrary set of channel
// pairs. Binding a receiver repoints its notification link at this
// Poll's readiness queue; every subsequent Send on the pair pushes
// the pair's serial there, and Wait pops serials in send order.
//
// A Poll holds no references to the receivers bound to it. Binding is
// one-directional: rebinding a receiver to another Poll silently
// supersedes the old binding, and the old Poll simply stops receiving
// notifications for that pair.
//
// Single-reader contract: at most one goroutine may call Wait on a
// given Poll at a time. Concurrent waiters race for the one readiness
// consumer and each observe an unpredictable subset of serials.
type Poll struct {
	ready *queue[Serial]
}

// NewPoll creates an empty Poll with a fresh readiness queue. The
// Poll retains the queue's producer capability; binding hands it to
// channel pairs through their notification links.
func NewPoll() *Poll {
	return &Poll{ready: newQueue[Serial]()}
}

// NewPollOf creates a Poll and binds every given receiver, in order,
// before returning.
func NewPollOf(receivers ...Pollable) *Poll {
	p := NewPoll()
	p.Append(receivers...)
	return p
}

// Add binds r to this Poll, superseding any previous binding.
// Idempotent: rebinding an already-bound receiver simply repoints it.
func (p *Poll) Add(r Pollable) {
	r.pollLink().bind(p.ready)
}

// Append binds each receiver in the given order. Binding is cheap and
// touches no in-flight data, so no atomicity across the set is
// provided.
func (p *Poll) Append(receivers ...Pollable) {
	for _, r := range receivers {
		p.Add(r)
	}
}

// Wait blocks until a bound channel reports readiness or timeout
// elapses, returning the ready pair's serial or [None] on timeout.
// Waiting on a closed Poll returns None immediately.
//
// A returned serial promises only that its pair was readied at least
// once: k sends produce k readiness entries, returned one per Wait
// call in send order, never deduplicated. The caller follows up with
// Recv or TryRecv on the matching receiver to retrieve each payload.
func (p *Poll) Wait(timeout time.Duration) Serial {
	deadline := time.Now().Add(timeout)
	var bo iox.Backoff
	for {
		s, err := p.ready.dequeue()
		if err == nil {
			return s
		}
		if !iox.IsWouldBlock(err) {
			return None
		}
		if !time.Now().Before(deadline) {
			return None
		}
		bo.Wait()
	}
}

// Close releases the readiness queue. Subsequent notification pushes
// from bound senders are dropped and counted; payload delivery on the
// bound pairs is unaffected, and their values remain retrievable via
// Recv and TryRecv.
func (p *Poll) Close() {
	p.ready.closed.Add(1)
}

// Dropped reports the number of readiness notifications dropped since
// Close. Observability only; a dropped notification is never surfaced
// as a send error.
func (p *Poll) Dropped() uint64 {
	return p.ready.dropped.Load()
}
