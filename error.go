// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrClosed reports that the peer side of a channel pair is gone:
// on [Sender.Send], the receiver has been closed; on the receive
// operations, every sender handle has been closed and the queue is
// drained.
var ErrClosed = errors.New("pollq: closed channel")

// ErrTimeout reports that [Receiver.RecvTimeout] elapsed before a
// value arrived. [Poll.Wait] reports timeout as [None], not an error:
// readiness is advisory and an empty wait is not a failure.
var ErrTimeout = errors.New("pollq: receive timeout")

// SendError carries the undelivered value back to the caller when
// Send fails on a closed channel. Unwraps to [ErrClosed].
type SendError[T any] struct {
	Value T
}

func (e *SendError[T]) Error() string { return "pollq: send on closed channel" }

func (e *SendError[T]) Unwrap() error { return ErrClosed }

// IsWouldBlock reports whether err is the non-blocking "momentarily
// empty" signal returned by [Receiver.TryRecv]. This error is sourced
// from [code.hybscloud.com/iox] for ecosystem consistency.
func IsWouldBlock(err error) bool { return iox.IsWouldBlock(err) }

// IsClosed reports whether err indicates a closed channel, including
// a typed *[SendError] carrying an undelivered value.
func IsClosed(err error) bool { return errors.Is(err, ErrClosed) }
