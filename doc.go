// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pollq provides readiness multiplexing over typed channel pairs:
// a waiter blocks on one [Poll] and learns, serial by serial, which of the
// bound channels has data.
//
// # Architecture
//
//   - Transport: unbounded MPSC channel pairs. [New] creates a [Sender]/[Receiver]
//     pair; the fast path is a bounded lock-free SPSC ring via [code.hybscloud.com/lfq],
//     with overflow spilling to a locked list so Send never blocks.
//   - Readiness: binding a [Receiver] to a [Poll] repoints the pair's notification
//     link at the Poll's readiness queue; every successful Send pushes the pair's
//     [Serial] there. Notification is advisory: push failures are counted
//     ([Poll.Dropped]), never surfaced, and never affect payload delivery.
//   - Non-blocking: [Receiver.TryRecv] returns [code.hybscloud.com/iox.ErrWouldBlock]
//     while empty. Blocking waits ([Receiver.Recv], [Receiver.RecvTimeout],
//     [Poll.Wait]) back off adaptively via iox.Backoff.
//   - Protocols: channel scripts composed as algebraic effects on
//     [code.hybscloud.com/kont]. Operations: [Send], [Recv], [TryRecv], [Wait].
//
// # API Topologies
//
//   - Direct: [Sender.Send], [Sender.Clone], [Receiver.Recv], [Receiver.RecvTimeout],
//     [Receiver.TryRecv], [Poll.Add], [Poll.Append], [Poll.Wait].
//   - Cont-world: [SendThen], [SendBind], [RecvBind], [TryRecvBind], [WaitBind], [Loop].
//   - Expr-world: [ExprSendThen], [ExprRecvBind], [ExprWaitBind]. Bridge via
//     [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate protocols one effect at a time,
//     making them easy to integrate with a proactor loop.
//   - Blocking: [Exec], [ExecExpr] and [RunExpr] wait past boundaries using
//     adaptive backoff.
//
// # Example
//
//	txA, rxA := pollq.New[int]()
//	txB, rxB := pollq.New[int]()
//	p := pollq.NewPollOf(rxA, rxB)
//	txA.Send(100)
//	txB.Send(200)
//	for range 2 {
//		switch p.Wait(10 * time.Millisecond) {
//		case rxA.Serial():
//			n, _ := rxA.Recv() // n == 100
//			fmt.Println(n)
//		case rxB.Serial():
//			n, _ := rxB.Recv() // n == 200
//			fmt.Println(n)
//		case pollq.None:
//			// timeout
//		}
//	}
package pollq
