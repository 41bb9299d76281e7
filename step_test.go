// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/pollq"
)

func TestStepAdvanceSendRecv(t *testing.T) {
	tx, rx := pollq.New[int]()

	protocol := pollq.ExprSendThen(tx, 42,
		pollq.ExprRecvBind(rx, func(v int, err error) kont.Expr[int] {
			if err != nil {
				return kont.ExprReturn(-1)
			}
			return kont.ExprReturn(v)
		}),
	)

	if got := execExpr(protocol); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestStepInspectOperations(t *testing.T) {
	tx, rx := pollq.New[int]()

	protocol := pollq.ExprSendThen(tx, 42,
		pollq.ExprRecvBind(rx, func(v int, err error) kont.Expr[int] {
			return kont.ExprReturn(v)
		}),
	)

	// susp.Op() returns the concrete Send[int], then Recv[int].
	_, susp := pollq.Step[int](protocol)
	if susp == nil {
		t.Fatal("expected suspension for Send")
	}
	sendOp, ok := susp.Op().(pollq.Send[int])
	if !ok {
		t.Fatalf("expected Send[int], got %T", susp.Op())
	}
	if sendOp.Value != 42 {
		t.Fatalf("Send value got %d, want 42", sendOp.Value)
	}
	if sendOp.To != tx {
		t.Fatal("Send op does not carry the sender handle")
	}

	_, susp, err := pollq.Advance(susp)
	if err != nil {
		t.Fatalf("Advance Send error: %v", err)
	}
	if susp == nil {
		t.Fatal("expected suspension for Recv")
	}
	if _, ok := susp.Op().(pollq.Recv[int]); !ok {
		t.Fatalf("expected Recv[int], got %T", susp.Op())
	}

	result, susp, err := pollq.Advance(susp)
	if err != nil {
		t.Fatalf("Advance Recv error: %v", err)
	}
	if susp != nil {
		t.Fatal("expected completion after Recv")
	}
	if result != 42 {
		t.Fatalf("result got %d, want 42", result)
	}
}

func TestAdvanceWouldBlock(t *testing.T) {
	tx, rx := pollq.New[int]()

	protocol := pollq.ExprRecvBind(rx, func(v int, err error) kont.Expr[int] {
		return kont.ExprReturn(v)
	})

	_, susp := pollq.Step[int](protocol)
	if susp == nil {
		t.Fatal("expected suspension for Recv")
	}

	// The queue is empty: Advance returns iox.ErrWouldBlock and the
	// suspension stays retryable.
	_, retry, err := pollq.Advance(susp)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
	if retry != susp {
		t.Fatal("would-block must leave the suspension unconsumed")
	}

	tx.Send(8)
	result, susp, err := pollq.Advance(retry)
	if err != nil {
		t.Fatalf("Advance after send error: %v", err)
	}
	if susp != nil {
		t.Fatal("expected completion")
	}
	if result != 8 {
		t.Fatalf("result got %d, want 8", result)
	}
}

func TestStepAdvanceWait(t *testing.T) {
	tx, rx := pollq.New[int]()

	p := pollq.NewPollOf(rx)
	tx.Send(3)

	protocol := pollq.ExprWaitBind(p, 50*time.Millisecond, func(s pollq.Serial) kont.Expr[pollq.Serial] {
		return kont.ExprReturn(s)
	})

	if got := execExpr(protocol); got != rx.Serial() {
		t.Fatalf("got %d, want %d", got, rx.Serial())
	}
}
