// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/pollq"
)

func TestExecBackoffCoverage(t *testing.T) {
	_, rx := pollq.New[int]()

	blocked := pollq.RecvBind(rx, func(v int, _ error) kont.Eff[int] {
		return kont.Pure(v)
	})

	go func() {
		pollq.Exec(blocked)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to hit bo.Wait()
}

func TestRunExprBackoffCoverage(t *testing.T) {
	_, rxA := pollq.New[int]()
	_, rxB := pollq.New[int]()

	a := pollq.ExprRecvBind(rxA, func(v int, _ error) kont.Expr[int] { return kont.ExprReturn(v) })
	b := pollq.ExprRecvBind(rxB, func(v int, _ error) kont.Expr[int] { return kont.ExprReturn(v) })

	go func() {
		pollq.RunExpr(a, b)
	}()

	time.Sleep(50 * time.Millisecond) // Give it time to hit bo.Wait()
}
