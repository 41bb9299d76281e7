// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run interleaves two Cont-world channel protocols, typically a
// producing script and a consuming script over shared pairs, and
// returns both results. Executes on the calling goroutine using
// adaptive backoff (iox.Backoff) when neither side can make progress.
// Does not spawn goroutines or create channels.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr interleaves two Expr-world channel protocols and returns
// both results. Executes on the calling goroutine using adaptive
// backoff (iox.Backoff) when neither side can make progress.
// Does not spawn goroutines or create channels.
//
// A Wait operation dispatched here blocks the shared goroutine for up
// to its timeout, so scripts should wait only after the peer script
// has had a chance to send.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var popA pollDispatcher
	if suspA != nil {
		popA = suspA.Op().(pollDispatcher)
	}
	var popB pollDispatcher
	if suspB != nil {
		popB = suspB.Op().(pollDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := popA.DispatchPoll()
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					popA = suspA.Op().(pollDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := popB.DispatchPoll()
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					popB = suspB.Op().(pollDispatcher)
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
