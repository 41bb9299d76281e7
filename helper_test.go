// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/pollq"
)

// execExpr drives a protocol to completion via Step+Advance loop.
// Retries on iox.ErrWouldBlock (no value queued yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](protocol kont.Expr[R]) R {
	result, susp := pollq.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = pollq.Advance(susp)
		if err != nil {
			continue
		}
	}
	return result
}
