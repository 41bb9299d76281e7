// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import "sync"

// link is the rebindable notification target shared by a channel pair.
// Bind repoints it at a Poll's readiness queue. Send resolves the
// target on every call, so rebinding takes effect immediately for all
// sender clones; there is no per-sender cached handle to go stale.
type link struct {
	mu     sync.Mutex
	target *queue[Serial] // bound readiness queue, nil while unbound
}

// bind repoints the link at q, superseding any previous binding.
// The superseded Poll simply stops receiving notifications.
func (l *link) bind(q *queue[Serial]) {
	l.mu.Lock()
	l.target = q
	l.mu.Unlock()
}

// notify pushes s onto the bound readiness queue, if any.
// Fire-and-forget: a push rejected by a closed Poll is counted on
// that Poll's dropped counter and otherwise swallowed. Notification
// outcomes never affect payload delivery.
func (l *link) notify(s Serial) {
	l.mu.Lock()
	q := l.target
	l.mu.Unlock()
	if q == nil {
		return
	}
	if err := q.enqueue(s); err != nil {
		q.dropped.Add(1)
	}
}
