// Package namegen produces collision-resistant filename fragments from a
// millisecond wall-clock timestamp and a process-wide wrapping counter.
package namegen

import (
	"strconv"
	"sync"
	"time"
)

// Default is the shared generator used for all fragments in the process
// unless a caller supplies its own.
var Default = New()

// Generator combines the current time with a 16-bit wrapping counter to
// build short unique fragments. The zero value is not usable; construct
// via New or NewWithClock.
type Generator struct {
	mu      sync.Mutex
	counter uint16
	now     func() time.Time
}

// New returns a Generator backed by the system clock with its counter at
// zero.
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Generator that reads time from now. Tests use this
// to pin the timestamp portion of fragments.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Fragment returns a fresh "<timestamp-suffix>-<counter>" string, where the
// timestamp suffix is the last digits characters of the current millisecond
// timestamp. Each call increments the counter, wrapping at its maximum.
//
// Two calls in the same millisecond-suffix window still yield distinct
// fragments unless the counter wraps between them; more than 65536 calls in
// one window can therefore collide. That is an accepted limitation, not an
// error condition.
func (g *Generator) Fragment(digits int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := strconv.FormatInt(g.now().UnixMilli(), 10)
	if digits < 0 {
		digits = 0
	}
	if digits > len(ms) {
		digits = len(ms)
	}
	frag := ms[len(ms)-digits:] + "-" + strconv.FormatUint(uint64(g.counter), 10)
	g.counter++ // wraps at 1<<16
	return frag
}
