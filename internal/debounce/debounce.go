// Package debounce provides a cancellable timer for Bubble Tea programs.
//
// A Timer hands out a token per schedule. Ticks are never stopped once sent
// to the runtime; instead, Fired reports true only for the token that is
// still live, so rescheduling or cancelling discards older ticks.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Delays used by the UI.
const (
	TagLookup = 200 * time.Millisecond
	Search    = 350 * time.Millisecond
)

var nextID atomic.Uint64

// Token identifies one scheduled firing of a Timer.
type Token uint64

// FiredMsg is delivered when a scheduled delay elapses.
type FiredMsg struct {
	Timer uint64
	Token Token
}

// Timer debounces a single action. The zero value is unusable; use New.
type Timer struct {
	id    uint64
	delay time.Duration
	gen   Token
	live  bool
}

// New returns a timer firing delay after each Schedule.
func New(delay time.Duration) Timer {
	return Timer{id: nextID.Add(1), delay: delay}
}

// ID returns the process-unique timer id carried in FiredMsg.
func (t *Timer) ID() uint64 { return t.id }

// Delay returns the configured delay.
func (t *Timer) Delay() time.Duration { return t.delay }

// Schedule invalidates any pending token and returns a new one with the
// command that delivers it.
func (t *Timer) Schedule() (Token, tea.Cmd) {
	t.gen++
	t.live = true
	msg := FiredMsg{Timer: t.id, Token: t.gen}
	return t.gen, tea.Tick(t.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel invalidates the pending token without scheduling another.
func (t *Timer) Cancel() {
	t.live = false
}

// Pending reports whether a schedule is outstanding.
func (t *Timer) Pending() bool { return t.live }

// Fired reports whether msg is the live firing of this timer and, if so,
// consumes it.
func (t *Timer) Fired(msg tea.Msg) bool {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.Timer != t.id {
		return false
	}
	if !t.live || fired.Token != t.gen {
		return false
	}
	t.live = false
	return true
}

// Owns reports whether msg was produced by this timer, live or stale.
func (t *Timer) Owns(msg tea.Msg) bool {
	fired, ok := msg.(FiredMsg)
	return ok && fired.Timer == t.id
}
