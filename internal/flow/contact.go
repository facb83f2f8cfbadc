package flow

import (
	"sync"
	"time"
)

// Contact form status lines.
const (
	StatusSending = "در حال ارسال..."
	StatusSent    = "پیام شما با موفقیت ارسال شد! به زودی با شما تماس می‌گیریم."
)

// Default contact flow delays.
const (
	DefaultSendDelay  = 1500 * time.Millisecond
	DefaultClearDelay = 5000 * time.Millisecond
)

// Transition is one change of the contact status line. ClearFields is set on
// the transition that empties the form.
type Transition struct {
	Status      string
	ClearFields bool
}

// ContactFlow drives the contact form status line: sending, then sent with
// the fields cleared, then empty.
type ContactFlow struct {
	SendDelay  time.Duration
	ClearDelay time.Duration

	sched     Scheduler
	mu        sync.Mutex
	status    string
	listeners []func(Transition)
	timers    []Timer
	gen       int
}

// NewContactFlow creates a ContactFlow with the default delays.
func NewContactFlow(sched Scheduler) *ContactFlow {
	if sched == nil {
		sched = RealScheduler{}
	}
	return &ContactFlow{
		SendDelay:  DefaultSendDelay,
		ClearDelay: DefaultClearDelay,
		sched:      sched,
	}
}

// OnTransition registers fn to receive every status change.
func (c *ContactFlow) OnTransition(fn func(Transition)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Status returns the current status line.
func (c *ContactFlow) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit starts the flow. A submit while a previous one is still running
// restarts it.
func (c *ContactFlow) Submit() {
	c.mu.Lock()
	c.stopLocked()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.set(gen, Transition{Status: StatusSending})

	c.schedule(c.SendDelay, func() {
		if c.set(gen, Transition{Status: StatusSent, ClearFields: true}) {
			c.schedule(c.ClearDelay, func() { c.set(gen, Transition{}) })
		}
	})
}

func (c *ContactFlow) schedule(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers = append(c.timers, c.sched.AfterFunc(d, f))
}

// Stop cancels any pending transitions.
func (c *ContactFlow) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.gen++
}

func (c *ContactFlow) stopLocked() {
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
}

// set applies tr if gen is still the current run and reports whether it did.
func (c *ContactFlow) set(gen int, tr Transition) bool {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}
	c.status = tr.Status
	listeners := append(([]func(Transition))(nil), c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(tr)
	}
	return true
}
