package flow

import (
	"sync"
	"time"
)

// DefaultCopyAckDuration is how long the "copied" label stays after a copy.
const DefaultCopyAckDuration = 2 * time.Second

// Copy button labels.
const (
	LabelCopy   = "کپی کن"
	LabelCopied = "کپی شد!"
)

// CopyAck tracks the short-lived "copied" acknowledgment of the export box.
type CopyAck struct {
	Duration time.Duration

	sched  Scheduler
	mu     sync.Mutex
	copied bool
	timer  Timer
}

// NewCopyAck creates a CopyAck with the default duration.
func NewCopyAck(sched Scheduler) *CopyAck {
	if sched == nil {
		sched = RealScheduler{}
	}
	return &CopyAck{Duration: DefaultCopyAckDuration, sched: sched}
}

// Ack records a copy. Repeated acks extend the window.
func (a *CopyAck) Ack() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.copied = true
	a.timer = a.sched.AfterFunc(a.Duration, func() {
		a.mu.Lock()
		a.copied = false
		a.mu.Unlock()
	})
}

// Copied reports whether the acknowledgment is showing.
func (a *CopyAck) Copied() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.copied
}

// Label returns the copy button text for the current state.
func (a *CopyAck) Label() string {
	if a.Copied() {
		return LabelCopied
	}
	return LabelCopy
}
