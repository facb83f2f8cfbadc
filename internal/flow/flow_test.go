package flow

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPreloaderVisible(t *testing.T) {
	p := NewPreloader()
	tests := []struct {
		elapsed time.Duration
		want    bool
	}{
		{0, true},
		{2499 * time.Millisecond, true},
		{2500 * time.Millisecond, false},
		{10 * time.Second, false},
	}
	for _, tt := range tests {
		if got := p.Visible(tt.elapsed); got != tt.want {
			t.Errorf("Visible(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestContactFlowSequence(t *testing.T) {
	sched := &ManualScheduler{}
	c := NewContactFlow(sched)

	var got []Transition
	c.OnTransition(func(tr Transition) { got = append(got, tr) })

	c.Submit()
	if c.Status() != StatusSending {
		t.Fatalf("Status() = %q, want sending", c.Status())
	}

	sched.Advance(1499 * time.Millisecond)
	if c.Status() != StatusSending {
		t.Fatalf("Status() before send delay = %q", c.Status())
	}

	sched.Advance(time.Millisecond)
	if c.Status() != StatusSent {
		t.Fatalf("Status() after send delay = %q, want sent", c.Status())
	}

	sched.Advance(4999 * time.Millisecond)
	if c.Status() != StatusSent {
		t.Fatalf("Status() before clear delay = %q", c.Status())
	}

	sched.Advance(time.Millisecond)
	if c.Status() != "" {
		t.Fatalf("Status() after clear delay = %q, want empty", c.Status())
	}

	want := []Transition{
		{Status: StatusSending},
		{Status: StatusSent, ClearFields: true},
		{Status: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestContactFlowResubmitRestarts(t *testing.T) {
	sched := &ManualScheduler{}
	c := NewContactFlow(sched)

	var count int
	c.OnTransition(func(tr Transition) {
		if tr.Status == StatusSent {
			count++
		}
	})

	c.Submit()
	sched.Advance(time.Second)
	c.Submit()
	sched.Advance(time.Second)
	if c.Status() != StatusSending {
		t.Fatalf("Status() = %q, want sending after restart", c.Status())
	}
	sched.Advance(10 * time.Second)
	if count != 1 {
		t.Errorf("sent transitions = %d, want 1", count)
	}
	if c.Status() != "" {
		t.Errorf("Status() = %q, want empty", c.Status())
	}
}

func TestContactFlowStop(t *testing.T) {
	sched := &ManualScheduler{}
	c := NewContactFlow(sched)
	c.Submit()
	c.Stop()
	sched.Advance(time.Minute)
	if c.Status() != StatusSending {
		t.Errorf("Status() = %q, want status frozen at sending", c.Status())
	}
}

func TestCopyAck(t *testing.T) {
	sched := &ManualScheduler{}
	a := NewCopyAck(sched)

	if a.Copied() || a.Label() != LabelCopy {
		t.Fatal("new CopyAck should not be copied")
	}

	a.Ack()
	if !a.Copied() || a.Label() != LabelCopied {
		t.Fatal("Ack() should show copied")
	}

	sched.Advance(1500 * time.Millisecond)
	a.Ack()
	sched.Advance(1500 * time.Millisecond)
	if !a.Copied() {
		t.Error("second Ack() should extend the window")
	}

	sched.Advance(500 * time.Millisecond)
	if a.Copied() {
		t.Error("ack should clear after its duration")
	}
}

func TestManualSchedulerOrder(t *testing.T) {
	sched := &ManualScheduler{}
	var order []int
	sched.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	sched.AfterFunc(time.Second, func() { order = append(order, 1) })
	stopped := sched.AfterFunc(time.Second, func() { order = append(order, 99) })
	stopped.Stop()

	sched.Advance(3 * time.Second)
	if diff := cmp.Diff([]int{1, 2}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if sched.Now() != 3*time.Second {
		t.Errorf("Now() = %v, want 3s", sched.Now())
	}
}

func TestRealSchedulerFires(t *testing.T) {
	done := make(chan struct{})
	RealScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}
