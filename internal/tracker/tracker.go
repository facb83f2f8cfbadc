// Package tracker decides which page section is "in view" from batches of
// visibility changes, the way an intersection observer reports them.
package tracker

import (
	"fmt"
	"strconv"
	"sync"
)

// Band is the part of the viewport a section must intersect to count as
// visible, expressed as fractions of the viewport height cut from the top
// and bottom.
type Band struct {
	TopInset    float64
	BottomInset float64
}

// DefaultBand keeps the middle 40% of the viewport.
var DefaultBand = Band{TopInset: 0.30, BottomInset: 0.30}

// RootMargin renders the band as an IntersectionObserver rootMargin string.
func (b Band) RootMargin() string {
	return fmt.Sprintf("-%s%% 0px -%s%% 0px", percent(b.TopInset), percent(b.BottomInset))
}

func percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', -1, 64)
}

// Entry is one visibility change for a section.
type Entry struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

// Tracker reports the active section among an ordered set of section ids.
type Tracker struct {
	mu     sync.Mutex
	order  map[string]int
	ids    []string
	active string
}

// New creates a Tracker over ids, given in page order. The first id starts active.
func New(ids []string) *Tracker {
	t := &Tracker{
		order: make(map[string]int, len(ids)),
		ids:   append([]string(nil), ids...),
	}
	for i, id := range ids {
		if _, dup := t.order[id]; !dup {
			t.order[id] = i
		}
	}
	if len(ids) > 0 {
		t.active = ids[0]
	}
	return t
}

// Observe applies one batch of visibility changes and returns the active id.
// A section that becomes visible becomes active; when several do in the same
// batch the topmost one wins. Sections leaving the band and unknown ids do
// not change the active section.
func (t *Tracker) Observe(batch []Entry) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	best := -1
	for _, e := range batch {
		if !e.Visible {
			continue
		}
		idx, ok := t.order[e.ID]
		if !ok {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best >= 0 {
		t.active = t.ids[best]
	}
	return t.active
}

// Active returns the current active section id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
