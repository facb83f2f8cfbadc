// Package progress reports per-item results of a CLI check, as a bar on a
// terminal or as plain lines in CI logs.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Outcome is the result of checking one item.
type Outcome string

const (
	OK      Outcome = "ok"
	Missing Outcome = "missing"
	Skipped Outcome = "skipped"
)

// Reporter receives the items of a check in order.
type Reporter interface {
	Begin(total int, label string)
	Item(name string, o Outcome)
	End()
}

// New returns a Log reporter under CI and a Bar otherwise, both writing to w.
func New(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &Log{W: w}
	}
	return &Bar{W: w}
}

// Bar draws a progress bar and clears it when done.
type Bar struct {
	W   io.Writer
	bar *progressbar.ProgressBar
}

func (b *Bar) Begin(total int, label string) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.W),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Item(name string, _ Outcome) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(name)
	_ = b.bar.Add(1)
}

func (b *Bar) End() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

// Log prints one line per item and a tally at the end.
type Log struct {
	W      io.Writer
	label  string
	total  int
	n      int
	counts map[Outcome]int
}

func (l *Log) Begin(total int, label string) {
	l.label, l.total, l.n = label, total, 0
	l.counts = map[Outcome]int{}
	fmt.Fprintf(l.W, "%s: %d items\n", label, total)
}

func (l *Log) Item(name string, o Outcome) {
	l.n++
	l.counts[o]++
	fmt.Fprintf(l.W, "[%d/%d] %-7s %s\n", l.n, l.total, o, name)
}

func (l *Log) End() {
	fmt.Fprintf(l.W, "%s: %d ok, %d missing, %d skipped\n",
		l.label, l.counts[OK], l.counts[Missing], l.counts[Skipped])
}

// Nop discards everything.
type Nop struct{}

func (Nop) Begin(int, string)    {}
func (Nop) Item(string, Outcome) {}
func (Nop) End()                 {}
