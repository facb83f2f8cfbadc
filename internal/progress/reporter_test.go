package progress

import (
	"bytes"
	"testing"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	r := &Log{W: &buf}
	r.Begin(3, "Verifying gallery images")
	r.Item("assets/gallery-1.jpg", OK)
	r.Item("assets/gallery-2.jpg", Missing)
	r.Item("https://cdn.example.com/x.jpg", Skipped)
	r.End()

	want := "Verifying gallery images: 3 items\n" +
		"[1/3] ok      assets/gallery-1.jpg\n" +
		"[2/3] missing assets/gallery-2.jpg\n" +
		"[3/3] skipped https://cdn.example.com/x.jpg\n" +
		"Verifying gallery images: 1 ok, 1 missing, 1 skipped\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestNewInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := New(&bytes.Buffer{}).(*Log); !ok {
		t.Error("expected Log when CI is set")
	}
}

func TestNewOnTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := New(&bytes.Buffer{}).(*Bar); !ok {
		t.Error("expected Bar outside CI")
	}
}

func TestBarWithoutBeginIsSafe(t *testing.T) {
	var b Bar
	b.Item("x", OK)
	b.End()
}
