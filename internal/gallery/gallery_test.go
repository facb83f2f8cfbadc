package gallery

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cakeart/cakeart/internal/content"
)

var sample = []content.GalleryItem{
	{Src: "assets/a.jpg", Title: "A", Tag: "تولد"},
	{Src: "assets/b.jpg", Title: "B", Tag: "عروسی"},
	{Src: "assets/c.jpg", Title: "C", Tag: "تولد"},
	{Src: "assets/d.jpg", Title: "D", Tag: "هنری"},
}

func TestTags(t *testing.T) {
	want := []string{AllTag, "تولد", "عروسی", "هنری"}
	if diff := cmp.Diff(want, Tags(sample)); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
}

func TestTagsEmpty(t *testing.T) {
	if diff := cmp.Diff([]string{AllTag}, Tags(nil)); diff != "" {
		t.Errorf("Tags(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAll(t *testing.T) {
	for _, tag := range []string{"", AllTag} {
		if diff := cmp.Diff(sample, Filter(sample, tag)); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tag, diff)
		}
	}
}

func TestFilterEveryTag(t *testing.T) {
	items := content.Gallery()
	for _, tag := range Tags(items)[1:] {
		got := Filter(items, tag)

		var want []content.GalleryItem
		for _, it := range items {
			if it.Tag == tag {
				want = append(want, it)
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tag, diff)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sample, "تولد")
	want := []content.GalleryItem{sample[0], sample[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterUnknownTag(t *testing.T) {
	if got := Filter(sample, "ناموجود"); len(got) != 0 {
		t.Errorf("Filter(unknown) = %v, want empty", got)
	}
}

func TestLightboxReplaceAndClose(t *testing.T) {
	var l Lightbox
	if _, open := l.Current(); open {
		t.Fatal("new lightbox should be closed")
	}

	l.Open("assets/a.jpg")
	l.Open("assets/b.jpg")
	src, open := l.Current()
	if !open || src != "assets/b.jpg" {
		t.Errorf("Current() = %q, %v; want assets/b.jpg, true", src, open)
	}

	l.Close()
	if src, open := l.Current(); open || src != "" {
		t.Errorf("after Close Current() = %q, %v; want empty, false", src, open)
	}
}

func TestLightboxFromQuery(t *testing.T) {
	empty := LightboxFromQuery("")
	if _, open := empty.Current(); open {
		t.Error("empty preview should leave lightbox closed")
	}
	l := LightboxFromQuery("assets/c.jpg")
	if src, open := l.Current(); !open || src != "assets/c.jpg" {
		t.Errorf("Current() = %q, %v", src, open)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		item content.GalleryItem
		ok   bool
	}{
		{"complete", content.GalleryItem{Src: "assets/x.jpg", Title: "X", Tag: "T"}, true},
		{"empty src", content.GalleryItem{Title: "X", Tag: "T"}, false},
		{"placeholder src", content.GalleryItem{Src: PlaceholderSrc, Title: "X", Tag: "T"}, false},
		{"placeholder with spaces", content.GalleryItem{Src: " assets/ ", Title: "X", Tag: "T"}, false},
		{"empty title", content.GalleryItem{Src: "assets/x.jpg", Tag: "T"}, false},
		{"blank tag", content.GalleryItem{Src: "assets/x.jpg", Title: "X", Tag: "  "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.item)
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrIncomplete) {
				t.Errorf("Validate() = %v, want ErrIncomplete", err)
			}
		})
	}
}

func TestErrIncompleteMessage(t *testing.T) {
	if ErrIncomplete.Error() != "لطفا تمام فیلدها را پر کنید." {
		t.Errorf("ErrIncomplete = %q", ErrIncomplete.Error())
	}
}
