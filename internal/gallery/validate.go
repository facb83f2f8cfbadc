package gallery

import (
	"errors"
	"strings"

	"github.com/cakeart/cakeart/internal/content"
)

// PlaceholderSrc is the prefilled value of the src field in the add form.
const PlaceholderSrc = "assets/"

// ErrIncomplete is returned when a new item has an empty field. Its message is
// shown to the admin as is.
var ErrIncomplete = errors.New("لطفا تمام فیلدها را پر کنید.")

// Validate checks that every field of item is filled in.
func Validate(item content.GalleryItem) error {
	src := strings.TrimSpace(item.Src)
	if src == "" || src == PlaceholderSrc {
		return ErrIncomplete
	}
	if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Tag) == "" {
		return ErrIncomplete
	}
	return nil
}

// Normalize trims surrounding whitespace from every field.
func Normalize(item content.GalleryItem) content.GalleryItem {
	return content.GalleryItem{
		Src:   strings.TrimSpace(item.Src),
		Title: strings.TrimSpace(item.Title),
		Tag:   strings.TrimSpace(item.Tag),
	}
}
