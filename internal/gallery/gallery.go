// Package gallery implements the portfolio filter, the lightbox preview and
// the persisted working list edited from the admin view.
package gallery

import "github.com/cakeart/cakeart/internal/content"

// AllTag is the pseudo-tag that selects every item.
const AllTag = "همه"

// Tags returns AllTag followed by the distinct tags of items in first-seen order.
func Tags(items []content.GalleryItem) []string {
	tags := []string{AllTag}
	seen := map[string]bool{AllTag: true}
	for _, it := range items {
		if seen[it.Tag] {
			continue
		}
		seen[it.Tag] = true
		tags = append(tags, it.Tag)
	}
	return tags
}

// Filter returns the items whose tag equals tag, keeping their relative order.
// An empty tag or AllTag returns items unchanged.
func Filter(items []content.GalleryItem, tag string) []content.GalleryItem {
	if tag == "" || tag == AllTag {
		return items
	}
	out := make([]content.GalleryItem, 0, len(items))
	for _, it := range items {
		if it.Tag == tag {
			out = append(out, it)
		}
	}
	return out
}
