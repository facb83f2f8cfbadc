// Package assets checks gallery image paths against the files on disk.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/progress"
)

// URLPrefix is the site path under which the assets directory is served.
const URLPrefix = "assets/"

// ImagePattern matches the image files the site can show.
const ImagePattern = "**/*.{jpg,jpeg,png,webp,gif,JPG,JPEG,PNG,WEBP,GIF}"

// Report is the result of Verify.
type Report struct {
	Checked int
	Missing []string
	Remote  []string
}

// OK reports whether every local gallery image exists.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// RelPath maps a gallery src to a slash path inside the assets directory.
// It returns false for remote URLs and paths outside the assets prefix.
func RelPath(src string) (string, bool) {
	if strings.Contains(src, "://") || strings.HasPrefix(src, "//") {
		return "", false
	}
	src = strings.TrimPrefix(src, "/")
	if !strings.HasPrefix(src, URLPrefix) {
		return "", false
	}
	rel := path.Clean(strings.TrimPrefix(src, URLPrefix))
	if rel == "." || strings.HasPrefix(rel, "../") || rel == ".." {
		return "", false
	}
	return rel, true
}

// Verify checks that every gallery item's image exists in dir.
func Verify(dir string, items []content.GalleryItem, rep progress.Reporter) (Report, error) {
	if rep == nil {
		rep = progress.Nop{}
	}
	fsys := os.DirFS(dir)

	var report Report
	rep.Begin(len(items), "Verifying gallery images")
	defer rep.End()
	for _, it := range items {
		rel, ok := RelPath(it.Src)
		if !ok {
			report.Remote = append(report.Remote, it.Src)
			rep.Item(it.Src, progress.Skipped)
			continue
		}
		report.Checked++
		info, err := fs.Stat(fsys, rel)
		switch {
		case errors.Is(err, fs.ErrNotExist), err == nil && info.IsDir():
			report.Missing = append(report.Missing, it.Src)
			rep.Item(it.Src, progress.Missing)
		case err != nil:
			return report, fmt.Errorf("checking %s: %w", it.Src, err)
		default:
			rep.Item(it.Src, progress.OK)
		}
	}
	return report, nil
}

// Unreferenced lists image files in dir that no gallery item points at, as
// site paths ("assets/...") in lexical order.
func Unreferenced(dir string, items []content.GalleryItem) ([]string, error) {
	files, err := doublestar.Glob(os.DirFS(dir), ImagePattern)
	if err != nil {
		return nil, fmt.Errorf("listing images in %s: %w", dir, err)
	}

	used := make(map[string]bool, len(items))
	for _, it := range items {
		if rel, ok := RelPath(it.Src); ok {
			used[rel] = true
		}
	}

	var out []string
	for _, f := range files {
		if !used[f] {
			out = append(out, URLPrefix+f)
		}
	}
	slices.Sort(out)
	return out, nil
}
