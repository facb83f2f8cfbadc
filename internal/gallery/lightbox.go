package gallery

// Lightbox holds at most one previewed image source.
type Lightbox struct {
	src  string
	open bool
}

// Open shows src, replacing any current preview.
func (l *Lightbox) Open(src string) {
	l.src = src
	l.open = true
}

// Close hides the preview.
func (l *Lightbox) Close() {
	l.src = ""
	l.open = false
}

// Current returns the previewed source and whether the lightbox is open.
func (l *Lightbox) Current() (string, bool) {
	return l.src, l.open
}

// LightboxFromQuery builds a Lightbox from the preview query parameter.
func LightboxFromQuery(preview string) Lightbox {
	var l Lightbox
	if preview != "" {
		l.Open(preview)
	}
	return l
}
