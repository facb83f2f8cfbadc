package flow

import "time"

// DefaultPreloaderDuration is how long the branding overlay stays up.
const DefaultPreloaderDuration = 2500 * time.Millisecond

// Preloader gates the site behind a fixed-duration overlay, independent of
// asset loading.
type Preloader struct {
	Duration time.Duration
}

// NewPreloader returns a Preloader with the default duration.
func NewPreloader() Preloader {
	return Preloader{Duration: DefaultPreloaderDuration}
}

// Visible reports whether the overlay is still shown after elapsed.
func (p Preloader) Visible(elapsed time.Duration) bool {
	return elapsed < p.Duration
}
