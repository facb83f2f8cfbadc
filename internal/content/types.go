package content

// NavLink is one entry of the header navigation. Href is an in-page anchor
// such as "#about"; the part after '#' is the section id.
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// GalleryItem is one portfolio image with its display title and the single
// tag used for filtering.
type GalleryItem struct {
	Src   string `json:"src"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

// ServiceItem describes a pricing tier.
type ServiceItem struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Role string `json:"role"`
}

// Palette is the fixed set of named colors used by every view.
type Palette struct {
	Background    string
	Surface       string
	Primary       string
	TextPrimary   string
	TextSecondary string
	Border        string
	White         string
}

// ImagePaths lists the asset paths referenced by the site.
type ImagePaths struct {
	Hero    string
	About   string
	Gallery []string
}
