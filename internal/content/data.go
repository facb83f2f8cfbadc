package content

import (
	"slices"
	"strings"
)

// Colors is the site palette.
var Colors = Palette{
	Background:    "#121212",
	Surface:       "#1E1E1E",
	Primary:       "#D1B07E",
	TextPrimary:   "#FFFFFF",
	TextSecondary: "#A8A8A8",
	Border:        "#333333",
	White:         "#FFFFFF",
}

// Images holds the asset paths of the hero, about and gallery pictures.
var Images = ImagePaths{
	Hero:  "assets/hero.jpg",
	About: "assets/about.jpg",
	Gallery: []string{
		"assets/gallery-1.jpg",
		"assets/gallery-2.jpg",
		"assets/gallery-3.jpg",
		"assets/gallery-4.jpg",
		"assets/gallery-5.jpg",
		"assets/gallery-6.jpg",
	},
}

var navLinks = []NavLink{
	{Href: "#home", Label: "خانه"},
	{Href: "#about", Label: "درباره من"},
	{Href: "#portfolio", Label: "نمونه کارها"},
	{Href: "#services", Label: "خدمات"},
	{Href: "#contact", Label: "تماس با ما"},
}

var galleryItems = []GalleryItem{
	{Src: "assets/gallery-1.jpg", Title: "غرق در شکلات", Tag: "تولد"},
	{Src: "assets/gallery-2.jpg", Title: "ورق طلا", Tag: "عروسی"},
	{Src: "assets/gallery-3.jpg", Title: "سیاره آبرنگی", Tag: "هنری"},
	{Src: "assets/gallery-4.jpg", Title: "مخمل سرخ", Tag: "کلاسیک"},
	{Src: "assets/gallery-5.jpg", Title: "انجیر و خامه", Tag: "نامزدی"},
	{Src: "assets/gallery-6.jpg", Title: "شب طلایی", Tag: "جشن ویژه"},
}

var serviceItems = []ServiceItem{
	{
		Name:     "کیک‌های سفارشی",
		Price:    "شروع از ۵ میلیون",
		Features: []string{"طراحی منحصر به فرد با توجه به سلیقه شما", "برای تولدها و جشن‌های خاص", "مشاوره برای خلق طعم‌های جدید"},
	},
	{
		Name:     "کیک‌های عروسی",
		Price:    "شروع از ۱۸ میلیون",
		Features: []string{"کیک‌های طبقاتی مجلل و هنری", "کریستال‌های شکری دست‌ساز", "هماهنگ با تم مراسم شما"},
	},
	{
		Name:     "پکیج دسر",
		Price:    "شروع از ۴ میلیون",
		Features: []string{"انواع کاپ‌کیک و دسر برای تکمیل مراسم شما", "مناسب برای مهمانی‌ها و رویدادها", "حداقل سفارش ۲۰ عدد"},
	},
}

var testimonialItems = []Testimonial{
	{Name: "هدی و کامران", Text: "کیک عروسی ما یک اثر هنری واقعی بود! هم زیبا و هم فوق‌العاده خوش‌طعم. ممنون از فرزین عزیز.", Role: "مشتری عروسی"},
	{Name: "شرکت پردیس", Text: "طراحی کیک برای رویداد شرکتی ما بی‌نظیر بود و همه همکاران را تحت تاثیر قرار داد. کاملا حرفه‌ای و دقیق.", Role: "مشتری شرکتی"},
	{Name: "نازنین", Text: "طعم کیک‌هاشون واقعا عالیه! خلاقیت و کیفیت در بالاترین سطح ممکن. همیشه برای مناسبت‌هام بهشون سفارش میدم.", Role: "مشتری تولد"},
}

// NavLinks returns a copy of the navigation links.
func NavLinks() []NavLink { return slices.Clone(navLinks) }

// Gallery returns a copy of the canonical gallery list.
func Gallery() []GalleryItem { return slices.Clone(galleryItems) }

// Services returns a copy of the service tiers, features included.
func Services() []ServiceItem {
	out := make([]ServiceItem, len(serviceItems))
	for i, s := range serviceItems {
		s.Features = slices.Clone(s.Features)
		out[i] = s
	}
	return out
}

// Testimonials returns a copy of the customer quotes.
func Testimonials() []Testimonial { return slices.Clone(testimonialItems) }

// SectionIDs returns the section anchors in navigation order.
func SectionIDs() []string {
	ids := make([]string, 0, len(navLinks))
	for _, l := range navLinks {
		ids = append(ids, strings.TrimPrefix(l.Href, "#"))
	}
	return ids
}
