package content

import _ "embed"

// AboutMarkdown is the body copy of the about section.
//
//go:embed about.md
var AboutMarkdown string

// Brand and page copy shared by the views.
const (
	BrandName     = "کیک‌آرت"
	HeroTitle     = "کیک‌آرت فرزین"
	HeroSubtitle  = "هنر کیک، با الهام از رویاها"
	HeroIntro     = "من فرزین هستم، هنرمند و طراح کیک‌های سفارشی. هر کیک، داستانی است از طعم و زیبایی که برای شیرین‌تر کردن لحظات خاص شما خلق می‌شود."
	HeroCTA       = "نمونه کارهای من را ببینید"
	HeroImageAlt  = "فرزین هنرمند کیک در کنار یکی از کیک‌های هنری خود"
	AboutTitle    = "درباره من"
	AboutHeadline = "فرزین، معمار رویاهای شیرین"
	AboutImageAlt = "فرزین، هنرمند کیک"
	FooterTagline = "خلق طعم‌های رویایی، با عشق"
)
