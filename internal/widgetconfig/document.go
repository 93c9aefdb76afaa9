// Package widgetconfig defines the versioned widget configuration document:
// its canonical shape, baseline defaults, named template presets and the
// normalizer that turns arbitrary input into a schema-valid document.
package widgetconfig

// CurrentVersion is stamped on every normalized document. There is no
// migration logic; documents declaring any other version are default-filled
// field by field like version-1 input.
const CurrentVersion = 1

type LayoutType string

const (
	LayoutCarousel LayoutType = "carousel"
	LayoutGrid     LayoutType = "grid"
	LayoutMasonry  LayoutType = "masonry"
	LayoutList     LayoutType = "list"
	LayoutSlider   LayoutType = "slider"
	LayoutBadge    LayoutType = "badge"
)

func ValidLayoutTypes() []LayoutType {
	return []LayoutType{
		LayoutCarousel,
		LayoutGrid,
		LayoutMasonry,
		LayoutList,
		LayoutSlider,
		LayoutBadge,
	}
}

type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortOldest  SortKey = "oldest"
	SortHighest SortKey = "highest"
	SortLowest  SortKey = "lowest"
	SortRandom  SortKey = "random"
)

func ValidSortKeys() []SortKey {
	return []SortKey{SortNewest, SortOldest, SortHighest, SortLowest, SortRandom}
}

// Document is the canonical widget configuration. Every field has a default;
// see defaults.go.
type Document struct {
	Version  int      `json:"version"`
	Source   Source   `json:"source"`
	Layout   Layout   `json:"layout"`
	Header   Header   `json:"header"`
	Reviews  Reviews  `json:"reviews"`
	Style    Style    `json:"style"`
	Settings Settings `json:"settings"`
}

// Source controls which linked locations feed the widget and whether the
// background sync job keeps importing for it.
type Source struct {
	SyncEnabled bool     `json:"syncEnabled"`
	LocationIDs []string `json:"locationIds"`
}

type Layout struct {
	Type       LayoutType `json:"type"`
	Width      string     `json:"width"`
	Height     string     `json:"height"`
	Columns    int        `json:"columns"`
	Gap        int        `json:"gap"`
	ScrollMode string     `json:"scrollMode"`
	Animation  string     `json:"animation"`
	Autoplay   Autoplay   `json:"autoplay"`
	Navigation Navigation `json:"navigation"`
}

type Autoplay struct {
	Enabled      bool `json:"enabled"`
	IntervalMs   int  `json:"intervalMs"`
	PauseOnHover bool `json:"pauseOnHover"`
}

type Navigation struct {
	Arrows   bool   `json:"arrows"`
	Dots     bool   `json:"dots"`
	Position string `json:"position"`
}

type Header struct {
	Enabled    bool   `json:"enabled"`
	Title      string `json:"title"`
	ShowRating bool   `json:"showRating"`
	ShowCount  bool   `json:"showCount"`
	CTA        CTA    `json:"cta"`
}

// CTA is the embedded "write a review" call to action.
type CTA struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
	URL     string `json:"url"`
}

// Reviews is the filter/sort policy applied when the payload is built.
// MaxReviews of 0 means no cap ("all" in raw input).
type Reviews struct {
	MinRating  int      `json:"minRating"`
	MaxReviews int      `json:"maxReviews"`
	ShowEmpty  bool     `json:"showEmpty"`
	SortBy     SortKey  `json:"sortBy"`
	Include    []string `json:"include"`
	Exclude    []string `json:"exclude"`
}

type Style struct {
	Scheme      string `json:"scheme"`
	AccentColor string `json:"accentColor"`
	Colors      Colors `json:"colors"`
	CustomCSS   string `json:"customCss"`
	CustomJS    string `json:"customJs"`
}

// Colors are optional per-element overrides; empty means inherit from the
// scheme.
type Colors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Star       string `json:"star"`
}

type Settings struct {
	Locale       string `json:"locale"`
	LinkTarget   string `json:"linkTarget"`
	RichSnippets string `json:"richSnippets"`
}
