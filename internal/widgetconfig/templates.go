package widgetconfig

import "sort"

// Template is a named partial preset applied over the baseline document.
// Each top-level section merges independently; within layout, autoplay and
// navigation merge independently of their sibling scalar fields. The merge
// is an explicit per-section contract, not a generic recursive walk.
type Template struct {
	Source   *SourcePatch
	Layout   *LayoutPatch
	Header   *HeaderPatch
	Reviews  *ReviewsPatch
	Style    *StylePatch
	Settings *SettingsPatch
}

type SourcePatch struct {
	SyncEnabled *bool
	LocationIDs *[]string
}

type LayoutPatch struct {
	Type       *LayoutType
	Width      *string
	Height     *string
	Columns    *int
	Gap        *int
	ScrollMode *string
	Animation  *string
	Autoplay   *AutoplayPatch
	Navigation *NavigationPatch
}

type AutoplayPatch struct {
	Enabled      *bool
	IntervalMs   *int
	PauseOnHover *bool
}

type NavigationPatch struct {
	Arrows   *bool
	Dots     *bool
	Position *string
}

type HeaderPatch struct {
	Enabled    *bool
	Title      *string
	ShowRating *bool
	ShowCount  *bool
	CTA        *CTAPatch
}

type CTAPatch struct {
	Enabled *bool
	Label   *string
	URL     *string
}

type ReviewsPatch struct {
	MinRating  *int
	MaxReviews *int
	ShowEmpty  *bool
	SortBy     *SortKey
	Include    *[]string
	Exclude    *[]string
}

type StylePatch struct {
	Scheme      *string
	AccentColor *string
	Colors      *ColorsPatch
	CustomCSS   *string
	CustomJS    *string
}

type ColorsPatch struct {
	Background *string
	Text       *string
	Star       *string
}

type SettingsPatch struct {
	Locale       *string
	LinkTarget   *string
	RichSnippets *string
}

var templates = map[string]Template{
	"grid": {
		Layout: &LayoutPatch{
			Type:     ptr(LayoutGrid),
			Autoplay: &AutoplayPatch{Enabled: ptr(false)},
		},
	},
	"masonry": {
		Layout: &LayoutPatch{
			Type:     ptr(LayoutMasonry),
			Columns:  ptr(4),
			Autoplay: &AutoplayPatch{Enabled: ptr(false)},
		},
	},
	"list": {
		Layout: &LayoutPatch{
			Type:       ptr(LayoutList),
			Columns:    ptr(1),
			Autoplay:   &AutoplayPatch{Enabled: ptr(false)},
			Navigation: &NavigationPatch{Arrows: ptr(false), Dots: ptr(false)},
		},
	},
	"slider": {
		Layout: &LayoutPatch{
			Type:     ptr(LayoutSlider),
			Autoplay: &AutoplayPatch{IntervalMs: ptr(4000)},
		},
	},
	"badge": {
		Layout: &LayoutPatch{
			Type:       ptr(LayoutBadge),
			Height:     ptr("auto"),
			Gap:        ptr(0),
			Autoplay:   &AutoplayPatch{Enabled: ptr(false)},
			Navigation: &NavigationPatch{Arrows: ptr(false), Dots: ptr(false)},
		},
		Header: &HeaderPatch{
			Title: ptr(""),
			CTA:   &CTAPatch{Enabled: ptr(false)},
		},
	},
}

// TemplateNames lists the known template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateDefault returns a complete, schema-valid document. An empty or
// unknown template name yields the baseline.
func CreateDefault(template string) Document {
	doc := Default()
	tpl, ok := templates[template]
	if !ok {
		return doc
	}
	applyTemplate(&doc, tpl)
	return doc
}

func applyTemplate(d *Document, t Template) {
	if t.Source != nil {
		mergeSource(&d.Source, t.Source)
	}
	if t.Layout != nil {
		mergeLayout(&d.Layout, t.Layout)
	}
	if t.Header != nil {
		mergeHeader(&d.Header, t.Header)
	}
	if t.Reviews != nil {
		mergeReviews(&d.Reviews, t.Reviews)
	}
	if t.Style != nil {
		mergeStyle(&d.Style, t.Style)
	}
	if t.Settings != nil {
		mergeSettings(&d.Settings, t.Settings)
	}
}

func mergeSource(s *Source, p *SourcePatch) {
	if p.SyncEnabled != nil {
		s.SyncEnabled = *p.SyncEnabled
	}
	if p.LocationIDs != nil {
		s.LocationIDs = append([]string{}, (*p.LocationIDs)...)
	}
}

func mergeLayout(l *Layout, p *LayoutPatch) {
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Width != nil {
		l.Width = *p.Width
	}
	if p.Height != nil {
		l.Height = *p.Height
	}
	if p.Columns != nil {
		l.Columns = *p.Columns
	}
	if p.Gap != nil {
		l.Gap = *p.Gap
	}
	if p.ScrollMode != nil {
		l.ScrollMode = *p.ScrollMode
	}
	if p.Animation != nil {
		l.Animation = *p.Animation
	}
	if p.Autoplay != nil {
		mergeAutoplay(&l.Autoplay, p.Autoplay)
	}
	if p.Navigation != nil {
		mergeNavigation(&l.Navigation, p.Navigation)
	}
}

func mergeAutoplay(a *Autoplay, p *AutoplayPatch) {
	if p.Enabled != nil {
		a.Enabled = *p.Enabled
	}
	if p.IntervalMs != nil {
		a.IntervalMs = *p.IntervalMs
	}
	if p.PauseOnHover != nil {
		a.PauseOnHover = *p.PauseOnHover
	}
}

func mergeNavigation(n *Navigation, p *NavigationPatch) {
	if p.Arrows != nil {
		n.Arrows = *p.Arrows
	}
	if p.Dots != nil {
		n.Dots = *p.Dots
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
}

func mergeHeader(h *Header, p *HeaderPatch) {
	if p.Enabled != nil {
		h.Enabled = *p.Enabled
	}
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.ShowRating != nil {
		h.ShowRating = *p.ShowRating
	}
	if p.ShowCount != nil {
		h.ShowCount = *p.ShowCount
	}
	if p.CTA != nil {
		mergeCTA(&h.CTA, p.CTA)
	}
}

func mergeCTA(c *CTA, p *CTAPatch) {
	if p.Enabled != nil {
		c.Enabled = *p.Enabled
	}
	if p.Label != nil {
		c.Label = *p.Label
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
}

func mergeReviews(r *Reviews, p *ReviewsPatch) {
	if p.MinRating != nil {
		r.MinRating = *p.MinRating
	}
	if p.MaxReviews != nil {
		r.MaxReviews = *p.MaxReviews
	}
	if p.ShowEmpty != nil {
		r.ShowEmpty = *p.ShowEmpty
	}
	if p.SortBy != nil {
		r.SortBy = *p.SortBy
	}
	if p.Include != nil {
		r.Include = append([]string{}, (*p.Include)...)
	}
	if p.Exclude != nil {
		r.Exclude = append([]string{}, (*p.Exclude)...)
	}
}

func mergeStyle(s *Style, p *StylePatch) {
	if p.Scheme != nil {
		s.Scheme = *p.Scheme
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.Colors != nil {
		mergeColors(&s.Colors, p.Colors)
	}
	if p.CustomCSS != nil {
		s.CustomCSS = *p.CustomCSS
	}
	if p.CustomJS != nil {
		s.CustomJS = *p.CustomJS
	}
}

func mergeColors(c *Colors, p *ColorsPatch) {
	if p.Background != nil {
		c.Background = *p.Background
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Star != nil {
		c.Star = *p.Star
	}
}

func mergeSettings(s *Settings, p *SettingsPatch) {
	if p.Locale != nil {
		s.Locale = *p.Locale
	}
	if p.LinkTarget != nil {
		s.LinkTarget = *p.LinkTarget
	}
	if p.RichSnippets != nil {
		s.RichSnippets = *p.RichSnippets
	}
}

func ptr[T any](v T) *T {
	return &v
}
