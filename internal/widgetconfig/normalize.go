package widgetconfig

import (
	"encoding/json"
	"math"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// NormalizeJSON decodes raw JSON and normalizes it. Input that cannot be
// parsed as a tree at all is treated as empty input and yields the full
// default document.
func NormalizeJSON(raw []byte) Document {
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		tree = nil
	}
	return Normalize(tree)
}

// Normalize turns an arbitrary untyped tree into a canonical document. It
// never fails: any missing, extra or mistyped field degrades to that field's
// default, at field granularity, and the output is always stamped with
// CurrentVersion regardless of the input's declared version.
func Normalize(input any) Document {
	m := asMap(input)
	def := Default()
	return Document{
		Version:  CurrentVersion,
		Source:   normalizeSource(asMap(m["source"]), def.Source),
		Layout:   normalizeLayout(asMap(m["layout"]), def.Layout),
		Header:   normalizeHeader(asMap(m["header"]), def.Header),
		Reviews:  normalizeReviews(asMap(m["reviews"]), def.Reviews),
		Style:    normalizeStyle(asMap(m["style"]), def.Style),
		Settings: normalizeSettings(asMap(m["settings"]), def.Settings),
	}
}

func normalizeSource(m map[string]any, def Source) Source {
	return Source{
		SyncEnabled: boolOr(m, "syncEnabled", def.SyncEnabled),
		LocationIDs: stringListOr(m, "locationIds", def.LocationIDs),
	}
}

func normalizeLayout(m map[string]any, def Layout) Layout {
	return Layout{
		Type:       LayoutType(enumOr(m, "type", string(def.Type), layoutTypeStrings())),
		Width:      stringOr(m, "width", def.Width),
		Height:     stringOr(m, "height", def.Height),
		Columns:    intInRangeOr(m, "columns", def.Columns, 1, 12),
		Gap:        intInRangeOr(m, "gap", def.Gap, 0, 200),
		ScrollMode: enumOr(m, "scrollMode", def.ScrollMode, []string{"snap", "free"}),
		Animation:  enumOr(m, "animation", def.Animation, []string{"slide", "fade", "none"}),
		Autoplay:   normalizeAutoplay(asMap(m["autoplay"]), def.Autoplay),
		Navigation: normalizeNavigation(asMap(m["navigation"]), def.Navigation),
	}
}

func normalizeAutoplay(m map[string]any, def Autoplay) Autoplay {
	return Autoplay{
		Enabled:      boolOr(m, "enabled", def.Enabled),
		IntervalMs:   intInRangeOr(m, "intervalMs", def.IntervalMs, 1000, 60000),
		PauseOnHover: boolOr(m, "pauseOnHover", def.PauseOnHover),
	}
}

func normalizeNavigation(m map[string]any, def Navigation) Navigation {
	return Navigation{
		Arrows:   boolOr(m, "arrows", def.Arrows),
		Dots:     boolOr(m, "dots", def.Dots),
		Position: enumOr(m, "position", def.Position, []string{"bottom", "sides"}),
	}
}

func normalizeHeader(m map[string]any, def Header) Header {
	return Header{
		Enabled:    boolOr(m, "enabled", def.Enabled),
		Title:      stringOr(m, "title", def.Title),
		ShowRating: boolOr(m, "showRating", def.ShowRating),
		ShowCount:  boolOr(m, "showCount", def.ShowCount),
		CTA:        normalizeCTA(asMap(m["cta"]), def.CTA),
	}
}

func normalizeCTA(m map[string]any, def CTA) CTA {
	return CTA{
		Enabled: boolOr(m, "enabled", def.Enabled),
		Label:   stringOr(m, "label", def.Label),
		URL:     stringOr(m, "url", def.URL),
	}
}

func normalizeReviews(m map[string]any, def Reviews) Reviews {
	return Reviews{
		MinRating:  intInRangeOr(m, "minRating", def.MinRating, 1, 5),
		MaxReviews: maxReviewsOr(m, def.MaxReviews),
		ShowEmpty:  boolOr(m, "showEmpty", def.ShowEmpty),
		SortBy:     SortKey(enumOr(m, "sortBy", string(def.SortBy), sortKeyStrings())),
		Include:    stringListOr(m, "include", def.Include),
		Exclude:    stringListOr(m, "exclude", def.Exclude),
	}
}

func normalizeStyle(m map[string]any, def Style) Style {
	return Style{
		Scheme:      enumOr(m, "scheme", def.Scheme, []string{"light", "dark", "auto"}),
		AccentColor: colorOr(m, "accentColor", def.AccentColor),
		Colors:      normalizeColors(asMap(m["colors"]), def.Colors),
		CustomCSS:   stringOr(m, "customCss", def.CustomCSS),
		CustomJS:    stringOr(m, "customJs", def.CustomJS),
	}
}

func normalizeColors(m map[string]any, def Colors) Colors {
	return Colors{
		Background: optionalColorOr(m, "background", def.Background),
		Text:       optionalColorOr(m, "text", def.Text),
		Star:       optionalColorOr(m, "star", def.Star),
	}
}

func normalizeSettings(m map[string]any, def Settings) Settings {
	return Settings{
		Locale:       nonEmptyStringOr(m, "locale", def.Locale),
		LinkTarget:   enumOr(m, "linkTarget", def.LinkTarget, []string{"_blank", "_self"}),
		RichSnippets: enumOr(m, "richSnippets", def.RichSnippets, []string{"off", "json-ld"}),
	}
}

// --- field helpers ---

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func boolOr(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func stringOr(m map[string]any, key string, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func nonEmptyStringOr(m map[string]any, key string, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intOr accepts JSON numbers only when they are whole.
func intOr(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case int:
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
	}
	return def
}

func intInRangeOr(m map[string]any, key string, def, min, max int) int {
	v := intOr(m, key, def)
	if v < min || v > max {
		return def
	}
	return v
}

// maxReviewsOr additionally maps the string "all" to 0 (no cap).
func maxReviewsOr(m map[string]any, def int) int {
	if s, ok := m["maxReviews"].(string); ok {
		if s == "all" {
			return 0
		}
		return def
	}
	v := intOr(m, "maxReviews", def)
	if v < 0 {
		return def
	}
	return v
}

func enumOr(m map[string]any, key string, def string, allowed []string) string {
	v, ok := m[key].(string)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

func colorOr(m map[string]any, key string, def string) string {
	if v, ok := m[key].(string); ok && hexColorRe.MatchString(v) {
		return v
	}
	return def
}

// optionalColorOr allows the empty string (inherit).
func optionalColorOr(m map[string]any, key string, def string) string {
	if v, ok := m[key].(string); ok && (v == "" || hexColorRe.MatchString(v)) {
		return v
	}
	return def
}

func stringListOr(m map[string]any, key string, def []string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return append([]string{}, def...)
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func layoutTypeStrings() []string {
	types := ValidLayoutTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func sortKeyStrings() []string {
	keys := ValidSortKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
