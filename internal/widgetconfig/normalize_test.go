package widgetconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remarshal runs a document back through a JSON round trip so it can be fed
// to Normalize as an untyped tree again.
func remarshal(t *testing.T, doc Document) any {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var tree any
	require.NoError(t, json.Unmarshal(raw, &tree))
	return tree
}

func TestNormalize_EmptyInputYieldsDefaults(t *testing.T) {
	assert.Equal(t, Default(), Normalize(nil))
	assert.Equal(t, Default(), Normalize(map[string]any{}))
}

func TestNormalize_Totality(t *testing.T) {
	inputs := []any{
		nil,
		map[string]any{},
		[]any{"not", "an", "object"},
		"just a string",
		42.0,
		true,
		map[string]any{"layout": "not-an-object", "reviews": []any{1, 2}},
		map[string]any{"version": "nine", "style": map[string]any{"accentColor": 12}},
	}
	for _, in := range inputs {
		doc := Normalize(in)
		assert.Equal(t, CurrentVersion, doc.Version)
		assert.Equal(t, LayoutCarousel, doc.Layout.Type)
	}
}

func TestNormalizeJSON_UnparseableIsEmptyInput(t *testing.T) {
	assert.Equal(t, Default(), NormalizeJSON([]byte("{{{not json")))
	assert.Equal(t, Default(), NormalizeJSON(nil))
}

func TestNormalize_Idempotence(t *testing.T) {
	inputs := []any{
		nil,
		map[string]any{"layout": map[string]any{"type": "grid", "gap": 8.0}},
		map[string]any{
			"header":  map[string]any{"title": "Reviews", "cta": map[string]any{"enabled": false}},
			"reviews": map[string]any{"minRating": 4.0, "maxReviews": "all", "include": []any{"great"}},
			"style":   map[string]any{"accentColor": "#222222", "scheme": "dark"},
		},
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(remarshal(t, once))
		assert.Equal(t, once, twice)
	}
}

func TestNormalize_VersionAlwaysStamped(t *testing.T) {
	doc := Normalize(map[string]any{"version": 99.0})
	assert.Equal(t, CurrentVersion, doc.Version)

	doc = Normalize(map[string]any{"version": "future"})
	assert.Equal(t, CurrentVersion, doc.Version)
}

func TestNormalize_FieldLevelDegradation(t *testing.T) {
	// An invalid enum falls back to the field default while its siblings keep
	// their own values or defaults independently.
	doc := Normalize(map[string]any{
		"layout": map[string]any{
			"type": "unknown-kind",
			"gap":  24.0,
		},
	})
	assert.Equal(t, LayoutCarousel, doc.Layout.Type)
	assert.Equal(t, 24, doc.Layout.Gap)
	assert.Equal(t, Default().Layout.Width, doc.Layout.Width)
	assert.Equal(t, Default().Layout.Autoplay, doc.Layout.Autoplay)
}

func TestNormalize_MistypedFieldsReplacedIndividually(t *testing.T) {
	doc := Normalize(map[string]any{
		"header": map[string]any{
			"enabled":    "yes",            // mistyped -> default true
			"title":      "Our reviews",    // valid
			"showRating": false,            // valid
			"cta":        []any{"garbage"}, // mistyped sub-object -> defaults
		},
	})
	assert.True(t, doc.Header.Enabled)
	assert.Equal(t, "Our reviews", doc.Header.Title)
	assert.False(t, doc.Header.ShowRating)
	assert.Equal(t, Default().Header.CTA, doc.Header.CTA)
}

func TestNormalize_MaxReviews(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"all", 0},
		{10.0, 10},
		{0.0, 0},
		{-3.0, 0},    // negative -> default (all)
		{2.5, 0},     // fractional -> default
		{"ten", 0},   // unknown string -> default
		{true, 0},    // mistyped -> default
	}
	for _, c := range cases {
		doc := Normalize(map[string]any{"reviews": map[string]any{"maxReviews": c.in}})
		assert.Equal(t, c.want, doc.Reviews.MaxReviews, "input %v", c.in)
	}
}

func TestNormalize_AccentColorValidation(t *testing.T) {
	doc := Normalize(map[string]any{"style": map[string]any{"accentColor": "#1a2b3c"}})
	assert.Equal(t, "#1a2b3c", doc.Style.AccentColor)

	doc = Normalize(map[string]any{"style": map[string]any{"accentColor": "red"}})
	assert.Equal(t, DefaultAccentColor, doc.Style.AccentColor)
}

func TestNormalize_StringListDropsNonStrings(t *testing.T) {
	doc := Normalize(map[string]any{
		"reviews": map[string]any{"exclude": []any{"spam", 4.0, "", "rude"}},
	})
	assert.Equal(t, []string{"spam", "rude"}, doc.Reviews.Exclude)
}

func TestNormalize_MinRatingOutOfRange(t *testing.T) {
	doc := Normalize(map[string]any{"reviews": map[string]any{"minRating": 9.0}})
	assert.Equal(t, 1, doc.Reviews.MinRating)

	doc = Normalize(map[string]any{"reviews": map[string]any{"minRating": 4.0}})
	assert.Equal(t, 4, doc.Reviews.MinRating)
}

func TestDefault_Completeness(t *testing.T) {
	doc := Default()
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, LayoutCarousel, doc.Layout.Type)
	assert.Equal(t, DefaultAccentColor, doc.Style.AccentColor)
	assert.Equal(t, "en", doc.Settings.Locale)

	// All toggles on.
	assert.True(t, doc.Source.SyncEnabled)
	assert.True(t, doc.Layout.Autoplay.Enabled)
	assert.True(t, doc.Layout.Navigation.Arrows)
	assert.True(t, doc.Layout.Navigation.Dots)
	assert.True(t, doc.Header.Enabled)
	assert.True(t, doc.Header.ShowRating)
	assert.True(t, doc.Header.ShowCount)
	assert.True(t, doc.Header.CTA.Enabled)
	assert.True(t, doc.Reviews.ShowEmpty)

	// Every field of the marshaled document is present.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, json.Unmarshal(raw, &tree))
	for _, section := range []string{"source", "layout", "header", "reviews", "style", "settings"} {
		assert.Contains(t, tree, section)
	}
	// The baseline is already canonical.
	assert.Equal(t, doc, Normalize(tree))
}
