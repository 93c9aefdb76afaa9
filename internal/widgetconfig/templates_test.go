package widgetconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDefault_NoTemplate(t *testing.T) {
	assert.Equal(t, Default(), CreateDefault(""))
}

func TestCreateDefault_UnknownTemplateFallsBack(t *testing.T) {
	assert.Equal(t, Default(), CreateDefault("no-such-template"))
}

func TestCreateDefault_BadgeTouchesOnlyLayoutAndHeader(t *testing.T) {
	base := Default()
	doc := CreateDefault("badge")

	assert.Equal(t, LayoutBadge, doc.Layout.Type)
	assert.False(t, doc.Layout.Autoplay.Enabled)
	assert.False(t, doc.Layout.Navigation.Arrows)
	assert.Equal(t, "", doc.Header.Title)
	assert.False(t, doc.Header.CTA.Enabled)

	// Untouched sections remain at baseline.
	assert.Equal(t, base.Source, doc.Source)
	assert.Equal(t, base.Reviews, doc.Reviews)
	assert.Equal(t, base.Style, doc.Style)
	assert.Equal(t, base.Settings, doc.Settings)
}

func TestCreateDefault_SubObjectMergeIsolation(t *testing.T) {
	// slider overrides the autoplay interval; the sibling navigation
	// sub-object and the rest of autoplay keep baseline values.
	base := Default()
	doc := CreateDefault("slider")

	assert.Equal(t, LayoutSlider, doc.Layout.Type)
	assert.Equal(t, 4000, doc.Layout.Autoplay.IntervalMs)
	assert.Equal(t, base.Layout.Autoplay.Enabled, doc.Layout.Autoplay.Enabled)
	assert.Equal(t, base.Layout.Autoplay.PauseOnHover, doc.Layout.Autoplay.PauseOnHover)
	assert.Equal(t, base.Layout.Navigation, doc.Layout.Navigation)
	assert.Equal(t, base.Layout.Gap, doc.Layout.Gap)
}

func TestCreateDefault_TemplatesProduceCanonicalDocuments(t *testing.T) {
	for _, name := range TemplateNames() {
		doc := CreateDefault(name)
		assert.Equal(t, CurrentVersion, doc.Version, "template %s", name)
		assert.Contains(t, ValidLayoutTypes(), doc.Layout.Type, "template %s", name)
	}
}

func TestTemplateNames(t *testing.T) {
	assert.Equal(t, []string{"badge", "grid", "list", "masonry", "slider"}, TemplateNames())
}
