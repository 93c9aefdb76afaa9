package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reviewdeck_backend/internal/models"
)

func sampleReview() models.Review {
	return models.Review{
		BaseModel:       models.BaseModel{ID: "r1"},
		AuthorName:      "Ada",
		AuthorAvatar:    "https://cdn.example.com/ada.png",
		Rating:          5,
		Text:            "Great service",
		SourceCreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DeepLink:        "https://maps.example.com/r1",
	}
}

func TestResolve_NoOverride(t *testing.T) {
	eff, ok := Resolve(sampleReview(), nil)
	assert.True(t, ok)
	assert.Equal(t, "r1", eff.ID)
	assert.Equal(t, "Great service", eff.Text)
	assert.False(t, eff.Pinned)
}

func TestResolve_HiddenExcludes(t *testing.T) {
	// Hidden wins regardless of pin state or excerpt.
	_, ok := Resolve(sampleReview(), &models.ReviewOverride{
		Hidden:        true,
		Pinned:        true,
		CustomExcerpt: "never shown",
	})
	assert.False(t, ok)
}

func TestResolve_CustomExcerptSubstitutesText(t *testing.T) {
	eff, ok := Resolve(sampleReview(), &models.ReviewOverride{CustomExcerpt: "Trimmed quote"})
	assert.True(t, ok)
	assert.Equal(t, "Trimmed quote", eff.Text)
}

func TestResolve_EmptyExcerptKeepsOriginalText(t *testing.T) {
	eff, ok := Resolve(sampleReview(), &models.ReviewOverride{Pinned: true})
	assert.True(t, ok)
	assert.Equal(t, "Great service", eff.Text)
	assert.True(t, eff.Pinned)
}
