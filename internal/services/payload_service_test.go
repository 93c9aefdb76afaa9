package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/widgetconfig"
)

type payloadFixture struct {
	svc       PayloadService
	widgets   *fakeWidgetRepo
	locations *fakeLocationRepo
	reviews   *fakeReviewRepo
	overrides *fakeOverrideRepo
	widgetID  string
}

func newPayloadFixture(t *testing.T) *payloadFixture {
	t.Helper()

	widgets := newFakeWidgetRepo()
	locations := &fakeLocationRepo{}
	reviews := &fakeReviewRepo{}
	overrides := newFakeOverrideRepo()

	cfg, err := json.Marshal(widgetconfig.Default())
	require.NoError(t, err)

	publishedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	widgets.widgets["w1"] = &models.Widget{
		BaseModel:   models.BaseModel{ID: "w1"},
		CompanyID:   "c1",
		Name:        "storefront",
		Type:        "carousel",
		Status:      models.WidgetStatusPublished,
		PublishedAt: &publishedAt,
		Config:      datatypes.JSON(cfg),
	}

	locations.locations = []models.WidgetLocation{
		{BaseModel: models.BaseModel{ID: "l1"}, WidgetID: "w1", Provider: models.ProviderGoogle, PlaceID: "p1", Enabled: true},
		{BaseModel: models.BaseModel{ID: "l2"}, WidgetID: "w1", Provider: models.ProviderYelp, PlaceID: "p2", Enabled: true},
		{BaseModel: models.BaseModel{ID: "l3"}, WidgetID: "w1", Provider: models.ProviderFacebook, PlaceID: "p3", Enabled: false},
	}

	reviews.reviews = []models.Review{
		{BaseModel: models.BaseModel{ID: "r1"}, WidgetLocationID: "l1", Rating: 5, AuthorName: "Ana", Text: "great", SourceCreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{BaseModel: models.BaseModel{ID: "r2"}, WidgetLocationID: "l1", Rating: 4, AuthorName: "Ben", Text: "good", SourceCreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{BaseModel: models.BaseModel{ID: "r3"}, WidgetLocationID: "l2", Rating: 2, AuthorName: "Cid", Text: "meh", SourceCreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{BaseModel: models.BaseModel{ID: "r4"}, WidgetLocationID: "l3", Rating: 5, AuthorName: "Dee", Text: "off", SourceCreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	return &payloadFixture{
		svc:       NewPayloadService(newTestDB(), widgets, locations, reviews, overrides),
		widgets:   widgets,
		locations: locations,
		reviews:   reviews,
		overrides: overrides,
		widgetID:  "w1",
	}
}

func TestBuildPayload_NewestFirstSkipsHiddenAndDisabled(t *testing.T) {
	f := newPayloadFixture(t)
	f.overrides.overrides["r3"] = models.ReviewOverride{ReviewID: "r3", Hidden: true}

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	got := make([]string, len(payload.Reviews))
	for i, r := range payload.Reviews {
		got[i] = r.ID
	}
	// r3 is hidden, r4 sits in a disabled location.
	assert.Equal(t, []string{"r2", "r1"}, got)
}

func TestBuildPayload_PinnedComesFirst(t *testing.T) {
	f := newPayloadFixture(t)
	f.overrides.overrides["r1"] = models.ReviewOverride{ReviewID: "r1", Pinned: true}

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	require.Len(t, payload.Reviews, 3)
	assert.Equal(t, "r1", payload.Reviews[0].ID)
	assert.True(t, payload.Reviews[0].Pinned)
	assert.Equal(t, "r3", payload.Reviews[1].ID)
	assert.Equal(t, "r2", payload.Reviews[2].ID)
}

func TestBuildPayload_CustomExcerptReplacesText(t *testing.T) {
	f := newPayloadFixture(t)
	f.overrides.overrides["r1"] = models.ReviewOverride{ReviewID: "r1", CustomExcerpt: "trimmed quote"}

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	var r1 *string
	for i := range payload.Reviews {
		if payload.Reviews[i].ID == "r1" {
			r1 = &payload.Reviews[i].Text
		}
	}
	require.NotNil(t, r1)
	assert.Equal(t, "trimmed quote", *r1)
}

func TestBuildPayload_ConfigPolicyApplies(t *testing.T) {
	f := newPayloadFixture(t)

	doc := widgetconfig.Default()
	doc.Reviews.MinRating = 4
	doc.Reviews.MaxReviews = 1
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	f.widgets.widgets["w1"].Config = datatypes.JSON(raw)

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	// r3 (2 stars) filtered out, then the cap keeps the newest survivor.
	require.Len(t, payload.Reviews, 1)
	assert.Equal(t, "r2", payload.Reviews[0].ID)
}

func TestBuildPayload_DraftAndAbsentAreIndistinguishable(t *testing.T) {
	f := newPayloadFixture(t)
	f.widgets.widgets["w1"].Status = models.WidgetStatusDraft

	_, draftErr := f.svc.BuildPayload(context.Background(), "w1")
	_, absentErr := f.svc.BuildPayload(context.Background(), "nope")

	var draftApp, absentApp *appErrors.AppError
	require.True(t, appErrors.As(draftErr, &draftApp))
	require.True(t, appErrors.As(absentErr, &absentApp))
	assert.Equal(t, appErrors.CodeWidgetNotFound, draftApp.Code)
	assert.Equal(t, draftApp.Code, absentApp.Code)
	assert.Equal(t, draftApp.Message, absentApp.Message)
}

func TestBuildPayload_IncludesCachedSummary(t *testing.T) {
	f := newPayloadFixture(t)
	synced := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.widgets.widgets["w1"].Summary = &models.WidgetSummary{
		WidgetID:     "w1",
		AvgRating:    4.5,
		TotalReviews: 2,
		LastSyncedAt: synced,
	}

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	require.NotNil(t, payload.Summary)
	assert.Equal(t, 4.5, payload.Summary.AvgRating)
	assert.Equal(t, int64(2), payload.Summary.TotalReviews)
	assert.Equal(t, synced, payload.Summary.LastSyncedAt)
}

func TestBuildPayload_NoReviewsStillServesConfig(t *testing.T) {
	f := newPayloadFixture(t)
	f.reviews.reviews = nil

	payload, err := f.svc.BuildPayload(context.Background(), f.widgetID)
	require.NoError(t, err)

	assert.Empty(t, payload.Reviews)
	assert.Equal(t, widgetconfig.CurrentVersion, payload.Config.Version)
}
