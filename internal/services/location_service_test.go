package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdeck_backend/internal/appErrors"
	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/services/dto"
)

func newLocationFixture(t *testing.T) (LocationService, *fakeLocationRepo) {
	t.Helper()
	widgets := newFakeWidgetRepo()
	widgets.widgets["w1"] = &models.Widget{
		BaseModel: models.BaseModel{ID: "w1"},
		CompanyID: "c1",
		Status:    models.WidgetStatusDraft,
	}
	locations := &fakeLocationRepo{}
	return NewLocationService(newTestDB(), widgets, locations), locations
}

func TestAddLocation_EnabledWithDefaultWeight(t *testing.T) {
	svc, _ := newLocationFixture(t)

	resp, err := svc.AddLocation(context.Background(), "c1", "w1", &dto.AddLocationRequest{
		Provider: "google",
		PlaceID:  "place-1",
		Label:    "Main street",
	})
	require.NoError(t, err)

	assert.Equal(t, "w1", resp.WidgetID)
	assert.Equal(t, "google", resp.Provider)
	assert.Equal(t, 1, resp.Weight)
	assert.True(t, resp.Enabled)
}

func TestAddLocation_DuplicatePlaceConflicts(t *testing.T) {
	svc, _ := newLocationFixture(t)

	req := &dto.AddLocationRequest{Provider: "google", PlaceID: "place-1"}
	_, err := svc.AddLocation(context.Background(), "c1", "w1", req)
	require.NoError(t, err)

	_, err = svc.AddLocation(context.Background(), "c1", "w1", req)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeDuplicateLocation, appErr.Code)
}

func TestAddLocation_ForeignWidgetReadsAsNotFound(t *testing.T) {
	svc, _ := newLocationFixture(t)

	_, err := svc.AddLocation(context.Background(), "c2", "w1", &dto.AddLocationRequest{
		Provider: "google",
		PlaceID:  "place-1",
	})
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeWidgetNotFound, appErr.Code)
}

func TestUpdateLocation_DisableKeepsRow(t *testing.T) {
	svc, locations := newLocationFixture(t)

	created, err := svc.AddLocation(context.Background(), "c1", "w1", &dto.AddLocationRequest{
		Provider: "yelp",
		PlaceID:  "place-2",
	})
	require.NoError(t, err)

	enabled := false
	resp, err := svc.UpdateLocation(context.Background(), "c1", created.ID, &dto.UpdateLocationRequest{Enabled: &enabled})
	require.NoError(t, err)

	assert.False(t, resp.Enabled)
	require.Len(t, locations.locations, 1)
	assert.False(t, locations.locations[0].Enabled)
}

func TestDeleteLocation_ScopedToCompany(t *testing.T) {
	svc, locations := newLocationFixture(t)

	created, err := svc.AddLocation(context.Background(), "c1", "w1", &dto.AddLocationRequest{
		Provider: "google",
		PlaceID:  "place-3",
	})
	require.NoError(t, err)

	err = svc.DeleteLocation(context.Background(), "c2", created.ID)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeLocationNotFound, appErr.Code)
	assert.Len(t, locations.locations, 1)

	require.NoError(t, svc.DeleteLocation(context.Background(), "c1", created.ID))
	assert.Empty(t, locations.locations)
}
