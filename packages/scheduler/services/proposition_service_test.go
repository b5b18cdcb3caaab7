package services

import (
	"testing"
	"time"

	"scheduler/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProposition(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	proposition, err := service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(13, 0, 0),
		EndTime:   models.NewTimeOfDay(15, 30, 0),
	})
	require.NoError(t, err)

	assert.NotZero(t, proposition.ID)
	assert.Equal(t, uint(1), proposition.UserID)
	assert.Equal(t, "2026-09-12", proposition.Date.String())
	assert.Equal(t, "13:00:00", proposition.StartTime.String())
	assert.Equal(t, "15:30:00", proposition.EndTime.String())
}

func TestCreatePropositionRejectsInvalidRange(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	// Start after end
	_, err := service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(14, 0, 0),
		EndTime:   models.NewTimeOfDay(13, 0, 0),
	})
	assert.ErrorIs(t, err, models.ErrInvalidTimeRange)

	// Start equal to end
	_, err = service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(13, 0, 0),
		EndTime:   models.NewTimeOfDay(13, 0, 0),
	})
	assert.ErrorIs(t, err, models.ErrInvalidTimeRange)

	var count int64
	db.Model(&models.Proposition{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdatePropositionRevalidatesRange(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	proposition, err := service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(13, 0, 0),
		EndTime:   models.NewTimeOfDay(15, 0, 0),
	})
	require.NoError(t, err)

	// Moving only the start past the stored end must fail
	badStart := models.NewTimeOfDay(16, 0, 0)
	_, err = service.UpdateProposition(proposition.ID, 1, false, models.UpdatePropositionRequest{
		StartTime: &badStart,
	})
	assert.ErrorIs(t, err, models.ErrInvalidTimeRange)

	stored, err := service.GetPropositionByID(proposition.ID)
	require.NoError(t, err)
	assert.Equal(t, "13:00:00", stored.StartTime.String())
}

func TestUpdatePropositionOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	proposition, err := service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(13, 0, 0),
		EndTime:   models.NewTimeOfDay(15, 0, 0),
	})
	require.NoError(t, err)

	newEnd := models.NewTimeOfDay(16, 0, 0)

	// Another user may not touch it
	_, err = service.UpdateProposition(proposition.ID, 2, false, models.UpdatePropositionRequest{
		EndTime: &newEnd,
	})
	assert.EqualError(t, err, "proposition does not belong to user")

	// Unless they are an admin
	updated, err := service.UpdateProposition(proposition.ID, 2, true, models.UpdatePropositionRequest{
		EndTime: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "16:00:00", updated.EndTime.String())
}

func TestDeletePropositionOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	proposition, err := service.CreateProposition(1, models.CreatePropositionRequest{
		Date:      models.NewDateOnly(2026, time.September, 12),
		StartTime: models.NewTimeOfDay(13, 0, 0),
		EndTime:   models.NewTimeOfDay(15, 0, 0),
	})
	require.NoError(t, err)

	err = service.DeleteProposition(proposition.ID, 2, false)
	assert.EqualError(t, err, "proposition does not belong to user")

	require.NoError(t, service.DeleteProposition(proposition.ID, 1, false))

	_, err = service.GetPropositionByID(proposition.ID)
	assert.EqualError(t, err, "proposition not found")
}

func TestGetPropositionsByUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	for _, userID := range []uint{1, 1, 2} {
		_, err := service.CreateProposition(userID, models.CreatePropositionRequest{
			Date:      models.NewDateOnly(2026, time.September, 12),
			StartTime: models.NewTimeOfDay(13, 0, 0),
			EndTime:   models.NewTimeOfDay(15, 0, 0),
		})
		require.NoError(t, err)
	}

	page, err := service.GetPropositionsByUser(1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	for _, proposition := range page.Data {
		assert.Equal(t, uint(1), proposition.UserID)
	}
}

func TestGetAllPropositionsOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	windows := []struct {
		start models.TimeOfDay
		end   models.TimeOfDay
	}{
		{models.NewTimeOfDay(9, 0, 0), models.NewTimeOfDay(11, 0, 0)},
		{models.NewTimeOfDay(18, 0, 0), models.NewTimeOfDay(20, 0, 0)},
		{models.NewTimeOfDay(18, 0, 0), models.NewTimeOfDay(19, 0, 0)},
		{models.NewTimeOfDay(13, 0, 0), models.NewTimeOfDay(15, 0, 0)},
	}

	for _, w := range windows {
		_, err := service.CreateProposition(1, models.CreatePropositionRequest{
			Date:      models.NewDateOnly(2026, time.September, 12),
			StartTime: w.start,
			EndTime:   w.end,
		})
		require.NoError(t, err)
	}

	page, err := service.GetAllPropositions(1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 4)

	// Latest start first; ties broken by the later end
	assert.Equal(t, "18:00:00", page.Data[0].StartTime.String())
	assert.Equal(t, "20:00:00", page.Data[0].EndTime.String())
	assert.Equal(t, "18:00:00", page.Data[1].StartTime.String())
	assert.Equal(t, "19:00:00", page.Data[1].EndTime.String())
	assert.Equal(t, "13:00:00", page.Data[2].StartTime.String())
	assert.Equal(t, "09:00:00", page.Data[3].StartTime.String())
}

func TestUserDeleteCascadesPropositions(t *testing.T) {
	db := setupTestDBWithUsers(t)
	service := NewPropositionService(db)

	require.NoError(t, db.Create(&userAccount{ID: 1}).Error)
	require.NoError(t, db.Create(&userAccount{ID: 2}).Error)

	for _, userID := range []uint{1, 1, 2} {
		_, err := service.CreateProposition(userID, models.CreatePropositionRequest{
			Date:      models.NewDateOnly(2026, time.September, 12),
			StartTime: models.NewTimeOfDay(13, 0, 0),
			EndTime:   models.NewTimeOfDay(15, 0, 0),
		})
		require.NoError(t, err)
	}

	require.NoError(t, db.Delete(&userAccount{}, 1).Error)

	// The deleted account's windows go with it; other users' survive
	var remaining []models.Proposition
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(2), remaining[0].UserID)
}

func TestPurgeOlderThan(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropositionService(db)

	old := models.NewDateOnly(2026, time.January, 10)
	recent := models.NewDateOnly(2026, time.August, 20)

	for _, date := range []models.DateOnly{old, old, recent} {
		_, err := service.CreateProposition(1, models.CreatePropositionRequest{
			Date:      date,
			StartTime: models.NewTimeOfDay(13, 0, 0),
			EndTime:   models.NewTimeOfDay(15, 0, 0),
		})
		require.NoError(t, err)
	}

	purged, err := service.PurgeOlderThan(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	page, err := service.GetAllPropositions(1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, recent.String(), page.Data[0].Date.String())
}
