package services

import (
	"testing"
	"time"

	"scheduler/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMatchWithSlot(t *testing.T, service *MatchService, title string, defaultDate time.Time) *models.Match {
	t.Helper()

	match, err := service.CreateMatch(models.CreateMatchRequest{
		Title:            title,
		DefaultMatchDate: defaultDate,
	})
	require.NoError(t, err)
	require.NotNil(t, match.Appointment)
	return match
}

func TestRescheduleAppointment(t *testing.T) {
	db := setupTestDB(t)
	matchService := NewMatchService(db)
	service := NewAppointmentService(db)

	match := createMatchWithSlot(t, matchService, "Finals", time.Now().AddDate(0, 0, 28))

	slot := time.Date(2026, time.September, 12, 18, 30, 0, 0, time.UTC)
	appointment, err := service.Reschedule(match.Appointment.ID, models.RescheduleAppointmentRequest{
		MatchDate: timePtr(slot),
	})
	require.NoError(t, err)

	require.NotNil(t, appointment.MatchDate)
	assert.True(t, appointment.MatchDate.Equal(slot))
	require.NotNil(t, appointment.Match)
	assert.Equal(t, "Finals", appointment.Match.Title)

	// A null date puts the slot back into the unscheduled state
	cleared, err := service.Reschedule(match.Appointment.ID, models.RescheduleAppointmentRequest{})
	require.NoError(t, err)
	assert.Nil(t, cleared.MatchDate)
}

func TestRescheduleAppointmentNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewAppointmentService(db)

	_, err := service.Reschedule(999, models.RescheduleAppointmentRequest{})
	assert.EqualError(t, err, "appointment not found")
}

func TestGetAppointmentByMatch(t *testing.T) {
	db := setupTestDB(t)
	matchService := NewMatchService(db)
	service := NewAppointmentService(db)

	match := createMatchWithSlot(t, matchService, "Finals", time.Now())

	appointment, err := service.GetAppointmentByMatch(match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.Appointment.ID, appointment.ID)

	_, err = service.GetAppointmentByMatch(999)
	assert.EqualError(t, err, "appointment not found")
}

func TestGetAllAppointmentsOrdering(t *testing.T) {
	db := setupTestDB(t)
	matchService := NewMatchService(db)
	service := NewAppointmentService(db)

	now := time.Now()

	early := createMatchWithSlot(t, matchService, "Season opener", now.AddDate(0, 0, -21))
	late := createMatchWithSlot(t, matchService, "Quarter final", now.AddDate(0, 0, 7))
	unscheduledNear := createMatchWithSlot(t, matchService, "Semi final", now.AddDate(0, 0, 14))
	unscheduledFar := createMatchWithSlot(t, matchService, "Finals", now.AddDate(0, 0, 28))

	_, err := service.Reschedule(early.Appointment.ID, models.RescheduleAppointmentRequest{
		MatchDate: timePtr(now.AddDate(0, 0, -20)),
	})
	require.NoError(t, err)
	_, err = service.Reschedule(late.Appointment.ID, models.RescheduleAppointmentRequest{
		MatchDate: timePtr(now.AddDate(0, 0, 8)),
	})
	require.NoError(t, err)

	page, err := service.GetAllAppointments(1, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 4)

	// Scheduled slots first, newest date on top; the unscheduled ones trail
	// and fall back to the match's default date
	assert.Equal(t, late.ID, page.Data[0].MatchID)
	assert.Equal(t, early.ID, page.Data[1].MatchID)
	assert.Equal(t, unscheduledFar.ID, page.Data[2].MatchID)
	assert.Equal(t, unscheduledNear.ID, page.Data[3].MatchID)
}
