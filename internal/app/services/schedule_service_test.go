package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
)

const testFallbackUserID int64 = 1

func newScheduleFixture() (*fakeScheduleStore, ScheduleService) {
	schedules := newFakeScheduleStore()
	svc := NewScheduleService(schedules, testFallbackUserID)
	return schedules, svc
}

func TestCreateSchedule_StampsFallbackOwner(t *testing.T) {
	_, svc := newScheduleFixture()

	schedule := &models.Schedule{ScheduleName: "Term 1 draft", Subjects: "[101,103]"}
	err := svc.CreateSchedule(context.Background(), schedule)
	require.NoError(t, err)

	assert.Equal(t, testFallbackUserID, schedule.UserID)
	assert.NotZero(t, schedule.ID)
}

func TestCreateSchedule_KeepsExplicitOwner(t *testing.T) {
	_, svc := newScheduleFixture()

	schedule := &models.Schedule{UserID: 7, ScheduleName: "Term 1 draft"}
	err := svc.CreateSchedule(context.Background(), schedule)
	require.NoError(t, err)

	assert.Equal(t, int64(7), schedule.UserID)
}

func TestCreateSchedule_Validation(t *testing.T) {
	_, svc := newScheduleFixture()
	ctx := context.Background()

	err := svc.CreateSchedule(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateSchedule(ctx, &models.Schedule{ScheduleName: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateSchedule(ctx, &models.Schedule{UserID: -1, ScheduleName: "plan"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateSchedule_FullReplace(t *testing.T) {
	schedules, svc := newScheduleFixture()

	stored := schedules.add(7, "[101]", false)
	stored.ViewDays = strPtr("MWF")

	updated, err := svc.UpdateSchedule(context.Background(), stored.ID, &dto.UpdateScheduleRequest{
		ScheduleName: "Term 1 final",
		IsSaved:      true,
		Subjects:     "[101,102,103]",
	})
	require.NoError(t, err)

	assert.Equal(t, "Term 1 final", updated.ScheduleName)
	assert.True(t, updated.IsSaved)
	assert.Equal(t, "[101,102,103]", updated.Subjects)
	// Replacement semantics: metadata absent from the payload is cleared.
	assert.Nil(t, updated.ViewDays)
	// Ownership never changes on update.
	assert.Equal(t, int64(7), updated.UserID)
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	_, svc := newScheduleFixture()

	_, err := svc.UpdateSchedule(context.Background(), 999, &dto.UpdateScheduleRequest{
		ScheduleName: "plan",
	})
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
}

func TestUpdateSchedule_RequiresName(t *testing.T) {
	schedules, svc := newScheduleFixture()
	stored := schedules.add(7, "[101]", false)

	_, err := svc.UpdateSchedule(context.Background(), stored.ID, &dto.UpdateScheduleRequest{
		ScheduleName: "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteSchedule_ReportsExistence(t *testing.T) {
	schedules, svc := newScheduleFixture()
	stored := schedules.add(7, "[101]", true)

	found, err := svc.DeleteSchedule(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.DeleteSchedule(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetSchedulesByUserID_FiltersOwner(t *testing.T) {
	schedules, svc := newScheduleFixture()
	schedules.add(7, "[101]", true)
	schedules.add(8, "[201]", true)

	got, err := svc.GetSchedulesByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].UserID)

	_, err = svc.GetSchedulesByUserID(context.Background(), -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
