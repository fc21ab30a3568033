package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
)

func newOfferingFixture() (*fakeOfferingStore, OfferingService) {
	offerings := newFakeOfferingStore()
	svc := NewOfferingService(offerings, newFakeScheduleStore(), fakeTxRunner{}, zerolog.Nop())
	return offerings, svc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateOffering_AssignsID(t *testing.T) {
	offerings, svc := newOfferingFixture()

	offering := &models.Offering{UserID: 7, Subject: "CS101", TotalSlots: 40}
	err := svc.CreateOffering(context.Background(), offering)
	require.NoError(t, err)

	assert.NotZero(t, offering.ID)
	assert.Equal(t, []int64{offering.ID}, offerings.ids())
}

func TestCreateOffering_Validation(t *testing.T) {
	_, svc := newOfferingFixture()
	ctx := context.Background()

	err := svc.CreateOffering(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateOffering(ctx, &models.Offering{Subject: "CS101"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateOffering(ctx, &models.Offering{UserID: 7, Subject: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateOffering(ctx, &models.Offering{UserID: 7, Subject: "CS101", Enrolled: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateOffering_PartialMerge(t *testing.T) {
	offerings, svc := newOfferingFixture()

	stored := offerings.add(7, 101, "CS101")
	stored.Room = "G304"
	stored.Enrolled = 35
	stored.IsClosed = boolPtr(true)

	updated, err := svc.UpdateOffering(context.Background(), 101, &dto.UpdateOfferingRequest{
		Enrolled: intPtr(38),
	})
	require.NoError(t, err)

	// Only the submitted field changes.
	assert.Equal(t, 38, updated.Enrolled)
	assert.Equal(t, "CS101", updated.Subject)
	assert.Equal(t, "G304", updated.Room)

	// An absent IsClosed keeps the stored flag.
	require.NotNil(t, updated.IsClosed)
	assert.True(t, *updated.IsClosed)

	persisted, err := offerings.GetByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, 38, persisted.Enrolled)
}

func TestUpdateOffering_ExplicitIsClosedFalse(t *testing.T) {
	offerings, svc := newOfferingFixture()

	stored := offerings.add(7, 101, "CS101")
	stored.IsClosed = boolPtr(true)

	updated, err := svc.UpdateOffering(context.Background(), 101, &dto.UpdateOfferingRequest{
		IsClosed: boolPtr(false),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.IsClosed)
	assert.False(t, *updated.IsClosed)
}

func TestUpdateOffering_SeveralFields(t *testing.T) {
	offerings, svc := newOfferingFixture()
	offerings.add(7, 101, "CS101")

	updated, err := svc.UpdateOffering(context.Background(), 101, &dto.UpdateOfferingRequest{
		Subject:  strPtr("CS102"),
		Room:     strPtr("G401"),
		Enrolled: intPtr(12),
	})
	require.NoError(t, err)

	assert.Equal(t, "CS102", updated.Subject)
	assert.Equal(t, "G401", updated.Room)
	assert.Equal(t, 12, updated.Enrolled)
}

func TestUpdateOffering_NotFound(t *testing.T) {
	_, svc := newOfferingFixture()

	_, err := svc.UpdateOffering(context.Background(), 999, &dto.UpdateOfferingRequest{
		Enrolled: intPtr(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestDeleteOffering_ReportsExistence(t *testing.T) {
	offerings, svc := newOfferingFixture()
	offerings.add(7, 101, "CS101")

	found, err := svc.DeleteOffering(context.Background(), 101)
	require.NoError(t, err)
	assert.True(t, found)

	// Deleting again is not an error, just not found.
	found, err = svc.DeleteOffering(context.Background(), 101)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetOfferingsByUserID_FiltersOwner(t *testing.T) {
	offerings, svc := newOfferingFixture()
	offerings.add(7, 101, "CS101")
	offerings.add(8, 201, "CS201")

	got, err := svc.GetOfferingsByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(101), got[0].ID)

	_, err = svc.GetOfferingsByUserID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
