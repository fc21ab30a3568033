package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
	"github.com/appdevg5/schedease/internal/pkg/subjects"
)

// ClearUserOfferings deletes all of a user's offerings except those
// referenced by one of the user's schedules, and reports how many were
// deleted and how many were preserved.
//
// Protection considers every schedule the user has persisted, not only the
// ones flagged as saved: an unsaved draft still references offerings the
// user wants kept.
//
// The read-schedules, compute, bulk-delete sequence runs inside a single
// database transaction, so the delete is atomic and honors every schedule
// committed before the transaction started. A schedule committed after that
// point is not considered; callers retry the save if its offerings vanish.
func (s *offeringServiceImpl) ClearUserOfferings(ctx context.Context, userID int64) (*models.ClearReport, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}

	var report *models.ClearReport
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		offeringRepo := s.offeringRepo.WithTx(tx)
		scheduleRepo := s.scheduleRepo.WithTx(tx)

		owned, err := offeringRepo.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("error retrieving offerings for user: %w", err)
		}
		if len(owned) == 0 {
			report = &models.ClearReport{Outcome: models.ClearOutcomeNoData}
			return nil
		}

		userSchedules, err := scheduleRepo.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("error retrieving schedules for user: %w", err)
		}

		protected := protectedOfferingIDs(userSchedules, s.logger)
		toDelete := deletableOfferingIDs(owned, protected)

		if len(toDelete) == 0 {
			report = &models.ClearReport{
				Outcome:        models.ClearOutcomeAllProtected,
				ProtectedCount: len(owned),
			}
			return nil
		}

		deleted, err := offeringRepo.DeleteByIDs(ctx, userID, toDelete)
		if err != nil {
			return fmt.Errorf("error bulk deleting offerings: %w", err)
		}

		report = &models.ClearReport{
			Outcome:        models.ClearOutcomeCleared,
			DeletedCount:   len(toDelete),
			ProtectedCount: len(owned) - len(toDelete),
		}

		s.logger.Info().
			Int64("userID", userID).
			Int64("rowsDeleted", deleted).
			Int("deletedCount", report.DeletedCount).
			Int("protectedCount", report.ProtectedCount).
			Msg("Cleared user offerings")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// protectedOfferingIDs builds the protected set: the union of offering
// identifiers referenced by the given schedules. A schedule whose subject
// list is empty contributes nothing; one whose list fails to decode is
// skipped with a diagnostic and never aborts the operation.
func protectedOfferingIDs(schedules []*models.Schedule, lgr zerolog.Logger) map[int64]struct{} {
	protected := make(map[int64]struct{})
	for _, schedule := range schedules {
		ids, err := subjects.Decode(schedule.Subjects)
		if err != nil {
			lgr.Warn().Err(err).
				Int64("scheduleID", schedule.ID).
				Msg("Skipping schedule with malformed subject list")
			continue
		}
		for _, id := range ids {
			protected[id] = struct{}{}
		}
	}
	return protected
}

// deletableOfferingIDs returns the identifiers of the offerings not present
// in the protected set, preserving the input order.
func deletableOfferingIDs(offerings []*models.Offering, protected map[int64]struct{}) []int64 {
	var toDelete []int64
	for _, offering := range offerings {
		if _, ok := protected[offering.ID]; !ok {
			toDelete = append(toDelete, offering.ID)
		}
	}
	return toDelete
}
