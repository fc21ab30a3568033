package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
	"github.com/appdevg5/schedease/internal/app/repositories"
	"github.com/appdevg5/schedease/internal/db"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
)

// TxRunner runs a function within a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// OfferingService defines the interface for offering operations
type OfferingService interface {
	CreateOffering(ctx context.Context, offering *models.Offering) error
	GetAllOfferings(ctx context.Context) ([]*models.Offering, error)
	GetOfferingsByUserID(ctx context.Context, userID int64) ([]*models.Offering, error)
	UpdateOffering(ctx context.Context, id int64, req *dto.UpdateOfferingRequest) (*models.Offering, error)
	DeleteOffering(ctx context.Context, id int64) (bool, error)
	ClearUserOfferings(ctx context.Context, userID int64) (*models.ClearReport, error)
}

// offeringServiceImpl implements the OfferingService interface
type offeringServiceImpl struct {
	offeringRepo repositories.OfferingStore
	scheduleRepo repositories.ScheduleStore
	tx           TxRunner
	logger       zerolog.Logger
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(
	offeringRepo repositories.OfferingStore,
	scheduleRepo repositories.ScheduleStore,
	tx TxRunner,
	logger zerolog.Logger,
) OfferingService {
	return &offeringServiceImpl{
		offeringRepo: offeringRepo,
		scheduleRepo: scheduleRepo,
		tx:           tx,
		logger:       logger,
	}
}

// validateOffering validates offering data before database operations
func (s *offeringServiceImpl) validateOffering(offering *models.Offering) error {
	if offering == nil {
		return fmt.Errorf("%w: offering is nil", apperrors.ErrValidationFailed)
	}

	if offering.UserID <= 0 {
		return fmt.Errorf("%w: owning user ID must be positive", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(offering.Subject) == "" {
		return fmt.Errorf("%w: subject cannot be empty", apperrors.ErrValidationFailed)
	}

	if offering.TotalSlots < 0 || offering.Enrolled < 0 || offering.Assessed < 0 {
		return fmt.Errorf("%w: slot counts cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateOffering creates a new offering
func (s *offeringServiceImpl) CreateOffering(ctx context.Context, offering *models.Offering) error {
	if err := s.validateOffering(offering); err != nil {
		return err
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return fmt.Errorf("error creating offering: %w", err)
	}
	return nil
}

// GetAllOfferings retrieves all offerings
func (s *offeringServiceImpl) GetAllOfferings(ctx context.Context) ([]*models.Offering, error) {
	offerings, err := s.offeringRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving offerings: %w", err)
	}
	return offerings, nil
}

// GetOfferingsByUserID retrieves all offerings owned by a user
func (s *offeringServiceImpl) GetOfferingsByUserID(ctx context.Context, userID int64) ([]*models.Offering, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	offerings, err := s.offeringRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving offerings by user: %w", err)
	}
	return offerings, nil
}

// UpdateOffering applies a partial update to an existing offering. Only
// fields present in the request overwrite stored values; in particular an
// absent IsClosed never erases the stored tri-state flag.
func (s *offeringServiceImpl) UpdateOffering(ctx context.Context, id int64, req *dto.UpdateOfferingRequest) (*models.Offering, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid offering ID", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: update payload is nil", apperrors.ErrValidationFailed)
	}

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyOfferingUpdate(offering, req)

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, err
	}

	return offering, nil
}

// applyOfferingUpdate merges the non-nil request fields onto the offering.
func applyOfferingUpdate(offering *models.Offering, req *dto.UpdateOfferingRequest) {
	if req.Number != nil {
		offering.Number = *req.Number
	}
	if req.OfferingDept != nil {
		offering.OfferingDept = *req.OfferingDept
	}
	if req.Subject != nil {
		offering.Subject = *req.Subject
	}
	if req.SubjectTitle != nil {
		offering.SubjectTitle = *req.SubjectTitle
	}
	if req.CreditedUnits != nil {
		offering.CreditedUnits = *req.CreditedUnits
	}
	if req.Section != nil {
		offering.Section = *req.Section
	}
	if req.Schedule != nil {
		offering.Schedule = *req.Schedule
	}
	if req.Room != nil {
		offering.Room = *req.Room
	}
	if req.TotalSlots != nil {
		offering.TotalSlots = *req.TotalSlots
	}
	if req.Enrolled != nil {
		offering.Enrolled = *req.Enrolled
	}
	if req.Assessed != nil {
		offering.Assessed = *req.Assessed
	}
	if req.IsClosed != nil {
		offering.IsClosed = req.IsClosed
	}
}

// DeleteOffering deletes an offering by ID. The boolean reports whether the
// offering existed; deleting an already-gone offering is not an error.
func (s *offeringServiceImpl) DeleteOffering(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: invalid offering ID", apperrors.ErrValidationFailed)
	}

	found, err := s.offeringRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting offering: %w", err)
	}
	return found, nil
}
