package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/models/dto"
	"github.com/appdevg5/schedease/internal/app/repositories"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
)

// ScheduleService defines the interface for schedule operations
type ScheduleService interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	GetAllSchedules(ctx context.Context) ([]*models.Schedule, error)
	GetSchedulesByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) (bool, error)
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	scheduleRepo repositories.ScheduleStore
	// fallbackUserID owns schedules submitted without an explicit user. The
	// user row itself is materialized once at startup by the seed package.
	fallbackUserID int64
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(scheduleRepo repositories.ScheduleStore, fallbackUserID int64) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:   scheduleRepo,
		fallbackUserID: fallbackUserID,
	}
}

// CreateSchedule persists a new schedule, defaulting the owner to the
// fallback user when the caller omits one.
func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if schedule == nil {
		return fmt.Errorf("%w: schedule is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(schedule.ScheduleName) == "" {
		return fmt.Errorf("%w: schedule name cannot be empty", apperrors.ErrValidationFailed)
	}

	if schedule.UserID == 0 {
		schedule.UserID = s.fallbackUserID
	}
	if schedule.UserID < 0 {
		return fmt.Errorf("%w: owning user ID must be positive", apperrors.ErrValidationFailed)
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}
	return nil
}

// GetAllSchedules retrieves all schedules
func (s *scheduleServiceImpl) GetAllSchedules(ctx context.Context) ([]*models.Schedule, error) {
	schedules, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedules: %w", err)
	}
	return schedules, nil
}

// GetSchedulesByUserID retrieves all schedules owned by a user
func (s *scheduleServiceImpl) GetSchedulesByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	schedules, err := s.scheduleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedules by user: %w", err)
	}
	return schedules, nil
}

// UpdateSchedule replaces an existing schedule's name, saved flag, display
// metadata and subject list wholesale.
func (s *scheduleServiceImpl) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: update payload is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.ScheduleName) == "" {
		return nil, fmt.Errorf("%w: schedule name cannot be empty", apperrors.ErrValidationFailed)
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule.ScheduleName = req.ScheduleName
	schedule.IsSaved = req.IsSaved
	schedule.ViewDays = req.ViewDays
	schedule.TimeRange = req.TimeRange
	schedule.Subjects = req.Subjects

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// DeleteSchedule deletes a schedule by ID. The boolean reports whether the
// schedule existed, mirroring the offering delete contract.
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	found, err := s.scheduleRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting schedule: %w", err)
	}
	return found, nil
}
