package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
	"github.com/appdevg5/schedease/internal/pkg/logger"
)

var scheduleColumns = []string{
	"id", "user_id", "schedule_name", "is_saved", "view_days", "time_range", "subjects",
}

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DBTX) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ScheduleRepository) WithTx(tx pgx.Tx) ScheduleStore {
	return &ScheduleRepository{db: tx, sb: r.sb}
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	err := row.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.ScheduleName,
		&schedule.IsSaved,
		&schedule.ViewDays,
		&schedule.TimeRange,
		&schedule.Subjects,
	)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Create persists a new schedule and fills in its assigned ID.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	sql, args, err := r.sb.Insert("schedules").
		Columns(scheduleColumns[1:]...).
		Values(
			schedule.UserID, schedule.ScheduleName, schedule.IsSaved,
			schedule.ViewDays, schedule.TimeRange, schedule.Subjects,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create schedule query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&schedule.ID); err != nil {
		logger.Error().Err(err).Int64("userID", schedule.UserID).Msg("Error executing create schedule query")
		return fmt.Errorf("error creating schedule: %w", err)
	}

	return nil
}

// GetAll retrieves all schedules
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedules").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all schedules query: %w", err)
	}

	return r.querySchedules(ctx, sql, args)
}

// GetByUserID retrieves all schedules owned by a user
func (r *ScheduleRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedules by user query: %w", err)
	}

	return r.querySchedules(ctx, sql, args)
}

func (r *ScheduleRepository) querySchedules(ctx context.Context, sql string, args []interface{}) ([]*models.Schedule, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

// GetByID retrieves a schedule by ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanSchedule(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}

	return schedule, nil
}

// Update replaces the mutable fields of an existing schedule.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	sql, args, err := r.sb.Update("schedules").
		SetMap(map[string]interface{}{
			"schedule_name": schedule.ScheduleName,
			"is_saved":      schedule.IsSaved,
			"view_days":     schedule.ViewDays,
			"time_range":    schedule.TimeRange,
			"subjects":      schedule.Subjects,
		}).
		Where(squirrel.Eq{"id": schedule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error executing update schedule query")
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// Delete removes a schedule by ID. The boolean reports whether a row
// existed, matching the idempotent delete contract of the offerings store.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return false, fmt.Errorf("error deleting schedule: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
