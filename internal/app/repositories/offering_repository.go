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

// offeringColumns is the column order every offering scan relies on.
var offeringColumns = []string{
	"id", "user_id", "number", "offering_dept", "subject", "subject_title",
	"credited_units", "section", "schedule", "room", "total_slots",
	"enrolled", "assessed", "is_closed",
}

// OfferingRepository handles offering database operations
type OfferingRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewOfferingRepository creates a new OfferingRepository
func NewOfferingRepository(db DBTX) *OfferingRepository {
	return &OfferingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *OfferingRepository) WithTx(tx pgx.Tx) OfferingStore {
	return &OfferingRepository{db: tx, sb: r.sb}
}

func scanOffering(row pgx.Row) (*models.Offering, error) {
	offering := &models.Offering{}
	err := row.Scan(
		&offering.ID,
		&offering.UserID,
		&offering.Number,
		&offering.OfferingDept,
		&offering.Subject,
		&offering.SubjectTitle,
		&offering.CreditedUnits,
		&offering.Section,
		&offering.Schedule,
		&offering.Room,
		&offering.TotalSlots,
		&offering.Enrolled,
		&offering.Assessed,
		&offering.IsClosed,
	)
	if err != nil {
		return nil, err
	}
	return offering, nil
}

// Create persists a new offering and fills in its assigned ID.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.Offering) error {
	sql, args, err := r.sb.Insert("offerings").
		Columns(offeringColumns[1:]...).
		Values(
			offering.UserID, offering.Number, offering.OfferingDept,
			offering.Subject, offering.SubjectTitle, offering.CreditedUnits,
			offering.Section, offering.Schedule, offering.Room,
			offering.TotalSlots, offering.Enrolled, offering.Assessed,
			offering.IsClosed,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create offering query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&offering.ID); err != nil {
		logger.Error().Err(err).Int64("userID", offering.UserID).Msg("Error executing create offering query")
		return fmt.Errorf("error creating offering: %w", err)
	}

	return nil
}

// GetAll retrieves all offerings
func (r *OfferingRepository) GetAll(ctx context.Context) ([]*models.Offering, error) {
	sql, args, err := r.sb.Select(offeringColumns...).
		From("offerings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all offerings query: %w", err)
	}

	return r.queryOfferings(ctx, sql, args)
}

// GetByUserID retrieves all offerings owned by a user
func (r *OfferingRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Offering, error) {
	sql, args, err := r.sb.Select(offeringColumns...).
		From("offerings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offerings by user query: %w", err)
	}

	return r.queryOfferings(ctx, sql, args)
}

func (r *OfferingRepository) queryOfferings(ctx context.Context, sql string, args []interface{}) ([]*models.Offering, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing offerings query")
		return nil, fmt.Errorf("error querying offerings: %w", err)
	}
	defer rows.Close()

	offerings := []*models.Offering{}
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning offering row: %w", err)
		}
		offerings = append(offerings, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offering rows: %w", err)
	}

	return offerings, nil
}

// GetByID retrieves an offering by ID
func (r *OfferingRepository) GetByID(ctx context.Context, id int64) (*models.Offering, error) {
	sql, args, err := r.sb.Select(offeringColumns...).
		From("offerings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offering query: %w", err)
	}

	offering, err := scanOffering(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		logger.Error().Err(err).Int64("offeringID", id).Msg("Error scanning offering row")
		return nil, fmt.Errorf("error getting offering by ID: %w", err)
	}

	return offering, nil
}

// ExistsByID checks whether an offering with the given ID exists
func (r *OfferingRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM offerings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking offering existence: %w", err)
	}

	return exists, nil
}

// Update overwrites an existing offering row with the given model.
func (r *OfferingRepository) Update(ctx context.Context, offering *models.Offering) error {
	sql, args, err := r.sb.Update("offerings").
		SetMap(map[string]interface{}{
			"number":         offering.Number,
			"offering_dept":  offering.OfferingDept,
			"subject":        offering.Subject,
			"subject_title":  offering.SubjectTitle,
			"credited_units": offering.CreditedUnits,
			"section":        offering.Section,
			"schedule":       offering.Schedule,
			"room":           offering.Room,
			"total_slots":    offering.TotalSlots,
			"enrolled":       offering.Enrolled,
			"assessed":       offering.Assessed,
			"is_closed":      offering.IsClosed,
		}).
		Where(squirrel.Eq{"id": offering.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update offering query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offeringID", offering.ID).Msg("Error executing update offering query")
		return fmt.Errorf("error updating offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

// Delete removes an offering by ID. The boolean reports whether a row
// existed, so repeated deletes stay idempotent for callers.
func (r *OfferingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete offering query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offeringID", id).Msg("Error executing delete offering query")
		return false, fmt.Errorf("error deleting offering: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// DeleteByIDs bulk-deletes the given offerings in a single statement. The
// user scope is part of the predicate so the statement can never touch
// another user's rows.
func (r *OfferingRepository) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Delete("offerings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete offerings query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing bulk delete offerings query")
		return 0, fmt.Errorf("error bulk deleting offerings: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
