package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdevg5/schedease/internal/app/models"
)

// DBTX is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, which lets a repository run either on
// the shared pool or inside a transaction via WithTx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// OfferingStore describes the persistence operations for offerings.
type OfferingStore interface {
	Create(ctx context.Context, offering *models.Offering) error
	GetAll(ctx context.Context) ([]*models.Offering, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Offering, error)
	GetByID(ctx context.Context, id int64) (*models.Offering, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, offering *models.Offering) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
	WithTx(tx pgx.Tx) OfferingStore
}

// ScheduleStore describes the persistence operations for schedules.
type ScheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error)
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) (bool, error)
	WithTx(tx pgx.Tx) ScheduleStore
}

// UserStore describes the persistence operations for users. Only the pieces
// needed to materialize and resolve the fallback owner exist here.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CreateWithID(ctx context.Context, user *models.User) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     UserStore
	OfferingRepository OfferingStore
	ScheduleRepository ScheduleStore
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		OfferingRepository: NewOfferingRepository(db),
		ScheduleRepository: NewScheduleRepository(db),
	}
}
