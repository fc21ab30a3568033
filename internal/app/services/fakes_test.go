package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/appdevg5/schedease/internal/app/models"
	"github.com/appdevg5/schedease/internal/app/repositories"
	"github.com/appdevg5/schedease/internal/db"
	"github.com/appdevg5/schedease/internal/pkg/apperrors"
)

// fakeTxRunner satisfies TxRunner without a database; the fake stores
// ignore the transaction handle, so nil is fine.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

// fakeOfferingStore is an in-memory OfferingStore preserving insertion order.
type fakeOfferingStore struct {
	offerings []*models.Offering
	nextID    int64
}

func newFakeOfferingStore() *fakeOfferingStore {
	return &fakeOfferingStore{nextID: 1}
}

func (f *fakeOfferingStore) add(userID int64, id int64, subject string) *models.Offering {
	o := &models.Offering{ID: id, UserID: userID, Subject: subject}
	f.offerings = append(f.offerings, o)
	if id >= f.nextID {
		f.nextID = id + 1
	}
	return o
}

func (f *fakeOfferingStore) Create(ctx context.Context, offering *models.Offering) error {
	offering.ID = f.nextID
	f.nextID++
	f.offerings = append(f.offerings, offering)
	return nil
}

func (f *fakeOfferingStore) GetAll(ctx context.Context) ([]*models.Offering, error) {
	return append([]*models.Offering(nil), f.offerings...), nil
}

func (f *fakeOfferingStore) GetByUserID(ctx context.Context, userID int64) ([]*models.Offering, error) {
	var out []*models.Offering
	for _, o := range f.offerings {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferingStore) GetByID(ctx context.Context, id int64) (*models.Offering, error) {
	for _, o := range f.offerings {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, apperrors.ErrOfferingNotFound
}

func (f *fakeOfferingStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	for _, o := range f.offerings {
		if o.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOfferingStore) Update(ctx context.Context, offering *models.Offering) error {
	for i, o := range f.offerings {
		if o.ID == offering.ID {
			copied := *offering
			f.offerings[i] = &copied
			return nil
		}
	}
	return apperrors.ErrOfferingNotFound
}

func (f *fakeOfferingStore) Delete(ctx context.Context, id int64) (bool, error) {
	for i, o := range f.offerings {
		if o.ID == id {
			f.offerings = append(f.offerings[:i], f.offerings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOfferingStore) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var kept []*models.Offering
	var deleted int64
	for _, o := range f.offerings {
		if _, ok := wanted[o.ID]; ok && o.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, o)
	}
	f.offerings = kept
	return deleted, nil
}

func (f *fakeOfferingStore) WithTx(tx pgx.Tx) repositories.OfferingStore {
	return f
}

func (f *fakeOfferingStore) ids() []int64 {
	out := make([]int64, 0, len(f.offerings))
	for _, o := range f.offerings {
		out = append(out, o.ID)
	}
	return out
}

// fakeScheduleStore is an in-memory ScheduleStore preserving insertion order.
type fakeScheduleStore struct {
	schedules []*models.Schedule
	nextID    int64
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{nextID: 1}
}

func (f *fakeScheduleStore) add(userID int64, subjects string, saved bool) *models.Schedule {
	s := &models.Schedule{
		ID:           f.nextID,
		UserID:       userID,
		ScheduleName: "plan",
		IsSaved:      saved,
		Subjects:     subjects,
	}
	f.nextID++
	f.schedules = append(f.schedules, s)
	return s
}

func (f *fakeScheduleStore) Create(ctx context.Context, schedule *models.Schedule) error {
	schedule.ID = f.nextID
	f.nextID++
	f.schedules = append(f.schedules, schedule)
	return nil
}

func (f *fakeScheduleStore) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	return append([]*models.Schedule(nil), f.schedules...), nil
}

func (f *fakeScheduleStore) GetByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error) {
	var out []*models.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	for _, s := range f.schedules {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrScheduleNotFound
}

func (f *fakeScheduleStore) Update(ctx context.Context, schedule *models.Schedule) error {
	for i, s := range f.schedules {
		if s.ID == schedule.ID {
			copied := *schedule
			f.schedules[i] = &copied
			return nil
		}
	}
	return apperrors.ErrScheduleNotFound
}

func (f *fakeScheduleStore) Delete(ctx context.Context, id int64) (bool, error) {
	for i, s := range f.schedules {
		if s.ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleStore) WithTx(tx pgx.Tx) repositories.ScheduleStore {
	return f
}
