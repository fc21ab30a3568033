package dto

import "github.com/appdevg5/schedease/internal/app/models"

// CreateScheduleRequest carries the fields for a new schedule submission.
// UserID may be omitted; the service assigns the fallback owner.
type CreateScheduleRequest struct {
	UserID       int64   `json:"userId" example:"7"`
	ScheduleName string  `json:"scheduleName" validate:"required" example:"Term 1 draft"`
	IsSaved      bool    `json:"isSaved" example:"true"`
	ViewDays     *string `json:"viewDays,omitempty"`
	TimeRange    *string `json:"timeRange,omitempty"`
	Subjects     string  `json:"subjects" example:"[101,103]"`
}

// ToModel converts the request into a schedule model.
func (r *CreateScheduleRequest) ToModel() *models.Schedule {
	return &models.Schedule{
		UserID:       r.UserID,
		ScheduleName: r.ScheduleName,
		IsSaved:      r.IsSaved,
		ViewDays:     r.ViewDays,
		TimeRange:    r.TimeRange,
		Subjects:     r.Subjects,
	}
}

// UpdateScheduleRequest replaces a schedule's mutable fields wholesale;
// unlike offerings there is no partial merge on schedule updates.
type UpdateScheduleRequest struct {
	ScheduleName string  `json:"scheduleName" validate:"required" example:"Term 1 final"`
	IsSaved      bool    `json:"isSaved" example:"true"`
	ViewDays     *string `json:"viewDays,omitempty"`
	TimeRange    *string `json:"timeRange,omitempty"`
	Subjects     string  `json:"subjects" example:"[101,102,103]"`
}
