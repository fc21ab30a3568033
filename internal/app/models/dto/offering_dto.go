package dto

import "github.com/appdevg5/schedease/internal/app/models"

// CreateOfferingRequest carries the fields for a new offering submission.
type CreateOfferingRequest struct {
	UserID        int64  `json:"userId" validate:"required,gt=0" example:"7"`
	Number        string `json:"number" example:"10234"`
	OfferingDept  string `json:"offeringDept" example:"CCS"`
	Subject       string `json:"subject" validate:"required" example:"CS101"`
	SubjectTitle  string `json:"subjectTitle" example:"Introduction to Computing"`
	CreditedUnits int    `json:"creditedUnits" example:"3"`
	Section       string `json:"section" example:"A1"`
	Schedule      string `json:"schedule" example:"MWF 09:00-10:30"`
	Room          string `json:"room" example:"G304"`
	TotalSlots    int    `json:"totalSlots" example:"40"`
	Enrolled      int    `json:"enrolled" example:"38"`
	Assessed      int    `json:"assessed" example:"35"`
	IsClosed      *bool  `json:"isClosed,omitempty"`
}

// ToModel converts the request into an offering model.
func (r *CreateOfferingRequest) ToModel() *models.Offering {
	return &models.Offering{
		UserID:        r.UserID,
		Number:        r.Number,
		OfferingDept:  r.OfferingDept,
		Subject:       r.Subject,
		SubjectTitle:  r.SubjectTitle,
		CreditedUnits: r.CreditedUnits,
		Section:       r.Section,
		Schedule:      r.Schedule,
		Room:          r.Room,
		TotalSlots:    r.TotalSlots,
		Enrolled:      r.Enrolled,
		Assessed:      r.Assessed,
		IsClosed:      r.IsClosed,
	}
}

// UpdateOfferingRequest is a partial update: only fields present in the
// payload overwrite stored values. Pointers distinguish "absent" from a
// zero value, which matters most for the tri-state IsClosed flag.
type UpdateOfferingRequest struct {
	Number        *string `json:"number,omitempty"`
	OfferingDept  *string `json:"offeringDept,omitempty"`
	Subject       *string `json:"subject,omitempty"`
	SubjectTitle  *string `json:"subjectTitle,omitempty"`
	CreditedUnits *int    `json:"creditedUnits,omitempty"`
	Section       *string `json:"section,omitempty"`
	Schedule      *string `json:"schedule,omitempty"`
	Room          *string `json:"room,omitempty"`
	TotalSlots    *int    `json:"totalSlots,omitempty"`
	Enrolled      *int    `json:"enrolled,omitempty"`
	Assessed      *int    `json:"assessed,omitempty"`
	IsClosed      *bool   `json:"isClosed,omitempty"`
}

// ClearDataResponse reports the outcome of clearing a user's offerings.
type ClearDataResponse struct {
	Message        string              `json:"message" example:"Successfully deleted 1 items. 2 subjects preserved (in saved schedules)"`
	Outcome        models.ClearOutcome `json:"outcome" example:"cleared"`
	DeletedCount   int                 `json:"deletedCount" example:"1"`
	ProtectedCount int                 `json:"protectedCount" example:"2"`
}
