package models

// Offering represents one candidate course section a user is considering,
// based on the 'offerings' table.
type Offering struct {
	ID            int64  `json:"id" db:"id" example:"101"`                        // Unique identifier for the offering
	UserID        int64  `json:"userId" db:"user_id" example:"7"`                 // Owning user (every offering belongs to exactly one user)
	Number        string `json:"number" db:"number" example:"10234"`              // Course number as printed on the offerings list
	OfferingDept  string `json:"offeringDept" db:"offering_dept" example:"CCS"`   // Department offering the section
	Subject       string `json:"subject" db:"subject" example:"CS101"`            // Subject code
	SubjectTitle  string `json:"subjectTitle" db:"subject_title" example:"Introduction to Computing"` // Subject title
	CreditedUnits int    `json:"creditedUnits" db:"credited_units" example:"3"`   // Credited units
	Section       string `json:"section" db:"section" example:"A1"`               // Section label
	Schedule      string `json:"schedule" db:"schedule" example:"MWF 09:00-10:30"` // Schedule/time text
	Room          string `json:"room" db:"room" example:"G304"`                   // Room
	TotalSlots    int    `json:"totalSlots" db:"total_slots" example:"40"`        // Total slot count
	Enrolled      int    `json:"enrolled" db:"enrolled" example:"38"`             // Enrolled count
	Assessed      int    `json:"assessed" db:"assessed" example:"35"`             // Assessed count
	IsClosed      *bool  `json:"isClosed,omitempty" db:"is_closed"`               // Tri-state closed flag (nil = unknown)
}
