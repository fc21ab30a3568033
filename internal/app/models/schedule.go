package models

// Schedule represents one named weekly plan curated by a user, based on the
// 'schedules' table. The Subjects field carries the serialized reference
// list: a JSON array of offering identifiers this schedule includes. It is
// stored and exchanged as text; decoding is confined to the subjects codec
// package.
type Schedule struct {
	ID           int64   `json:"scheduleId" db:"id" example:"12"`                       // Unique identifier for the schedule
	UserID       int64   `json:"userId" db:"user_id" example:"7"`                       // Owning user
	ScheduleName string  `json:"scheduleName" db:"schedule_name" example:"Term 1 draft"` // Display name
	IsSaved      bool    `json:"isSaved" db:"is_saved" example:"true"`                  // Whether the user marked the plan as saved
	ViewDays     *string `json:"viewDays,omitempty" db:"view_days"`                     // Derived display metadata (nullable)
	TimeRange    *string `json:"timeRange,omitempty" db:"time_range"`                   // Derived display metadata (nullable)
	Subjects     string  `json:"subjects" db:"subjects" example:"[101,103]"`            // Serialized offering id list
}
