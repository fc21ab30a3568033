package models

// ClearOutcome classifies the result of clearing a user's offerings.
type ClearOutcome string

const (
	// ClearOutcomeNoData means the user owned no offerings; nothing was touched.
	ClearOutcomeNoData ClearOutcome = "no_data"
	// ClearOutcomeAllProtected means every owned offering is referenced by a
	// schedule; nothing was deleted.
	ClearOutcomeAllProtected ClearOutcome = "all_protected"
	// ClearOutcomeCleared means the unprotected offerings were deleted.
	ClearOutcomeCleared ClearOutcome = "cleared"
)

// ClearReport describes what a clear operation did. DeletedCount and
// ProtectedCount are the contract; the outcome distinguishes the two
// zero-deletion cases from each other.
type ClearReport struct {
	Outcome        ClearOutcome `json:"outcome" example:"cleared"`
	DeletedCount   int          `json:"deletedCount" example:"1"`
	ProtectedCount int          `json:"protectedCount" example:"2"`
}
