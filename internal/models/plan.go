package models

import "time"

// Optimization factor labels recorded in plan metadata
const (
	FactorProductivityPatterns = "productivity_patterns"
	FactorSubjectDifficulty    = "subject_difficulty"
	FactorTimeAvailability     = "time_availability"
	FactorUserFeedback         = "user_feedback"
)

// PlanMetadata tracks a plan's lineage
type PlanMetadata struct {
	Version             int      `json:"version"`
	OptimizationFactors []string `json:"optimization_factors"`
}

// StudyPlan is a versioned, immutable snapshot of a weekly schedule.
// Revision never edits a plan in place: it creates a new plan with
// version+1 and BasedOn pointing at the original.
type StudyPlan struct {
	PlanID          string            `json:"plan_id"`
	UserID          string            `json:"user_id"`
	CreatedAt       time.Time         `json:"created_at"`
	Schedule        WeeklySchedule    `json:"schedule"`
	Metadata        PlanMetadata      `json:"metadata"`
	BasedOn         string            `json:"based_on,omitempty"`
	FeedbackApplied *ScheduleFeedback `json:"feedback_applied,omitempty"`
}
