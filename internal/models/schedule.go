package models

// Subject is a scheduling descriptor for one named subject. Descriptors are
// rebuilt from preferences on every scheduling run and never persisted.
type Subject struct {
	Name        string     `json:"name"`
	Difficulty  Difficulty `json:"difficulty"`
	Priority    Priority   `json:"priority"`
	OptimalTime TimeOfDay  `json:"optimal_time"`
}

// StudySession is one scheduled block of study time for a subject
type StudySession struct {
	Subject         string     `json:"subject"`
	StartTime       string     `json:"start_time"` // HH:MM format
	EndTime         string     `json:"end_time"`   // HH:MM format
	DurationMinutes int        `json:"duration_minutes"`
	Difficulty      Difficulty `json:"difficulty"`
	BreakAfter      int        `json:"break_after"` // minutes; 0 when the session abuts the slot end
	Date            string     `json:"date,omitempty"`
}

// WeeklyOverview aggregates a weekly schedule into totals and shares
type WeeklyOverview struct {
	TotalStudyTimeMinutes int                `json:"total_study_time_minutes"`
	TotalStudyTimeHours   float64            `json:"total_study_time_hours"`
	SubjectTimeMinutes    map[string]int     `json:"subject_time_minutes"`
	SubjectSessions       map[string]int     `json:"subject_sessions"`
	SubjectPercentage     map[string]float64 `json:"subject_percentage"`
}

// WeeklySchedule maps weekday names to ordered daily session lists. Session
// order within a day follows slot order, so callers must supply availability
// slots in temporal order for chronological output.
type WeeklySchedule struct {
	DailySchedule   map[string][]StudySession `json:"daily_schedule"`
	WeeklyOverview  WeeklyOverview            `json:"weekly_overview"`
	GeneratedAt     string                    `json:"generated_at"` // RFC3339 timestamp
	Version         int                       `json:"version"`
	AdjustedBasedOn *ScheduleFeedback         `json:"adjusted_based_on,omitempty"`
}

// ScheduleFeedback carries schedule-level revision requests. Fields apply
// independently; zero values mean "not requested".
type ScheduleFeedback struct {
	PreferredSessionLength       int                   `json:"preferred_session_length,omitempty" validate:"gte=0"`
	SubjectDifficultyAdjustments map[string]Difficulty `json:"subject_difficulty_adjustments,omitempty"`
	Comments                     string                `json:"comments,omitempty"`
}

// IsEmpty reports whether the feedback requests no adjustments
func (f ScheduleFeedback) IsEmpty() bool {
	return f.PreferredSessionLength == 0 && len(f.SubjectDifficultyAdjustments) == 0 && f.Comments == ""
}

// SessionRecord is a completed (or historical) session. Once appended to a
// user's history it is never mutated.
type SessionRecord struct {
	Subject           string `json:"subject"`
	StartTime         string `json:"start_time,omitempty"` // HH:MM format
	EndTime           string `json:"end_time,omitempty"`   // HH:MM format
	DurationMinutes   int    `json:"duration_minutes,omitempty"`
	Date              string `json:"date,omitempty"` // YYYY-MM-DD format
	Rating            int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	PerformanceRating int    `json:"performance_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Notes             string `json:"notes,omitempty"`
	CompletedAt       string `json:"completed_at,omitempty"` // RFC3339 timestamp
}

// EffectiveRating returns the performance rating for prediction purposes,
// falling back to the completion rating when no explicit performance rating
// was recorded.
func (r SessionRecord) EffectiveRating() int {
	if r.PerformanceRating != 0 {
		return r.PerformanceRating
	}
	return r.Rating
}

// CompletionData captures the user's input when finishing a session
type CompletionData struct {
	Rating int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Notes  string `json:"notes,omitempty"`
}
