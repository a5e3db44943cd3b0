package models

import "time"

// PersonalInfo holds basic information about the user
type PersonalInfo struct {
	Name           string `json:"name"`
	EducationLevel string `json:"education_level"`
	Major          string `json:"major"`
	Goals          string `json:"goals"`
}

// StudyPreferences captures subject lists and study style
type StudyPreferences struct {
	PreferredSubjects       []string `json:"preferred_subjects"`
	DifficultSubjects       []string `json:"difficult_subjects"`
	StudyEnvironment        string   `json:"study_environment,omitempty"`
	LearningStyle           string   `json:"learning_style,omitempty"`
	SessionLengthPreference int      `json:"session_length_preference" validate:"gte=0"`
}

// TimeSlot is a contiguous availability window on one weekday
type TimeSlot struct {
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// SleepWindow is a sleep/wake time pair
type SleepWindow struct {
	Sleep string `json:"sleep"` // HH:MM format
	Wake  string `json:"wake"`  // HH:MM format
}

// SleepSchedule splits sleep patterns by weekday/weekend
type SleepSchedule struct {
	Weekday SleepWindow `json:"weekday"`
	Weekend SleepWindow `json:"weekend"`
}

// ProductivityPatterns captures when and how the user works best.
// SessionLengthPreference is duplicated from StudyPreferences because the
// schedule builder reads it from here; both are kept in sync by the profile
// merge.
type ProductivityPatterns struct {
	PeakProductivityTimes   []TimeOfDay   `json:"peak_productivity_times"`
	SessionLengthPreference int           `json:"session_length_preference,omitempty" validate:"gte=0"`
	BreakFrequency          int           `json:"break_frequency" validate:"gte=0"` // in minutes
	BreakDuration           int           `json:"break_duration" validate:"gte=0"`  // in minutes
	SleepSchedule           SleepSchedule `json:"sleep_schedule"`
}

// UserRecord is the whole-record unit of persistence for one user: profile,
// plan history, completed sessions and accumulated metrics. The store always
// loads and saves it in full.
type UserRecord struct {
	PersonalInfo         PersonalInfo               `json:"personal_info"`
	StudyPreferences     StudyPreferences           `json:"study_preferences"`
	TimeAvailability     map[string][]TimeSlot      `json:"time_availability"`
	ProductivityPatterns ProductivityPatterns       `json:"productivity_patterns"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            *time.Time                 `json:"updated_at,omitempty"`
	StudyPlans           map[string]StudyPlan       `json:"study_plans,omitempty"`
	CompletedSessions    []SessionRecord            `json:"completed_sessions,omitempty"`
	SessionFeedback      map[string]SessionFeedback `json:"session_feedback,omitempty"`
	PerformanceMetrics   *PerformanceMetrics        `json:"performance_metrics,omitempty"`
}

// NewUserRecord returns a skeleton record with every weekday key present so
// availability can be edited day by day.
func NewUserRecord() UserRecord {
	availability := make(map[string][]TimeSlot, 7)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		availability[day] = []TimeSlot{}
	}
	return UserRecord{
		TimeAvailability: availability,
		CreatedAt:        time.Now(),
	}
}

// SessionFeedback is free-form feedback attached to a single session
type SessionFeedback struct {
	Rating     int       `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Comments   string    `json:"comments,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}
