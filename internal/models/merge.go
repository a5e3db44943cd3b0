package models

import "time"

// ProfileUpdate is a partial profile edit. Nil fields are left untouched;
// the merge walks known fields child by child rather than reflecting over
// arbitrary keys.
type ProfileUpdate struct {
	PersonalInfo         *PersonalInfoUpdate         `json:"personal_info,omitempty"`
	StudyPreferences     *StudyPreferencesUpdate     `json:"study_preferences,omitempty"`
	TimeAvailability     map[string][]TimeSlot       `json:"time_availability,omitempty"`
	ProductivityPatterns *ProductivityPatternsUpdate `json:"productivity_patterns,omitempty"`
}

// PersonalInfoUpdate holds optional personal info edits
type PersonalInfoUpdate struct {
	Name           *string `json:"name,omitempty"`
	EducationLevel *string `json:"education_level,omitempty"`
	Major          *string `json:"major,omitempty"`
	Goals          *string `json:"goals,omitempty"`
}

// StudyPreferencesUpdate holds optional study preference edits
type StudyPreferencesUpdate struct {
	PreferredSubjects       []string `json:"preferred_subjects,omitempty"`
	DifficultSubjects       []string `json:"difficult_subjects,omitempty"`
	StudyEnvironment        *string  `json:"study_environment,omitempty"`
	LearningStyle           *string  `json:"learning_style,omitempty"`
	SessionLengthPreference *int     `json:"session_length_preference,omitempty"`
}

// ProductivityPatternsUpdate holds optional productivity pattern edits
type ProductivityPatternsUpdate struct {
	PeakProductivityTimes []TimeOfDay    `json:"peak_productivity_times,omitempty"`
	BreakFrequency        *int           `json:"break_frequency,omitempty"`
	BreakDuration         *int           `json:"break_duration,omitempty"`
	SleepSchedule         *SleepSchedule `json:"sleep_schedule,omitempty"`
}

// MergeProfile applies a partial update to a user record in place and stamps
// UpdatedAt. Per-day availability lists are replaced wholesale; all other
// fields merge individually.
func MergeProfile(record *UserRecord, update ProfileUpdate) {
	if update.PersonalInfo != nil {
		mergePersonalInfo(&record.PersonalInfo, *update.PersonalInfo)
	}
	if update.StudyPreferences != nil {
		mergeStudyPreferences(record, *update.StudyPreferences)
	}
	if update.TimeAvailability != nil {
		if record.TimeAvailability == nil {
			record.TimeAvailability = make(map[string][]TimeSlot)
		}
		for day, slots := range update.TimeAvailability {
			record.TimeAvailability[day] = slots
		}
	}
	if update.ProductivityPatterns != nil {
		mergeProductivityPatterns(&record.ProductivityPatterns, *update.ProductivityPatterns)
	}

	now := time.Now()
	record.UpdatedAt = &now
}

func mergePersonalInfo(info *PersonalInfo, update PersonalInfoUpdate) {
	if update.Name != nil {
		info.Name = *update.Name
	}
	if update.EducationLevel != nil {
		info.EducationLevel = *update.EducationLevel
	}
	if update.Major != nil {
		info.Major = *update.Major
	}
	if update.Goals != nil {
		info.Goals = *update.Goals
	}
}

func mergeStudyPreferences(record *UserRecord, update StudyPreferencesUpdate) {
	prefs := &record.StudyPreferences
	if update.PreferredSubjects != nil {
		prefs.PreferredSubjects = update.PreferredSubjects
	}
	if update.DifficultSubjects != nil {
		prefs.DifficultSubjects = update.DifficultSubjects
	}
	if update.StudyEnvironment != nil {
		prefs.StudyEnvironment = *update.StudyEnvironment
	}
	if update.LearningStyle != nil {
		prefs.LearningStyle = *update.LearningStyle
	}
	if update.SessionLengthPreference != nil {
		prefs.SessionLengthPreference = *update.SessionLengthPreference
		// The builder reads session length from productivity patterns
		record.ProductivityPatterns.SessionLengthPreference = *update.SessionLengthPreference
	}
}

func mergeProductivityPatterns(patterns *ProductivityPatterns, update ProductivityPatternsUpdate) {
	if update.PeakProductivityTimes != nil {
		patterns.PeakProductivityTimes = update.PeakProductivityTimes
	}
	if update.BreakFrequency != nil {
		patterns.BreakFrequency = *update.BreakFrequency
	}
	if update.BreakDuration != nil {
		patterns.BreakDuration = *update.BreakDuration
	}
	if update.SleepSchedule != nil {
		patterns.SleepSchedule = *update.SleepSchedule
	}
}
