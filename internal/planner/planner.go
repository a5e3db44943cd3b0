package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/storage"
	"github.com/julianstephens/studyplan/internal/utils"
)

// ErrPlanNotFound is returned when a plan lookup misses
var ErrPlanNotFound = errors.New("study plan not found")

// Planner orchestrates the schedule builder against persisted user records.
// It owns plan versioning, feedback-driven revision and performance metric
// accumulation. Every operation follows the same read-compute-write pattern
// over one user's whole record.
type Planner struct {
	store   storage.Provider
	builder *scheduler.Builder
}

// New creates a Planner backed by the given store
func New(store storage.Provider) *Planner {
	return &Planner{
		store:   store,
		builder: scheduler.New(),
	}
}

// CreateStudyPlan builds a fresh version-1 plan from the user's profile and
// persists it alongside the user's earlier plans.
func (p *Planner) CreateStudyPlan(userID string) (models.StudyPlan, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}

	schedule := p.builder.CreateOptimizedSchedule(record)

	plan := models.StudyPlan{
		PlanID:    uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		Schedule:  schedule,
		Metadata: models.PlanMetadata{
			Version: 1,
			OptimizationFactors: []string{
				models.FactorProductivityPatterns,
				models.FactorSubjectDifficulty,
				models.FactorTimeAvailability,
			},
		},
	}

	if record.StudyPlans == nil {
		record.StudyPlans = make(map[string]models.StudyPlan)
	}
	record.StudyPlans[plan.PlanID] = plan

	if err := p.store.SaveUser(userID, record); err != nil {
		return models.StudyPlan{}, fmt.Errorf("failed to save study plan: %w", err)
	}

	logger.Info("Created study plan", "user", userID, "plan", plan.PlanID)
	return plan, nil
}

// GetStudyPlan retrieves one plan by id
func (p *Planner) GetStudyPlan(userID, planID string) (models.StudyPlan, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	plan, ok := record.StudyPlans[planID]
	if !ok {
		return models.StudyPlan{}, ErrPlanNotFound
	}
	return plan, nil
}

// GetLatestStudyPlan retrieves the plan with the most recent creation time
func (p *Planner) GetLatestStudyPlan(userID string) (models.StudyPlan, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	return latestPlan(record)
}

func latestPlan(record models.UserRecord) (models.StudyPlan, error) {
	if len(record.StudyPlans) == 0 {
		return models.StudyPlan{}, ErrPlanNotFound
	}
	var latest models.StudyPlan
	found := false
	for _, plan := range record.StudyPlans {
		if !found || plan.CreatedAt.After(latest.CreatedAt) {
			latest = plan
			found = true
		}
	}
	return latest, nil
}

// UpdatePlanFromFeedback revises a plan from user feedback. The original plan
// is retained unmodified; the revision is a new plan with version+1 and a
// BasedOn reference.
func (p *Planner) UpdatePlanFromFeedback(userID, planID string, feedback models.ScheduleFeedback) (models.StudyPlan, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}

	original, ok := record.StudyPlans[planID]
	if !ok {
		return models.StudyPlan{}, ErrPlanNotFound
	}

	adjusted := p.builder.AdjustScheduleFromFeedback(original.Schedule, feedback)

	factors := make([]string, 0, len(original.Metadata.OptimizationFactors)+1)
	factors = append(factors, original.Metadata.OptimizationFactors...)
	factors = append(factors, models.FactorUserFeedback)

	revision := models.StudyPlan{
		PlanID:          uuid.NewString(),
		UserID:          userID,
		CreatedAt:       time.Now(),
		Schedule:        adjusted,
		BasedOn:         planID,
		FeedbackApplied: &feedback,
		Metadata: models.PlanMetadata{
			Version:             original.Metadata.Version + 1,
			OptimizationFactors: factors,
		},
	}

	record.StudyPlans[revision.PlanID] = revision

	if err := p.store.SaveUser(userID, record); err != nil {
		return models.StudyPlan{}, fmt.Errorf("failed to save revised plan: %w", err)
	}

	logger.Info("Revised study plan", "user", userID, "plan", revision.PlanID, "based_on", planID, "version", revision.Metadata.Version)
	return revision, nil
}

// GetDailySchedule projects the latest plan's sessions for the weekday of the
// given date. Returned sessions are copies stamped with the calendar date, so
// callers cannot corrupt the stored plan. A user without plans gets an empty
// schedule.
func (p *Planner) GetDailySchedule(userID string, date time.Time) ([]models.StudySession, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return nil, err
	}

	plan, err := latestPlan(record)
	if err != nil {
		return []models.StudySession{}, nil
	}

	sessions := plan.Schedule.DailySchedule[utils.WeekdayName(date)]
	dateStr := date.Format("2006-01-02")

	projected := make([]models.StudySession, len(sessions))
	for i, session := range sessions {
		session.Date = dateStr
		projected[i] = session
	}
	return projected, nil
}

// GetWeeklySchedule projects seven days of the latest plan starting at the
// given date, keyed by calendar date
func (p *Planner) GetWeeklySchedule(userID string, start time.Time) (map[string][]models.StudySession, error) {
	weekly := make(map[string][]models.StudySession, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		daily, err := p.GetDailySchedule(userID, date)
		if err != nil {
			return nil, err
		}
		weekly[date.Format("2006-01-02")] = daily
	}
	return weekly, nil
}

// RecordSessionCompletion merges completion data into the session, appends it
// to the user's history and folds it into the performance metrics. History is
// append-only: records are never edited after the fact.
func (p *Planner) RecordSessionCompletion(userID string, session models.SessionRecord, completion models.CompletionData) (models.SessionRecord, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return models.SessionRecord{}, err
	}

	session.Rating = completion.Rating
	session.Notes = completion.Notes
	session.CompletedAt = time.Now().Format(time.RFC3339)

	record.CompletedSessions = append(record.CompletedSessions, session)
	updatePerformanceMetrics(&record, session)

	if err := p.store.SaveUser(userID, record); err != nil {
		return models.SessionRecord{}, fmt.Errorf("failed to save session completion: %w", err)
	}

	logger.Info("Recorded session completion", "user", userID, "subject", session.Subject, "rating", session.Rating)
	return session, nil
}

// RecordFeedback attaches free-form feedback to a single session id
func (p *Planner) RecordFeedback(userID, sessionID string, feedback models.SessionFeedback) error {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return err
	}

	if record.SessionFeedback == nil {
		record.SessionFeedback = make(map[string]models.SessionFeedback)
	}
	feedback.RecordedAt = time.Now()
	record.SessionFeedback[sessionID] = feedback

	return p.store.SaveUser(userID, record)
}

// UpdateUserProfile applies a partial profile edit and persists the record
func (p *Planner) UpdateUserProfile(userID string, update models.ProfileUpdate) error {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return err
	}

	models.MergeProfile(&record, update)

	return p.store.SaveUser(userID, record)
}

// PredictOptimalStudyTime infers the best time of day for a subject from the
// user's completed-session history
func (p *Planner) PredictOptimalStudyTime(userID, subject string) (models.TimeOfDay, error) {
	record, err := p.store.LoadUser(userID)
	if err != nil {
		return "", err
	}
	return p.builder.PredictOptimalStudyTime(subject, record.CompletedSessions), nil
}
