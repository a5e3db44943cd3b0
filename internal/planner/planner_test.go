package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/storage"
)

// memStore is an in-memory Provider for planner tests
type memStore struct {
	records map[string]models.UserRecord
	saves   int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]models.UserRecord)}
}

func (s *memStore) Init() error  { return nil }
func (s *memStore) Load() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) LoadUser(userID string) (models.UserRecord, error) {
	record, ok := s.records[userID]
	if !ok {
		return models.UserRecord{}, storage.ErrUserNotFound
	}
	return record, nil
}

func (s *memStore) SaveUser(userID string, record models.UserRecord) error {
	s.records[userID] = record
	s.saves++
	return nil
}

func (s *memStore) DeleteUser(userID string) error {
	if _, ok := s.records[userID]; !ok {
		return storage.ErrUserNotFound
	}
	delete(s.records, userID)
	return nil
}

func (s *memStore) ListUsers() ([]string, error) {
	var users []string
	for id := range s.records {
		users = append(users, id)
	}
	return users, nil
}

func (s *memStore) DataPath() string { return "memory" }

func seedUser(store *memStore, userID string) {
	record := models.NewUserRecord()
	record.StudyPreferences.PreferredSubjects = []string{"Math", "History"}
	record.StudyPreferences.DifficultSubjects = []string{"Math"}
	record.TimeAvailability["Monday"] = []models.TimeSlot{{Start: "09:00", End: "12:00"}}
	record.ProductivityPatterns.SessionLengthPreference = 45
	record.ProductivityPatterns.BreakDuration = 5
	record.ProductivityPatterns.PeakProductivityTimes = []models.TimeOfDay{models.Morning}
	store.records[userID] = record
}

func TestCreateStudyPlan(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	plan, err := p.CreateStudyPlan("alice")
	if err != nil {
		t.Fatalf("CreateStudyPlan failed: %v", err)
	}

	if plan.PlanID == "" {
		t.Error("expected a generated plan id")
	}
	if plan.Metadata.Version != 1 {
		t.Errorf("expected version 1, got %d", plan.Metadata.Version)
	}
	if len(plan.Metadata.OptimizationFactors) != 3 {
		t.Errorf("expected 3 optimization factors, got %d", len(plan.Metadata.OptimizationFactors))
	}
	if len(plan.Schedule.DailySchedule["Monday"]) == 0 {
		t.Error("expected Monday sessions from the seeded availability")
	}

	stored := store.records["alice"]
	if _, ok := stored.StudyPlans[plan.PlanID]; !ok {
		t.Error("plan was not persisted on the user record")
	}
}

func TestCreateStudyPlan_UnknownUser(t *testing.T) {
	p := New(newMemStore())

	_, err := p.CreateStudyPlan("ghost")
	if !errors.Is(err, storage.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetStudyPlan_NotFound(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	_, err := p.GetStudyPlan("alice", "nope")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestGetLatestStudyPlan(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	record := store.records["alice"]
	record.StudyPlans = map[string]models.StudyPlan{
		"old": {PlanID: "old", CreatedAt: time.Now().Add(-time.Hour)},
		"new": {PlanID: "new", CreatedAt: time.Now()},
	}
	store.records["alice"] = record

	latest, err := p.GetLatestStudyPlan("alice")
	if err != nil {
		t.Fatalf("GetLatestStudyPlan failed: %v", err)
	}
	if latest.PlanID != "new" {
		t.Errorf("expected latest plan 'new', got %s", latest.PlanID)
	}
}

func TestUpdatePlanFromFeedback(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	original, err := p.CreateStudyPlan("alice")
	if err != nil {
		t.Fatalf("CreateStudyPlan failed: %v", err)
	}

	revision, err := p.UpdatePlanFromFeedback("alice", original.PlanID, models.ScheduleFeedback{
		PreferredSessionLength: 60,
	})
	if err != nil {
		t.Fatalf("UpdatePlanFromFeedback failed: %v", err)
	}

	if revision.PlanID == original.PlanID {
		t.Error("revision must get a fresh plan id")
	}
	if revision.BasedOn != original.PlanID {
		t.Errorf("expected BasedOn %s, got %s", original.PlanID, revision.BasedOn)
	}
	if revision.Metadata.Version != 2 {
		t.Errorf("expected version 2, got %d", revision.Metadata.Version)
	}

	factors := revision.Metadata.OptimizationFactors
	if factors[len(factors)-1] != models.FactorUserFeedback {
		t.Errorf("expected user_feedback appended to factors, got %v", factors)
	}

	stored := store.records["alice"]
	if len(stored.StudyPlans) != 2 {
		t.Errorf("expected original and revision retained, got %d plans", len(stored.StudyPlans))
	}
	if stored.StudyPlans[original.PlanID].Schedule.DailySchedule["Monday"][0].DurationMinutes != 45 {
		t.Error("original plan was modified by the revision")
	}
}

func TestUpdatePlanFromFeedback_MissingPlan(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	_, err := p.UpdatePlanFromFeedback("alice", "nope", models.ScheduleFeedback{})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestGetDailySchedule_StampsDateAndCopies(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	if _, err := p.CreateStudyPlan("alice"); err != nil {
		t.Fatalf("CreateStudyPlan failed: %v", err)
	}

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local) // a Monday
	sessions, err := p.GetDailySchedule("alice", monday)
	if err != nil {
		t.Fatalf("GetDailySchedule failed: %v", err)
	}
	if len(sessions) == 0 {
		t.Fatal("expected Monday sessions")
	}
	if sessions[0].Date != "2026-08-24" {
		t.Errorf("expected date stamp 2026-08-24, got %s", sessions[0].Date)
	}

	// Mutating the returned slice must not touch the stored plan
	sessions[0].Subject = "tampered"
	again, err := p.GetDailySchedule("alice", monday)
	if err != nil {
		t.Fatalf("GetDailySchedule failed: %v", err)
	}
	if again[0].Subject == "tampered" {
		t.Error("returned sessions alias the stored plan")
	}
}

func TestGetDailySchedule_NoPlans(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	sessions, err := p.GetDailySchedule("alice", time.Now())
	if err != nil {
		t.Fatalf("expected no error for a user without plans, got %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty schedule, got %d sessions", len(sessions))
	}
}

func TestGetWeeklySchedule_SevenDays(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	if _, err := p.CreateStudyPlan("alice"); err != nil {
		t.Fatalf("CreateStudyPlan failed: %v", err)
	}

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	weekly, err := p.GetWeeklySchedule("alice", start)
	if err != nil {
		t.Fatalf("GetWeeklySchedule failed: %v", err)
	}
	if len(weekly) != 7 {
		t.Errorf("expected 7 days, got %d", len(weekly))
	}
	if len(weekly["2026-08-24"]) == 0 {
		t.Error("expected sessions on the Monday")
	}
	if _, ok := weekly["2026-08-30"]; !ok {
		t.Error("expected the seventh day key to be present")
	}
}

func TestRecordSessionCompletion_UpdatesHistoryAndMetrics(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	session := models.SessionRecord{
		Subject:         "Math",
		StartTime:       "09:00",
		DurationMinutes: 45,
		Date:            "2026-08-24",
	}

	first, err := p.RecordSessionCompletion("alice", session, models.CompletionData{Rating: 4, Notes: "solid"})
	if err != nil {
		t.Fatalf("RecordSessionCompletion failed: %v", err)
	}
	if first.Rating != 4 || first.Notes != "solid" {
		t.Errorf("completion data not merged: %+v", first)
	}
	if first.CompletedAt == "" {
		t.Error("expected CompletedAt to be stamped")
	}

	if _, err := p.RecordSessionCompletion("alice", session, models.CompletionData{Rating: 2}); err != nil {
		t.Fatalf("second completion failed: %v", err)
	}

	record := store.records["alice"]
	if len(record.CompletedSessions) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(record.CompletedSessions))
	}

	metrics := record.PerformanceMetrics
	if metrics == nil {
		t.Fatal("expected performance metrics")
	}
	math := metrics.Subjects["Math"]
	if math.Sessions != 2 {
		t.Errorf("expected 2 Math sessions, got %d", math.Sessions)
	}
	if math.TotalRating != 6 {
		t.Errorf("expected total rating 6, got %d", math.TotalRating)
	}
	if math.TotalDuration != 90 {
		t.Errorf("expected total duration 90, got %d", math.TotalDuration)
	}
	if metrics.TimeOfDay[models.Morning].Sessions != 2 {
		t.Errorf("expected 2 morning sessions, got %d", metrics.TimeOfDay[models.Morning].Sessions)
	}
	if metrics.DaysOfWeek["Monday"].Sessions != 2 {
		t.Errorf("expected 2 Monday sessions, got %d", metrics.DaysOfWeek["Monday"].Sessions)
	}
}

func TestRecordSessionCompletion_PartialFields(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	// No start time and a bad date: only the subject step applies.
	session := models.SessionRecord{Subject: "Math", Date: "not-a-date"}
	if _, err := p.RecordSessionCompletion("alice", session, models.CompletionData{}); err != nil {
		t.Fatalf("RecordSessionCompletion failed: %v", err)
	}

	metrics := store.records["alice"].PerformanceMetrics
	if metrics.Subjects["Math"].Sessions != 1 {
		t.Errorf("expected subject step to apply, got %d sessions", metrics.Subjects["Math"].Sessions)
	}
	if metrics.Subjects["Math"].TotalRating != 0 {
		t.Errorf("zero rating must not accumulate, got %d", metrics.Subjects["Math"].TotalRating)
	}
	if len(metrics.DaysOfWeek) != 0 {
		t.Errorf("weekday step should be skipped for a bad date, got %v", metrics.DaysOfWeek)
	}
}

func TestRecordSessionCompletion_SingleSave(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	before := store.saves
	if _, err := p.RecordSessionCompletion("alice", models.SessionRecord{Subject: "Math"}, models.CompletionData{Rating: 3}); err != nil {
		t.Fatalf("RecordSessionCompletion failed: %v", err)
	}
	if store.saves-before != 1 {
		t.Errorf("expected exactly one save, got %d", store.saves-before)
	}
}

func TestRecordFeedback(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	if err := p.RecordFeedback("alice", "session-1", models.SessionFeedback{Rating: 5, Comments: "great"}); err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}

	feedback := store.records["alice"].SessionFeedback["session-1"]
	if feedback.Rating != 5 || feedback.Comments != "great" {
		t.Errorf("feedback not stored: %+v", feedback)
	}
	if feedback.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be stamped")
	}
}

func TestUpdateUserProfile(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	name := "Alice"
	length := 30
	err := p.UpdateUserProfile("alice", models.ProfileUpdate{
		PersonalInfo:     &models.PersonalInfoUpdate{Name: &name},
		StudyPreferences: &models.StudyPreferencesUpdate{SessionLengthPreference: &length},
	})
	if err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}

	record := store.records["alice"]
	if record.PersonalInfo.Name != "Alice" {
		t.Errorf("name not merged: %q", record.PersonalInfo.Name)
	}
	if record.ProductivityPatterns.SessionLengthPreference != 30 {
		t.Errorf("session length not synced into patterns: %d", record.ProductivityPatterns.SessionLengthPreference)
	}
	if record.StudyPreferences.PreferredSubjects == nil {
		t.Error("untouched preferences were lost")
	}
}

func TestPredictOptimalStudyTime_Passthrough(t *testing.T) {
	store := newMemStore()
	seedUser(store, "alice")
	p := New(store)

	record := store.records["alice"]
	record.CompletedSessions = []models.SessionRecord{
		{Subject: "Math", StartTime: "18:00", PerformanceRating: 5},
	}
	store.records["alice"] = record

	bucket, err := p.PredictOptimalStudyTime("alice", "Math")
	if err != nil {
		t.Fatalf("PredictOptimalStudyTime failed: %v", err)
	}
	if bucket != models.Evening {
		t.Errorf("expected evening, got %s", bucket)
	}
}
