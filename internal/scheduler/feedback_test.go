package scheduler

import (
	"testing"

	"github.com/julianstephens/studyplan/internal/models"
)

func sampleSchedule() models.WeeklySchedule {
	return models.WeeklySchedule{
		DailySchedule: map[string][]models.StudySession{
			"Monday": {
				{Subject: "Math", StartTime: "09:00", EndTime: "09:45", DurationMinutes: 45, Difficulty: models.DifficultyHard, BreakAfter: 5},
				{Subject: "History", StartTime: "09:50", EndTime: "10:35", DurationMinutes: 45, Difficulty: models.DifficultyMedium},
			},
		},
		Version: 1,
	}
}

func TestAdjustScheduleFromFeedback_EmptyFeedbackKeepsSessions(t *testing.T) {
	builder := New()
	original := sampleSchedule()

	adjusted := builder.AdjustScheduleFromFeedback(original, models.ScheduleFeedback{})

	if adjusted.Version != 2 {
		t.Errorf("expected version 2, got %d", adjusted.Version)
	}
	sessions := adjusted.DailySchedule["Monday"]
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	for i, session := range sessions {
		if session != original.DailySchedule["Monday"][i] {
			t.Errorf("session %d changed without feedback: %+v", i, session)
		}
	}
}

func TestAdjustScheduleFromFeedback_SessionLength(t *testing.T) {
	builder := New()

	adjusted := builder.AdjustScheduleFromFeedback(sampleSchedule(), models.ScheduleFeedback{
		PreferredSessionLength: 60,
	})

	sessions := adjusted.DailySchedule["Monday"]
	if sessions[0].EndTime != "10:00" || sessions[0].DurationMinutes != 60 {
		t.Errorf("expected 09:00-10:00 at 60 min, got %s-%s at %d", sessions[0].StartTime, sessions[0].EndTime, sessions[0].DurationMinutes)
	}
	if sessions[1].EndTime != "10:50" {
		t.Errorf("expected second session to end 10:50, got %s", sessions[1].EndTime)
	}

	if adjusted.WeeklyOverview.TotalStudyTimeMinutes != 120 {
		t.Errorf("overview should be recomputed to 120 minutes, got %d", adjusted.WeeklyOverview.TotalStudyTimeMinutes)
	}
}

func TestAdjustScheduleFromFeedback_LateSessionWrapsPastMidnight(t *testing.T) {
	builder := New()
	schedule := models.WeeklySchedule{
		DailySchedule: map[string][]models.StudySession{
			"Friday": {
				{Subject: "Math", StartTime: "23:30", EndTime: "23:59", DurationMinutes: 29},
			},
		},
		Version: 1,
	}

	adjusted := builder.AdjustScheduleFromFeedback(schedule, models.ScheduleFeedback{
		PreferredSessionLength: 60,
	})

	session := adjusted.DailySchedule["Friday"][0]
	if session.EndTime != "00:30" {
		t.Errorf("end past midnight should wrap to 00:30, got %s", session.EndTime)
	}
	if session.DurationMinutes != 60 {
		t.Errorf("expected 60 minute duration, got %d", session.DurationMinutes)
	}
}

func TestAdjustScheduleFromFeedback_DifficultyOverride(t *testing.T) {
	builder := New()

	adjusted := builder.AdjustScheduleFromFeedback(sampleSchedule(), models.ScheduleFeedback{
		SubjectDifficultyAdjustments: map[string]models.Difficulty{
			"History": models.DifficultyHard,
		},
	})

	sessions := adjusted.DailySchedule["Monday"]
	if sessions[1].Difficulty != models.DifficultyHard {
		t.Errorf("expected History promoted to hard, got %s", sessions[1].Difficulty)
	}
	if sessions[0].Difficulty != models.DifficultyHard {
		t.Errorf("Math difficulty should be unchanged, got %s", sessions[0].Difficulty)
	}
}

func TestAdjustScheduleFromFeedback_InputUnmodified(t *testing.T) {
	builder := New()
	original := sampleSchedule()

	builder.AdjustScheduleFromFeedback(original, models.ScheduleFeedback{
		PreferredSessionLength: 90,
		SubjectDifficultyAdjustments: map[string]models.Difficulty{
			"Math": models.DifficultyVeryHard,
		},
	})

	sessions := original.DailySchedule["Monday"]
	if sessions[0].DurationMinutes != 45 {
		t.Errorf("input duration mutated: %d", sessions[0].DurationMinutes)
	}
	if sessions[0].Difficulty != models.DifficultyHard {
		t.Errorf("input difficulty mutated: %s", sessions[0].Difficulty)
	}
	if original.Version != 1 {
		t.Errorf("input version mutated: %d", original.Version)
	}
}

func TestAdjustScheduleFromFeedback_ZeroVersionTreatedAsOne(t *testing.T) {
	builder := New()
	schedule := sampleSchedule()
	schedule.Version = 0

	adjusted := builder.AdjustScheduleFromFeedback(schedule, models.ScheduleFeedback{})
	if adjusted.Version != 2 {
		t.Errorf("expected version 2 from an unversioned schedule, got %d", adjusted.Version)
	}
}

func TestAdjustScheduleFromFeedback_RecordsFeedback(t *testing.T) {
	builder := New()
	feedback := models.ScheduleFeedback{Comments: "mornings are rough"}

	adjusted := builder.AdjustScheduleFromFeedback(sampleSchedule(), feedback)
	if adjusted.AdjustedBasedOn == nil {
		t.Fatal("expected feedback to be recorded on the revision")
	}
	if adjusted.AdjustedBasedOn.Comments != "mornings are rough" {
		t.Errorf("unexpected recorded comments: %q", adjusted.AdjustedBasedOn.Comments)
	}
}
