package scheduler

import (
	"time"

	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// AdjustScheduleFromFeedback returns a revised copy of a schedule with the
// requested adjustments applied. The input schedule is never modified.
//
// A requested session length rewrites every session's end time and duration
// without clipping against the original slot boundaries, so a revised session
// can run past its slot's end; an end past midnight wraps to the next day's
// clock. That matches the product's current behavior and is left uncorrected
// pending clarification.
func (b *Builder) AdjustScheduleFromFeedback(schedule models.WeeklySchedule, feedback models.ScheduleFeedback) models.WeeklySchedule {
	version := schedule.Version
	if version == 0 {
		version = 1
	}

	adjusted := models.WeeklySchedule{
		DailySchedule:   copyDailySchedule(schedule.DailySchedule),
		WeeklyOverview:  schedule.WeeklyOverview,
		GeneratedAt:     time.Now().Format(time.RFC3339),
		Version:         version + 1,
		AdjustedBasedOn: &feedback,
	}

	if feedback.PreferredSessionLength > 0 {
		newLength := feedback.PreferredSessionLength
		for day, sessions := range adjusted.DailySchedule {
			for i := range sessions {
				startMin, err := utils.ParseTimeToMinutes(sessions[i].StartTime)
				if err != nil {
					logger.Debug("Skipping session with unparseable start time", "day", day, "start", sessions[i].StartTime)
					continue
				}
				sessions[i].EndTime = utils.FormatMinutes(startMin + newLength)
				sessions[i].DurationMinutes = newLength
			}
		}
	}

	if len(feedback.SubjectDifficultyAdjustments) > 0 {
		for subject, difficulty := range feedback.SubjectDifficultyAdjustments {
			for _, sessions := range adjusted.DailySchedule {
				for i := range sessions {
					if sessions[i].Subject == subject {
						sessions[i].Difficulty = difficulty
					}
				}
			}
		}
	}

	adjusted.WeeklyOverview = b.buildWeeklyOverview(adjusted.DailySchedule)

	return adjusted
}

func copyDailySchedule(daily map[string][]models.StudySession) map[string][]models.StudySession {
	copied := make(map[string][]models.StudySession, len(daily))
	for day, sessions := range daily {
		daySessions := make([]models.StudySession, len(sessions))
		copy(daySessions, sessions)
		copied[day] = daySessions
	}
	return copied
}
