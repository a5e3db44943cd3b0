package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// Builder turns a user profile into a weekly study schedule. It holds no
// state between runs: two builds from the same profile produce the same
// daily schedules.
type Builder struct {
	// Productivity and difficulty weight tables. The packing algorithm does
	// not consume them yet; they are kept as tuning points for weighted slot
	// assignment.
	productivityWeights map[models.TimeOfDay]float64
	difficultyWeights   map[models.Difficulty]float64
}

// New creates a Builder with default weight tables
func New() *Builder {
	return &Builder{
		productivityWeights: map[models.TimeOfDay]float64{
			models.Morning:   1.0,
			models.Afternoon: 0.8,
			models.Evening:   0.7,
			models.Night:     0.5,
		},
		difficultyWeights: map[models.Difficulty]float64{
			models.DifficultyVeryEasy: 0.5,
			models.DifficultyEasy:     0.7,
			models.DifficultyMedium:   1.0,
			models.DifficultyHard:     1.3,
			models.DifficultyVeryHard: 1.5,
		},
	}
}

// CreateOptimizedSchedule builds a weekly schedule from the user's
// availability, subject preferences and productivity patterns. Malformed
// slots are skipped rather than failing the whole build, so a partially bad
// profile degrades to a sparser schedule.
func (b *Builder) CreateOptimizedSchedule(record models.UserRecord) models.WeeklySchedule {
	subjects := b.extractSubjects(record.StudyPreferences)

	schedule := models.WeeklySchedule{
		DailySchedule: make(map[string][]models.StudySession, len(record.TimeAvailability)),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		Version:       1,
	}

	for day, slots := range record.TimeAvailability {
		schedule.DailySchedule[day] = b.buildDaySchedule(slots, subjects, record.ProductivityPatterns)
	}

	schedule.WeeklyOverview = b.buildWeeklyOverview(schedule.DailySchedule)

	return schedule
}

// extractSubjects builds one descriptor per named subject. Preferred subjects
// default to medium difficulty/priority and are promoted to hard/high when
// also listed as difficult; difficult subjects absent from the preferred list
// are appended as hard/high.
func (b *Builder) extractSubjects(prefs models.StudyPreferences) []models.Subject {
	difficult := make(map[string]bool, len(prefs.DifficultSubjects))
	for _, name := range prefs.DifficultSubjects {
		difficult[name] = true
	}

	var subjects []models.Subject
	seen := make(map[string]bool, len(prefs.PreferredSubjects))

	for _, name := range prefs.PreferredSubjects {
		difficulty := models.DifficultyMedium
		priority := models.PriorityMedium
		if difficult[name] {
			difficulty = models.DifficultyHard
			priority = models.PriorityHigh
		}
		subjects = append(subjects, models.Subject{
			Name:        name,
			Difficulty:  difficulty,
			Priority:    priority,
			OptimalTime: optimalTimeForDifficulty(difficulty),
		})
		seen[name] = true
	}

	for _, name := range prefs.DifficultSubjects {
		if seen[name] {
			continue
		}
		subjects = append(subjects, models.Subject{
			Name:        name,
			Difficulty:  models.DifficultyHard,
			Priority:    models.PriorityHigh,
			OptimalTime: optimalTimeForDifficulty(models.DifficultyHard),
		})
	}

	return subjects
}

// optimalTimeForDifficulty assigns a study window heuristically: hard
// subjects go to the morning when the user is fresh.
func optimalTimeForDifficulty(difficulty models.Difficulty) models.TimeOfDay {
	switch difficulty {
	case models.DifficultyHard, models.DifficultyVeryHard:
		return models.Morning
	case models.DifficultyMedium:
		return models.Afternoon
	default:
		return models.Evening
	}
}

// buildDaySchedule packs sessions into one day's availability slots. Subjects
// are consumed round-robin: a used subject goes to the back of the candidate
// queue as long as other candidates remain. The queue keeps its initial
// priority order; it is not re-sorted between sessions.
func (b *Builder) buildDaySchedule(slots []models.TimeSlot, subjects []models.Subject, patterns models.ProductivityPatterns) []models.StudySession {
	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})

	sessionLength := patterns.SessionLengthPreference
	if sessionLength <= 0 {
		sessionLength = constants.DefaultSessionLengthMin
	}
	breakDuration := patterns.BreakDuration

	daySchedule := []models.StudySession{}

	for _, slot := range slots {
		if slot.Start == "" || slot.End == "" {
			continue
		}

		startMin, err := utils.ParseTimeToMinutes(slot.Start)
		if err != nil {
			logger.Debug("Skipping slot with unparseable start time", "start", slot.Start)
			continue
		}
		endMin, err := utils.ParseTimeToMinutes(slot.End)
		if err != nil {
			logger.Debug("Skipping slot with unparseable end time", "end", slot.End)
			continue
		}

		if endMin-startMin < constants.MinSlotMinutes {
			continue
		}

		timeOfDay := models.TimeOfDayForHour(startMin / 60)

		// Candidates: subjects whose optimal time matches the slot, or any
		// subject when the slot falls in a user-declared peak window.
		var queue []models.Subject
		for _, subject := range sorted {
			if subject.OptimalTime == timeOfDay || containsTimeOfDay(patterns.PeakProductivityTimes, timeOfDay) {
				queue = append(queue, subject)
			}
		}
		if len(queue) == 0 && len(sorted) > 0 {
			queue = append(queue, sorted...)
		}

		cursor := startMin
		for cursor+sessionLength <= endMin && len(queue) > 0 {
			subject := queue[0]
			queue = queue[1:]

			sessionEnd := cursor + sessionLength
			breakAfter := 0
			if sessionEnd < endMin {
				breakAfter = breakDuration
			}

			daySchedule = append(daySchedule, models.StudySession{
				Subject:         subject.Name,
				StartTime:       utils.FormatMinutes(cursor),
				EndTime:         utils.FormatMinutes(sessionEnd),
				DurationMinutes: sessionLength,
				Difficulty:      subject.Difficulty,
				BreakAfter:      breakAfter,
			})

			cursor = sessionEnd + breakAfter

			// Round-robin reuse while other candidates remain
			if len(queue) > 0 {
				queue = append(queue, subject)
			}
		}
	}

	return daySchedule
}

func containsTimeOfDay(list []models.TimeOfDay, timeOfDay models.TimeOfDay) bool {
	for _, item := range list {
		if item == timeOfDay {
			return true
		}
	}
	return false
}

// buildWeeklyOverview aggregates totals, per-subject minutes, session counts
// and percentage shares (one decimal place) across all days
func (b *Builder) buildWeeklyOverview(dailySchedule map[string][]models.StudySession) models.WeeklyOverview {
	totalMinutes := 0
	subjectTime := make(map[string]int)
	subjectSessions := make(map[string]int)

	for _, sessions := range dailySchedule {
		for _, session := range sessions {
			totalMinutes += session.DurationMinutes
			subjectTime[session.Subject] += session.DurationMinutes
			subjectSessions[session.Subject]++
		}
	}

	subjectPercentage := make(map[string]float64, len(subjectTime))
	for subject, minutes := range subjectTime {
		if totalMinutes > 0 {
			subjectPercentage[subject] = roundToOneDecimal(float64(minutes) / float64(totalMinutes) * 100)
		} else {
			subjectPercentage[subject] = 0
		}
	}

	return models.WeeklyOverview{
		TotalStudyTimeMinutes: totalMinutes,
		TotalStudyTimeHours:   roundToOneDecimal(float64(totalMinutes) / 60),
		SubjectTimeMinutes:    subjectTime,
		SubjectSessions:       subjectSessions,
		SubjectPercentage:     subjectPercentage,
	}
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
