package planner

import (
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// updatePerformanceMetrics folds one completed session into the user's
// aggregates. Each step (subject, time of day, weekday) is independent: a
// missing or unparseable field skips only its own step, so partial updates
// are expected.
func updatePerformanceMetrics(record *models.UserRecord, session models.SessionRecord) {
	if record.PerformanceMetrics == nil {
		record.PerformanceMetrics = models.NewPerformanceMetrics()
	}
	metrics := record.PerformanceMetrics

	if session.Subject != "" {
		subject, ok := metrics.Subjects[session.Subject]
		if !ok {
			subject = &models.SubjectMetrics{}
			metrics.Subjects[session.Subject] = subject
		}
		subject.Sessions++
		subject.TotalDuration += session.DurationMinutes
		if session.Rating != 0 {
			subject.TotalRating += session.Rating
		}
	}

	if session.StartTime != "" {
		startMin, err := utils.ParseTimeToMinutes(session.StartTime)
		if err != nil {
			logger.Debug("Skipping time-of-day metrics for unparseable start time", "start", session.StartTime)
		} else {
			timeOfDay := models.TimeOfDayForHour(startMin / 60)
			bucket, ok := metrics.TimeOfDay[timeOfDay]
			if !ok {
				bucket = &models.BucketMetrics{}
				metrics.TimeOfDay[timeOfDay] = bucket
			}
			bucket.Sessions++
			if session.Rating != 0 {
				bucket.TotalRating += session.Rating
			}
		}
	}

	if session.Date != "" {
		date, err := utils.ParseDate(session.Date)
		if err != nil {
			logger.Debug("Skipping weekday metrics for unparseable date", "date", session.Date)
		} else {
			day := utils.WeekdayName(date)
			bucket, ok := metrics.DaysOfWeek[day]
			if !ok {
				bucket = &models.BucketMetrics{}
				metrics.DaysOfWeek[day] = bucket
			}
			bucket.Sessions++
			if session.Rating != 0 {
				bucket.TotalRating += session.Rating
			}
		}
	}
}
