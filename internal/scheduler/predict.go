package scheduler

import (
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// PredictOptimalStudyTime infers the best time-of-day bucket for a subject
// from historical performance ratings. It averages ratings per bucket and
// returns the bucket with the highest average; ties go to the earlier bucket
// in canonical order. With no usable history it returns morning.
func (b *Builder) PredictOptimalStudyTime(subject string, history []models.SessionRecord) models.TimeOfDay {
	var subjectHistory []models.SessionRecord
	for _, record := range history {
		if record.Subject == subject {
			subjectHistory = append(subjectHistory, record)
		}
	}

	if len(subjectHistory) == 0 {
		return models.Morning
	}

	ratings := make(map[models.TimeOfDay][]int, len(models.TimeOfDayOrder))

	for _, record := range subjectHistory {
		rating := record.EffectiveRating()
		if record.StartTime == "" || rating == 0 {
			continue
		}
		startMin, err := utils.ParseTimeToMinutes(record.StartTime)
		if err != nil {
			continue
		}
		bucket := models.TimeOfDayForHour(startMin / 60)
		ratings[bucket] = append(ratings[bucket], rating)
	}

	best := models.Morning
	bestAverage := 0.0
	for _, bucket := range models.TimeOfDayOrder {
		entries := ratings[bucket]
		if len(entries) == 0 {
			continue
		}
		sum := 0
		for _, rating := range entries {
			sum += rating
		}
		average := float64(sum) / float64(len(entries))
		if average > bestAverage {
			bestAverage = average
			best = bucket
		}
	}

	if bestAverage == 0 {
		return models.Morning
	}
	return best
}
