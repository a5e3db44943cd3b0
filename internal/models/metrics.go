package models

// SubjectMetrics accumulates per-subject completion statistics
type SubjectMetrics struct {
	Sessions      int `json:"sessions"`
	TotalRating   int `json:"total_rating"`
	TotalDuration int `json:"total_duration"` // in minutes
}

// BucketMetrics accumulates statistics for a time-of-day or weekday bucket
type BucketMetrics struct {
	Sessions    int `json:"sessions"`
	TotalRating int `json:"total_rating"`
}

// PerformanceMetrics is the per-user aggregate over completed sessions. It is
// updated incrementally on every recorded completion, never recomputed from
// scratch.
type PerformanceMetrics struct {
	Subjects   map[string]*SubjectMetrics   `json:"subjects"`
	TimeOfDay  map[TimeOfDay]*BucketMetrics `json:"time_of_day"`
	DaysOfWeek map[string]*BucketMetrics    `json:"days_of_week"`
}

// NewPerformanceMetrics returns metrics with the four fixed time-of-day
// buckets pre-created
func NewPerformanceMetrics() *PerformanceMetrics {
	tod := make(map[TimeOfDay]*BucketMetrics, len(TimeOfDayOrder))
	for _, bucket := range TimeOfDayOrder {
		tod[bucket] = &BucketMetrics{}
	}
	return &PerformanceMetrics{
		Subjects:   make(map[string]*SubjectMetrics),
		TimeOfDay:  tod,
		DaysOfWeek: make(map[string]*BucketMetrics),
	}
}
