package models

import "testing"

func TestTimeOfDayForHour(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{4, Night},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{20, Evening},
		{21, Night},
		{23, Night},
		{0, Night},
	}

	for _, tc := range cases {
		if got := TimeOfDayForHour(tc.hour); got != tc.want {
			t.Errorf("TimeOfDayForHour(%d) = %s, want %s", tc.hour, got, tc.want)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Error("high priority must rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("medium priority must rank before low")
	}
}

func TestSessionRecordEffectiveRating(t *testing.T) {
	record := SessionRecord{Rating: 3}
	if record.EffectiveRating() != 3 {
		t.Errorf("expected fallback to completion rating, got %d", record.EffectiveRating())
	}

	record.PerformanceRating = 5
	if record.EffectiveRating() != 5 {
		t.Errorf("performance rating should win, got %d", record.EffectiveRating())
	}
}

func TestScheduleFeedbackIsEmpty(t *testing.T) {
	if !(ScheduleFeedback{}).IsEmpty() {
		t.Error("zero feedback should be empty")
	}
	if (ScheduleFeedback{Comments: "x"}).IsEmpty() {
		t.Error("feedback with comments is not empty")
	}
	if (ScheduleFeedback{PreferredSessionLength: 30}).IsEmpty() {
		t.Error("feedback with a session length is not empty")
	}
}
