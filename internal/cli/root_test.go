package cli

import (
	"testing"

	"github.com/julianstephens/studyplan/internal/config"
	"github.com/julianstephens/studyplan/internal/models"
)

func TestResolveUser(t *testing.T) {
	ctx := &Context{Config: &config.Config{DefaultUser: "alice"}}

	if got, err := ctx.ResolveUser("bob"); err != nil || got != "bob" {
		t.Errorf("flag should win: got %q, %v", got, err)
	}
	if got, err := ctx.ResolveUser(""); err != nil || got != "alice" {
		t.Errorf("default user should apply: got %q, %v", got, err)
	}

	ctx.Config.DefaultUser = ""
	if _, err := ctx.ResolveUser(""); err == nil {
		t.Error("expected an error without a user")
	}
}

func TestParseSlots(t *testing.T) {
	slots, err := ParseSlots("09:00-12:00, 14:00-16:00")
	if err != nil {
		t.Fatalf("ParseSlots failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "12:00" {
		t.Errorf("first slot parsed wrong: %+v", slots[0])
	}
	if slots[1].Start != "14:00" {
		t.Errorf("whitespace not trimmed: %+v", slots[1])
	}

	if slots, err := ParseSlots(""); err != nil || len(slots) != 0 {
		t.Errorf("empty input should yield an empty slot list, got %v, %v", slots, err)
	}

	if _, err := ParseSlots("09:00"); err == nil {
		t.Error("expected an error for a range without a dash")
	}
}

func TestParseTimesOfDay(t *testing.T) {
	buckets, err := ParseTimesOfDay("Morning, evening")
	if err != nil {
		t.Fatalf("ParseTimesOfDay failed: %v", err)
	}
	if len(buckets) != 2 || buckets[0] != models.Morning || buckets[1] != models.Evening {
		t.Errorf("unexpected buckets: %v", buckets)
	}

	if _, err := ParseTimesOfDay("dawn"); err == nil {
		t.Error("expected an error for an unknown bucket")
	}

	if buckets, err := ParseTimesOfDay(""); err != nil || buckets != nil {
		t.Errorf("empty input should yield nil, got %v, %v", buckets, err)
	}
}

func TestParseDifficulty(t *testing.T) {
	if got, err := ParseDifficulty("Hard"); err != nil || got != models.DifficultyHard {
		t.Errorf("expected hard, got %q, %v", got, err)
	}
	if got, err := ParseDifficulty("very_easy"); err != nil || got != models.DifficultyVeryEasy {
		t.Errorf("expected very_easy, got %q, %v", got, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Math, History,, Biology ")
	want := []string{"Math", "History", "Biology"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if SplitList("") != nil {
		t.Error("empty input should yield nil")
	}
}

func TestNormalizeWeekday(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"monday", "Monday"},
		{"MON", "Monday"},
		{" Friday ", "Friday"},
		{"sun", "Sunday"},
		{"notaday", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeWeekday(tc.input); got != tc.want {
			t.Errorf("normalizeWeekday(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
