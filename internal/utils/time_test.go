package utils

import (
	"testing"
	"time"
)

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30am", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseTimeToMinutes(tc.input)
		if tc.ok && err != nil {
			t.Errorf("ParseTimeToMinutes(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseTimeToMinutes(%q) expected an error", tc.input)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{65, "01:05"},
		{1440, "00:00"},
		{1455, "00:15"},
	}

	for _, tc := range cases {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatMinutes_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 17 {
		parsed, err := ParseTimeToMinutes(FormatMinutes(minutes))
		if err != nil {
			t.Fatalf("round trip failed at %d: %v", minutes, err)
		}
		if parsed != minutes {
			t.Errorf("round trip %d -> %d", minutes, parsed)
		}
	}
}

func TestCombineDateAndTime(t *testing.T) {
	combined, err := CombineDateAndTime("2026-08-24", "09:30")
	if err != nil {
		t.Fatalf("CombineDateAndTime failed: %v", err)
	}
	want := time.Date(2026, 8, 24, 9, 30, 0, 0, time.Local)
	if !combined.Equal(want) {
		t.Errorf("got %v, want %v", combined, want)
	}

	if _, err := CombineDateAndTime("not-a-date", "09:30"); err == nil {
		t.Error("expected an error for a bad date")
	}
	if _, err := CombineDateAndTime("2026-08-24", "9pm"); err == nil {
		t.Error("expected an error for a bad time")
	}
}

func TestWeekdayName(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	if got := WeekdayName(monday); got != "Monday" {
		t.Errorf("expected Monday, got %s", got)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("09:30") {
		t.Error("09:30 should be valid")
	}
	if ValidateTimeFormat("930") {
		t.Error("930 should be invalid")
	}
}
