package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/studyplan/internal/config"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/notifier"
	"github.com/julianstephens/studyplan/internal/planner"
	"github.com/julianstephens/studyplan/internal/storage"
)

// Context carries the wired application services into command Run methods
type Context struct {
	Config   *config.Config
	Store    storage.Provider
	Planner  *planner.Planner
	Notifier *notifier.Notifier
}

// ResolveUser returns the user id from the flag, falling back to the
// configured default user
func (c *Context) ResolveUser(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if c.Config.DefaultUser != "" {
		return c.Config.DefaultUser, nil
	}
	return "", fmt.Errorf("no user specified: pass --user or set default_user in the config")
}

// ParseSlots parses a comma-separated list of HH:MM-HH:MM ranges
func ParseSlots(s string) ([]models.TimeSlot, error) {
	if strings.TrimSpace(s) == "" {
		return []models.TimeSlot{}, nil
	}

	parts := strings.Split(s, ",")
	slots := make([]models.TimeSlot, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid slot %q: expected HH:MM-HH:MM", part)
		}
		slots = append(slots, models.TimeSlot{
			Start: strings.TrimSpace(bounds[0]),
			End:   strings.TrimSpace(bounds[1]),
		})
	}
	return slots, nil
}

// ParseTimesOfDay parses a comma-separated list of time-of-day bucket names
func ParseTimesOfDay(s string) ([]models.TimeOfDay, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	valid := map[string]models.TimeOfDay{
		"morning":   models.Morning,
		"afternoon": models.Afternoon,
		"evening":   models.Evening,
		"night":     models.Night,
	}

	var buckets []models.TimeOfDay
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		bucket, ok := valid[part]
		if !ok {
			return nil, fmt.Errorf("invalid time of day: %s", part)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// ParseDifficulty maps a difficulty label to its enum value
func ParseDifficulty(s string) (models.Difficulty, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "very_easy":
		return models.DifficultyVeryEasy, nil
	case "easy":
		return models.DifficultyEasy, nil
	case "medium":
		return models.DifficultyMedium, nil
	case "hard":
		return models.DifficultyHard, nil
	case "very_hard":
		return models.DifficultyVeryHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %s", s)
	}
}

// SplitList splits a comma-separated list, trimming whitespace and dropping
// empty entries
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
