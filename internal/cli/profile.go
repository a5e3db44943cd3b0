package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/storage"
	"github.com/julianstephens/studyplan/internal/validation"
)

type ProfileInitCmd struct {
	User  string `short:"u" help:"User identifier."`
	Force bool   `help:"Overwrite an existing profile."`
}

func (c *ProfileInitCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	if !c.Force {
		if _, err := ctx.Store.LoadUser(userID); err == nil {
			return fmt.Errorf("profile for %s already exists (use --force to overwrite)", userID)
		} else if !errors.Is(err, storage.ErrUserNotFound) {
			return err
		}
	}

	record := models.NewUserRecord()

	var (
		preferred     string
		difficult     string
		sessionLength string
		breakDuration string
		peakTimes     []string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&record.PersonalInfo.Name),
			huh.NewInput().
				Title("Education level").
				Value(&record.PersonalInfo.EducationLevel),
			huh.NewInput().
				Title("Major or focus area").
				Value(&record.PersonalInfo.Major),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Preferred subjects (comma-separated)").
				Value(&preferred),
			huh.NewInput().
				Title("Difficult subjects (comma-separated)").
				Value(&difficult),
			huh.NewInput().
				Title("Preferred session length in minutes").
				Placeholder(strconv.Itoa(constants.DefaultSessionLengthMin)).
				Value(&sessionLength).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Break duration in minutes").
				Placeholder(strconv.Itoa(constants.DefaultBreakDurationMin)).
				Value(&breakDuration).
				Validate(validateOptionalInt),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Peak productivity times").
				Options(
					huh.NewOption("Morning", "morning"),
					huh.NewOption("Afternoon", "afternoon"),
					huh.NewOption("Evening", "evening"),
					huh.NewOption("Night", "night"),
				).
				Value(&peakTimes),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	record.StudyPreferences.PreferredSubjects = SplitList(preferred)
	record.StudyPreferences.DifficultSubjects = SplitList(difficult)
	record.StudyPreferences.SessionLengthPreference = parseIntOr(sessionLength, constants.DefaultSessionLengthMin)
	record.ProductivityPatterns.SessionLengthPreference = record.StudyPreferences.SessionLengthPreference
	record.ProductivityPatterns.BreakDuration = parseIntOr(breakDuration, constants.DefaultBreakDurationMin)

	peaks, err := ParseTimesOfDay(strings.Join(peakTimes, ","))
	if err != nil {
		return err
	}
	record.ProductivityPatterns.PeakProductivityTimes = peaks

	if err := ctx.Store.SaveUser(userID, record); err != nil {
		return err
	}

	fmt.Printf("Created profile for %s. Add availability with 'studyplan profile availability'.\n", userID)
	return nil
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func parseIntOr(s string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

type ProfileShowCmd struct {
	User string `short:"u" help:"User identifier."`
}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	record, err := ctx.Store.LoadUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			fmt.Printf("No profile found for %s.\n", userID)
			return nil
		}
		return err
	}

	fmt.Printf("Profile: %s\n", userID)
	if record.PersonalInfo.Name != "" {
		fmt.Printf("  Name: %s\n", record.PersonalInfo.Name)
	}
	fmt.Printf("  Preferred subjects: %s\n", strings.Join(record.StudyPreferences.PreferredSubjects, ", "))
	fmt.Printf("  Difficult subjects: %s\n", strings.Join(record.StudyPreferences.DifficultSubjects, ", "))
	fmt.Printf("  Session length: %d min\n", record.StudyPreferences.SessionLengthPreference)
	fmt.Printf("  Break duration: %d min\n", record.ProductivityPatterns.BreakDuration)

	var peaks []string
	for _, bucket := range record.ProductivityPatterns.PeakProductivityTimes {
		peaks = append(peaks, string(bucket))
	}
	fmt.Printf("  Peak times: %s\n", strings.Join(peaks, ", "))

	fmt.Println("  Availability:")
	for _, day := range constants.Weekdays {
		slots := record.TimeAvailability[day]
		if len(slots) == 0 {
			continue
		}
		var ranges []string
		for _, slot := range slots {
			ranges = append(ranges, fmt.Sprintf("%s-%s", slot.Start, slot.End))
		}
		fmt.Printf("    %-9s %s\n", day, strings.Join(ranges, ", "))
	}
	return nil
}

type ProfileAvailabilityCmd struct {
	Day   string `arg:"" help:"Weekday name (e.g. Monday)."`
	Slots string `arg:"" optional:"" help:"Comma-separated HH:MM-HH:MM ranges; empty clears the day."`
	User  string `short:"u" help:"User identifier."`
}

func (c *ProfileAvailabilityCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	day := normalizeWeekday(c.Day)
	if day == "" {
		return fmt.Errorf("invalid weekday: %s", c.Day)
	}

	slots, err := ParseSlots(c.Slots)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{
		TimeAvailability: map[string][]models.TimeSlot{day: slots},
	}
	if err := ctx.Planner.UpdateUserProfile(userID, update); err != nil {
		return err
	}

	fmt.Printf("Updated %s availability for %s (%d slots).\n", day, userID, len(slots))
	return nil
}

func normalizeWeekday(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	for _, day := range constants.Weekdays {
		if strings.ToLower(day) == lowered || strings.ToLower(day[:3]) == lowered {
			return day
		}
	}
	return ""
}

type ProfileValidateCmd struct {
	User string `short:"u" help:"User identifier."`
}

func (c *ProfileValidateCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	record, err := ctx.Store.LoadUser(userID)
	if err != nil {
		return err
	}

	result := validation.New().ValidateProfile(record)
	fmt.Print(result.FormatReport())
	return nil
}
