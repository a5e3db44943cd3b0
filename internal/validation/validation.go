package validation

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime     ConflictType = "invalid_time"
	ConflictInvertedSlot    ConflictType = "inverted_slot"
	ConflictSlotTooShort    ConflictType = "slot_too_short"
	ConflictOverlappingSlot ConflictType = "overlapping_slots"
	ConflictUnknownWeekday  ConflictType = "unknown_weekday"
	ConflictFieldConstraint ConflictType = "field_constraint"
)

// Conflict represents a detected problem in a user profile
type Conflict struct {
	Type        ConflictType
	Description string
	Day         string   // weekday name (if applicable)
	Items       []string // slot ranges or field names involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates user profiles before scheduling. Struct-tag constraints
// run through go-playground/validator; availability slots get domain checks
// on top.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateProfile checks a user record for problems that would degrade
// scheduling. Conflicts are advisory: the builder skips bad slots on its own,
// but surfacing them lets the user fix the profile instead of silently losing
// study time.
func (v *Validator) ValidateProfile(record models.UserRecord) Result {
	result := Result{Conflicts: []Conflict{}}

	if err := v.validate.Struct(record); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range fieldErrors {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictFieldConstraint,
					Description: fmt.Sprintf("Field %s fails constraint %q", fieldError.Namespace(), fieldError.Tag()),
					Items:       []string{fieldError.Namespace()},
				})
			}
		}
	}

	knownDays := make(map[string]bool, len(constants.Weekdays))
	for _, day := range constants.Weekdays {
		knownDays[day] = true
	}

	for day, slots := range record.TimeAvailability {
		if !knownDays[day] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownWeekday,
				Description: fmt.Sprintf("Availability declared for unknown weekday %q", day),
				Day:         day,
			})
		}
		result.Conflicts = append(result.Conflicts, v.validateDaySlots(day, slots)...)
	}

	return result
}

func (v *Validator) validateDaySlots(day string, slots []models.TimeSlot) []Conflict {
	var conflicts []Conflict

	type span struct {
		start, end int
		label      string
	}
	var spans []span

	for _, slot := range slots {
		label := fmt.Sprintf("%s-%s", slot.Start, slot.End)

		startMin, startErr := utils.ParseTimeToMinutes(slot.Start)
		endMin, endErr := utils.ParseTimeToMinutes(slot.End)
		if startErr != nil || endErr != nil {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("%s: slot %s has an invalid time (expected HH:MM)", day, label),
				Day:         day,
				Items:       []string{label},
			})
			continue
		}

		if endMin <= startMin {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvertedSlot,
				Description: fmt.Sprintf("%s: slot %s ends at or before it starts", day, label),
				Day:         day,
				Items:       []string{label},
			})
			continue
		}

		if endMin-startMin < constants.MinSlotMinutes {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictSlotTooShort,
				Description: fmt.Sprintf("%s: slot %s is shorter than %d minutes and will not be scheduled", day, label, constants.MinSlotMinutes),
				Day:         day,
				Items:       []string{label},
			})
		}

		spans = append(spans, span{start: startMin, end: endMin, label: label})
	}

	// Overlap detection over the parseable slots
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictOverlappingSlot,
				Description: fmt.Sprintf("%s: slots %s and %s overlap", day, spans[i-1].label, spans[i].label),
				Day:         day,
				Items:       []string{spans[i-1].label, spans[i].label},
			})
		}
	}

	return conflicts
}
