package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/planner"
)

type PlanCreateCmd struct {
	User string `short:"u" help:"User identifier."`
}

func (c *PlanCreateCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	plan, err := ctx.Planner.CreateStudyPlan(userID)
	if err != nil {
		return err
	}

	fmt.Printf("Created plan %s (version %d)\n", plan.PlanID, plan.Metadata.Version)
	printOverview(plan.Schedule.WeeklyOverview)
	return nil
}

type PlanShowCmd struct {
	Plan string `arg:"" optional:"" help:"Plan id; omit for the latest plan."`
	User string `short:"u" help:"User identifier."`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	var plan models.StudyPlan
	if c.Plan == "" {
		plan, err = ctx.Planner.GetLatestStudyPlan(userID)
	} else {
		plan, err = ctx.Planner.GetStudyPlan(userID, c.Plan)
	}
	if err != nil {
		if errors.Is(err, planner.ErrPlanNotFound) {
			fmt.Printf("No study plan found for %s. Create one with 'studyplan plan create'.\n", userID)
			return nil
		}
		return err
	}

	fmt.Printf("Plan %s (version %d, created %s)\n", plan.PlanID, plan.Metadata.Version, plan.CreatedAt.Format(constants.DateTimeFormat))
	if plan.BasedOn != "" {
		fmt.Printf("Based on: %s\n", plan.BasedOn)
	}
	fmt.Printf("Optimization factors: %s\n", strings.Join(plan.Metadata.OptimizationFactors, ", "))
	fmt.Println()

	for _, day := range constants.Weekdays {
		sessions := plan.Schedule.DailySchedule[day]
		if len(sessions) == 0 {
			continue
		}
		fmt.Printf("%s:\n", day)
		for _, session := range sessions {
			printSession(session)
		}
	}

	fmt.Println()
	printOverview(plan.Schedule.WeeklyOverview)
	return nil
}

type PlanListCmd struct {
	User string `short:"u" help:"User identifier."`
}

func (c *PlanListCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	record, err := ctx.Store.LoadUser(userID)
	if err != nil {
		return err
	}

	if len(record.StudyPlans) == 0 {
		fmt.Printf("No study plans for %s.\n", userID)
		return nil
	}

	plans := make([]models.StudyPlan, 0, len(record.StudyPlans))
	for _, plan := range record.StudyPlans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].CreatedAt.Before(plans[j].CreatedAt) })

	for _, plan := range plans {
		line := fmt.Sprintf("%s  v%d  %s", plan.PlanID, plan.Metadata.Version, plan.CreatedAt.Format(constants.DateTimeFormat))
		if plan.BasedOn != "" {
			line += fmt.Sprintf("  (revises %s)", plan.BasedOn)
		}
		fmt.Println(line)
	}
	return nil
}

type PlanReviseCmd struct {
	Plan          string `arg:"" optional:"" help:"Plan id to revise; omit for the latest plan."`
	User          string `short:"u" help:"User identifier."`
	SessionLength int    `help:"New preferred session length in minutes."`
	Difficulty    string `help:"Subject difficulty overrides as subject=level pairs, comma-separated."`
	Comments      string `help:"Free-form feedback comments."`
}

func (c *PlanReviseCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	planID := c.Plan
	if planID == "" {
		latest, err := ctx.Planner.GetLatestStudyPlan(userID)
		if err != nil {
			return err
		}
		planID = latest.PlanID
	}

	feedback := models.ScheduleFeedback{
		PreferredSessionLength: c.SessionLength,
		Comments:               c.Comments,
	}

	if c.Difficulty != "" {
		adjustments := make(map[string]models.Difficulty)
		for _, pair := range SplitList(c.Difficulty) {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) != 2 {
				return fmt.Errorf("invalid difficulty override %q: expected subject=level", pair)
			}
			level, err := ParseDifficulty(kv[1])
			if err != nil {
				return err
			}
			adjustments[strings.TrimSpace(kv[0])] = level
		}
		feedback.SubjectDifficultyAdjustments = adjustments
	}

	revision, err := ctx.Planner.UpdatePlanFromFeedback(userID, planID, feedback)
	if err != nil {
		return err
	}

	fmt.Printf("Created revision %s (version %d, based on %s)\n", revision.PlanID, revision.Metadata.Version, revision.BasedOn)
	printOverview(revision.Schedule.WeeklyOverview)
	return nil
}

func printSession(session models.StudySession) {
	line := fmt.Sprintf("  %s-%s  %-20s %3d min  %s", session.StartTime, session.EndTime, session.Subject, session.DurationMinutes, session.Difficulty)
	if session.BreakAfter > 0 {
		line += fmt.Sprintf("  (+%d min break)", session.BreakAfter)
	}
	fmt.Println(line)
}

func printOverview(overview models.WeeklyOverview) {
	fmt.Printf("Weekly total: %.1f hours (%d minutes)\n", overview.TotalStudyTimeHours, overview.TotalStudyTimeMinutes)

	subjects := make([]string, 0, len(overview.SubjectTimeMinutes))
	for subject := range overview.SubjectTimeMinutes {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	for _, subject := range subjects {
		fmt.Printf("  %-20s %4d min  %2d sessions  %5.1f%%\n",
			subject,
			overview.SubjectTimeMinutes[subject],
			overview.SubjectSessions[subject],
			overview.SubjectPercentage[subject])
	}
}
