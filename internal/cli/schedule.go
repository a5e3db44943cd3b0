package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/utils"
)

type ScheduleDayCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD); defaults to today."`
	User string `short:"u" help:"User identifier."`
}

func (c *ScheduleDayCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	date := time.Now()
	if c.Date != "" {
		date, err = utils.ParseDate(c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", c.Date)
		}
	}

	sessions, err := ctx.Planner.GetDailySchedule(userID, date)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", date.Format(constants.DateFormat), utils.WeekdayName(date))
	if len(sessions) == 0 {
		fmt.Println("  No sessions scheduled.")
		return nil
	}
	for _, session := range sessions {
		printSession(session)
	}
	return nil
}

type ScheduleWeekCmd struct {
	Start string `arg:"" optional:"" help:"Start date (YYYY-MM-DD); defaults to today."`
	User  string `short:"u" help:"User identifier."`
}

func (c *ScheduleWeekCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	start := time.Now()
	if c.Start != "" {
		start, err = utils.ParseDate(c.Start)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", c.Start)
		}
	}

	weekly, err := ctx.Planner.GetWeeklySchedule(userID, start)
	if err != nil {
		return err
	}

	dates := make([]string, 0, len(weekly))
	for date := range weekly {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day, _ := utils.ParseDate(date)
		fmt.Printf("%s (%s)\n", date, utils.WeekdayName(day))
		sessions := weekly[date]
		if len(sessions) == 0 {
			fmt.Println("  No sessions scheduled.")
			continue
		}
		for _, session := range sessions {
			printSession(session)
		}
	}
	return nil
}
