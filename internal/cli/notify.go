package cli

import (
	"fmt"
	"time"
)

type NotifyUpcomingCmd struct {
	User   string `short:"u" help:"User identifier."`
	Window int    `help:"Lookahead window in minutes."`
}

func (c *NotifyUpcomingCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	now := time.Now()
	sessions, err := ctx.Planner.GetDailySchedule(userID, now)
	if err != nil {
		return err
	}

	window := c.Window
	if window == 0 {
		window = ctx.Config.NotificationWindow
	}

	notifications := ctx.Notifier.UpcomingSessionNotifications(sessions, now, window)
	if len(notifications) == 0 {
		fmt.Println("No upcoming sessions in the notification window.")
		return nil
	}
	for _, notification := range notifications {
		fmt.Println(notification.Message)
	}

	for _, session := range sessions {
		if breakNotice := ctx.Notifier.BreakNotification(session, now); breakNotice != nil {
			fmt.Println(breakNotice.Message)
		}
	}
	return nil
}

type NotifyMotivateCmd struct{}

func (c *NotifyMotivateCmd) Run(ctx *Context) error {
	message := ctx.Notifier.MotivationalMessage()
	fmt.Println(message.Message)
	return nil
}

type NotifyProgressCmd struct {
	User string `short:"u" help:"User identifier."`
}

func (c *NotifyProgressCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	now := time.Now()
	sessions, err := ctx.Planner.GetDailySchedule(userID, now)
	if err != nil {
		return err
	}

	record, err := ctx.Store.LoadUser(userID)
	if err != nil {
		return err
	}

	today := now.Format("2006-01-02")
	completed := 0
	for _, session := range record.CompletedSessions {
		if session.Date == today {
			completed++
		}
	}

	progress := ctx.Notifier.ProgressNotification(completed, len(sessions))
	fmt.Printf("%d/%d sessions (%.1f%%)\n", progress.Completed, progress.Total, progress.Percentage)
	fmt.Println(progress.Message)
	return nil
}
