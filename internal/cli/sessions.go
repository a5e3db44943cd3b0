package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

type CompleteCmd struct {
	Subject   string `arg:"" help:"Subject of the completed session."`
	User      string `short:"u" help:"User identifier."`
	Start     string `help:"Session start time (HH:MM)."`
	End       string `help:"Session end time (HH:MM)."`
	Duration  int    `help:"Session duration in minutes."`
	Date      string `help:"Session date (YYYY-MM-DD); defaults to today."`
	Rating    int    `help:"How the session went, 1-5."`
	Notes     string `help:"Free-form notes."`
	Performed int    `name:"performance" help:"Performance rating, 1-5."`
}

func (c *CompleteCmd) Validate() error {
	if c.Rating != 0 && (c.Rating < 1 || c.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if c.Performed != 0 && (c.Performed < 1 || c.Performed > 5) {
		return fmt.Errorf("performance rating must be between 1 and 5")
	}
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time %q: expected HH:MM", c.Start)
	}
	if c.End != "" && !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time %q: expected HH:MM", c.End)
	}
	return nil
}

func (c *CompleteCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	session := models.SessionRecord{
		Subject:           c.Subject,
		StartTime:         c.Start,
		EndTime:           c.End,
		DurationMinutes:   c.Duration,
		Date:              date,
		PerformanceRating: c.Performed,
	}

	completed, err := ctx.Planner.RecordSessionCompletion(userID, session, models.CompletionData{
		Rating: c.Rating,
		Notes:  c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s session for %s", completed.Subject, userID)
	if completed.Rating > 0 {
		fmt.Printf(" (rating %d/5)", completed.Rating)
	}
	fmt.Println()
	return nil
}

type FeedbackCmd struct {
	Session  string `arg:"" help:"Session identifier to attach feedback to."`
	User     string `short:"u" help:"User identifier."`
	Rating   int    `help:"How the session went, 1-5."`
	Comments string `help:"Free-form comments."`
}

func (c *FeedbackCmd) Validate() error {
	if c.Rating != 0 && (c.Rating < 1 || c.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if c.Rating == 0 && c.Comments == "" {
		return fmt.Errorf("provide a rating, comments or both")
	}
	return nil
}

func (c *FeedbackCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	err = ctx.Planner.RecordFeedback(userID, c.Session, models.SessionFeedback{
		Rating:   c.Rating,
		Comments: c.Comments,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded feedback for session %s\n", c.Session)
	return nil
}

type PredictCmd struct {
	Subject string `arg:"" help:"Subject to predict for."`
	User    string `short:"u" help:"User identifier."`
}

func (c *PredictCmd) Run(ctx *Context) error {
	userID, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	bucket, err := ctx.Planner.PredictOptimalStudyTime(userID, c.Subject)
	if err != nil {
		return err
	}

	fmt.Printf("Best time of day for %s: %s\n", c.Subject, bucket)
	return nil
}
