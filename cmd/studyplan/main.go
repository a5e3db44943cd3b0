package main

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/config"
	apperrors "github.com/julianstephens/studyplan/internal/errors"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/notifier"
	"github.com/julianstephens/studyplan/internal/planner"
	"github.com/julianstephens/studyplan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd   `cmd:"" help:"Initialize studyplan storage."`
	Doctor  cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     cli.TuiCmd    `cmd:"" help:"Browse the latest study plan interactively."`
	Profile struct {
		Init         cli.ProfileInitCmd         `cmd:"" help:"Create a user profile interactively."`
		Show         cli.ProfileShowCmd         `cmd:"" help:"Show a user profile." default:"1"`
		Availability cli.ProfileAvailabilityCmd `cmd:"" help:"Set availability slots for a weekday."`
		Validate     cli.ProfileValidateCmd     `cmd:"" help:"Check a profile for scheduling conflicts."`
	} `cmd:"" help:"Manage user profiles."`
	Plan struct {
		Create cli.PlanCreateCmd `cmd:"" help:"Generate an optimized weekly study plan."`
		Show   cli.PlanShowCmd   `cmd:"" help:"Show a study plan." default:"1"`
		List   cli.PlanListCmd   `cmd:"" help:"List all study plans."`
		Revise cli.PlanReviseCmd `cmd:"" help:"Revise a plan from feedback."`
	} `cmd:"" help:"Manage study plans."`
	Schedule struct {
		Day  cli.ScheduleDayCmd  `cmd:"" help:"Show the schedule for one day." default:"1"`
		Week cli.ScheduleWeekCmd `cmd:"" help:"Show the schedule for seven days."`
	} `cmd:"" help:"Project plan sessions onto calendar dates."`
	Complete cli.CompleteCmd `cmd:"" help:"Record a completed study session."`
	Feedback cli.FeedbackCmd `cmd:"" help:"Attach feedback to a recorded session."`
	Predict  cli.PredictCmd  `cmd:"" help:"Predict the best time of day for a subject."`
	Notify   struct {
		Upcoming cli.NotifyUpcomingCmd `cmd:"" help:"Show notifications for upcoming sessions." default:"1"`
		Progress cli.NotifyProgressCmd `cmd:"" help:"Show today's completion progress."`
		Motivate cli.NotifyMotivateCmd `cmd:"" help:"Print a motivational quote or study tip."`
	} `cmd:"" help:"Generate notifications."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Delete the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check keyring availability." default:"1"`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("studyplan"),
		kong.Description("Personalized study-session scheduler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		apperrors.Fatal(err)
	}

	store, err := newStore(cfg)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config:   cfg,
		Store:    store,
		Planner:  planner.New(store),
		Notifier: notifier.New(),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}

func newStore(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Backend {
	case "json":
		return storage.NewJSONStore(cfg.DataDir), nil
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(cfg.DataDir, "studyplan.db")), nil
	case "postgres":
		// Inline passwords are only tolerated from the encrypted keyring or
		// the environment, never from config files.
		if cfg.DBConnection != "" && storage.HasEmbeddedCredentials(cfg.DBConnection) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed in config; use 'studyplan keyring set' or %s", storage.EnvConnectionString)
		}
		connStr, err := storage.ResolveConnectionString(cfg.DBConnection)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(connStr), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected json, sqlite or postgres)", cfg.Backend)
	}
}
