package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/cli"
	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/habits"
	"github.com/habitlab/habitlab/internal/logger"
	"github.com/habitlab/habitlab/internal/prefs"
	"github.com/habitlab/habitlab/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/habitlab/habitlab.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize habitlab storage."`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and daily completion."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show streaks, completion rates and totals."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show or update profile flags."`
	Bootstrap cli.BootstrapCmd `cmd:"" help:"Run the first-run remote configuration check."`
	Remind    cli.RemindCmd    `cmd:"" help:"Habit reminders."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker: build good habits, break bad ones"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(dbPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// The store is built here once and handed down; it is the single
	// source of truth and the repository its single writer.
	store := sqlite.NewStore(dbPath)
	appCtx := &cli.Context{
		Store: store,
		Repo:  habits.New(store),
		Prefs: prefs.New(store),
	}

	// Init handles its own store lifecycle
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperr.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		apperr.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
