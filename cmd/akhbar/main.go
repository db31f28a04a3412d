// Command akhbar builds a Pakistan current-affairs newsletter from the
// Dawn and Express Tribune feeds, as a static HTML page or an
// interactive terminal dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/akhbar/internal/application/settings"
	"github.com/tesso57/akhbar/internal/application/usecase"
	"github.com/tesso57/akhbar/internal/domain/press"
	"github.com/tesso57/akhbar/internal/infrastructure/config"
	"github.com/tesso57/akhbar/internal/infrastructure/feed"
	"github.com/tesso57/akhbar/internal/infrastructure/schedule"
	"github.com/tesso57/akhbar/internal/infrastructure/scrape"
	"github.com/tesso57/akhbar/internal/presentation/static"
	"github.com/tesso57/akhbar/internal/presentation/tui"
)

// CLI defines the akhbar command tree.
type CLI struct {
	Config  string `help:"Path to the config file." type:"path" short:"c"`
	Verbose bool   `help:"Enable debug logging." short:"v"`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Fetch the feeds once and write the newsletter."`
	Dash    DashCmd    `cmd:"" help:"Browse the digest in an interactive terminal dashboard."`
	Watch   WatchCmd   `cmd:"" help:"Keep rebuilding the newsletter on a daily schedule."`
	Sources SourcesCmd `cmd:"" help:"List the compiled-in feeds and subjects."`
}

// runEnv carries what every subcommand needs.
type runEnv struct {
	ctx    context.Context
	cfg    settings.Settings
	logger *slog.Logger
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("akhbar"),
		kong.Description("Pakistan current-affairs newsletter from Dawn and The Express Tribune."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbose)
	slog.SetDefault(logger)

	store, err := config.Load(cli.Config)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &runEnv{ctx: ctx, cfg: store.Settings, logger: logger}
	if err := kctx.Run(env); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// BuildCmd fetches every feed once and writes the newsletter page.
type BuildCmd struct {
	Output string `help:"Write the newsletter here instead of the configured path." type:"path"`
	Max    int    `help:"Articles per subject, overriding the configured cap."`
}

func (c *BuildCmd) Run(env *runEnv) error {
	svc := &usecase.DigestService{Fetcher: feed.Fetcher{}, Logger: env.logger}

	max := env.cfg.StaticMax()
	if c.Max > 0 {
		max = c.Max
	}

	digest, report := svc.Build(env.ctx, usecase.BuildOptions{MaxPerSubject: max})
	if err := env.ctx.Err(); err != nil {
		return err
	}

	out := env.cfg.Output
	if c.Output != "" {
		out = c.Output
	}
	if err := static.WriteFile(out, digest); err != nil {
		return fmt.Errorf("write newsletter: %w", err)
	}

	env.logger.Info("newsletter written",
		"path", out,
		"articles", digest.Total(),
		"feeds_ok", report.Succeeded,
		"feeds_failed", report.Failed,
	)
	return nil
}

// DashCmd runs the interactive dashboard.
type DashCmd struct{}

func (c *DashCmd) Run(env *runEnv) error {
	// The alt screen owns the terminal; keep log noise out of it.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := &usecase.DigestService{Fetcher: feed.Fetcher{}, Logger: quiet}
	digests := usecase.NewDigestCache(svc, env.cfg.Dashboard.TTL())
	bodies := usecase.NewBodyService(&scrape.Extractor{})

	program := tea.NewProgram(
		tui.NewModel(env.cfg, digests, bodies),
		tea.WithAltScreen(),
		tea.WithContext(env.ctx),
	)
	if _, err := program.Run(); err != nil {
		// A signal kills the program; that is an orderly exit here.
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}

// WatchCmd rebuilds the newsletter immediately and then once a day.
type WatchCmd struct {
	At string `help:"Daily rebuild time (HH:MM)." default:"06:00"`
}

func (c *WatchCmd) Run(env *runEnv) error {
	svc := &usecase.DigestService{Fetcher: feed.Fetcher{}, Logger: env.logger}

	rebuild := func() {
		digest, report := svc.Build(env.ctx, usecase.BuildOptions{MaxPerSubject: env.cfg.StaticMax()})
		if env.ctx.Err() != nil {
			return
		}
		if err := static.WriteFile(env.cfg.Output, digest); err != nil {
			env.logger.Error("newsletter write failed", "path", env.cfg.Output, "err", err)
			return
		}
		env.logger.Info("newsletter written",
			"path", env.cfg.Output,
			"articles", digest.Total(),
			"feeds_ok", report.Succeeded,
			"feeds_failed", report.Failed,
		)
	}

	rebuild()

	sched := schedule.New(time.Local)
	if err := sched.Daily(c.At, rebuild); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if next, ok := sched.Next(); ok {
		env.logger.Info("watching", "next_rebuild", next.Format(time.RFC3339))
	}

	<-env.ctx.Done()
	env.logger.Info("shutting down")
	return nil
}

// SourcesCmd prints the fetch order and the subject table.
type SourcesCmd struct{}

func (c *SourcesCmd) Run(_ *runEnv) error {
	fmt.Println("Feeds (fetched in this order):")
	for _, source := range press.Sources {
		fmt.Printf("  %s\n", source.Name)
		for _, url := range source.URLs {
			fmt.Printf("    %s\n", url)
		}
	}
	fmt.Println()
	fmt.Println("Subjects (classification order):")
	for i, subject := range press.Subjects {
		fmt.Printf("  %d. %s\n", i+1, subject)
	}
	return nil
}
