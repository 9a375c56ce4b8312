package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// runFunc runs the interactive list over a session.
type runFunc func(ctx context.Context, s *app.Session, opts tui.Options, altScreen bool) error

type rootFlags struct {
	configFile  string
	theme       string
	logFile     string
	logLevel    string
	noAltScreen bool
	print       bool
}

// usageError marks bad invocations; they exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		ui.Fail(err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command { return newRootCmd(tui.Run) }

func newRootCmd(run runFunc) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tada [item...]",
		Short: "A tiny todo list for your terminal",
		Long: strings.TrimSpace(`
Keeps a todo list for the length of one session. Items can be added, edited,
reverted to their original text while editing, and deleted. Nothing is saved
when the session ends; use --print to see what was left.`),
		Example: strings.TrimSpace(`
  # Start with an empty list
  tada

  # Start with two items and print the final list on exit
  tada --print "Buy milk" "Call mom"`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f, args, run)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "path to a TOML config file")
	fl.StringVar(&f.theme, "theme", "", "color theme: "+strings.Join(config.Themes, ", "))
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.BoolVar(&f.noAltScreen, "no-alt-screen", false, "render inline instead of using the alternate screen")
	fl.BoolVar(&f.print, "print", false, "print the remaining items after quitting")
	return cmd
}

func runRoot(cmd *cobra.Command, f *rootFlags, args []string, run runFunc) error {
	cfg, err := config.Load(config.Options{
		File:      f.configFile,
		Overrides: overrides(cmd, f),
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	ui.SetTheme(cfg.Theme)

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := app.New(store.New(store.WithIDSource(idSource(cfg.IDSource))), logger)
	for _, a := range args {
		s.SetInput(a)
		s.Submit()
	}
	s.SetInput("")
	logger.Info("session started", "items", s.Len(), "theme", cfg.Theme, "ids", cfg.IDSource)

	opts := tui.Options{
		Theme:       cfg.Theme,
		Placeholder: cfg.Placeholder,
		CharLimit:   cfg.CharLimit,
	}
	if err := run(cmd.Context(), s, opts, cfg.AltScreen); err != nil {
		logger.Error("tui failed", "err", err)
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("session ended", "items", s.Len())

	if cfg.PrintOnExit {
		ui.Fpanel(cmd.OutOrStdout(), ui.SummaryLines(s.Items()))
	}
	return nil
}

func idSource(name string) store.IDSource {
	if name == "clock" {
		return &store.Clock{}
	}
	return &store.Counter{}
}

// overrides picks up only the flags the user actually set.
func overrides(cmd *cobra.Command, f *rootFlags) config.Overrides {
	var o config.Overrides
	fl := cmd.Flags()
	if fl.Changed("theme") {
		o.Theme = &f.theme
	}
	if fl.Changed("log-file") {
		o.LogFile = &f.logFile
	}
	if fl.Changed("log-level") {
		o.LogLevel = &f.logLevel
	}
	if fl.Changed("no-alt-screen") {
		alt := !f.noAltScreen
		o.AltScreen = &alt
	}
	if fl.Changed("print") {
		o.PrintOnExit = &f.print
	}
	return o
}
