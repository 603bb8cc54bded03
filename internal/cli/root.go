package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/inputflow/pkg/inputflow/config"
	"github.com/randalmurphal/inputflow/pkg/inputflow/observability"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string

	settings config.Settings
	logger   *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the inputflow CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "inputflow",
		Short: "inputflow - composable input playback",
		Long:  "Validate, play, and inspect scripted keyboard and mouse input sequences.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a YAML or JSON settings file")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))

	return cmd
}

// load reads the settings file and builds the diagnostic logger.
// Logs go to the command's error stream so they never mix with output.
func (o *RootOptions) load(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(o.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load settings", err)
	}
	level := settings.Log.Level
	if o.Verbose {
		level = "debug"
	}
	logger, err := observability.NewLogger(observability.LogOptions{
		Level:  level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build logger", err)
	}
	o.settings = settings
	o.logger = logger
	return nil
}

// Settings returns the loaded settings, or the defaults when a command
// runs without the root's pre-run hook.
func (o *RootOptions) Settings() config.Settings {
	if o.logger == nil {
		return config.Default()
	}
	return o.settings
}

// Logger returns the diagnostic logger, discarding output when none
// was built.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
