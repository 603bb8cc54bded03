package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
	"github.com/randalmurphal/inputflow/pkg/inputflow/script"
	"github.com/randalmurphal/inputflow/pkg/inputflow/simulators/recorder"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Database string
	RunID    string
	Repeat   int
}

// PlayResult is the outcome of one play.
type PlayResult struct {
	RunID   string   `json:"run_id"`
	Script  string   `json:"script"`
	Display string   `json:"display"`
	Trace   []string `json:"trace"`
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <script>",
		Short: "Play a script against the recording simulator",
		Long: `Build a YAML script into an event flow and play it against the
recording simulator, printing one line per realized event.

Sleeps in the script are honored. Runs are journaled when --db is given
or the settings file enables a journal.

Exit codes:
  0 - Script played
  1 - Playback failed
  2 - Command error (unreadable or invalid script, database errors)

Examples:
  inputflow play alt_tab.yaml
  inputflow play alt_tab.yaml --db ./playback.db --run-id demo
  inputflow play drag.yaml --repeat 3 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal database")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "run identifier (default: generated UUID)")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 0, "play the whole script this many times (default: settings playback.repeat)")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command, path string) error {
	settings := opts.Settings()
	logger := opts.Logger()

	if opts.Repeat < 0 {
		return NewExitError(ExitCommandError, "--repeat cannot be negative")
	}

	s, err := script.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load script", err)
	}
	flow, err := script.Build[*recorder.Recorder](s, script.FromSettings(settings))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid script", err)
	}

	times := opts.Repeat
	if times == 0 {
		times = settings.Playback.Repeat
	}
	if times > 1 {
		flow = flow.Repeat(times)
	}

	store, err := openJournal(opts.Database, settings)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	if store != nil {
		defer store.Close()
	}

	rec := recorder.New(recorder.WithName(s.Name), recorder.WithLogger(logger))

	ctxOpts := []inputflow.ContextOption{inputflow.WithLogger(logger)}
	if opts.RunID != "" {
		ctxOpts = append(ctxOpts, inputflow.WithContextRunID(opts.RunID))
	}
	ctx := inputflow.NewContext(commandContext(cmd), ctxOpts...)

	runOpts := []inputflow.RunOption{
		inputflow.WithSimulatorName(s.Name),
		inputflow.WithTracing(settings.Observability.Tracing),
		inputflow.WithMetrics(settings.Observability.Metrics),
	}
	if store != nil {
		runOpts = append(runOpts, inputflow.WithJournal(store))
	}

	playErr := inputflow.Run(ctx, flow, rec, runOpts...)

	result := PlayResult{
		RunID:   ctx.RunID(),
		Script:  s.Name,
		Display: flow.String(),
		Trace:   rec.Trace(),
	}
	if opts.Format == "json" {
		if playErr != nil {
			if err := writeJSONError(cmd.OutOrStdout(), result, playErr); err != nil {
				return err
			}
			return WrapExitError(ExitFailure, "playback failed", playErr)
		}
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if opts.Verbose {
		fmt.Fprintf(out, "run %s: %s\n", result.RunID, result.Display)
	}
	for _, line := range result.Trace {
		fmt.Fprintln(out, line)
	}
	if playErr != nil {
		return WrapExitError(ExitFailure, "playback failed", playErr)
	}
	return nil
}

// commandContext returns the command's context, which is nil when the
// command was executed without ExecuteContext.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadEntry reads and decodes one journal entry.
func loadEntry(store journal.Store, runID string, sequence int) (*journal.Entry, error) {
	data, err := store.Load(runID, sequence)
	if err != nil {
		return nil, err
	}
	return journal.Unmarshal(data)
}
