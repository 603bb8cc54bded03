package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the journal entries of one run",
		Long: `Print every journal entry of a run in sequence order, including the
events the simulator recorded.

Examples:
  inputflow show --db ./playback.db --run demo`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal database (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run identifier (required)")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}

func runShow(opts *ShowOptions, cmd *cobra.Command) error {
	store, err := openExistingJournal(opts.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List(opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list entries", err)
	}
	if len(infos) == 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("run %q not found", opts.RunID))
	}

	entries := make([]*journal.Entry, 0, len(infos))
	for _, info := range infos {
		entry, err := loadEntry(store, opts.RunID, info.Sequence)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read entry %d", info.Sequence), err)
		}
		entries = append(entries, entry)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	out := cmd.OutOrStdout()
	for i, e := range entries {
		status := "ok"
		if !e.Succeeded() {
			status = "error: " + e.Error
		}
		fmt.Fprintf(out, "#%d %s [%s] %.3fms %s\n", infos[i].Sequence, e.Simulator, e.Timestamp.Format(time.RFC3339), e.DurationMs, status)
		fmt.Fprintf(out, "  %s\n", e.Description)
		for _, line := range e.Trace {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
	return nil
}
