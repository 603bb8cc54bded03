package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunSummary describes one journaled run.
type RunSummary struct {
	RunID   string `json:"run_id"`
	Entries int    `json:"entries"`
	Failed  int    `json:"failed"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List journaled runs",
		Long: `List every run recorded in a journal database with its entry count.

Examples:
  inputflow runs --db ./playback.db
  inputflow runs --db ./playback.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite journal database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	store, err := openExistingJournal(opts.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := store.Runs()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	summaries := make([]RunSummary, 0, len(ids))
	for _, id := range ids {
		infos, err := store.List(id)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to list run %s", id), err)
		}
		summary := RunSummary{RunID: id, Entries: len(infos)}
		for _, info := range infos {
			entry, err := loadEntry(store, id, info.Sequence)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read run %s", id), err)
			}
			if !entry.Succeeded() {
				summary.Failed++
			}
		}
		summaries = append(summaries, summary)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No runs found in database.")
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(out, "%s\t%d entries\t%d failed\n", s.RunID, s.Entries, s.Failed)
	}
	return nil
}
