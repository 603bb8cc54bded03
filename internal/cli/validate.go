package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/inputflow/pkg/inputflow/script"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// ValidateResult reports the validity of one script.
type ValidateResult struct {
	Path  string `json:"path"`
	Name  string `json:"name,omitempty"`
	Steps int    `json:"steps"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <script>...",
		Short: "Check scripts without playing them",
		Long: `Parse and validate one or more YAML scripts. Every problem in a
script is reported, not just the first.

Exit codes:
  0 - All scripts are valid
  1 - At least one script is invalid`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd, args)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command, paths []string) error {
	results := make([]ValidateResult, 0, len(paths))
	invalid := 0
	for _, path := range paths {
		r := ValidateResult{Path: path, Valid: true}
		s, err := script.Load(path)
		if err == nil {
			r.Name = s.Name
			r.Steps = len(s.Steps)
			err = s.Validate()
		}
		if err != nil {
			r.Valid = false
			r.Error = err.Error()
			invalid++
		}
		results = append(results, r)
	}

	if opts.Format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(out, "ok   %s (%s, %d steps)\n", r.Path, r.Name, r.Steps)
				continue
			}
			fmt.Fprintf(out, "FAIL %s\n  %s\n", r.Path, r.Error)
		}
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scripts invalid", invalid, len(paths)))
	}
	return nil
}
