package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
)

// KeyList is the set of names scripts may use.
type KeyList struct {
	Keys    []string `json:"keys"`
	Buttons []string `json:"buttons"`
}

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "keys",
		Short:         "List key and mouse button names",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(rootOpts, cmd)
		},
	}
}

func runKeys(opts *RootOptions, cmd *cobra.Command) error {
	var list KeyList
	for _, k := range inputs.Keys() {
		list.Keys = append(list.Keys, k.String())
	}
	for _, b := range inputs.Buttons() {
		list.Buttons = append(list.Buttons, b.String())
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), list)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Keys:")
	for _, k := range list.Keys {
		fmt.Fprintf(out, "  %s\n", k)
	}
	fmt.Fprintln(out, "Mouse buttons:")
	for _, b := range list.Buttons {
		fmt.Fprintf(out, "  %s\n", b)
	}
	return nil
}
