package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/fn"
)

// FunctionEntry describes one registry function.
type FunctionEntry struct {
	Name       string   `json:"name"`
	Result     string   `json:"result"`
	Signatures []string `json:"signatures"`
}

// NewFunctionsCommand creates the functions command.
func NewFunctionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List the functions documents can call without declaring a result",
		Long: `List every function in the signature registry with its parameters.

Calls to these functions in a document are checked against the signature.
Functions not listed here can still be called when the call declares its
result categories.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunctions(rootOpts, cmd)
		},
	}

	return cmd
}

func runFunctions(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var entries []FunctionEntry
	for _, name := range fn.Names() {
		overloads := fn.Overloads(name)
		entry := FunctionEntry{Name: name, Result: overloads[0].Result.String()}
		for _, s := range overloads {
			entry.Signatures = append(entry.Signatures, s.String())
		}
		entries = append(entries, entry)
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}
	for _, e := range entries {
		for _, s := range e.Signatures {
			fmt.Fprintf(formatter.Writer, "%s -> %s\n", s, e.Result)
		}
	}
	return nil
}
