package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/doc"
)

// CheckEntry is the outcome for one formula.
type CheckEntry struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Formula string `json:"formula,omitempty"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Document string       `json:"document"`
	Total    int          `json:"total"`
	Failed   int          `json:"failed"`
	Results  []CheckEntry `json:"results"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <document>",
		Short: "Check that every formula in a document builds",
		Long: `Build every formula in a document and report each one as passing or
failing, with the location of the failure inside the expression tree.

Exits with code 1 if any formula fails.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	d, err := loadDocument(formatter, path)
	if err != nil {
		return err
	}

	result := CheckResult{Document: d.Name}
	for _, r := range d.BuildEach() {
		result.Results = append(result.Results, checkEntry(r))
		if r.Err != nil {
			result.Failed++
		}
	}
	result.Total = len(result.Results)

	if err := outputCheck(formatter, result); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d formula(s) failed", result.Failed, result.Total))
	}
	return nil
}

func checkEntry(r doc.Result) CheckEntry {
	if r.Err == nil {
		return CheckEntry{Name: r.Name, OK: true, Formula: r.Formula.Text}
	}
	entry := CheckEntry{Name: r.Name, Error: r.Err.Error()}
	var pe *doc.PathError
	if errors.As(r.Err, &pe) {
		entry.Path = pe.Path
		entry.Error = pe.Err.Error()
	}
	return entry
}

func outputCheck(formatter *OutputFormatter, result CheckResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	p := formatter.palette()
	for _, e := range result.Results {
		if e.OK {
			fmt.Fprintf(formatter.Writer, "%s %s\n", p.ok.Sprint("✓"), e.Name)
			formatter.VerboseLog("  %s", e.Formula)
			continue
		}
		fmt.Fprintf(formatter.Writer, "%s %s\n", p.bad.Sprint("✗"), e.Name)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", p.faint.Sprint(e.Path), e.Error)
	}

	fmt.Fprintln(formatter.Writer)
	if result.Failed == 0 {
		fmt.Fprintln(formatter.Writer, p.ok.Sprintf("✓ All %d formula(s) build", result.Total))
		return nil
	}
	fmt.Fprintln(formatter.Writer, p.bad.Sprintf("✗ %d of %d formula(s) failed", result.Failed, result.Total))
	return nil
}
