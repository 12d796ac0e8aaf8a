package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/doc"
	"github.com/roach88/odsf/internal/store"
)

// DiffOptions holds flags for the diff command.
type DiffOptions struct {
	*RootOptions
	Database string
}

// Change statuses.
const (
	StatusAdded     = "added"
	StatusRemoved   = "removed"
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
)

// FormulaChange compares one formula against its last recorded render.
type FormulaChange struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Old    string `json:"old,omitempty"`
	New    string `json:"new,omitempty"`
	Diff   string `json:"diff,omitempty"` // inline [-deleted-]{+inserted+} markup
}

// DiffResult is the JSON payload of the diff command.
type DiffResult struct {
	Document string          `json:"document"`
	BaseRun  string          `json:"base_run,omitempty"`
	Changed  int             `json:"changed"`
	Changes  []FormulaChange `json:"changes"`
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiffOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "diff <document>",
		Short: "Compare rendered formulas with the last recorded run",
		Long: `Render a document and compare every formula with the most recent render
run recorded for the same document name.

Changed formulas are shown with an inline character diff. Exits with code 1
when any formula was added, removed or changed.

Example:
  odsf diff budget.yaml --db renders.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runDiff(opts *DiffOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	d, err := loadDocument(formatter, path)
	if err != nil {
		return err
	}
	formulas, errs := d.Build(doc.CollectAll)
	if len(errs) > 0 {
		return reportBuildErrors(formatter, errs)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	previous, err := st.LatestRun(commandContext(cmd), d.Name)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read renders", err)
	}
	slog.Debug("compared against latest run", "document", d.Name, "recorded", len(previous))

	result := compareRenders(d.Name, formulas, previous)
	if err := outputDiff(formatter, result); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if result.Changed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d formula(s) changed", ErrCodeChanged, result.Changed))
	}
	return nil
}

// compareRenders lists current formulas in document order, then formulas
// only the recorded run has, in recording order.
func compareRenders(document string, current []doc.Formula, previous []store.Render) DiffResult {
	result := DiffResult{Document: document, Changes: []FormulaChange{}}
	old := make(map[string]store.Render, len(previous))
	for _, r := range previous {
		old[r.Name] = r
		result.BaseRun = r.RunID
	}

	seen := make(map[string]bool, len(current))
	for _, f := range current {
		seen[f.Name] = true
		change := FormulaChange{Name: f.Name, New: f.Text}
		r, ok := old[f.Name]
		switch {
		case !ok:
			change.Status = StatusAdded
		case r.FormulaID == f.ID:
			change.Status = StatusUnchanged
			change.Old = r.Formula
		default:
			change.Status = StatusChanged
			change.Old = r.Formula
			change.Diff = inlineDiff(r.Formula, f.Text)
		}
		result.Changes = append(result.Changes, change)
	}
	for _, r := range previous {
		if !seen[r.Name] {
			result.Changes = append(result.Changes, FormulaChange{Name: r.Name, Status: StatusRemoved, Old: r.Formula})
		}
	}

	for _, c := range result.Changes {
		if c.Status != StatusUnchanged {
			result.Changed++
		}
	}
	return result
}

// inlineDiff renders a character diff of two formulas as
// "SUM([.F5:.[-J-]{+K+}9])".
func inlineDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func outputDiff(formatter *OutputFormatter, result DiffResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	p := formatter.palette()
	for _, c := range result.Changes {
		switch c.Status {
		case StatusAdded:
			fmt.Fprintf(formatter.Writer, "%s %s\t%s\n", p.ok.Sprint("+"), c.Name, c.New)
		case StatusRemoved:
			fmt.Fprintf(formatter.Writer, "%s %s\t%s\n", p.bad.Sprint("-"), c.Name, c.Old)
		case StatusChanged:
			fmt.Fprintf(formatter.Writer, "%s %s\t%s\n", p.changed.Sprint("~"), c.Name, c.Diff)
		default:
			formatter.VerboseLog("= %s\t%s", c.Name, c.New)
		}
	}
	if result.Changed == 0 {
		fmt.Fprintln(formatter.Writer, "No changes")
	}
	return nil
}
