package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Document string
	Name     string
	Runs     bool
}

// HistoryEntry is one recorded render.
type HistoryEntry struct {
	Seq       int64  `json:"seq"`
	RunID     string `json:"run_id"`
	Document  string `json:"document"`
	Name      string `json:"name"`
	FormulaID string `json:"formula_id"`
	Formula   string `json:"formula"`
}

// RunEntry summarizes one recorded run.
type RunEntry struct {
	RunID    string `json:"run_id"`
	Document string `json:"document"`
	Formulas int    `json:"formulas"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded renders",
		Long: `List formulas recorded by "render --db", oldest first.

Example:
  odsf history --db renders.db
  odsf history --db renders.db --document budget --name total
  odsf history --db renders.db --runs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Document, "document", "", "only renders of this document")
	cmd.Flags().StringVar(&opts.Name, "name", "", "only renders of this formula")
	cmd.Flags().BoolVar(&opts.Runs, "runs", false, "list runs instead of formulas")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

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

	ctx := commandContext(cmd)
	if opts.Runs {
		runs, err := st.Runs(ctx)
		if err != nil {
			_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to read runs", err)
		}
		return outputRuns(formatter, runs)
	}

	renders, err := st.History(ctx, store.HistoryFilter{Document: opts.Document, Name: opts.Name})
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}
	return outputHistory(formatter, renders)
}

func outputHistory(formatter *OutputFormatter, renders []store.Render) error {
	entries := make([]HistoryEntry, len(renders))
	for i, r := range renders {
		entries[i] = HistoryEntry(r)
	}
	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No renders recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%d\t%s\t%s\t%s\t%s\n", e.Seq, e.RunID, e.Document, e.Name, e.Formula)
	}
	return nil
}

func outputRuns(formatter *OutputFormatter, runs []store.RunSummary) error {
	entries := make([]RunEntry, len(runs))
	for i, r := range runs {
		entries[i] = RunEntry{RunID: r.RunID, Document: r.Document, Formulas: r.Formulas}
	}
	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No renders recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s\t%s\t%d formula(s)\n", e.RunID, e.Document, e.Formulas)
	}
	return nil
}
