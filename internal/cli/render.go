package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/doc"
	"github.com/roach88/odsf/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Database string
	Name     string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs store.RunIDGenerator
}

// RenderedFormula is one line of render output.
type RenderedFormula struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
	ID      string `json:"id"`
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Document string            `json:"document"`
	RunID    string            `json:"run_id,omitempty"`
	Formulas []RenderedFormula `json:"formulas"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a document's formulas",
		Long: `Build every formula in a document and print it as "name<TAB>formula".

With --db the rendered formulas are also recorded as a new render run, which
diff and history read back.

Example:
  odsf render budget.yaml
  odsf render budget.cue --db renders.db --name total`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the render in this SQLite database")
	cmd.Flags().StringVar(&opts.Name, "name", "", "render only the named formula")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	d, err := loadDocument(formatter, path)
	if err != nil {
		return err
	}

	formulas, err := buildFormulas(formatter, d, opts.Name)
	if err != nil {
		return err
	}

	result := RenderResult{Document: d.Name, Formulas: make([]RenderedFormula, len(formulas))}
	for i, f := range formulas {
		result.Formulas[i] = RenderedFormula{Name: f.Name, Formula: f.Text, ID: f.ID}
	}

	if opts.Database != "" {
		runID, err := recordRun(commandContext(cmd), opts, d.Name, formulas)
		if err != nil {
			_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record render", err)
		}
		result.RunID = runID
	}

	if formatter.Format == "json" {
		return formatter.encode(CLIResponse{Status: "ok", Data: result, RunID: result.RunID})
	}
	for _, f := range result.Formulas {
		fmt.Fprintf(formatter.Writer, "%s\t%s\n", f.Name, f.Formula)
	}
	if result.RunID != "" {
		formatter.VerboseLog("recorded run %s", result.RunID)
	}
	return nil
}

// buildFormulas builds the whole document, or only the entry called name
// when one is given.
func buildFormulas(formatter *OutputFormatter, d *doc.Document, name string) ([]doc.Formula, error) {
	if name == "" {
		formulas, errs := d.Build(doc.CollectAll)
		if len(errs) > 0 {
			return nil, reportBuildErrors(formatter, errs)
		}
		return formulas, nil
	}

	f, ok, err := d.BuildNamed(name)
	if !ok {
		msg := fmt.Sprintf("document %q has no formula %q", d.Name, name)
		_ = formatter.Error(ErrCodeNoFormula, msg, nil)
		return nil, NewExitError(ExitCommandError, msg)
	}
	if err != nil {
		return nil, reportBuildErrors(formatter, []error{err})
	}
	return []doc.Formula{f}, nil
}

func recordRun(ctx context.Context, opts *RenderOptions, document string, formulas []doc.Formula) (string, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	gen := opts.RunIDs
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	runID := gen.Generate()

	renders := make([]store.Render, len(formulas))
	for i, f := range formulas {
		renders[i] = store.Render{Name: f.Name, FormulaID: f.ID, Formula: f.Text}
	}
	n, err := st.WriteRun(ctx, runID, document, renders)
	if err != nil {
		return "", err
	}
	slog.Info("render recorded", "run_id", runID, "document", document, "formulas", n)
	return runID, nil
}
