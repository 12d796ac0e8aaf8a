package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/odsf/internal/doc"
)

// commandContext returns the command's context, or Background when the
// command runs outside Execute (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadDocument loads path, reporting load failures through formatter as
// command errors (exit code 2).
func loadDocument(formatter *OutputFormatter, path string) (*doc.Document, error) {
	slog.Debug("loading document", "path", path)
	d, err := doc.Load(path)
	if err != nil {
		code := ErrCodeGeneric
		var loadErr *doc.LoadError
		if errors.As(err, &loadErr) {
			code = loadErr.Code
		}
		_ = formatter.Error(code, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to load document", err)
	}
	slog.Debug("document loaded", "name", d.Name, "formulas", len(d.Formulas))
	return d, nil
}

// BuildFailure is one formula that failed to build.
type BuildFailure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func buildFailures(errs []error) []BuildFailure {
	out := make([]BuildFailure, 0, len(errs))
	for _, err := range errs {
		f := BuildFailure{Message: err.Error()}
		var pe *doc.PathError
		if errors.As(err, &pe) {
			f.Path = pe.Path
			f.Message = pe.Err.Error()
		}
		out = append(out, f)
	}
	return out
}

// reportBuildErrors prints every build failure and returns the exit error
// for them.
func reportBuildErrors(formatter *OutputFormatter, errs []error) error {
	failures := buildFailures(errs)
	message := fmt.Sprintf("%d formula(s) failed to build", len(failures))
	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeBuildFailed, message, failures)
	} else {
		for _, f := range failures {
			fmt.Fprintf(formatter.Writer, "Error [%s]: %s: %s\n", ErrCodeBuildFailed, f.Path, f.Message)
		}
	}
	return NewExitError(ExitFailure, message)
}
