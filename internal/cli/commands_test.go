package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/odsf/internal/testutil"
)

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRender_Text(t *testing.T) {
	out, _, err := execute(t, "render", "testdata/budget.yaml")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "render_text", []byte(out))
}

func TestRender_Name(t *testing.T) {
	out, _, err := execute(t, "render", "testdata/budget.yaml", "--name", "rounded")
	require.NoError(t, err)
	assert.Equal(t, "rounded\tof=CEILING([.F6];;1)\n", out)

	out, _, err = execute(t, "render", "testdata/budget.yaml", "--name", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E102]")
}

func TestRender_NameIgnoresOtherFailures(t *testing.T) {
	out, _, err := execute(t, "render", "testdata/broken.yaml", "--name", "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok\tof=1\n", out)

	out, _, err = execute(t, "render", "testdata/broken.yaml", "--name", "bad_concat")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E101]: formulas[1].expr.binary: CATEGORY_VIOLATION")
}

func TestRender_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "render", "testdata/budget.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   RenderResult `json:"data"`
		RunID  string       `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.RunID)
	assert.Equal(t, "budget", resp.Data.Document)
	require.Len(t, resp.Data.Formulas, 3)
	assert.Equal(t, "total", resp.Data.Formulas[0].Name)
	assert.Equal(t, "of=SUM([.F5:.J9])", resp.Data.Formulas[0].Formula)
	assert.Len(t, resp.Data.Formulas[0].ID, 64)
}

func TestRender_RecordsRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "renders.db")
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	opts := &RenderOptions{
		RootOptions: &RootOptions{Format: "json"},
		Database:    dbPath,
		RunIDs:      testutil.NewFixedRunIDGenerator("run-1"),
	}
	require.NoError(t, runRender(opts, "testdata/budget.yaml", cmd))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "run-1", resp.RunID)

	histOut, _, err := execute(t, "history", "--db", dbPath, "--name", "total")
	require.NoError(t, err)
	assert.Equal(t, "1\trun-1\tbudget\ttotal\tof=SUM([.F5:.J9])\n", histOut)

	runsOut, _, err := execute(t, "history", "--db", dbPath, "--runs")
	require.NoError(t, err)
	assert.Equal(t, "run-1\tbudget\t3 formula(s)\n", runsOut)
}

func TestRender_BuildFailure(t *testing.T) {
	out, _, err := execute(t, "render", "testdata/broken.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E101]: formulas[1].expr.binary: CATEGORY_VIOLATION")
}

func TestRender_MissingDocument(t *testing.T) {
	out, _, err := execute(t, "render", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E001]")
}

func TestCheck(t *testing.T) {
	t.Run("passing", func(t *testing.T) {
		out, _, err := execute(t, "check", "testdata/budget.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ total\n")
		assert.Contains(t, out, "✓ All 3 formula(s) build\n")
	})

	t.Run("broken", func(t *testing.T) {
		out, _, err := execute(t, "check", "testdata/broken.yaml")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		newGoldie(t).Assert(t, "check_broken", []byte(out))
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "--format", "json", "check", "testdata/broken.yaml")
		require.Error(t, err)

		var resp struct {
			Data CheckResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, 2, resp.Data.Total)
		assert.Equal(t, 1, resp.Data.Failed)
		assert.True(t, resp.Data.Results[0].OK)
		assert.Equal(t, "formulas[1].expr.binary", resp.Data.Results[1].Path)
	})
}

func TestDiff(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "renders.db")

	out, _, err := execute(t, "diff", "testdata/budget.yaml", "--db", dbPath)
	require.Error(t, err, "nothing recorded yet, every formula is added")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "+ total\tof=SUM([.F5:.J9])\n")

	_, _, err = execute(t, "render", "testdata/budget.yaml", "--db", dbPath)
	require.NoError(t, err)

	out, _, err = execute(t, "diff", "testdata/budget.yaml", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "No changes\n", out)

	out, _, err = execute(t, "diff", "testdata/budget_v2.yaml", "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "diff_text", []byte(out))
}

func TestCompareRenders(t *testing.T) {
	result := compareRenders("budget", nil, nil)
	assert.Equal(t, 0, result.Changed)
	assert.NotNil(t, result.Changes)
	assert.Empty(t, result.BaseRun)
}

func TestInlineDiff(t *testing.T) {
	assert.Equal(t, "of=SUM([.F5:.[-J-]{+K+}9])", inlineDiff("of=SUM([.F5:.J9])", "of=SUM([.F5:.K9])"))
	assert.Equal(t, "of=1", inlineDiff("of=1", "of=1"))
}

func TestHistory_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "renders.db")
	out, _, err := execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "No renders recorded\n", out)
}

func TestFunctions(t *testing.T) {
	out, _, err := execute(t, "functions")
	require.NoError(t, err)
	assert.Contains(t, out, "SUM(values: ")
	assert.Contains(t, out, "CEILING(")

	out, _, err = execute(t, "--format", "json", "functions")
	require.NoError(t, err)
	var resp struct {
		Data []FunctionEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Data)
	names := make([]string, len(resp.Data))
	for i, e := range resp.Data {
		names[i] = e.Name
	}
	assert.Contains(t, names, "SUM")
	assert.IsIncreasing(t, names)
}
