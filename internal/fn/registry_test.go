package fn

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/odsf/internal/emit"
	"github.com/roach88/odsf/internal/ir"
)

func TestLookup(t *testing.T) {
	s, ok := Lookup("sum")
	require.True(t, ok)
	assert.Equal(t, "SUM", s.Name)

	_, ok = Lookup("NOSUCHFUNCTION")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "DCOUNT")
	assert.Contains(t, names, "ERROR.TYPE")

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true

		s, ok := Lookup(n)
		require.True(t, ok, n)
		assert.NoError(t, s.Validate(), n)
	}
}

func TestOverloads(t *testing.T) {
	assert.Len(t, Overloads("DCOUNT"), 2)
	assert.Len(t, Overloads("dcounta"), 2)
	assert.Len(t, Overloads("SUM"), 1)
	assert.Empty(t, Overloads("NOPE"))

	// Returned slices are copies.
	o := Overloads("DCOUNT")
	o[0] = ir.Signature{}
	s, _ := Lookup("DCOUNT")
	assert.Equal(t, "DCOUNT", s.Name)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []ir.Arg
		want string
	}{
		{"dcount short", "DCOUNT", ir.Args(table, crit), "DCOUNT([.A1:.C9];[.E1:.E2])"},
		{"dcount full", "dcount", ir.Args(table, ir.Int(2), crit), "DCOUNT([.A1:.C9];2;[.E1:.E2])"},
		{"ceiling gap", "CEILING", []ir.Arg{ir.Provided{Value: ir.Float(1.5)}, ir.Omitted{}, ir.Provided{Value: ir.Int(1)}}, "CEILING(1.5;;1)"},
		{"variadic", "SUM", ir.Args(ir.Int(1), ir.Int(2), ir.Int(3)), "SUM(1;2;3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Resolve(tt.fn, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, emit.Expression(c))
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve("NOPE", ir.Args(ir.Int(1))...)
	var unknown *UnknownFunctionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NOPE", unknown.Name)
	assert.Equal(t, `unknown function "NOPE"`, err.Error())

	_, err = Resolve("ABS")
	assert.True(t, ir.IsArityError(err))

	_, err = Resolve("ABS", ir.Args(ir.Int(1), ir.Int(2))...)
	assert.True(t, ir.IsArityError(err))

	// DCOUNT with a gap has three slots and so picks the full form, where
	// field is required.
	_, err = Resolve("DCOUNT", ir.Provided{Value: table}, ir.Omitted{}, ir.Provided{Value: crit})
	assert.True(t, ir.IsArityError(err))
}
