package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/odsf/internal/category"
)

var ceiling = Signature{
	Name:   "CEILING",
	Result: category.Of(category.Number),
	Params: []Param{
		{Name: "number", Requires: category.Number},
		{Name: "significance", Requires: category.Number, Optional: true},
		{Name: "mode", Requires: category.Number, Optional: true},
	},
}

var dcount = Signature{
	Name:   "DCOUNT",
	Result: category.Of(category.Number),
	Params: []Param{
		{Name: "database", Requires: category.Reference},
		{Name: "field", Requires: category.Field, Optional: true, TrailingOnly: true},
		{Name: "criteria", Requires: category.Reference},
	},
}

var sum = Signature{
	Name:   "SUM",
	Result: category.Of(category.Number),
	Params: []Param{
		{Name: "number", Requires: category.Sequence, Variadic: true},
	},
}

func TestSignature_Call(t *testing.T) {
	ref := CellRange(testAddr("[.A1:.C9]"))

	tests := []struct {
		name     string
		sig      Signature
		args     []Arg
		wantCode ErrorCode
		wantArg  int
	}{
		{"all provided", ceiling, Args(Float(1.5), Int(1), Int(0)), "", 0},
		{"only required", ceiling, Args(Float(1.5)), "", 0},
		{"middle gap", ceiling, []Arg{Provided{Float(1.5)}, Omitted{}, Provided{Int(1)}}, "", 0},
		{"trailing omitted", ceiling, []Arg{Provided{Float(1.5)}, Omitted{}, Omitted{}}, "", 0},
		{"missing required", ceiling, nil, ErrCodeArity, 1},
		{"required omitted", ceiling, []Arg{Omitted{}, Provided{Int(1)}}, ErrCodeArity, 1},
		{"too many", ceiling, Args(Int(1), Int(2), Int(3), Int(4)), ErrCodeArity, 4},
		{"wrong category", ceiling, Args(Text("x")), ErrCodeCategory, 1},
		{"variadic repeats", sum, Args(Int(1), ref, Int(3), Int(4)), "", 0},
		{"variadic first required", sum, nil, ErrCodeArity, 1},
		{"variadic category", sum, Args(Int(1), MustCriterion(CmpGt, Int(1))), ErrCodeCategory, 2},
		{"trailing-only gap", dcount, []Arg{Provided{ref}, Omitted{}, Provided{ref}}, ErrCodeArity, 2},
		{"nil slot", sum, []Arg{nil}, ErrCodeArity, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.sig.Call(tt.args...)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.sig.Name, c.Name())
				assert.Equal(t, tt.sig.Result, c.Categories())
				return
			}
			require.Error(t, err)
			var be *BuildError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.wantCode, be.Code)
			assert.Equal(t, tt.wantArg, be.Arg)
			assert.Equal(t, "Call("+tt.sig.Name+")", be.Node)
		})
	}
}

func TestSignature_Bounds(t *testing.T) {
	assert.Equal(t, 1, ceiling.MinArgs())
	assert.Equal(t, 3, ceiling.MaxArgs())

	assert.Equal(t, 3, dcount.MinArgs())
	assert.Equal(t, 1, sum.MinArgs())
	assert.Equal(t, -1, sum.MaxArgs())

	pi := Signature{Name: "PI", Result: category.Of(category.Number)}
	assert.Equal(t, 0, pi.MinArgs())
	assert.Equal(t, 0, pi.MaxArgs())
}

func TestSignature_String(t *testing.T) {
	assert.Equal(t, "CEILING(number: Number; [significance: Number]; [mode: Number])", ceiling.String())
	assert.Equal(t, "SUM(number: Sequence...)", sum.String())
}

func TestSignature_Validate(t *testing.T) {
	require.NoError(t, ceiling.Validate())
	require.NoError(t, sum.Validate())

	bad := Signature{Name: "F", Params: []Param{{Name: "a", Variadic: true}, {Name: "b"}}}
	assert.True(t, IsArityError(bad.Validate()))

	unnamed := Signature{Name: "1F"}
	code, _ := CodeOf(unnamed.Validate())
	assert.Equal(t, ErrCodeName, code)

	odd := Signature{Name: "F", Params: []Param{{Name: "a", Requires: category.Number | category.Text}}}
	assert.True(t, IsCategoryError(odd.Validate()))
}
