package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/emit"
	"github.com/roach88/odsf/internal/ir"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{5, "F"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnName(tt.col))
			got, err := ParseColumn(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.col, got)
		})
	}

	assert.Equal(t, "", ColumnName(-1))
}

func TestParseColumn_Errors(t *testing.T) {
	for _, s := range []string{"", "A1", "Ä", "$A"} {
		_, err := ParseColumn(s)
		assert.Error(t, err, s)
	}

	got, err := ParseColumn("f")
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestFormulaRef(t *testing.T) {
	tests := []struct {
		name string
		addr ir.Addressable
		want string
	}{
		{"local", Local(5, 5), "[.F6]"},
		{"sheet", At("Sheet1", 0, 0), "[Sheet1.A1]"},
		{"absolute quoted sheet", At("My Sheet", 1, 1).Absolute(), "[$'My Sheet'.$B$2]"},
		{"quote in sheet", At("It's", 0, 0), "['It''s'.A1]"},
		{"abs row only", Cell{Row: 2, Col: 2, AbsRow: true}, "[.C$3]"},
		{"local range", Span(4, 5, 8, 9), "[.F5:.J9]"},
		{"cross sheet range", Range{From: At("S1", 0, 0), To: At("S2", 1, 1)}, "[S1.A1:S2.B2]"},
		{"sheet range", Range{From: At("Data", 0, 0), To: Local(9, 2)}, "[Data.A1:.C10]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.FormulaRef())
		})
	}
}

func TestWithFormula(t *testing.T) {
	got := emit.MustFormula(ir.Must(ir.Concat(ir.Text("zack"), ir.CellRef(Local(5, 5)))))
	assert.Equal(t, `of="zack"&[.F6]`, got)

	sum := ir.Must(ir.NewCall("COUNT", category.Of(category.Number), ir.Args(
		ir.Must(ir.Union(ir.CellRange(Span(27, 1, 36, 10)), ir.CellRange(Span(4, 5, 25, 10)))),
	)...))
	assert.Equal(t, "of=COUNT([.B28:.K37]~[.F5:.K26])", emit.MustFormula(sum))
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
	}{
		{"F6", Local(5, 5)},
		{"f6", Local(5, 5)},
		{".F6", Local(5, 5)},
		{"[.F6]", Local(5, 5)},
		{"$F$6", Cell{Row: 5, Col: 5, AbsRow: true, AbsCol: true}},
		{"F$6", Cell{Row: 5, Col: 5, AbsRow: true}},
		{"Sheet1.A1", At("Sheet1", 0, 0)},
		{"$Sheet1.$A$1", At("Sheet1", 0, 0).Absolute()},
		{"'My Sheet'.B2", At("My Sheet", 1, 1)},
		{"'a.b'.C3", At("a.b", 2, 2)},
		{"'It''s'.A1", At("It's", 0, 0)},
		{"AA10", Local(9, 26)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCell(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCell_Errors(t *testing.T) {
	for _, s := range []string{"", "F", "6", "F0", "F-1", "F+1", "My Sheet.A1", "'open.A1", "'a'b'.A1", "F6x"} {
		_, err := ParseCell(s)
		assert.Error(t, err, s)
	}
}

func TestParseCell_RoundTrip(t *testing.T) {
	for _, c := range []Cell{
		Local(0, 0),
		At("Sheet 2", 99, 30).Absolute(),
		{Sheet: "Q1", Row: 4, Col: 700, AbsCol: true},
	} {
		got, err := ParseCell(c.FormulaRef())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("F5:J9")
	require.NoError(t, err)
	assert.Equal(t, Span(4, 5, 8, 9), r)
	assert.Equal(t, "[.F5:.J9]", r.FormulaRef())

	r, err = ParseRange("'My Sheet'.A1:.B2")
	require.NoError(t, err)
	assert.Equal(t, "My Sheet", r.From.Sheet)
	assert.Equal(t, "", r.To.Sheet)

	for _, s := range []string{"F5", "F5:", "J9:F5", ":F5"} {
		_, err := ParseRange(s)
		assert.Error(t, err, s)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Local(0, 0).Validate())
	assert.Error(t, Local(-1, 0).Validate())
	assert.Error(t, Cell{Col: -3}.Validate())

	assert.NoError(t, Span(0, 0, 3, 3).Validate())
	assert.Error(t, Span(3, 0, 0, 0).Validate())
	assert.Error(t, Range{From: Local(0, -1), To: Local(1, 1)}.Validate())
}
