// Package cellref renders OpenDocument cell and range references.
//
// A Cell or Range satisfies ir.Addressable; wrap it with ir.CellRef or
// ir.CellRange to use it in a formula.
package cellref

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell addresses a single cell. Row and Col are 0-based; Local(5, 5) is F6.
// An empty Sheet refers to the sheet holding the formula.
type Cell struct {
	Sheet    string
	Row      int
	Col      int
	AbsSheet bool
	AbsRow   bool
	AbsCol   bool
}

// Local returns the cell at row, col on the formula's own sheet.
func Local(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// At returns the cell at row, col on the named sheet.
func At(sheet string, row, col int) Cell {
	return Cell{Sheet: sheet, Row: row, Col: col}
}

// Absolute returns c with sheet, row and column all marked absolute.
func (c Cell) Absolute() Cell {
	c.AbsSheet, c.AbsRow, c.AbsCol = true, true, true
	return c
}

// Validate reports negative coordinates.
func (c Cell) Validate() error {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Errorf("cell (%d, %d): row and column must not be negative", c.Row, c.Col)
	}
	return nil
}

// FormulaRef returns the bracketed reference, e.g. "[.F6]".
func (c Cell) FormulaRef() string {
	var b strings.Builder
	b.WriteByte('[')
	c.write(&b)
	b.WriteByte(']')
	return b.String()
}

// String returns the reference without brackets, e.g. ".F6".
func (c Cell) String() string {
	var b strings.Builder
	c.write(&b)
	return b.String()
}

func (c Cell) write(b *strings.Builder) {
	if c.Sheet != "" {
		if c.AbsSheet {
			b.WriteByte('$')
		}
		b.WriteString(quoteSheet(c.Sheet))
	}
	b.WriteByte('.')
	if c.AbsCol {
		b.WriteByte('$')
	}
	b.WriteString(ColumnName(c.Col))
	if c.AbsRow {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(c.Row + 1))
}

// Range addresses a rectangular block of cells.
type Range struct {
	From Cell
	To   Cell
}

// Span returns the local range from (r0, c0) to (r1, c1) inclusive.
func Span(r0, c0, r1, c1 int) Range {
	return Range{From: Local(r0, c0), To: Local(r1, c1)}
}

// Validate reports negative coordinates and inverted bounds.
func (r Range) Validate() error {
	if err := r.From.Validate(); err != nil {
		return fmt.Errorf("range start: %w", err)
	}
	if err := r.To.Validate(); err != nil {
		return fmt.Errorf("range end: %w", err)
	}
	if r.From.Sheet == r.To.Sheet || r.To.Sheet == "" {
		if r.To.Row < r.From.Row || r.To.Col < r.From.Col {
			return fmt.Errorf("range %s ends before it starts", r)
		}
	}
	return nil
}

// FormulaRef returns the bracketed reference, e.g. "[.F5:.J9]".
// The end cell carries its own sheet only when it names one.
func (r Range) FormulaRef() string {
	return "[" + r.String() + "]"
}

// String returns the reference without brackets, e.g. ".F5:.J9".
func (r Range) String() string {
	var b strings.Builder
	r.From.write(&b)
	b.WriteByte(':')
	r.To.write(&b)
	return b.String()
}

// ColumnName returns the letters for a 0-based column: 0 is "A", 25 is "Z",
// 26 is "AA".
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// ParseColumn returns the 0-based index of a column name ("F" is 5).
// Lower case letters are accepted.
func ParseColumn(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		n = n*26 + int(r-'A'+1)
		if n > 1<<24 {
			return 0, fmt.Errorf("column name %q out of range", name)
		}
	}
	return n - 1, nil
}

// quoteSheet single-quotes a sheet name unless it consists only of
// letters, digits and underscores. Embedded quotes are doubled.
func quoteSheet(name string) string {
	for _, r := range name {
		if !isPlain(r) {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}

func isPlain(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
