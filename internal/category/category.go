package category

import (
	"fmt"
	"strings"
)

// Category is a single capability tag.
// Values are bit flags so a Set can hold any combination.
type Category uint16

const (
	Number Category = 1 << iota
	Text
	Logical
	Reference
	Matrix
	Sequence
	Criterion
	Field
	DateTimeParam
	Scalar
	TextOrNumber
)

// All lists every category in declaration order.
var All = []Category{
	Number,
	Text,
	Logical,
	Reference,
	Matrix,
	Sequence,
	Criterion,
	Field,
	DateTimeParam,
	Scalar,
	TextOrNumber,
}

var names = map[Category]string{
	Number:        "Number",
	Text:          "Text",
	Logical:       "Logical",
	Reference:     "Reference",
	Matrix:        "Matrix",
	Sequence:      "Sequence",
	Criterion:     "Criterion",
	Field:         "Field",
	DateTimeParam: "DateTimeParam",
	Scalar:        "Scalar",
	TextOrNumber:  "TextOrNumber",
}

// String returns the category name, e.g. "Number".
func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", uint16(c))
}

// Valid reports whether c is exactly one known category.
func (c Category) Valid() bool {
	_, ok := names[c]
	return ok
}

// Parse returns the category with the given name (case-insensitive).
func Parse(name string) (Category, error) {
	for _, c := range All {
		if strings.EqualFold(names[c], name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// implies is the direct subsumption table: a value satisfying the key
// also satisfies every category in the row.
var implies = map[Category]Set{
	Reference: Set(Number | Text | Logical | Matrix | Sequence | TextOrNumber | Field | DateTimeParam),
	Number:    Set(Logical | Sequence | TextOrNumber | Field | DateTimeParam | Scalar),
	Text:      Set(Sequence | TextOrNumber | Field | DateTimeParam | Scalar),
	Logical:   Set(Number | Sequence | TextOrNumber | Scalar),
	Matrix:    Set(Sequence),
}

// Implies returns the direct row of the subsumption table for c,
// without following it transitively.
func Implies(c Category) Set {
	return implies[c]
}
