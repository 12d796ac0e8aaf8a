package ir

import (
	"fmt"
	"math"

	"github.com/roach88/odsf/internal/category"
)

// Value is a sealed interface representing a formula expression.
// Literals (Int, Float, Bool, Text, Ref) and the composite nodes built by
// this package's constructors implement it; nothing else can.
type Value interface {
	// Categories returns the capabilities this value satisfies.
	Categories() category.Set

	formulaValue() // Sealed - only types in this package implement it
}

var (
	numberSet    = category.Of(category.Number)
	textSet      = category.Of(category.Text)
	logicalSet   = category.Of(category.Logical)
	referenceSet = category.Of(category.Reference)
)

// Int is an integer literal. Emitted as plain decimal digits.
type Int int64

func (Int) formulaValue() {}

// Categories implements Value.
func (Int) Categories() category.Set { return numberSet }

// Float is a floating point literal. Emitted in shortest round-trip decimal
// form with '.' as separator, regardless of host locale.
// NaN and infinities have no formula spelling and are rejected on use.
type Float float64

func (Float) formulaValue() {}

// Categories implements Value.
func (Float) Categories() category.Set { return numberSet }

// Bool is a logical literal. Emitted as TRUE() or FALSE().
type Bool bool

func (Bool) formulaValue() {}

// Categories implements Value.
func (Bool) Categories() category.Set { return logicalSet }

// Text is a string literal. Emitted in double quotes with embedded quotes doubled.
type Text string

func (Text) formulaValue() {}

// Categories implements Value.
func (Text) Categories() category.Set { return textSet }

// Addressable is the addressing collaborator behind cell references.
// FormulaRef returns canonical reference text such as "[.F6]" or "[.F5:.J9]";
// it is inserted into formulas verbatim.
type Addressable interface {
	FormulaRef() string
}

// RefKind distinguishes single-cell references from ranges.
type RefKind int

const (
	RefCell RefKind = iota + 1
	RefRange
)

// Ref is a cell or cell-range reference literal.
// The zero Ref has no collaborator and is rejected on use.
type Ref struct {
	addr Addressable
	kind RefKind
}

// CellRef wraps a single-cell address.
func CellRef(a Addressable) Ref {
	return Ref{addr: a, kind: RefCell}
}

// CellRange wraps a range address.
func CellRange(a Addressable) Ref {
	return Ref{addr: a, kind: RefRange}
}

func (Ref) formulaValue() {}

// Categories implements Value.
func (Ref) Categories() category.Set { return referenceSet }

// Kind reports whether r is a cell or a range.
func (r Ref) Kind() RefKind { return r.kind }

// Addressable returns the collaborator r was built from.
func (r Ref) Addressable() Addressable { return r.addr }

// FormulaRef returns the collaborator's reference text.
func (r Ref) FormulaRef() string {
	if r.addr == nil {
		return ""
	}
	return r.addr.FormulaRef()
}

// checkValue rejects children no formula can contain: nil values (including
// typed nil node pointers), non-finite floats, and references whose
// collaborator is missing or fails its own Validate.
func checkValue(node string, arg int, v Value) error {
	bad := func(msg string) error {
		return &BuildError{Code: ErrCodeLiteral, Node: node, Arg: arg, Message: msg}
	}
	switch x := v.(type) {
	case nil:
		return bad("value is nil")
	case Float:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return bad("float is not finite")
		}
	case Ref:
		if x.addr == nil {
			return bad("reference has no address")
		}
		if v, ok := x.addr.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return bad(fmt.Sprintf("invalid reference: %v", err))
			}
		}
	case *Paren:
		if x == nil {
			return bad("value is nil")
		}
	case *Unary:
		if x == nil {
			return bad("value is nil")
		}
	case *Binary:
		if x == nil {
			return bad("value is nil")
		}
	case *Call:
		if x == nil {
			return bad("value is nil")
		}
	case *Criterion:
		if x == nil {
			return bad("value is nil")
		}
	case *Array:
		if x == nil {
			return bad("value is nil")
		}
	case *Seq:
		if x == nil {
			return bad("value is nil")
		}
	}
	return nil
}

// Check validates a value used as the root of a formula.
// Composite nodes already validated their children at construction, so
// only the root itself needs checking.
func Check(v Value) error {
	return checkValue("Formula", 0, v)
}

// requireCategory checks v and that it satisfies c. A zero c accepts any category.
func requireCategory(node string, arg int, v Value, c category.Category) error {
	if err := checkValue(node, arg, v); err != nil {
		return err
	}
	if c != 0 && !v.Categories().Has(c) {
		return categoryError(node, arg, c, v.Categories())
	}
	return nil
}
