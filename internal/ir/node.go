package ir

import (
	"fmt"

	"github.com/roach88/odsf/internal/category"
)

// Paren groups an expression. Emission never adds parentheses on its own;
// operator precedence in the output is whatever the caller grouped.
type Paren struct {
	inner Value
}

// NewParen wraps v in parentheses. The result keeps v's categories.
func NewParen(v Value) (*Paren, error) {
	if err := checkValue("Paren", 1, v); err != nil {
		return nil, err
	}
	return &Paren{inner: v}, nil
}

func (*Paren) formulaValue() {}

// Categories implements Value.
func (p *Paren) Categories() category.Set { return p.inner.Categories() }

// Inner returns the grouped expression.
func (p *Paren) Inner() Value { return p.inner }

// UnaryOp is a prefix or postfix operator.
type UnaryOp int

const (
	// OpNeg is prefix negation: -x.
	OpNeg UnaryOp = iota + 1
	// OpPercent is postfix percent: x%.
	OpPercent
)

// String returns the operator token.
func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpPercent:
		return "%"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}

// Postfix reports whether the operator follows its operand.
func (op UnaryOp) Postfix() bool {
	return op == OpPercent
}

// Unary applies a UnaryOp to a Number operand.
type Unary struct {
	op      UnaryOp
	operand Value
}

// NewUnary builds op applied to v. Both operators require and produce Number.
func NewUnary(op UnaryOp, v Value) (*Unary, error) {
	node := "Unary(" + op.String() + ")"
	if op != OpNeg && op != OpPercent {
		return nil, &BuildError{Code: ErrCodeOperator, Node: node, Message: "unsupported unary operator"}
	}
	if err := requireCategory(node, 1, v, category.Number); err != nil {
		return nil, err
	}
	return &Unary{op: op, operand: v}, nil
}

func (*Unary) formulaValue() {}

// Categories implements Value.
func (*Unary) Categories() category.Set { return numberSet }

// Op returns the operator.
func (u *Unary) Op() UnaryOp { return u.op }

// Operand returns the operand.
func (u *Unary) Operand() Value { return u.operand }

// BinaryOp is an infix operator token.
type BinaryOp string

const (
	OpAdd       BinaryOp = "+"
	OpSub       BinaryOp = "-"
	OpMul       BinaryOp = "*"
	OpDiv       BinaryOp = "/"
	OpPow       BinaryOp = "^"
	OpEq        BinaryOp = "="
	OpNe        BinaryOp = "<>"
	OpLt        BinaryOp = "<"
	OpLe        BinaryOp = "<="
	OpGt        BinaryOp = ">"
	OpGe        BinaryOp = ">="
	OpConcat    BinaryOp = "&"
	OpIntersect BinaryOp = "!"
	OpUnion     BinaryOp = "~"
)

// contract is an operator's category rule: both operands must satisfy
// requires (zero accepts anything) and the result satisfies produces.
type contract struct {
	requires category.Category
	produces category.Set
}

var contracts = map[BinaryOp]contract{
	OpAdd:       {category.Number, numberSet},
	OpSub:       {category.Number, numberSet},
	OpMul:       {category.Number, numberSet},
	OpDiv:       {category.Number, numberSet},
	OpPow:       {category.Number, numberSet},
	OpEq:        {0, logicalSet},
	OpNe:        {0, logicalSet},
	OpLt:        {0, logicalSet},
	OpLe:        {0, logicalSet},
	OpGt:        {0, logicalSet},
	OpGe:        {0, logicalSet},
	OpConcat:    {category.Text, textSet},
	OpIntersect: {category.Reference, referenceSet},
	OpUnion:     {category.Reference, referenceSet},
}

// ParseBinaryOp returns the operator for a token such as "+" or "<>".
func ParseBinaryOp(token string) (BinaryOp, bool) {
	op := BinaryOp(token)
	_, ok := contracts[op]
	return op, ok
}

// Requires returns the category both operands of op must satisfy
// (zero for comparisons, which accept anything).
func (op BinaryOp) Requires() category.Category {
	return contracts[op].requires
}

// Binary is an infix operation.
type Binary struct {
	op          BinaryOp
	left, right Value
	categories  category.Set
}

// NewBinary builds left op right, checking both operands against the
// operator's contract.
func NewBinary(op BinaryOp, left, right Value) (*Binary, error) {
	node := "Binary(" + string(op) + ")"
	c, ok := contracts[op]
	if !ok {
		return nil, &BuildError{Code: ErrCodeOperator, Node: node, Message: "unsupported binary operator"}
	}
	if err := requireCategory(node, 1, left, c.requires); err != nil {
		return nil, err
	}
	if err := requireCategory(node, 2, right, c.requires); err != nil {
		return nil, err
	}
	return &Binary{op: op, left: left, right: right, categories: c.produces}, nil
}

func (*Binary) formulaValue() {}

// Categories implements Value.
func (b *Binary) Categories() category.Set { return b.categories }

// Op returns the operator.
func (b *Binary) Op() BinaryOp { return b.op }

// Left returns the left operand.
func (b *Binary) Left() Value { return b.left }

// Right returns the right operand.
func (b *Binary) Right() Value { return b.right }

// Comparator selects the comparison a Criterion applies.
type Comparator int

const (
	// Bare matches the value itself; no operator text is emitted.
	Bare Comparator = iota
	CmpEq
	CmpNe
	CmpLt
	CmpGt
	CmpLtEq
	CmpGtEq
)

var comparatorTokens = map[Comparator]string{
	Bare:    "",
	CmpEq:   "=",
	CmpNe:   "<>",
	CmpLt:   "<",
	CmpGt:   ">",
	CmpLtEq: "<=",
	CmpGtEq: ">=",
}

// Token returns the comparison operator text, or "" for Bare.
func (c Comparator) Token() string {
	return comparatorTokens[c]
}

// ParseComparator returns the comparator for a token; "" is Bare.
func ParseComparator(token string) (Comparator, bool) {
	for c, t := range comparatorTokens {
		if t == token {
			return c, true
		}
	}
	return 0, false
}

// Criterion is a filter predicate for conditional aggregates (COUNTIF,
// SUMIFS, ...). Non-bare comparators emit as a quoted operator
// concatenated with the value: ">"&1.
type Criterion struct {
	cmp   Comparator
	value Value
}

// NewCriterion builds a criterion comparing against v.
func NewCriterion(cmp Comparator, v Value) (*Criterion, error) {
	if _, ok := comparatorTokens[cmp]; !ok {
		return nil, &BuildError{Code: ErrCodeOperator, Node: "Criterion", Message: fmt.Sprintf("unsupported comparator %d", int(cmp))}
	}
	if err := checkValue("Criterion", 1, v); err != nil {
		return nil, err
	}
	return &Criterion{cmp: cmp, value: v}, nil
}

func (*Criterion) formulaValue() {}

// Categories implements Value.
func (*Criterion) Categories() category.Set { return category.Of(category.Criterion) }

// Comparator returns the comparison.
func (c *Criterion) Comparator() Comparator { return c.cmp }

// Value returns the compared value.
func (c *Criterion) Value() Value { return c.value }

// structural is the subset of categories an aggregate inherits only when
// every element carries it.
var structural = []category.Category{category.Number, category.Text, category.Logical}

// commonStructural returns the structural categories shared by all values.
func commonStructural(values []Value) category.Set {
	var s category.Set
	for _, c := range structural {
		all := true
		for _, v := range values {
			if !v.Categories().Has(c) {
				all = false
				break
			}
		}
		if all {
			s = s.With(c)
		}
	}
	return s
}

// Array is an inline matrix literal: {1;2;3|4;5;6}.
type Array struct {
	rows       [][]Value
	categories category.Set
}

// NewArray builds an inline array from rows of cells. There must be at
// least one row, rows must be non-empty and all the same length.
// The array satisfies Matrix and Sequence, plus Number, Text or Logical
// when every cell does.
func NewArray(rows ...[]Value) (*Array, error) {
	if len(rows) == 0 {
		return nil, shapeError("Array", "array has no rows")
	}
	width := len(rows[0])
	copied := make([][]Value, len(rows))
	var cells []Value
	for i, row := range rows {
		if len(row) == 0 {
			return nil, shapeError("Array", "row %d is empty", i+1)
		}
		if len(row) != width {
			return nil, shapeError("Array", "row %d has %d cells, want %d", i+1, len(row), width)
		}
		for j, v := range row {
			if err := checkValue(fmt.Sprintf("Array[%d]", i+1), j+1, v); err != nil {
				return nil, err
			}
		}
		copied[i] = append([]Value(nil), row...)
		cells = append(cells, row...)
	}
	cats := category.Set(0).With(category.Matrix, category.Sequence).Union(commonStructural(cells))
	return &Array{rows: copied, categories: cats}, nil
}

func (*Array) formulaValue() {}

// Categories implements Value.
func (a *Array) Categories() category.Set { return a.categories }

// Rows returns a copy of the array's rows.
func (a *Array) Rows() [][]Value {
	out := make([][]Value, len(a.rows))
	for i, row := range a.rows {
		out[i] = append([]Value(nil), row...)
	}
	return out
}

// Dims returns the number of rows and columns.
func (a *Array) Dims() (rows, cols int) {
	return len(a.rows), len(a.rows[0])
}

// Seq is an undelimited, ';'-joined run of values. It flattens repeated
// argument groups (range/criterion pairs) or passes several values where
// one Sequence argument is expected.
type Seq struct {
	items      []Value
	categories category.Set
}

// NewSeq builds a sequence of at least one item. The sequence satisfies
// Sequence, plus Number, Text or Logical when every item does.
func NewSeq(items ...Value) (*Seq, error) {
	if len(items) == 0 {
		return nil, shapeError("Seq", "sequence is empty")
	}
	for i, v := range items {
		if err := checkValue("Seq", i+1, v); err != nil {
			return nil, err
		}
	}
	cats := category.Set(0).With(category.Sequence).Union(commonStructural(items))
	return &Seq{items: append([]Value(nil), items...), categories: cats}, nil
}

func (*Seq) formulaValue() {}

// Categories implements Value.
func (s *Seq) Categories() category.Set { return s.categories }

// Items returns a copy of the sequence's items.
func (s *Seq) Items() []Value {
	return append([]Value(nil), s.items...)
}

// Len returns the number of items.
func (s *Seq) Len() int { return len(s.items) }
