package doc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/cellref"
	"github.com/roach88/odsf/internal/emit"
	"github.com/roach88/odsf/internal/fn"
	"github.com/roach88/odsf/internal/ir"
)

// Mode controls how Build handles failing formulas.
type Mode int

const (
	// FailFast stops at the first formula that fails to build.
	FailFast Mode = iota
	// CollectAll builds every formula and reports every failure.
	CollectAll
)

// Formula is a built document entry.
type Formula struct {
	Name  string
	Value ir.Value
	Text  string // full formula, "of=..."
	ID    string // content address of Text
}

// PathError locates a build failure inside a document,
// e.g. "formulas[1].expr.call.args[0]".
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Build turns every entry into a formula. The returned formulas are the
// ones that built, in document order; errs holds one *PathError per
// failing entry.
func (d *Document) Build(mode Mode) (formulas []Formula, errs []error) {
	for i, entry := range d.Formulas {
		f, err := buildEntry(fmt.Sprintf("formulas[%d]", i), entry)
		if err != nil {
			errs = append(errs, err)
			if mode == FailFast {
				return formulas, errs
			}
			continue
		}
		formulas = append(formulas, f)
	}
	return formulas, errs
}

// Result is the outcome of building one entry.
type Result struct {
	Name    string
	Formula Formula // zero when Err is set
	Err     error
}

// BuildEach builds every entry and returns one Result per entry in
// document order.
func (d *Document) BuildEach() []Result {
	results := make([]Result, len(d.Formulas))
	for i, entry := range d.Formulas {
		f, err := buildEntry(fmt.Sprintf("formulas[%d]", i), entry)
		results[i] = Result{Name: entry.Name, Formula: f, Err: err}
	}
	return results
}

// BuildNamed builds only the entry called name; other entries are not
// touched, so their failures do not affect it. ok is false when no entry
// has that name.
func (d *Document) BuildNamed(name string) (f Formula, ok bool, err error) {
	for i, entry := range d.Formulas {
		if entry.Name == name {
			f, err = buildEntry(fmt.Sprintf("formulas[%d]", i), entry)
			return f, true, err
		}
	}
	return Formula{}, false, nil
}

func buildEntry(path string, entry Entry) (Formula, error) {
	v, err := buildExpr(path+".expr", entry.Expr)
	if err != nil {
		return Formula{}, err
	}
	text, err := emit.Formula(v)
	if err != nil {
		return Formula{}, &PathError{Path: path + ".expr", Err: err}
	}
	return Formula{Name: entry.Name, Value: v, Text: text, ID: ir.FormulaID(text)}, nil
}

// at wraps err with path unless it already carries a deeper one.
func at(path string, err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	return &PathError{Path: path, Err: err}
}

func buildExpr(path string, e *Expr) (ir.Value, error) {
	if e == nil {
		return nil, at(path, errors.New("expression is required"))
	}
	keys := e.keys()
	if len(keys) != 1 {
		if len(keys) == 0 {
			return nil, at(path, errors.New("expression has no node key"))
		}
		return nil, at(path, fmt.Errorf("expression has %d node keys (%s), want exactly one", len(keys), strings.Join(keys, ", ")))
	}

	var (
		v   ir.Value
		err error
	)
	switch {
	case e.Int != nil:
		v = ir.Int(*e.Int)
	case e.Float != nil:
		v = ir.Float(*e.Float)
		err = ir.Check(v)
	case e.Bool != nil:
		v = ir.Bool(*e.Bool)
	case e.Text != nil:
		v = ir.Text(*e.Text)
	case e.Ref != nil:
		v, err = buildRef(*e.Ref)
	case e.Range != nil:
		v, err = buildRange(e.Range)
	case e.Paren != nil:
		return buildUnaryLike(path+".paren", e.Paren, func(inner ir.Value) (ir.Value, error) { return ir.NewParen(inner) })
	case e.Neg != nil:
		return buildUnaryLike(path+".neg", e.Neg, func(inner ir.Value) (ir.Value, error) { return ir.Neg(inner) })
	case e.Percent != nil:
		return buildUnaryLike(path+".percent", e.Percent, func(inner ir.Value) (ir.Value, error) { return ir.Percent(inner) })
	case e.Binary != nil:
		v, err = buildBinary(path+".binary", e.Binary)
		path += ".binary"
	case e.Call != nil:
		v, err = buildCall(path+".call", e.Call)
		path += ".call"
	case e.Criterion != nil:
		v, err = buildCriterion(path+".criterion", e.Criterion)
		path += ".criterion"
	case e.Array != nil:
		v, err = buildArray(path+".array", e.Array)
		path += ".array"
	case e.Seq != nil:
		v, err = buildSeq(path+".seq", e.Seq)
		path += ".seq"
	}
	if err != nil {
		return nil, at(path, err)
	}
	return v, nil
}

func buildUnaryLike(path string, inner *Expr, wrap func(ir.Value) (ir.Value, error)) (ir.Value, error) {
	v, err := buildExpr(path, inner)
	if err != nil {
		return nil, err
	}
	out, err := wrap(v)
	if err != nil {
		return nil, at(path, err)
	}
	return out, nil
}

func buildRef(addr string) (ir.Value, error) {
	c, err := cellref.ParseCell(addr)
	if err != nil {
		return nil, err
	}
	return ir.CellRef(c), nil
}

func buildRange(r *RangeExpr) (ir.Value, error) {
	from, err := cellref.ParseCell(r.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := cellref.ParseCell(r.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	rng := cellref.Range{From: from, To: to}
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return ir.CellRange(rng), nil
}

func buildBinary(path string, b *BinaryExpr) (ir.Value, error) {
	op, ok := ir.ParseBinaryOp(b.Op)
	if !ok {
		return nil, &ir.BuildError{Code: ir.ErrCodeOperator, Node: "Binary", Message: fmt.Sprintf("unknown operator %q", b.Op)}
	}
	left, err := buildExpr(path+".left", b.Left)
	if err != nil {
		return nil, err
	}
	right, err := buildExpr(path+".right", b.Right)
	if err != nil {
		return nil, err
	}
	return ir.NewBinary(op, left, right)
}

func buildCall(path string, c *CallExpr) (ir.Value, error) {
	args := make([]ir.Arg, len(c.Args))
	for i, a := range c.Args {
		if a == nil {
			args[i] = ir.Omitted{}
			continue
		}
		v, err := buildExpr(fmt.Sprintf("%s.args[%d]", path, i), a)
		if err != nil {
			return nil, err
		}
		args[i] = ir.Provided{Value: v}
	}

	var declared category.Set
	if len(c.Result) > 0 {
		s, err := parseResult(c.Result)
		if err != nil {
			return nil, at(path+".result", err)
		}
		declared = s
	}

	if len(fn.Overloads(c.Name)) == 0 {
		if len(c.Result) == 0 {
			return nil, fmt.Errorf("%w: declare result categories to call it", &fn.UnknownFunctionError{Name: c.Name})
		}
		return ir.NewCall(c.Name, declared, args...)
	}

	call, err := fn.Resolve(c.Name, args...)
	if err != nil {
		return nil, err
	}
	if len(c.Result) == 0 {
		return call, nil
	}
	if !call.Categories().IsEmpty() {
		return nil, at(path+".result", fmt.Errorf("%s has a fixed result %s", call.Name(), call.Categories()))
	}
	return ir.NewCall(call.Name(), declared, call.Args()...)
}

// parseResult reads category names and closes them under subsumption.
func parseResult(names []string) (category.Set, error) {
	cats := make([]category.Category, 0, len(names))
	for _, n := range names {
		c, err := category.Parse(n)
		if err != nil {
			return 0, err
		}
		cats = append(cats, c)
	}
	return category.Of(cats...), nil
}

func buildCriterion(path string, c *CriterionExpr) (ir.Value, error) {
	cmp, ok := ir.ParseComparator(c.Op)
	if !ok {
		return nil, &ir.BuildError{Code: ir.ErrCodeOperator, Node: "Criterion", Message: fmt.Sprintf("unknown comparator %q", c.Op)}
	}
	v, err := buildExpr(path+".value", c.Value)
	if err != nil {
		return nil, err
	}
	return ir.NewCriterion(cmp, v)
}

func buildArray(path string, rows [][]*Expr) (ir.Value, error) {
	values := make([][]ir.Value, len(rows))
	for i, row := range rows {
		values[i] = make([]ir.Value, len(row))
		for j, cell := range row {
			v, err := buildExpr(fmt.Sprintf("%s[%d][%d]", path, i, j), cell)
			if err != nil {
				return nil, err
			}
			values[i][j] = v
		}
	}
	return ir.NewArray(values...)
}

func buildSeq(path string, items []*Expr) (ir.Value, error) {
	values := make([]ir.Value, len(items))
	for i, item := range items {
		v, err := buildExpr(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return ir.NewSeq(values...)
}
