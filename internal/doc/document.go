package doc

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Document is a named collection of formulas.
type Document struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Formulas    []Entry `yaml:"formulas" json:"formulas"`
}

// Entry is one named formula in a document.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	Expr *Expr  `yaml:"expr" json:"expr"`
}

// Expr is an expression node. Exactly one field must be set.
type Expr struct {
	Int       *int64         `yaml:"int,omitempty" json:"int,omitempty"`
	Float     *float64       `yaml:"float,omitempty" json:"float,omitempty"`
	Bool      *bool          `yaml:"bool,omitempty" json:"bool,omitempty"`
	Text      *string        `yaml:"text,omitempty" json:"text,omitempty"`
	Ref       *string        `yaml:"ref,omitempty" json:"ref,omitempty"`
	Range     *RangeExpr     `yaml:"range,omitempty" json:"range,omitempty"`
	Paren     *Expr          `yaml:"paren,omitempty" json:"paren,omitempty"`
	Neg       *Expr          `yaml:"neg,omitempty" json:"neg,omitempty"`
	Percent   *Expr          `yaml:"percent,omitempty" json:"percent,omitempty"`
	Binary    *BinaryExpr    `yaml:"binary,omitempty" json:"binary,omitempty"`
	Call      *CallExpr      `yaml:"call,omitempty" json:"call,omitempty"`
	Criterion *CriterionExpr `yaml:"criterion,omitempty" json:"criterion,omitempty"`
	Array     [][]*Expr      `yaml:"array,omitempty" json:"array,omitempty"`
	Seq       []*Expr        `yaml:"seq,omitempty" json:"seq,omitempty"`
}

// RangeExpr is a cell range given by its corner addresses.
type RangeExpr struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// BinaryExpr is an infix operation; Op is the operator token ("+", "<>", "&").
type BinaryExpr struct {
	Op    string `yaml:"op" json:"op"`
	Left  *Expr  `yaml:"left" json:"left"`
	Right *Expr  `yaml:"right" json:"right"`
}

// CallExpr is a function call. A null entry in Args is an omitted argument.
// Result lists category names and is required for functions the registry
// does not know.
type CallExpr struct {
	Name   string   `yaml:"name" json:"name"`
	Result []string `yaml:"result,omitempty" json:"result,omitempty"`
	Args   []*Expr  `yaml:"args,omitempty" json:"args,omitempty"`
}

// CriterionExpr is a filter predicate. An empty Op is a bare criterion.
type CriterionExpr struct {
	Op    string `yaml:"op,omitempty" json:"op,omitempty"`
	Value *Expr  `yaml:"value" json:"value"`
}

// keys returns the names of the fields set on e.
func (e *Expr) keys() []string {
	var ks []string
	add := func(set bool, k string) {
		if set {
			ks = append(ks, k)
		}
	}
	add(e.Int != nil, "int")
	add(e.Float != nil, "float")
	add(e.Bool != nil, "bool")
	add(e.Text != nil, "text")
	add(e.Ref != nil, "ref")
	add(e.Range != nil, "range")
	add(e.Paren != nil, "paren")
	add(e.Neg != nil, "neg")
	add(e.Percent != nil, "percent")
	add(e.Binary != nil, "binary")
	add(e.Call != nil, "call")
	add(e.Criterion != nil, "criterion")
	add(e.Array != nil, "array")
	add(e.Seq != nil, "seq")
	return ks
}

// validate checks the document-level fields. Expression errors are
// reported by Build.
func (d *Document) validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(d.Formulas) == 0 {
		return fmt.Errorf("formulas list is required and must be non-empty")
	}
	seen := make(map[string]int, len(d.Formulas))
	for i, f := range d.Formulas {
		if f.Name == "" {
			return fmt.Errorf("formulas[%d]: name is required", i)
		}
		if j, dup := seen[f.Name]; dup {
			return fmt.Errorf("formulas[%d]: duplicate name %q (first used by formulas[%d])", i, f.Name, j)
		}
		seen[f.Name] = i
	}
	return nil
}

// normalize rewrites every string in the document to NFC so that
// visually identical names and text literals compare and hash equal.
func (d *Document) normalize() {
	d.Name = norm.NFC.String(d.Name)
	d.Description = norm.NFC.String(d.Description)
	for i := range d.Formulas {
		d.Formulas[i].Name = norm.NFC.String(d.Formulas[i].Name)
		d.Formulas[i].Expr.normalize()
	}
}

func (e *Expr) normalize() {
	if e == nil {
		return
	}
	nfc := func(s *string) {
		if s != nil {
			*s = norm.NFC.String(*s)
		}
	}
	nfc(e.Text)
	nfc(e.Ref)
	if e.Range != nil {
		e.Range.From = norm.NFC.String(e.Range.From)
		e.Range.To = norm.NFC.String(e.Range.To)
	}
	e.Paren.normalize()
	e.Neg.normalize()
	e.Percent.normalize()
	if e.Binary != nil {
		e.Binary.Left.normalize()
		e.Binary.Right.normalize()
	}
	if e.Call != nil {
		e.Call.Name = norm.NFC.String(e.Call.Name)
		for _, a := range e.Call.Args {
			a.normalize()
		}
	}
	if e.Criterion != nil {
		e.Criterion.Value.normalize()
	}
	for _, row := range e.Array {
		for _, c := range row {
			c.normalize()
		}
	}
	for _, s := range e.Seq {
		s.normalize()
	}
}
