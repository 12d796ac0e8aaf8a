package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/odsf/internal/ir"
)

// Prologue marks text as a stored formula rather than a literal value.
const Prologue = "of="

// Formula returns "of=" followed by the expression text of v.
// It fails only when v itself is not a usable root (nil, a non-finite
// Float, or a Ref whose address is missing or invalid); no text is
// produced in that case.
func Formula(v ir.Value) (string, error) {
	if err := ir.Check(v); err != nil {
		return "", fmt.Errorf("emit formula: %w", err)
	}
	var b strings.Builder
	b.WriteString(Prologue)
	Write(&b, v)
	return b.String(), nil
}

// MustFormula is like Formula but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustFormula(v ir.Value) string {
	s, err := Formula(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Expression returns the text of v without the prologue.
func Expression(v ir.Value) string {
	var b strings.Builder
	Write(&b, v)
	return b.String()
}

// Write appends the text of v to b.
// v must have been built by the ir constructors.
func Write(b *strings.Builder, v ir.Value) {
	switch n := v.(type) {
	case ir.Int:
		b.WriteString(strconv.FormatInt(int64(n), 10))
	case ir.Float:
		// 'f' never switches to exponent notation and always uses '.'.
		b.WriteString(strconv.FormatFloat(float64(n), 'f', -1, 64))
	case ir.Bool:
		if n {
			b.WriteString("TRUE()")
		} else {
			b.WriteString("FALSE()")
		}
	case ir.Text:
		writeText(b, string(n))
	case ir.Ref:
		b.WriteString(n.FormulaRef())
	case *ir.Paren:
		b.WriteByte('(')
		Write(b, n.Inner())
		b.WriteByte(')')
	case *ir.Unary:
		if n.Op().Postfix() {
			Write(b, n.Operand())
			b.WriteString(n.Op().String())
		} else {
			b.WriteString(n.Op().String())
			Write(b, n.Operand())
		}
	case *ir.Binary:
		Write(b, n.Left())
		b.WriteString(string(n.Op()))
		Write(b, n.Right())
	case *ir.Call:
		writeCall(b, n)
	case *ir.Criterion:
		if tok := n.Comparator().Token(); tok != "" {
			writeText(b, tok)
			b.WriteByte('&')
		}
		Write(b, n.Value())
	case *ir.Array:
		b.WriteByte('{')
		for i, row := range n.Rows() {
			if i > 0 {
				b.WriteByte('|')
			}
			writeList(b, row)
		}
		b.WriteByte('}')
	case *ir.Seq:
		writeList(b, n.Items())
	default:
		panic(fmt.Sprintf("emit: unsupported value type %T", v))
	}
}

// writeText emits a quoted string literal with embedded quotes doubled.
func writeText(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}

func writeList(b *strings.Builder, vs []ir.Value) {
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(';')
		}
		Write(b, v)
	}
}

// writeCall emits NAME(a;b;c). Call.Args has already dropped the trailing
// run of Omitted slots; any Omitted slot left sits in front of a provided
// argument and emits as an empty segment.
func writeCall(b *strings.Builder, c *ir.Call) {
	b.WriteString(c.Name())
	b.WriteByte('(')
	for i, a := range c.Args() {
		if i > 0 {
			b.WriteByte(';')
		}
		if p, ok := a.(ir.Provided); ok {
			Write(b, p.Value)
		}
	}
	b.WriteByte(')')
}
