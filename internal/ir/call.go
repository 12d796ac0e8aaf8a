package ir

import (
	"fmt"
	"regexp"

	"github.com/roach88/odsf/internal/category"
)

var functionName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._]*$`)

// Call is a function application: NAME(a;b;c).
type Call struct {
	name   string
	args   []Arg
	result category.Set
}

// NewCall builds a call to name with the given argument slots. result is the
// category set the called function produces; wrappers declare it (see
// Signature), NewCall does not derive it.
//
// NewCall knows nothing about real function arities. It only checks that
// the name can be emitted and that every Provided slot holds a usable value.
func NewCall(name string, result category.Set, args ...Arg) (*Call, error) {
	node := "Call(" + name + ")"
	if !functionName.MatchString(name) {
		return nil, &BuildError{Code: ErrCodeName, Node: node, Message: fmt.Sprintf("invalid function name %q", name)}
	}
	for i, a := range args {
		switch x := a.(type) {
		case Provided:
			if err := checkValue(node, i+1, x.Value); err != nil {
				return nil, err
			}
		case Omitted:
		default:
			return nil, arityError(node, i+1, "argument slot is nil")
		}
	}
	return &Call{name: name, args: append([]Arg(nil), args...), result: result}, nil
}

func (*Call) formulaValue() {}

// Categories implements Value.
func (c *Call) Categories() category.Set { return c.result }

// Name returns the function name.
func (c *Call) Name() string { return c.name }

// Args returns the argument slots with the trailing run of Omitted slots
// removed, which is exactly what gets emitted.
func (c *Call) Args() []Arg {
	return append([]Arg(nil), trimTrailing(c.args)...)
}

// Arity returns the number of emitted argument positions.
func (c *Call) Arity() int {
	return len(trimTrailing(c.args))
}
