package ir

import (
	"fmt"
	"strings"

	"github.com/roach88/odsf/internal/category"
)

// Param describes one parameter of a function signature.
type Param struct {
	// Name is used in error messages and listings.
	Name string

	// Requires is the category a provided argument must satisfy.
	// Zero accepts any value.
	Requires category.Category

	// Optional parameters may be left Omitted.
	Optional bool

	// TrailingOnly restricts an optional parameter to being dropped from the
	// end of the list. Omitting it in front of a provided argument is an
	// arity violation.
	TrailingOnly bool

	// Variadic marks the last parameter as repeatable.
	Variadic bool
}

// Signature is the declared shape of a spreadsheet function.
type Signature struct {
	Name   string
	Result category.Set
	Params []Param
}

// Validate checks the signature itself.
func (s Signature) Validate() error {
	node := "Signature(" + s.Name + ")"
	if !functionName.MatchString(s.Name) {
		return &BuildError{Code: ErrCodeName, Node: node, Message: fmt.Sprintf("invalid function name %q", s.Name)}
	}
	for i, p := range s.Params {
		if p.Variadic && i != len(s.Params)-1 {
			return arityError(node, i+1, "variadic parameter %q is not last", p.Name)
		}
		if p.Requires != 0 && !p.Requires.Valid() {
			return &BuildError{Code: ErrCodeCategory, Node: node, Arg: i + 1, Message: fmt.Sprintf("parameter %q requires unknown category", p.Name)}
		}
	}
	return nil
}

// MinArgs returns the number of arguments that must be provided.
func (s Signature) MinArgs() int {
	n := 0
	for i, p := range s.Params {
		if !p.Optional {
			n = i + 1
		}
	}
	return n
}

// MaxArgs returns the largest accepted argument count, or -1 when the last
// parameter is variadic.
func (s Signature) MaxArgs() int {
	if n := len(s.Params); n > 0 && s.Params[n-1].Variadic {
		return -1
	}
	return len(s.Params)
}

// param returns the parameter governing argument position i (0-based).
func (s Signature) param(i int) (Param, bool) {
	if i < len(s.Params) {
		return s.Params[i], true
	}
	if n := len(s.Params); n > 0 && s.Params[n-1].Variadic {
		return s.Params[n-1], true
	}
	return Param{}, false
}

// Call builds a call to the function, enforcing the signature: no surplus
// arguments, Omitted only in optional positions (and never in front of a
// provided argument for TrailingOnly ones), every required parameter
// present, and every provided argument satisfying its parameter's category.
func (s Signature) Call(args ...Arg) (*Call, error) {
	node := "Call(" + s.Name + ")"
	emitted := len(trimTrailing(args))

	for i, a := range args {
		p, ok := s.param(i)
		if !ok {
			return nil, arityError(node, i+1, "%s takes at most %d arguments, got %d", s.Name, len(s.Params), len(args))
		}
		switch x := a.(type) {
		case Omitted:
			if !p.Optional {
				return nil, arityError(node, i+1, "required parameter %q is omitted", p.Name)
			}
			if p.TrailingOnly && i < emitted {
				return nil, arityError(node, i+1, "parameter %q may only be omitted at the end", p.Name)
			}
		case Provided:
			if err := requireCategory(node, i+1, x.Value, p.Requires); err != nil {
				return nil, err
			}
		default:
			return nil, arityError(node, i+1, "argument slot is nil")
		}
	}

	for i := len(args); i < len(s.Params); i++ {
		if !s.Params[i].Optional {
			return nil, arityError(node, i+1, "missing required parameter %q", s.Params[i].Name)
		}
	}

	return NewCall(s.Name, s.Result, args...)
}

// String renders the signature as NAME(a: Number; [b: Text]; c: Sequence...).
func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		part := p.Name
		if p.Requires != 0 {
			part += ": " + p.Requires.String()
		}
		if p.Variadic {
			part += "..."
		}
		if p.Optional {
			part = "[" + part + "]"
		}
		parts[i] = part
	}
	return s.Name + "(" + strings.Join(parts, "; ") + ")"
}
