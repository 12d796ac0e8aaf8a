package fn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	numberResult    = category.Of(category.Number)
	textResult      = category.Of(category.Text)
	logicalResult   = category.Of(category.Logical)
	matrixResult    = category.Of(category.Matrix)
	referenceResult = category.Of(category.Reference)

	// anyResult is the empty set: functions like IF or CHOOSE return
	// whatever their arguments hold, so nothing can be promised.
	anyResult category.Set
)

func sig(name string, result category.Set, params ...ir.Param) ir.Signature {
	return ir.Signature{Name: name, Result: result, Params: params}
}

func req(name string, c category.Category) ir.Param {
	return ir.Param{Name: name, Requires: c}
}

func opt(name string, c category.Category) ir.Param {
	return ir.Param{Name: name, Requires: c, Optional: true}
}

func rest(name string, c category.Category) ir.Param {
	return ir.Param{Name: name, Requires: c, Variadic: true}
}

// registry maps upper-case function names to their overloads, primary first.
var registry = buildRegistry(
	mathSignatures,
	logicalSignatures,
	statisticSignatures,
	databaseSignatures,
	bitopSignatures,
	matrixSignatures,
	roundingSignatures,
	textSignatures,
	dateSignatures,
	extaccessSignatures,
	lookupSignatures,
	informationSignatures,
)

func buildRegistry(groups ...[]ir.Signature) map[string][]ir.Signature {
	m := make(map[string][]ir.Signature)
	for _, g := range groups {
		for _, s := range g {
			if err := s.Validate(); err != nil {
				panic(err)
			}
			key := strings.ToUpper(s.Name)
			m[key] = append(m[key], s)
		}
	}
	return m
}

// UnknownFunctionError is returned by Resolve for names not in the registry.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// Lookup returns the primary signature for name (case-insensitive).
func Lookup(name string) (ir.Signature, bool) {
	sigs := registry[strings.ToUpper(name)]
	if len(sigs) == 0 {
		return ir.Signature{}, false
	}
	return sigs[0], true
}

// Overloads returns every signature registered for name, primary first.
// Functions such as DCOUNT have a short form that drops an argument
// instead of leaving a gap.
func Overloads(name string) []ir.Signature {
	return append([]ir.Signature(nil), registry[strings.ToUpper(name)]...)
}

// Names returns all registered function names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve builds a call to name, choosing the first overload whose
// argument count bounds admit len(args). When none does, the primary
// signature reports the arity violation.
func Resolve(name string, args ...ir.Arg) (*ir.Call, error) {
	sigs := registry[strings.ToUpper(name)]
	if len(sigs) == 0 {
		return nil, &UnknownFunctionError{Name: name}
	}
	n := len(args)
	for _, s := range sigs {
		if n >= s.MinArgs() && (s.MaxArgs() < 0 || n <= s.MaxArgs()) {
			return s.Call(args...)
		}
	}
	return sigs[0].Call(args...)
}
