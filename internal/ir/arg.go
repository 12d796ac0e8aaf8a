package ir

// Arg is one argument slot of a function call: either a Provided value or
// an Omitted placeholder. It is sealed; only Provided and Omitted implement it.
type Arg interface {
	argSlot()
}

// Provided is an argument slot holding a value.
type Provided struct {
	Value Value
}

func (Provided) argSlot() {}

// Omitted is an argument slot left empty. A run of Omitted slots at the end
// of an argument list is dropped on emission; an Omitted slot followed by a
// Provided one emits an empty segment in its position.
type Omitted struct{}

func (Omitted) argSlot() {}

// Args wraps each value as a Provided slot.
func Args(vs ...Value) []Arg {
	out := make([]Arg, len(vs))
	for i, v := range vs {
		out[i] = Provided{Value: v}
	}
	return out
}

// Opt returns Omitted when v is nil and Provided{v} otherwise.
func Opt(v Value) Arg {
	if v == nil {
		return Omitted{}
	}
	return Provided{Value: v}
}

// IsOmitted reports whether a is an Omitted slot.
func IsOmitted(a Arg) bool {
	_, ok := a.(Omitted)
	return ok
}

// trimTrailing returns args without its trailing run of Omitted slots.
func trimTrailing(args []Arg) []Arg {
	n := len(args)
	for n > 0 && IsOmitted(args[n-1]) {
		n--
	}
	return args[:n]
}
