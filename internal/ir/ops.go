package ir

// Named combinators for the unary and binary operators.

// Neg builds -v.
func Neg(v Value) (*Unary, error) { return NewUnary(OpNeg, v) }

// Percent builds v%.
func Percent(v Value) (*Unary, error) { return NewUnary(OpPercent, v) }

// Add builds l+r.
func Add(l, r Value) (*Binary, error) { return NewBinary(OpAdd, l, r) }

// Sub builds l-r.
func Sub(l, r Value) (*Binary, error) { return NewBinary(OpSub, l, r) }

// Mul builds l*r.
func Mul(l, r Value) (*Binary, error) { return NewBinary(OpMul, l, r) }

// Div builds l/r.
func Div(l, r Value) (*Binary, error) { return NewBinary(OpDiv, l, r) }

// Pow builds l^r.
func Pow(l, r Value) (*Binary, error) { return NewBinary(OpPow, l, r) }

// Eq builds l=r.
func Eq(l, r Value) (*Binary, error) { return NewBinary(OpEq, l, r) }

// Ne builds l<>r.
func Ne(l, r Value) (*Binary, error) { return NewBinary(OpNe, l, r) }

// Lt builds l<r.
func Lt(l, r Value) (*Binary, error) { return NewBinary(OpLt, l, r) }

// Le builds l<=r.
func Le(l, r Value) (*Binary, error) { return NewBinary(OpLe, l, r) }

// Gt builds l>r.
func Gt(l, r Value) (*Binary, error) { return NewBinary(OpGt, l, r) }

// Ge builds l>=r.
func Ge(l, r Value) (*Binary, error) { return NewBinary(OpGe, l, r) }

// Concat builds l&r.
func Concat(l, r Value) (*Binary, error) { return NewBinary(OpConcat, l, r) }

// Intersect builds l!r, the intersection of two references.
func Intersect(l, r Value) (*Binary, error) { return NewBinary(OpIntersect, l, r) }

// Union builds l~r, the union of two references.
func Union(l, r Value) (*Binary, error) { return NewBinary(OpUnion, l, r) }
