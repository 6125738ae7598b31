package lisk

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// ExprTag enumerates every expression/value kind. The set is closed: the
// evaluator matches on it exhaustively.
type ExprTag int

const (
	ETNil     ExprTag = iota // no payload
	ETBool                   // bool
	ETInt                    // int64
	ETFloat                  // float64
	ETSymbol                 // string
	ETList                   // []Expr
	ETLambda                 // *Lambda
	ETBuiltin                // *Builtin
	ETBegin                  // []Expr
	ETIf                     // *IfForm
	ETDefine                 // *Binding
	ETSet                    // *Binding
	ETQuote                  // Expr
)

var tagNames = [...]string{
	ETNil:     "nil",
	ETBool:    "bool",
	ETInt:     "int",
	ETFloat:   "float",
	ETSymbol:  "symbol",
	ETList:    "list",
	ETLambda:  "lambda",
	ETBuiltin: "builtin",
	ETBegin:   "begin",
	ETIf:      "if",
	ETDefine:  "define",
	ETSet:     "set!",
	ETQuote:   "quote",
}

func (t ExprTag) String() string {
	if int(t) >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Expr is both the syntax tree node and the runtime value.
//
// Tag selects which Go type Data holds (see ExprTag). An Expr is never
// modified after construction; the constructors copy the slices they are
// given, and code reading Data must not write through it.
type Expr struct {
	Tag  ExprTag
	Data any
}

// Lambda is a user-defined procedure. It does not capture the environment it
// was written in: calls run in a child of the caller's environment.
type Lambda struct {
	Params []string
	Body   Expr
}

// BuiltinFunc implements a builtin procedure. env is the caller's
// environment; args are already evaluated.
type BuiltinFunc func(env *Env, args []Expr) (Expr, error)

// Builtin wraps a host function as a first-class procedure value.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// IfForm is (if Pred Then Else?). Else is nil when the alternate is absent.
type IfForm struct {
	Pred Expr
	Then Expr
	Else *Expr
}

// Binding is the operand pair of define and set!.
type Binding struct {
	Name  string
	Value Expr
}

// Singletons.
var (
	Nil   = Expr{Tag: ETNil}
	True  = Expr{Tag: ETBool, Data: true}
	False = Expr{Tag: ETBool, Data: false}
)

func Bool(b bool) Expr {
	if b {
		return True
	}
	return False
}

func Int(n int64) Expr     { return Expr{Tag: ETInt, Data: n} }
func Float(f float64) Expr { return Expr{Tag: ETFloat, Data: f} }
func Sym(name string) Expr { return Expr{Tag: ETSymbol, Data: name} }

// List builds a list expression from a copy of items.
func List(items ...Expr) Expr {
	return Expr{Tag: ETList, Data: cloneExprs(items)}
}

func NewLambda(params []string, body Expr) Expr {
	ps := make([]string, len(params))
	copy(ps, params)
	return Expr{Tag: ETLambda, Data: &Lambda{Params: ps, Body: body}}
}

func NewBuiltin(name string, fn BuiltinFunc) Expr {
	return Expr{Tag: ETBuiltin, Data: &Builtin{Name: name, Fn: fn}}
}

func Begin(exprs ...Expr) Expr {
	return Expr{Tag: ETBegin, Data: cloneExprs(exprs)}
}

// If builds (if pred then) when els is nil, else (if pred then els).
func If(pred, then Expr, els *Expr) Expr {
	f := &IfForm{Pred: pred, Then: then}
	if els != nil {
		e := *els
		f.Else = &e
	}
	return Expr{Tag: ETIf, Data: f}
}

func Define(name string, value Expr) Expr {
	return Expr{Tag: ETDefine, Data: &Binding{Name: name, Value: value}}
}

func Set(name string, value Expr) Expr {
	return Expr{Tag: ETSet, Data: &Binding{Name: name, Value: value}}
}

func Quote(e Expr) Expr { return Expr{Tag: ETQuote, Data: e} }

////////////////////////////////////////////////////////////////////////////////
//                                 ACCESSORS
////////////////////////////////////////////////////////////////////////////////

// Items returns the elements of a list or begin form (nil for anything else).
// The returned slice is shared; do not modify it.
func (e Expr) Items() []Expr {
	switch e.Tag {
	case ETList, ETBegin:
		return e.Data.([]Expr)
	}
	return nil
}

// AsSymbol returns the name of a symbol.
func (e Expr) AsSymbol() (string, bool) {
	if e.Tag != ETSymbol {
		return "", false
	}
	return e.Data.(string), true
}

func (e Expr) IsNumber() bool { return e.Tag == ETInt || e.Tag == ETFloat }

// Truthy reports whether e selects the consequent of an if. Only #f is false.
func (e Expr) Truthy() bool {
	return !(e.Tag == ETBool && !e.Data.(bool))
}

// String renders e as source text (see ToSource).
func (e Expr) String() string { return ToSource(e) }

// Equal reports deep structural equality. Builtins are equal when their
// names match; floats compare with ==, so NaN is never equal to itself.
func Equal(a, b Expr) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case ETNil:
		return true
	case ETBool:
		return a.Data.(bool) == b.Data.(bool)
	case ETInt:
		return a.Data.(int64) == b.Data.(int64)
	case ETFloat:
		return a.Data.(float64) == b.Data.(float64)
	case ETSymbol:
		return a.Data.(string) == b.Data.(string)
	case ETList, ETBegin:
		return equalExprs(a.Data.([]Expr), b.Data.([]Expr))
	case ETLambda:
		la, lb := a.Data.(*Lambda), b.Data.(*Lambda)
		if len(la.Params) != len(lb.Params) {
			return false
		}
		for i := range la.Params {
			if la.Params[i] != lb.Params[i] {
				return false
			}
		}
		return Equal(la.Body, lb.Body)
	case ETBuiltin:
		return a.Data.(*Builtin).Name == b.Data.(*Builtin).Name
	case ETIf:
		fa, fb := a.Data.(*IfForm), b.Data.(*IfForm)
		if !Equal(fa.Pred, fb.Pred) || !Equal(fa.Then, fb.Then) {
			return false
		}
		if fa.Else == nil || fb.Else == nil {
			return fa.Else == nil && fb.Else == nil
		}
		return Equal(*fa.Else, *fb.Else)
	case ETDefine, ETSet:
		ba, bb := a.Data.(*Binding), b.Data.(*Binding)
		return ba.Name == bb.Name && Equal(ba.Value, bb.Value)
	case ETQuote:
		return Equal(a.Data.(Expr), b.Data.(Expr))
	}
	return false
}

func equalExprs(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

func cloneExprs(xs []Expr) []Expr {
	out := make([]Expr, len(xs))
	copy(out, xs)
	return out
}
