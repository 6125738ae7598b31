// builtins.go: arithmetic and comparison procedures of the base environment.
//
// Numeric promotion is pairwise: int ⊕ int stays int (wrapping on overflow),
// and as soon as either operand is a float both are taken as float64 and the
// result is a float. Any non-number argument is a TypeMismatch.
package lisk

import (
	"github.com/nukata/goarith"
)

// NewBaseEnv returns a root scope holding the builtins + * - / and <=.
// Each call returns an independent environment.
func NewBaseEnv() *Env {
	env := NewEnv(nil)
	for _, b := range builtinTable {
		env.Define(b.name, NewBuiltin(b.name, b.fn))
	}
	return env
}

var builtinTable = []struct {
	name string
	fn   BuiltinFunc
}{
	{"+", builtinAdd},
	{"*", builtinMul},
	{"-", builtinSub},
	{"/", builtinDiv},
	{"<=", builtinLessEq},
}

type arith struct {
	name   string
	ints   func(a, b int64) (int64, error)
	floats func(a, b float64) float64
}

var (
	addOp = arith{"+",
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) float64 { return a + b }}
	mulOp = arith{"*",
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) float64 { return a * b }}
	subOp = arith{"-",
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) float64 { return a - b }}
	divOp = arith{"/",
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, rtErr(KindDivideByZero, "/: integer division by zero")
			}
			return a / b, nil
		},
		func(a, b float64) float64 { return a / b }}
)

func builtinAdd(_ *Env, args []Expr) (Expr, error) {
	return fold(addOp, Int(0), args)
}

func builtinMul(_ *Env, args []Expr) (Expr, error) {
	return fold(mulOp, Int(1), args)
}

func builtinSub(_ *Env, args []Expr) (Expr, error) {
	switch len(args) {
	case 0:
		return Int(0), nil
	case 1:
		if err := checkNumbers("-", args); err != nil {
			return Nil, err
		}
		if args[0].Tag == ETInt {
			return Int(-args[0].Data.(int64)), nil
		}
		return Float(-args[0].Data.(float64)), nil
	}
	return fold(subOp, args[0], args[1:])
}

func builtinDiv(_ *Env, args []Expr) (Expr, error) {
	switch len(args) {
	case 0:
		return Int(1), nil
	case 1:
		return fold(divOp, Int(1), args)
	}
	return fold(divOp, args[0], args[1:])
}

// builtinLessEq is true when every adjacent pair is non-descending.
func builtinLessEq(_ *Env, args []Expr) (Expr, error) {
	if len(args) < 2 {
		return Nil, rtErr(KindArityMismatch, "<=: expects at least 2 arguments, got %d", len(args))
	}
	if err := checkNumbers("<=", args); err != nil {
		return Nil, err
	}
	for i := 1; i < len(args); i++ {
		if !lessEq(args[i-1], args[i]) {
			return False, nil
		}
	}
	return True, nil
}

// fold combines seed with each argument in turn, left to right.
func fold(op arith, seed Expr, args []Expr) (Expr, error) {
	if err := checkNumbers(op.name, append([]Expr{seed}, args...)); err != nil {
		return Nil, err
	}
	acc := seed
	for _, a := range args {
		var err error
		if acc, err = combine(op, acc, a); err != nil {
			return Nil, err
		}
	}
	return acc, nil
}

func combine(op arith, a, b Expr) (Expr, error) {
	if a.Tag == ETInt && b.Tag == ETInt {
		n, err := op.ints(a.Data.(int64), b.Data.(int64))
		if err != nil {
			return Nil, err
		}
		return Int(n), nil
	}
	return Float(op.floats(toFloat(a), toFloat(b))), nil
}

// lessEq orders two numbers exactly when both are ints. Otherwise both are
// taken as float64 and compared under IEEE rules, so a NaN on either side
// is never <=.
func lessEq(a, b Expr) bool {
	if a.Tag == ETInt && b.Tag == ETInt {
		return goarith.AsNumber(a.Data).Cmp(goarith.AsNumber(b.Data)) <= 0
	}
	return toFloat(a) <= toFloat(b)
}

func checkNumbers(name string, args []Expr) error {
	for _, a := range args {
		if !a.IsNumber() {
			return rtErr(KindTypeMismatch, "%s: expected a number, got %s %s", name, a.Tag, ToSource(a))
		}
	}
	return nil
}

func toFloat(e Expr) float64 {
	if e.Tag == ETInt {
		return float64(e.Data.(int64))
	}
	return e.Data.(float64)
}
