package lisk

// Evaluate reduces expr to a value in env.
//
// Evaluation is plain recursion: each nested form is one Go call frame, and
// there is no tail-call elimination, so unbounded recursion in a program ends
// when the goroutine stack limit is reached.
func Evaluate(expr Expr, env *Env) (Expr, error) {
	switch expr.Tag {
	case ETNil, ETBool, ETInt, ETFloat, ETLambda, ETBuiltin:
		return expr, nil

	case ETSymbol:
		return env.Lookup(expr.Data.(string))

	case ETQuote:
		return expr.Data.(Expr), nil

	case ETBegin:
		return evalBegin(expr.Data.([]Expr), env)

	case ETIf:
		f := expr.Data.(*IfForm)
		pred, err := Evaluate(f.Pred, env)
		if err != nil {
			return Nil, err
		}
		if pred.Truthy() {
			return Evaluate(f.Then, env)
		}
		if f.Else == nil {
			return Nil, nil
		}
		return Evaluate(*f.Else, env)

	case ETDefine:
		b := expr.Data.(*Binding)
		v, err := Evaluate(b.Value, env)
		if err != nil {
			return Nil, err
		}
		env.Define(b.Name, v)
		return Nil, nil

	case ETSet:
		b := expr.Data.(*Binding)
		v, err := Evaluate(b.Value, env)
		if err != nil {
			return Nil, err
		}
		if err := env.Set(b.Name, v); err != nil {
			return Nil, err
		}
		return v, nil

	case ETList:
		return evalCall(expr.Data.([]Expr), env)
	}
	return Nil, rtErr(KindNotCallable, "cannot evaluate %s expression", expr.Tag)
}

// Apply calls a procedure value with already-evaluated arguments. env is the
// caller's environment: builtins receive it, and lambda bodies run in a new
// child of it.
func Apply(fn Expr, args []Expr, env *Env) (Expr, error) {
	switch fn.Tag {
	case ETBuiltin:
		return fn.Data.(*Builtin).Fn(env, args)

	case ETLambda:
		l := fn.Data.(*Lambda)
		if len(args) != len(l.Params) {
			return Nil, rtErr(KindArityMismatch, "lambda expects %d arguments, got %d", len(l.Params), len(args))
		}
		scope := NewEnv(env)
		for i, p := range l.Params {
			scope.Define(p, args[i])
		}
		return Evaluate(l.Body, scope)
	}
	return Nil, rtErr(KindNotCallable, "not a procedure: %s", ToSource(fn))
}

func evalBegin(exprs []Expr, env *Env) (Expr, error) {
	if len(exprs) == 0 {
		return Nil, rtErr(KindArityMismatch, "begin expects at least 1 expression")
	}
	var last Expr
	for _, e := range exprs {
		v, err := Evaluate(e, env)
		if err != nil {
			return Nil, err
		}
		last = v
	}
	return last, nil
}

func evalCall(items []Expr, env *Env) (Expr, error) {
	if len(items) == 0 {
		return Nil, rtErr(KindEmptyCall, "cannot evaluate empty list ()")
	}
	fn, err := Evaluate(items[0], env)
	if err != nil {
		return Nil, err
	}
	if fn.Tag != ETBuiltin && fn.Tag != ETLambda {
		return Nil, rtErr(KindNotCallable, "not a procedure: %s", ToSource(fn))
	}
	args := make([]Expr, 0, len(items)-1)
	for _, a := range items[1:] {
		v, err := Evaluate(a, env)
		if err != nil {
			return Nil, err
		}
		args = append(args, v)
	}
	return Apply(fn, args, env)
}
