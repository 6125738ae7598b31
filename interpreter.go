// interpreter.go: public facade for embedding the lisk core.
//
// OVERVIEW
// ========
// lisk reads S-expression programs and evaluates them with a tree-walking
// evaluator. The pieces are usable on their own:
//
//   - Tokenize / NewLexer (lexer.go): text → tokens.
//   - ParseProgram / ParseAll (parser.go): tokens → Expr trees.
//   - Evaluate / Apply (eval.go): Expr → Expr against an *Env.
//   - NewBaseEnv (builtins.go): a root scope holding + * - / <=.
//   - ToSource / Pretty (printer.go): Expr → text.
//
// The Interpreter type below only bundles those with a pair of environments,
// the same way for every host:
//
//   - Core:   the base environment with the builtins.
//   - Global: an empty child of Core where top-level defines land.
//
// SCOPING
// -------
// define binds in the current scope and set! rewrites the nearest existing
// binding. The only construct that opens a scope is a lambda call, whose
// scope is a child of the *calling* environment: a lambda's free names are
// resolved where it is called, not where it was written.
//
// ERRORS
// ------
// All entry points return (Expr, error). Parse failures are *ParseError
// (caret-wrapped by the *Source helpers); evaluation failures are
// *RuntimeError. KindOf classifies either. A failed evaluation leaves the
// bindings made before the failure in place.
//
// CONCURRENCY
// -----------
// An Interpreter, like an Env, must not be used from more than one goroutine
// at a time.
package lisk

// Version of the lisk language core.
const Version = "0.4.0"

// Interpreter owns a base environment and a persistent global scope.
type Interpreter struct {
	Core   *Env // builtins; parent of Global
	Global *Env // program-global bindings
}

// NewInterpreter returns an interpreter with a fresh Core and an empty
// Global. Interpreters share no state.
func NewInterpreter() *Interpreter {
	core := NewBaseEnv()
	return &Interpreter{Core: core, Global: NewEnv(core)}
}

// EvalSource parses the first expression of src and evaluates it in a fresh
// child of Global, so its defines do not outlive the call.
func (ip *Interpreter) EvalSource(src string) (Expr, error) {
	return ip.evalIn(src, "<main>", NewEnv(ip.Global))
}

// EvalPersistentSource parses the first expression of src and evaluates it
// in Global.
func (ip *Interpreter) EvalPersistentSource(src string) (Expr, error) {
	return ip.evalIn(src, "<repl>", ip.Global)
}

// EvalAll evaluates every top-level form of src in Global, in order, and
// returns the value of each. On failure it returns the values produced so
// far together with the error.
//
// A parse error does not discard the forms before it: those are evaluated
// first, and the parse error is reported after them. (+ 1 2)) yields 3 and
// then the error for the stray ')'.
func (ip *Interpreter) EvalAll(src string) ([]Expr, error) {
	forms, perr := ParseAll(src)
	out := make([]Expr, 0, len(forms))
	for _, f := range forms {
		v, err := Evaluate(f, ip.Global)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	if perr != nil {
		return out, WrapErrorWithName(perr, "<repl>", src)
	}
	return out, nil
}

func (ip *Interpreter) evalIn(src, name string, env *Env) (Expr, error) {
	expr, err := ParseProgram(src)
	if err != nil {
		return Nil, WrapErrorWithName(err, name, src)
	}
	return Evaluate(expr, env)
}
