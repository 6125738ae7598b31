package lisk

import (
	"math"
	"strings"
	"testing"
)

func Test_Printer_Atoms(t *testing.T) {
	cases := []struct {
		e    Expr
		want string
	}{
		{Nil, "nil"},
		{True, "#t"},
		{False, "#f"},
		{Int(1), "1"},
		{Int(-12), "-12"},
		{Float(1.0), "1.0"},
		{Float(-2), "-2.0"},
		{Float(0.5), "0.5"},
		{Float(1e21), "1e+21"},
		{Float(math.Inf(1)), "+Inf"},
		{Sym("set!"), "set!"},
	}
	for _, c := range cases {
		if got := ToSource(c.e); got != c.want {
			t.Fatalf("ToSource(%#v) = %q, want %q", c.e, got, c.want)
		}
	}
}

func Test_Printer_Forms(t *testing.T) {
	alt := Sym("c")
	cases := []struct {
		e    Expr
		want string
	}{
		{List(), "()"},
		{List(Sym("+"), Int(1), List(Float(2))), "(+ 1 (2.0))"},
		{Begin(Int(1), Int(2)), "(begin 1 2)"},
		{If(Sym("a"), Sym("b"), nil), "(if a b)"},
		{If(Sym("a"), Sym("b"), &alt), "(if a b c)"},
		{Define("x", Int(1)), "(define x 1)"},
		{Set("x", Int(2)), "(set! x 2)"},
		{Quote(List(Sym("a"))), "(quote (a))"},
		{NewLambda(nil, Int(1)), "(lambda () 1)"},
		{NewBuiltin("+", builtinAdd), "#<builtin +>"},
	}
	for _, c := range cases {
		if got := ToSource(c.e); got != c.want {
			t.Fatalf("ToSource = %q, want %q", got, c.want)
		}
	}
}

func Test_Printer_RoundTrip(t *testing.T) {
	alt := Float(-3.75)
	exprs := []Expr{
		Nil, True, False,
		Int(0), Int(42), Int(-7), Int(math.MaxInt64), Int(math.MinInt64),
		Float(1), Float(0.1), Float(-2.5), Float(1e21), Float(1.5e-9),
		Sym("x"), Sym("<="), Sym("set!"),
		List(),
		List(Sym("+"), Int(1), Float(2)),
		List(List(List()), Nil, True, List(Sym("a"), False)),
		Begin(Define("x", Int(1)), Sym("x")),
		If(List(Sym("<="), Int(1), Int(2)), Sym("a"), &alt),
		Set("x", List(Sym("+"), Sym("x"), Int(1))),
		Quote(List(Sym("if"), Sym("define"))),
		NewLambda([]string{"n"}, List(Sym("*"), Sym("n"), Sym("n"))),
	}
	for _, e := range exprs {
		src := ToSource(e)
		back, err := ParseProgram(src)
		if err != nil {
			t.Fatalf("re-parse of %q: %v", src, err)
		}
		if !Equal(back, e) {
			t.Fatalf("round trip of %q gave %q", src, ToSource(back))
		}
	}
}

func Test_Printer_KeywordHeadedDataDoesNotRoundTrip(t *testing.T) {
	// Quoted, the list survives.
	q := Quote(List(Sym("define"), Sym("x"), Int(1)))
	back, err := ParseProgram(ToSource(q))
	if err != nil || !Equal(back, q) {
		t.Fatalf("quoted data must round trip, got %s, %v", ToSource(back), err)
	}

	// Bare, it is read as a special form.
	src := ToSource(List(Sym("if")))
	if src != "(if)" {
		t.Fatalf("ToSource = %q", src)
	}
	if _, err := ParseProgram(src); err == nil {
		t.Fatalf("(if) must not parse")
	}
	back = mustParse(t, ToSource(List(Sym("define"), Sym("x"), Int(1))))
	wantTag(t, back, ETDefine)
}

func Test_Printer_ExprString(t *testing.T) {
	e := List(Sym("f"), Int(1))
	if e.String() != "(f 1)" {
		t.Fatalf("String() = %q", e.String())
	}
}

func Test_Printer_Pretty(t *testing.T) {
	out, err := Pretty("(define  x\n 1)\n\n( +   x 2.0 )  ")
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "(define x 1)\n(+ x 2.0)\n"
	if out != want {
		t.Fatalf("Pretty = %q, want %q", out, want)
	}

	// Idempotent.
	again, err := Pretty(out)
	if err != nil || again != out {
		t.Fatalf("Pretty not idempotent: %q, %v", again, err)
	}

	_, err = Pretty("(a\n b))")
	if err == nil || !strings.Contains(err.Error(), "PARSE ERROR at 2:4") {
		t.Fatalf("want caret-wrapped parse error, got %v", err)
	}
}
