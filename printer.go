package lisk

import (
	"strconv"
	"strings"
)

/* ---------- public entry points ---------- */

// ToSource renders e in surface syntax. Atoms, lists and forms re-parse to
// an Equal expression, with two exceptions. Builtins render as
// #<builtin NAME>, which does not re-parse. A data list whose head is a
// keyword, such as the value of (quote (if)), prints as (if), which the
// parser reads as a special form: it either fails to parse or comes back as
// a form node instead of a List. Inside a quote form the same list
// round-trips, since quote's operand is never classified.
func ToSource(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// Pretty parses every top-level form in src and re-renders each one in
// canonical form, one per line. Parse errors come back caret-wrapped.
func Pretty(src string) (string, error) {
	forms, err := ParseAll(src)
	if err != nil {
		return "", WrapErrorWithSource(err, src)
	}
	var b strings.Builder
	for _, f := range forms {
		writeExpr(&b, f)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

/* ---------- rendering ---------- */

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") { // NaN and ±Inf contain n/N
		s += ".0"
	}
	return s
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e.Tag {
	case ETNil:
		b.WriteString("nil")

	case ETBool:
		if e.Data.(bool) {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}

	case ETInt:
		b.WriteString(strconv.FormatInt(e.Data.(int64), 10))

	case ETFloat:
		b.WriteString(formatFloat(e.Data.(float64)))

	case ETSymbol:
		b.WriteString(e.Data.(string))

	case ETList:
		writeForm(b, "", e.Data.([]Expr)...)

	case ETBegin:
		writeForm(b, "begin", e.Data.([]Expr)...)

	case ETIf:
		f := e.Data.(*IfForm)
		if f.Else == nil {
			writeForm(b, "if", f.Pred, f.Then)
		} else {
			writeForm(b, "if", f.Pred, f.Then, *f.Else)
		}

	case ETDefine:
		d := e.Data.(*Binding)
		writeForm(b, "define", Sym(d.Name), d.Value)

	case ETSet:
		d := e.Data.(*Binding)
		writeForm(b, "set!", Sym(d.Name), d.Value)

	case ETQuote:
		writeForm(b, "quote", e.Data.(Expr))

	case ETLambda:
		l := e.Data.(*Lambda)
		params := make([]Expr, len(l.Params))
		for i, p := range l.Params {
			params[i] = Sym(p)
		}
		writeForm(b, "lambda", List(params...), l.Body)

	case ETBuiltin:
		b.WriteString("#<builtin ")
		b.WriteString(e.Data.(*Builtin).Name)
		b.WriteByte('>')

	default:
		b.WriteString("#<unknown>")
	}
}

// writeForm writes (head x1 x2 ...); an empty head writes a plain list.
func writeForm(b *strings.Builder, head string, xs ...Expr) {
	b.WriteByte('(')
	b.WriteString(head)
	for i, x := range xs {
		if i > 0 || head != "" {
			b.WriteByte(' ')
		}
		writeExpr(b, x)
	}
	b.WriteByte(')')
}
