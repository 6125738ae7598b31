// lexer_test.go
package lisk

import (
	"reflect"
	"testing"
)

func wantTokens(t *testing.T, src string, want []string) {
	t.Helper()
	got := Tokenize(src)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nsource:\n%q\nwant tokens:\n%q\ngot tokens:\n%q\n", src, want, got)
	}
}

func Test_Lexer_Words(t *testing.T) {
	wantTokens(t, "1", []string{"1"})
	wantTokens(t, "a b 1 2", []string{"a", "b", "1", "2"})
	wantTokens(t, " a  b ", []string{"a", "b"})
	wantTokens(t, "a\tb\nc\r\nd", []string{"a", "b", "c", "d"})
}

func Test_Lexer_Parens(t *testing.T) {
	wantTokens(t, "(+ 1 2)", []string{"(", "+", "1", "2", ")"})
	wantTokens(t, "((a)(b))", []string{"(", "(", "a", ")", "(", "b", ")", ")"})
	wantTokens(t, "f(x)y", []string{"f", "(", "x", ")", "y"})
	wantTokens(t, ")(", []string{")", "("})
}

func Test_Lexer_NoEmptyTokens(t *testing.T) {
	wantTokens(t, "", nil)
	wantTokens(t, "   \n\t ", nil)
	for _, tok := range Tokenize("  ( ( )  )  x  ") {
		if tok == "" {
			t.Fatalf("empty token emitted")
		}
	}
}

func Test_Lexer_NoQuotingOrComments(t *testing.T) {
	wantTokens(t, `"a b"`, []string{`"a`, `b"`})
	wantTokens(t, "'x ;c", []string{"'x", ";c"})
	wantTokens(t, "set! #t #f nil", []string{"set!", "#t", "#f", "nil"})
}

func Test_Lexer_Positions(t *testing.T) {
	toks := NewLexer("(a\n  bc)").Scan()
	want := []Token{
		{Text: "(", Line: 1, Col: 0},
		{Text: "a", Line: 1, Col: 1},
		{Text: "bc", Line: 2, Col: 2},
		{Text: ")", Line: 2, Col: 4},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Fatalf("want %+v, got %+v", want, toks)
	}
}
