package lisk

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Parse_ShowsCaretAndContext(t *testing.T) {
	// Stray ')' on line 2.
	src := "(define x 1)\n(+ x))\n(+ x 2)"
	_, err := ParseAll(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "PARSE ERROR at 2:6: unexpected ')'")
	mustContain(t, msg, "   1 | (define x 1)")
	mustContain(t, msg, "   2 | (+ x))")
	mustContain(t, msg, "     |      ^")
	mustContain(t, msg, "   3 | (+ x 2)")
	if strings.Contains(msg, "input ends here") {
		t.Fatalf("a stray ) is not end of input:\n%s", msg)
	}
}

func Test_ErrorWrap_Incomplete_OnLaterLine(t *testing.T) {
	src := "(define x\n  (+ 1"
	_, err := ParseProgram(src)
	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "PARSE ERROR at 2:7: unterminated list")
	mustContain(t, msg, "   1 | (define x\n   2 |   (+ 1\n     |       ^ input ends here\n")
}

func Test_ErrorWrap_NamedHeader(t *testing.T) {
	src := "(lambda 1 2)"
	_, err := ParseProgram(src)
	msg := WrapErrorWithName(err, "prog.lisk", src).Error()
	mustContain(t, msg, "PARSE ERROR in prog.lisk at 1:9: lambda parameters must be a list of symbols")
}

func Test_ErrorWrap_Incomplete_PointsPastEnd(t *testing.T) {
	src := "(+ 1"
	_, err := ParseProgram(src)
	wrapped := WrapErrorWithSource(err, src)
	mustContain(t, wrapped.Error(), "PARSE ERROR at 1:5: unterminated list")
	mustContain(t, wrapped.Error(), "   1 | (+ 1\n     |     ^ input ends here\n")
	if !IsIncomplete(wrapped) {
		t.Fatalf("wrapping must keep the incomplete flag reachable")
	}
	var pe *ParseError
	if !errors.As(wrapped, &pe) {
		t.Fatalf("wrapped error must unwrap to *ParseError")
	}
}

func Test_ErrorWrap_RuntimeUnchanged(t *testing.T) {
	err := rtErr(KindDivideByZero, "boom")
	if got := WrapErrorWithSource(err, "(/ 1 0)"); got != err {
		t.Fatalf("runtime errors must pass through unchanged")
	}
	if err.Error() != "DivideByZero: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func Test_Errors_KindOf(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain errors have no kind")
	}
	wrapped := fmt.Errorf("context: %w", rtErr(KindEmptyCall, "x"))
	k, ok := KindOf(wrapped)
	if !ok || k != KindEmptyCall {
		t.Fatalf("KindOf through %%w = %v, %v", k, ok)
	}
	if IsIncomplete(wrapped) {
		t.Fatalf("runtime error is not incomplete")
	}
}

func Test_Errors_KindNames(t *testing.T) {
	want := map[Kind]string{
		KindParse:         "ParseError",
		KindUnboundSymbol: "UnboundSymbol",
		KindTypeMismatch:  "TypeMismatch",
		KindArityMismatch: "ArityMismatch",
		KindEmptyCall:     "EmptyCall",
		KindNotCallable:   "NotCallable",
		KindDivideByZero:  "DivideByZero",
	}
	for k, s := range want {
		if k.String() != s {
			t.Fatalf("%d.String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
