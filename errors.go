// errors.go: error taxonomy and caret-snippet rendering
//
// What this file does
// -------------------
// Every failure the core can produce is one of two concrete types:
//
//   - *ParseError    malformed or incomplete program text (parser.go).
//   - *RuntimeError  evaluation failures (eval.go, env.go, builtins.go).
//
// Both report a Kind so hosts can branch on the category without matching
// message text. WrapErrorWithSource turns a *ParseError into a readable
// snippet with a caret under the offending column:
//
//	PARSE ERROR at 2:5: unexpected ')'
//
//	   1 | (define x 1)
//	   2 | (+ ))
//	     |     ^
//
// Runtime errors carry no position (the expression tree has none) and are
// returned unchanged.
package lisk

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// Kind classifies an error.
type Kind int

const (
	KindParse         Kind = iota // malformed or incomplete token stream
	KindUnboundSymbol             // lookup or mutation of a name with no binding
	KindTypeMismatch              // non-numeric operand to a numeric builtin
	KindArityMismatch             // wrong argument count, or malformed form at eval time
	KindEmptyCall                 // evaluating ()
	KindNotCallable               // head of a call is not a procedure
	KindDivideByZero              // integral division by zero
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindUnboundSymbol:
		return "UnboundSymbol"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindEmptyCall:
		return "EmptyCall"
	case KindNotCallable:
		return "NotCallable"
	case KindDivideByZero:
		return "DivideByZero"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError reports malformed program text. Line is 1-based, Col is 0-based
// (rendered 1-based by WrapErrorWithSource). Incomplete is set when the input
// simply ended too early, so an interactive reader can ask for more lines.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// RuntimeError is an evaluation failure.
type RuntimeError struct {
	Kind Kind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// KindOf reports the Kind of err, looking through wrapping.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return KindParse, true
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsIncomplete reports whether err is a parse error caused by input ending
// before an expression was complete.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is a *ParseError; other errors are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name in the header.
// The returned error still unwraps to the original *ParseError.
func WrapErrorWithName(err error, srcName string, src string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	return &snippetError{
		msg: renderSnippet(src, srcName, pe),
		err: err,
	}
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

type snippetError struct {
	msg string
	err error
}

func (e *snippetError) Error() string { return e.msg }
func (e *snippetError) Unwrap() error { return e.err }

func rtErr(kind Kind, format string, args ...any) error {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// renderSnippet formats pe against src: a header naming the position, up to
// one line of context on either side, and a caret under the column. When the
// input ended early the caret sits just past the last character and says so.
func renderSnippet(src, name string, pe *ParseError) string {
	lines := strings.Split(src, "\n")
	line := clamp(pe.Line, 1, len(lines))
	col := pe.Col + 1
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	b.WriteString("PARSE ERROR")
	if name != "" {
		b.WriteString(" in " + name)
	}
	fmt.Fprintf(&b, " at %d:%d: %s\n\n", line, col, pe.Msg)

	for n := line - 1; n <= line+1; n++ {
		if n < 1 || n > len(lines) {
			continue
		}
		fmt.Fprintf(&b, "%4d | %s\n", n, lines[n-1])
		if n == line {
			caret := "^"
			if pe.Incomplete {
				caret = "^ input ends here"
			}
			fmt.Fprintf(&b, "     | %s%s\n", strings.Repeat(" ", col-1), caret)
		}
	}
	return b.String()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
