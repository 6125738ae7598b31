// parser.go: recursive-descent reader and special-form classifier.
//
// Reading happens in two passes over the token stream:
//
//  1. read: tokens → raw nodes. A raw node is an atom or a list of raw
//     nodes, each remembering the token it started at.
//  2. classify: raw nodes → Expr. Lists headed by one of the keywords
//     begin, if, define, set!, quote, lambda are checked for shape and
//     turned into structured nodes; every other list stays a plain List.
//
// Classification is top-down, so the operand of quote and the parameter list
// of lambda are never classified: (quote (if)) yields the one-element list
// (if), not a malformed if.
package lisk

import (
	"fmt"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// ParseProgram reads the first expression in src. Tokens after it are
// ignored.
func ParseProgram(src string) (Expr, error) {
	p := newParser(src)
	if p.atEnd() {
		return Nil, p.errAtEnd("empty program")
	}
	return p.expr()
}

// ParseAll reads every top-level expression in src, in order. Empty input
// yields an empty slice and no error. On a parse error it returns the
// expressions read before the failing one together with the error.
func ParseAll(src string) ([]Expr, error) {
	p := newParser(src)
	var out []Expr
	for !p.atEnd() {
		e, err := p.expr()
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	toks    []Token
	i       int
	endLine int
	endCol  int
}

// node is a raw form: either an atom or a list of nodes.
type node struct {
	tok    Token
	atom   Expr
	isList bool
	kids   []node
}

func newParser(src string) *parser {
	lex := NewLexer(src)
	p := &parser{toks: lex.Scan()}
	p.endLine, p.endCol = lex.end()
	return p
}

func (p *parser) atEnd() bool { return p.i >= len(p.toks) }

func (p *parser) errAt(tok Token, format string, args ...any) error {
	return &ParseError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) errAtEnd(msg string) error {
	return &ParseError{Line: p.endLine, Col: p.endCol, Msg: msg, Incomplete: true}
}

func (p *parser) expr() (Expr, error) {
	n, err := p.read()
	if err != nil {
		return Nil, err
	}
	return p.classify(n)
}

// ─────────────────────────────── reading ────────────────────────────────────

func (p *parser) read() (node, error) {
	if p.atEnd() {
		return node{}, p.errAtEnd("unexpected end of input")
	}
	tok := p.toks[p.i]
	p.i++
	switch tok.Text {
	case "(":
		n := node{tok: tok, isList: true}
		for {
			if p.atEnd() {
				return node{}, p.errAtEnd("unterminated list")
			}
			if p.toks[p.i].Text == ")" {
				p.i++
				return n, nil
			}
			kid, err := p.read()
			if err != nil {
				return node{}, err
			}
			n.kids = append(n.kids, kid)
		}
	case ")":
		return node{}, p.errAt(tok, "unexpected ')'")
	default:
		return node{tok: tok, atom: parseAtom(tok.Text)}, nil
	}
}

// parseAtom converts one non-paren token into a constant, number or symbol.
func parseAtom(text string) Expr {
	switch text {
	case "nil":
		return Nil
	case "#t":
		return True
	case "#f":
		return False
	}
	if looksNumeric(text) {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(n)
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}
	return Sym(text)
}

// looksNumeric keeps words such as "inf" or "nan", which strconv would
// accept, in symbol space.
func looksNumeric(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	return len(s) > 0 && '0' <= s[0] && s[0] <= '9'
}

// ────────────────────────────── classifying ─────────────────────────────────

func (p *parser) classify(n node) (Expr, error) {
	if !n.isList {
		return n.atom, nil
	}
	if len(n.kids) > 0 && !n.kids[0].isList {
		if kw, ok := n.kids[0].atom.AsSymbol(); ok {
			switch kw {
			case "quote":
				return p.quoteForm(n)
			case "begin":
				return p.beginForm(n)
			case "if":
				return p.ifForm(n)
			case "define", "set!":
				return p.bindingForm(n, kw)
			case "lambda":
				return p.lambdaForm(n)
			}
		}
	}
	items, err := p.classifyAll(n.kids)
	if err != nil {
		return Nil, err
	}
	return Expr{Tag: ETList, Data: items}, nil
}

func (p *parser) classifyAll(ns []node) ([]Expr, error) {
	out := make([]Expr, 0, len(ns))
	for _, k := range ns {
		e, err := p.classify(k)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// raw converts a node without recognising special forms.
func raw(n node) Expr {
	if !n.isList {
		return n.atom
	}
	items := make([]Expr, len(n.kids))
	for i, k := range n.kids {
		items[i] = raw(k)
	}
	return Expr{Tag: ETList, Data: items}
}

func (p *parser) quoteForm(n node) (Expr, error) {
	if len(n.kids) != 2 {
		return Nil, p.errAt(n.tok, "quote expects exactly 1 operand, got %d", len(n.kids)-1)
	}
	return Quote(raw(n.kids[1])), nil
}

func (p *parser) beginForm(n node) (Expr, error) {
	if len(n.kids) < 2 {
		return Nil, p.errAt(n.tok, "begin expects at least 1 operand")
	}
	body, err := p.classifyAll(n.kids[1:])
	if err != nil {
		return Nil, err
	}
	return Expr{Tag: ETBegin, Data: body}, nil
}

func (p *parser) ifForm(n node) (Expr, error) {
	if len(n.kids) < 3 || len(n.kids) > 4 {
		return Nil, p.errAt(n.tok, "if expects 2 or 3 operands, got %d", len(n.kids)-1)
	}
	parts, err := p.classifyAll(n.kids[1:])
	if err != nil {
		return Nil, err
	}
	if len(parts) == 3 {
		return If(parts[0], parts[1], &parts[2]), nil
	}
	return If(parts[0], parts[1], nil), nil
}

func (p *parser) bindingForm(n node, kw string) (Expr, error) {
	if len(n.kids) != 3 {
		return Nil, p.errAt(n.tok, "%s expects a symbol and a value, got %d operands", kw, len(n.kids)-1)
	}
	target := n.kids[1]
	name, ok := target.atom.AsSymbol()
	if target.isList || !ok {
		return Nil, p.errAt(target.tok, "%s target must be a symbol", kw)
	}
	value, err := p.classify(n.kids[2])
	if err != nil {
		return Nil, err
	}
	if kw == "define" {
		return Define(name, value), nil
	}
	return Set(name, value), nil
}

func (p *parser) lambdaForm(n node) (Expr, error) {
	if len(n.kids) != 3 {
		return Nil, p.errAt(n.tok, "lambda expects a parameter list and a body, got %d operands", len(n.kids)-1)
	}
	plist := n.kids[1]
	if !plist.isList {
		return Nil, p.errAt(plist.tok, "lambda parameters must be a list of symbols")
	}
	params := make([]string, 0, len(plist.kids))
	for _, k := range plist.kids {
		name, ok := k.atom.AsSymbol()
		if k.isList || !ok {
			return Nil, p.errAt(k.tok, "lambda parameter must be a symbol")
		}
		params = append(params, name)
	}
	body, err := p.classify(n.kids[2])
	if err != nil {
		return Nil, err
	}
	return Expr{Tag: ETLambda, Data: &Lambda{Params: params, Body: body}}, nil
}
