// lexer.go: whitespace/paren tokenizer
package lisk

// Token is one lexeme with its start position (Line 1-based, Col 0-based).
type Token struct {
	Text string
	Line int
	Col  int
}

// Tokenize splits src into tokens. '(' and ')' are always tokens of their
// own; everything else is a maximal run of characters that are neither
// whitespace nor parens. Any input tokenizes; the result may be empty.
func Tokenize(src string) []string {
	toks := NewLexer(src).Scan()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

// Lexer scans a source string into positioned tokens.
type Lexer struct {
	src  string
	cur  int
	line int
	col  int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan returns every token in src in order.
func (l *Lexer) Scan() []Token {
	var toks []Token
	for !l.isAtEnd() {
		c := l.src[l.cur]
		switch {
		case isSpace(c):
			l.advance()
		case c == '(' || c == ')':
			toks = append(toks, Token{Text: string(c), Line: l.line, Col: l.col})
			l.advance()
		default:
			start, line, col := l.cur, l.line, l.col
			for !l.isAtEnd() && !isDelimiter(l.src[l.cur]) {
				l.advance()
			}
			toks = append(toks, Token{Text: l.src[start:l.cur], Line: line, Col: col})
		}
	}
	return toks
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) advance() {
	if l.src[l.cur] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.cur++
}

// end reports the position just past the last character, used for
// "unexpected end of input" errors.
func (l *Lexer) end() (int, int) { return l.line, l.col }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')'
}
