// tokenizer.go — the lexical scanner.
//
// The scanner is streaming: NewTokenizer positions it on the first token,
// Token returns the current one, Next advances, IsEnd reports exhaustion.
// The reader consumes tokens lazily through this interface, so input after
// a complete expression is never scanned past by Read.
//
// Recognized tokens: "(", ")", ".", "'", signed decimal integers, #t/#f,
// and symbols of the shape [A-Za-z<=>*#][A-Za-z0-9<=>*#?!-]*. "/" is always
// a one-character symbol; "+" and "-" are symbols unless a digit follows
// immediately, in which case they sign a number. Any other character is a
// SyntaxError carrying the offending position.
package scheme

import "fmt"

// TokenType is the kind of a scanned token.
type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenDot
	TokenQuote
	TokenNumber
	TokenBoolean
	TokenSymbol
)

// Token is one lexical token. Line is 1-based, Col 0-based, both pointing
// at the token's first character. Num is set for TokenNumber, Bool for
// TokenBoolean, Name for TokenSymbol.
type Token struct {
	Type TokenType
	Name string
	Num  int64
	Bool bool
	Line int
	Col  int
}

// Tokenizer scans a source string. Construct with NewTokenizer; the
// scanner is then already positioned on the first token.
type Tokenizer struct {
	src  string
	cur  int
	line int // 1-based
	col  int // 0-based within line
	tok  Token
	end  bool
}

// NewTokenizer returns a scanner positioned on the first token of src.
// Like Next, it panics with a *SyntaxError on an invalid character.
func NewTokenizer(src string) *Tokenizer {
	t := &Tokenizer{src: src, line: 1}
	t.Next()
	return t
}

// IsEnd reports whether the input is exhausted (no current token).
func (t *Tokenizer) IsEnd() bool { return t.end }

// Token returns the current token; only valid while !IsEnd().
func (t *Tokenizer) Token() Token { return t.tok }

// Pos returns the position of the current token, or of the scan cursor
// when the input is exhausted.
func (t *Tokenizer) Pos() (line, col int) {
	if t.end {
		return t.line, t.col
	}
	return t.tok.Line, t.tok.Col
}

func (t *Tokenizer) eof() bool { return t.cur >= len(t.src) }

func (t *Tokenizer) peek() byte { return t.src[t.cur] }

func (t *Tokenizer) advance() byte {
	ch := t.src[t.cur]
	t.cur++
	if ch == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	return ch
}

func (t *Tokenizer) skipWhitespace() {
	for !t.eof() {
		switch t.peek() {
		case ' ', '\t', '\r', '\n':
			t.advance()
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// [A-Za-z<=>*#]
func isSymbolStart(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return true
	case ch == '<' || ch == '=' || ch == '>' || ch == '*' || ch == '#':
		return true
	}
	return false
}

// [A-Za-z0-9<=>*#?!-]
func isSymbolChar(ch byte) bool {
	return isSymbolStart(ch) || isDigit(ch) || ch == '?' || ch == '!' || ch == '-'
}

// Next advances to the next token, or to the end of input. Panics with a
// *SyntaxError on a character no token can start with.
func (t *Tokenizer) Next() {
	t.end = false
	t.skipWhitespace()
	if t.eof() {
		t.end = true
		return
	}

	startLine, startCol := t.line, t.col
	emit := func(tok Token) {
		tok.Line, tok.Col = startLine, startCol
		t.tok = tok
	}

	ch := t.advance()
	switch ch {
	case '(':
		emit(Token{Type: TokenLParen})
		return
	case ')':
		emit(Token{Type: TokenRParen})
		return
	case '.':
		emit(Token{Type: TokenDot})
		return
	case '\'':
		emit(Token{Type: TokenQuote})
		return
	case '/':
		emit(Token{Type: TokenSymbol, Name: "/"})
		return
	case '+', '-':
		if t.eof() || !isDigit(t.peek()) {
			emit(Token{Type: TokenSymbol, Name: string(ch)})
			return
		}
	}

	if isDigit(ch) || ch == '+' || ch == '-' {
		negative := false
		var value int64
		if ch == '+' || ch == '-' {
			negative = ch == '-'
			ch = t.advance()
		}
		for {
			value = 10*value + int64(ch-'0')
			if t.eof() || !isDigit(t.peek()) {
				break
			}
			ch = t.advance()
		}
		if negative {
			value = -value
		}
		emit(Token{Type: TokenNumber, Num: value})
		return
	}

	if isSymbolStart(ch) {
		start := t.cur - 1
		for !t.eof() && isSymbolChar(t.peek()) {
			t.advance()
		}
		name := t.src[start:t.cur]
		switch name {
		case "#t":
			emit(Token{Type: TokenBoolean, Bool: true})
		case "#f":
			emit(Token{Type: TokenBoolean, Bool: false})
		default:
			emit(Token{Type: TokenSymbol, Name: name})
		}
		return
	}

	failSyntaxAt(fmt.Sprintf("Invalid character: %q", ch), startLine, startCol)
}
