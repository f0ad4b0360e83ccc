package wjson

import (
	"fmt"
	"unicode"
	"unicode/utf16"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota

	// Literals
	TokenNull   // null
	TokenTrue   // true
	TokenFalse  // false
	TokenNumber // 123, -4.56e7 (raw lexeme)
	TokenString // "quoted string" (decoded)

	// Structural
	TokenLBrace   // {
	TokenRBrace   // }
	TokenLBracket // [
	TokenRBracket // ]
	TokenColon    // :
	TokenComma    // ,
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenNull:
		return "null"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	default:
		return "unknown"
	}
}

// Token represents a lexer token. For TokenString the Value holds the
// decoded text; for TokenNumber it holds the raw lexeme.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Position represents a source location within the input text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Lexer tokenizes JSON text.
type Lexer struct {
	input string
	pos   int // Current byte position in input
	line  int // Current line number (1-based)
	col   int // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Tokenize returns all tokens from the input, ending with TokenEOF.
// The first lexical violation aborts tokenizing with a *ParseError.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// nextToken returns the next token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.currentPos()}, nil
	}

	startPos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Value: "{", Pos: startPos}, nil
	case '}':
		l.advance()
		return Token{Type: TokenRBrace, Value: "}", Pos: startPos}, nil
	case '[':
		l.advance()
		return Token{Type: TokenLBracket, Value: "[", Pos: startPos}, nil
	case ']':
		l.advance()
		return Token{Type: TokenRBracket, Value: "]", Pos: startPos}, nil
	case ':':
		l.advance()
		return Token{Type: TokenColon, Value: ":", Pos: startPos}, nil
	case ',':
		l.advance()
		return Token{Type: TokenComma, Value: ",", Pos: startPos}, nil
	case '"':
		return l.scanString()
	}

	if ch == '-' || isDigit(ch) {
		return l.scanNumber()
	}

	if ch >= 'a' && ch <= 'z' {
		return l.scanLiteral()
	}

	return Token{}, syntaxErrorf(startPos, "expected value but found %q", ch)
}

// scanLiteral scans one of the keywords null, true, false. Anything else
// made of lowercase letters (tru, nulll, ...) is an error at the start of
// the run.
func (l *Lexer) scanLiteral() (Token, error) {
	startPos := l.currentPos()
	start := l.pos

	for l.pos < len(l.input) && l.peek() >= 'a' && l.peek() <= 'z' {
		l.advance()
	}

	value := l.input[start:l.pos]
	switch value {
	case "null":
		return Token{Type: TokenNull, Value: value, Pos: startPos}, nil
	case "true":
		return Token{Type: TokenTrue, Value: value, Pos: startPos}, nil
	case "false":
		return Token{Type: TokenFalse, Value: value, Pos: startPos}, nil
	}
	return Token{}, syntaxErrorf(startPos, "invalid literal %q", value)
}

// scanString scans a quoted string, decoding escape sequences.
func (l *Lexer) scanString() (Token, error) {
	startPos := l.currentPos()
	l.advance() // consume opening "

	var sb []byte
	for {
		if l.pos >= len(l.input) {
			return Token{}, syntaxErrorf(startPos, "unterminated string")
		}

		ch := l.peek()
		switch {
		case ch == '"':
			l.advance() // consume closing "
			return Token{Type: TokenString, Value: string(sb), Pos: startPos}, nil

		case ch == '\\':
			decoded, err := l.scanEscape()
			if err != nil {
				return Token{}, err
			}
			sb = append(sb, decoded...)

		case ch < 0x20:
			return Token{}, syntaxErrorf(l.currentPos(), "raw control character %q in string", ch)

		default:
			// Multi-byte UTF-8 sequences pass through byte by byte; input
			// encoding is validated before tokenizing starts.
			sb = append(sb, ch)
			l.advance()
		}
	}
}

// scanEscape scans a backslash escape sequence and returns the decoded
// bytes. The cursor is on the backslash when called.
func (l *Lexer) scanEscape() ([]byte, error) {
	escPos := l.currentPos()
	l.advance() // consume backslash

	if l.pos >= len(l.input) {
		return nil, syntaxErrorf(escPos, "unterminated string")
	}

	ch := l.peek()
	l.advance()

	switch ch {
	case '"':
		return []byte{'"'}, nil
	case '\\':
		return []byte{'\\'}, nil
	case '/':
		return []byte{'/'}, nil
	case 'b':
		return []byte{'\b'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'u':
		return l.scanUnicodeEscape(escPos)
	default:
		return nil, syntaxErrorf(escPos, "invalid escape sequence \\%c", ch)
	}
}

// scanUnicodeEscape decodes \uXXXX. A high surrogate is combined with an
// immediately following \uXXXX low surrogate; an unpaired surrogate
// decodes to U+FFFD. The cursor is just past the 'u' when called.
func (l *Lexer) scanUnicodeEscape(escPos Position) ([]byte, error) {
	r, err := l.hex4(escPos)
	if err != nil {
		return nil, err
	}

	if utf16.IsSurrogate(r) {
		if l.pos+1 < len(l.input) && l.input[l.pos] == '\\' && l.input[l.pos+1] == 'u' {
			mark, markCol := l.pos, l.col
			pairPos := l.currentPos()
			l.advance() // backslash
			l.advance() // u
			r2, err := l.hex4(pairPos)
			if err != nil {
				return nil, err
			}
			if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
				return []byte(string(dec)), nil
			}
			// Not a valid pair. Rewind so the second escape is decoded on
			// its own terms next iteration, and replace the first.
			l.pos, l.col = mark, markCol
		}
		return []byte(string(unicode.ReplacementChar)), nil
	}

	return []byte(string(r)), nil
}

// hex4 reads exactly four hexadecimal digits as a rune.
func (l *Lexer) hex4(escPos Position) (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		if l.pos >= len(l.input) {
			return 0, syntaxErrorf(escPos, "unterminated unicode escape")
		}
		d, ok := hexDigit(l.peek())
		if !ok {
			return 0, syntaxErrorf(escPos, "invalid unicode escape: %q is not a hexadecimal digit", l.peek())
		}
		r = r<<4 | rune(d)
		l.advance()
	}
	return r, nil
}

// scanNumber scans a number lexeme matching the strict JSON grammar:
// -? (0 | [1-9][0-9]*) ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?
func (l *Lexer) scanNumber() (Token, error) {
	startPos := l.currentPos()
	start := l.pos

	if l.peek() == '-' {
		l.advance()
	}

	// Integer part
	if l.pos >= len(l.input) || !isDigit(l.peek()) {
		return Token{}, syntaxErrorf(startPos, "invalid number: expected digit")
	}
	if l.peek() == '0' {
		l.advance()
		if l.pos < len(l.input) && isDigit(l.peek()) {
			return Token{}, syntaxErrorf(startPos, "invalid number: leading zero")
		}
	} else {
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}

	// Fractional part
	if l.pos < len(l.input) && l.peek() == '.' {
		l.advance()
		if l.pos >= len(l.input) || !isDigit(l.peek()) {
			return Token{}, syntaxErrorf(startPos, "invalid number: expected digit after '.'")
		}
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}

	// Exponent part
	if l.pos < len(l.input) && (l.peek() == 'e' || l.peek() == 'E') {
		l.advance()
		if l.pos < len(l.input) && (l.peek() == '+' || l.peek() == '-') {
			l.advance()
		}
		if l.pos >= len(l.input) || !isDigit(l.peek()) {
			return Token{}, syntaxErrorf(startPos, "invalid number: expected exponent digits")
		}
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}

	return Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: startPos}, nil
}

// skipWhitespace skips the JSON whitespace set: space, tab, newline, CR.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// Character classification

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func hexDigit(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// TokenStream provides a stream interface over tokens.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens, pos: 0}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Match returns true and advances if the current token matches.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}
