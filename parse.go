package wjson

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Sentinel errors classifying ParseError failures, matchable with errors.Is.
var (
	// ErrSyntax marks any grammar violation: unexpected characters,
	// unterminated literals, invalid escapes, malformed numbers, missing
	// delimiters, trailing content.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidUTF8 marks input rejected before grammar parsing because
	// it is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 input")

	// ErrTooDeep marks input whose nesting exceeds the configured maximum
	// depth.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// DefaultMaxDepth is the nesting depth limit used when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 1000

// ParseError describes the first position where the input stops matching
// the expected grammar production.
type ParseError struct {
	Message string
	Pos     Position
	err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wjson: %s at %s", e.Message, e.Pos)
}

// Unwrap returns the sentinel class of the error (ErrSyntax,
// ErrInvalidUTF8, or ErrTooDeep).
func (e *ParseError) Unwrap() error {
	return e.err
}

func syntaxErrorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		err:     ErrSyntax,
	}
}

// Options configures the parser behavior.
type Options struct {
	// MaxDepth bounds array/object nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser consumes a token stream and builds the value tree.
type Parser struct {
	stream   *TokenStream
	maxDepth int
}

// ParseWithOptions parses a JSON document with full options. The whole
// input must hold exactly one value; anything other than whitespace after
// it is an error.
func ParseWithOptions(input string, opts Options) (*Value, error) {
	if pos, ok := firstInvalidUTF8(input); ok {
		return nil, &ParseError{Message: "input is not valid UTF-8", Pos: pos, err: ErrInvalidUTF8}
	}

	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &Parser{
		stream:   NewTokenStream(tokens),
		maxDepth: maxDepth,
	}

	value, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}

	if tok := p.stream.Peek(); tok.Type != TokenEOF {
		return nil, syntaxErrorf(tok.Pos, "unexpected content after top-level value")
	}

	return value, nil
}

// parseValue parses any value, dispatching on the lookahead token.
func (p *Parser) parseValue(depth int) (*Value, error) {
	tok := p.stream.Peek()

	switch tok.Type {
	case TokenNull:
		p.stream.Advance()
		return Null(), nil

	case TokenTrue:
		p.stream.Advance()
		return Bool(true), nil

	case TokenFalse:
		p.stream.Advance()
		return Bool(false), nil

	case TokenNumber:
		p.stream.Advance()
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, syntaxErrorf(tok.Pos, "number %q out of range", tok.Value)
		}
		return Number(f), nil

	case TokenString:
		p.stream.Advance()
		return String(tok.Value), nil

	case TokenLBracket:
		return p.parseArray(depth)

	case TokenLBrace:
		return p.parseObject(depth)

	case TokenEOF:
		return nil, syntaxErrorf(tok.Pos, "expected value but found end of input")

	default:
		return nil, syntaxErrorf(tok.Pos, "expected value but found %s", tok.Type)
	}
}

// parseArray parses: '[' (value (',' value)*)? ']'
func (p *Parser) parseArray(depth int) (*Value, error) {
	open := p.stream.Advance() // consume [
	if depth >= p.maxDepth {
		return nil, &ParseError{Message: "maximum nesting depth exceeded", Pos: open.Pos, err: ErrTooDeep}
	}

	if p.stream.Match(TokenRBracket) {
		return Array(), nil
	}

	var elements []*Value
	for {
		elem, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)

		tok := p.stream.Advance()
		switch tok.Type {
		case TokenComma:
			continue
		case TokenRBracket:
			return Array(elements...), nil
		case TokenEOF:
			return nil, syntaxErrorf(tok.Pos, "unterminated array")
		default:
			return nil, syntaxErrorf(tok.Pos, "expected ',' or ']' in array but found %s", tok.Type)
		}
	}
}

// parseObject parses: '{' (string ':' value (',' string ':' value)*)? '}'
// A duplicate key overwrites the earlier entry.
func (p *Parser) parseObject(depth int) (*Value, error) {
	open := p.stream.Advance() // consume {
	if depth >= p.maxDepth {
		return nil, &ParseError{Message: "maximum nesting depth exceeded", Pos: open.Pos, err: ErrTooDeep}
	}

	entries := map[string]*Value{}
	if p.stream.Match(TokenRBrace) {
		return Object(entries), nil
	}

	for {
		keyTok := p.stream.Advance()
		switch keyTok.Type {
		case TokenString:
		case TokenEOF:
			return nil, syntaxErrorf(keyTok.Pos, "unterminated object")
		default:
			return nil, syntaxErrorf(keyTok.Pos, "expected object key string but found %s", keyTok.Type)
		}

		if tok := p.stream.Advance(); tok.Type != TokenColon {
			if tok.Type == TokenEOF {
				return nil, syntaxErrorf(tok.Pos, "unterminated object")
			}
			return nil, syntaxErrorf(tok.Pos, "expected ':' after object key but found %s", tok.Type)
		}

		value, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		entries[keyTok.Value] = value

		tok := p.stream.Advance()
		switch tok.Type {
		case TokenComma:
			continue
		case TokenRBrace:
			return Object(entries), nil
		case TokenEOF:
			return nil, syntaxErrorf(tok.Pos, "unterminated object")
		default:
			return nil, syntaxErrorf(tok.Pos, "expected ',' or '}' in object but found %s", tok.Type)
		}
	}
}

// firstInvalidUTF8 returns the position of the first invalid byte, if any.
func firstInvalidUTF8(input string) (Position, bool) {
	if utf8.ValidString(input) {
		return Position{}, false
	}
	line, col := 1, 1
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r == utf8.RuneError && size == 1 {
			return Position{Line: line, Column: col, Offset: i}, true
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return Position{}, false
}
