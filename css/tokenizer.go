package css

import (
	"strconv"

	parse "github.com/tdewolff/parse/v2"
)

// Tokenizer splits a style expression into tokens, skipping whitespace.
// It keeps a single token of lookahead.
type Tokenizer struct {
	r *parse.Input

	peeked  bool
	peek    Token
	peekErr error
}

// tokenizerState is a restorable snapshot of the tokenizer cursor.
type tokenizerState struct {
	offset  int
	peeked  bool
	peek    Token
	peekErr error
}

// NewTokenizer creates tokenizer over text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{r: parse.NewInputString(text)}
}

// GetToken consumes and returns the next token. Once input is exhausted it
// keeps returning end tokens.
func (t *Tokenizer) GetToken() (Token, error) {
	if t.peeked {
		t.peeked = false
		return t.peek, t.peekErr
	}
	return t.scan()
}

// PeekNextToken returns the next token without consuming it.
func (t *Tokenizer) PeekNextToken() (Token, error) {
	if !t.peeked {
		t.peek, t.peekErr = t.scan()
		t.peeked = true
	}
	return t.peek, t.peekErr
}

// Offset returns the position of the next unconsumed token.
func (t *Tokenizer) Offset() int {
	if t.peeked {
		return t.peek.Offset
	}
	t.skipWhitespace()
	return t.r.Offset()
}

func (t *Tokenizer) mark() tokenizerState {
	return tokenizerState{offset: t.r.Offset(), peeked: t.peeked, peek: t.peek, peekErr: t.peekErr}
}

func (t *Tokenizer) reset(st tokenizerState) {
	t.r.Reset()
	t.r.Move(st.offset)
	t.r.Skip()
	t.peeked, t.peek, t.peekErr = st.peeked, st.peek, st.peekErr
}

func (t *Tokenizer) skipWhitespace() {
	for isWhitespace(t.r.Peek(0)) {
		t.r.Move(1)
	}
	t.r.Skip()
}

func (t *Tokenizer) scan() (Token, error) {
	t.skipWhitespace()

	start := t.r.Offset()
	c := t.r.Peek(0)
	switch {
	case c == 0 && t.r.Err() != nil:
		return Token{Kind: TokenKindEnd, Offset: start, End: start}, nil
	case c == '(':
		return t.single(TokenKindLParen), nil
	case c == ')':
		return t.single(TokenKindRParen), nil
	case c == ',':
		return t.single(TokenKindComma), nil
	case c == '/':
		return t.single(TokenKindSlash), nil
	case c == '#':
		return t.scanHex()
	case isDigit(c), (c == '+' || c == '-') && isDigit(t.r.Peek(1)):
		return t.scanNumber()
	case isLetter(c) || c == '-':
		return t.scanName(), nil
	}

	r, _ := t.r.PeekRune(0)
	return Token{}, newLexicalError(start, r)
}

func (t *Tokenizer) single(kind TokenKind) Token {
	start := t.r.Offset()
	t.r.Move(1)
	t.r.Skip()
	return Token{Kind: kind, Offset: start, End: start + 1}
}

func (t *Tokenizer) scanName() Token {
	start := t.r.Offset()
	for c := t.r.Peek(0); isLetter(c) || c == '-'; c = t.r.Peek(0) {
		t.r.Move(1)
	}
	text := string(t.r.Shift())
	return Token{Kind: TokenKindName, Text: text, Offset: start, End: t.r.Offset()}
}

// scanNumber reads [+-]?digits[.digits]? followed by a unit made of letters
// or a single percent sign.
func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.r.Offset()
	if c := t.r.Peek(0); c == '+' || c == '-' {
		t.r.Move(1)
	}
	for isDigit(t.r.Peek(0)) {
		t.r.Move(1)
	}
	if t.r.Peek(0) == '.' && isDigit(t.r.Peek(1)) {
		t.r.Move(1)
		for isDigit(t.r.Peek(0)) {
			t.r.Move(1)
		}
	}
	lexeme := string(t.r.Shift())
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Token{}, newUnconvertibleError(start, lexeme, "a number")
	}

	if t.r.Peek(0) == '%' {
		t.r.Move(1)
	} else {
		for isLetter(t.r.Peek(0)) {
			t.r.Move(1)
		}
	}
	unit := string(t.r.Shift())
	return Token{Kind: TokenKindNumber, Number: value, Unit: unit, Offset: start, End: t.r.Offset()}, nil
}

// scanHex reads '#' followed by a run of hex digits. Length is checked by
// the color grammar, not here.
func (t *Tokenizer) scanHex() (Token, error) {
	start := t.r.Offset()
	t.r.Move(1)
	t.r.Skip()
	for isHexDigit(t.r.Peek(0)) {
		t.r.Move(1)
	}
	text := string(t.r.Shift())
	if len(text) == 0 || isLetter(t.r.Peek(0)) || isDigit(t.r.Peek(0)) {
		r, _ := t.r.PeekRune(0)
		return Token{}, newLexicalError(t.r.Offset(), r)
	}
	return Token{Kind: TokenKindHexString, Text: text, Offset: start, End: t.r.Offset()}, nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
