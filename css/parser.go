package css

import (
	"go.uber.org/zap"
)

// Parser turns style expressions into typed values. It holds no mutable
// state and can be shared between goroutines.
type Parser struct {
	log     *zap.Logger
	palette Palette
}

// Option configures Parser.
type Option func(*Parser)

// WithPalette sets provider for semantic color names (window, highlight, ...).
func WithPalette(p Palette) Option {
	return func(parser *Parser) {
		parser.palette = p
	}
}

// NewParser creates a new style expression parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("style-parser")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseNumberWithUnit parses text which must be a single number with optional unit.
func (p *Parser) ParseNumberWithUnit(text string) (NumberWithUnit, error) {
	st := newParseState(text, p.palette)
	n, err := st.number()
	if err == nil {
		err = st.expectEnd()
	}
	if err != nil {
		p.log.Debug("Unable to parse number", zap.String("text", text), zap.Error(err))
		return NumberWithUnit{}, err
	}
	return n, nil
}

// ParseColor parses text which must be a single color expression.
func (p *Parser) ParseColor(text string) (Color, error) {
	st := newParseState(text, p.palette)
	c, err := st.color()
	if err == nil {
		err = st.expectEnd()
	}
	if err != nil {
		p.log.Debug("Unable to parse color", zap.String("text", text), zap.Error(err))
		return Color{}, err
	}
	return c, nil
}

// ParseGradient parses text which must be either a predefined gradient name or
// a linear-gradient() expression.
func (p *Parser) ParseGradient(text string) (Gradient, error) {
	st := newParseState(text, p.palette)
	g, err := st.gradient()
	if err == nil {
		err = st.expectEnd()
	}
	if err != nil {
		p.log.Debug("Unable to parse gradient", zap.String("text", text), zap.Error(err))
		return Gradient{}, err
	}
	p.log.Debug("Parsed gradient", zap.String("text", text), zap.String("preset", g.Preset), zap.Int("stops", len(g.Linear.Stops)))
	return g, nil
}

var defaultParser = NewParser(nil)

// ParseNumberWithUnit parses number using parser without palette.
func ParseNumberWithUnit(text string) (NumberWithUnit, error) {
	return defaultParser.ParseNumberWithUnit(text)
}

// ParseColor parses color using parser without palette, semantic names are
// not resolved.
func ParseColor(text string) (Color, error) {
	return defaultParser.ParseColor(text)
}

// ParseGradient parses gradient using parser without palette.
func ParseGradient(text string) (Gradient, error) {
	return defaultParser.ParseGradient(text)
}

// parseState is private to a single parse call.
type parseState struct {
	text    string
	tok     *Tokenizer
	palette Palette
}

func newParseState(text string, palette Palette) *parseState {
	return &parseState{text: text, tok: NewTokenizer(text), palette: palette}
}

func (st *parseState) next() (Token, error) {
	return st.tok.GetToken()
}

func (st *parseState) peek() (Token, error) {
	return st.tok.PeekNextToken()
}

func (st *parseState) expect(kind TokenKind) (Token, error) {
	t, err := st.next()
	if err != nil {
		return t, err
	}
	if t.Kind != kind {
		return t, newUnexpectedTokenError(kind, t)
	}
	return t, nil
}

func (st *parseState) expectEnd() error {
	_, err := st.expect(TokenKindEnd)
	return err
}

func (st *parseState) number() (NumberWithUnit, error) {
	t, err := st.next()
	if err != nil {
		return NumberWithUnit{}, err
	}
	if t.Kind != TokenKindNumber {
		return NumberWithUnit{}, newUnexpectedTokenError(TokenKindNumber, t)
	}
	return t.Value(), nil
}

// lexeme returns source text of the token.
func (st *parseState) lexeme(t Token) string {
	return st.text[t.Offset:t.End]
}
