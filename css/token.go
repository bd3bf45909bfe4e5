package css

import (
	"fmt"
	"strconv"
)

//go:generate go tool go-enum --names

// Kind of a lexical token produced by Tokenizer.
// ENUM(end, name, number, hexString, lParen, rParen, comma, slash)
type TokenKind int

// Token is a single lexical unit of a style expression.
type Token struct {
	Kind   TokenKind
	Text   string  // Name text or hex digits (without leading '#')
	Number float64 // Magnitude for number tokens
	Unit   string  // Unit suffix for number tokens: "", "%", "deg", "px", ...
	Offset int     // Byte offset of the first character in the input
	End    int     // Byte offset just past the last character
}

// Value returns number payload of the token.
func (t Token) Value() NumberWithUnit {
	return NumberWithUnit{Value: t.Number, Unit: t.Unit}
}

// adjacent reports whether t starts exactly where prev ends.
func (t Token) adjacent(prev Token) bool {
	return t.Offset == prev.End
}

func (t Token) String() string {
	switch t.Kind {
	case TokenKindEnd:
		return "<END>"
	case TokenKindName:
		return fmt.Sprintf("<NAME %q>", t.Text)
	case TokenKindNumber:
		return fmt.Sprintf("<NUMBER %s%s>", strconv.FormatFloat(t.Number, 'g', -1, 64), t.Unit)
	case TokenKindHexString:
		return fmt.Sprintf("<HEX %q>", t.Text)
	case TokenKindLParen:
		return "<(>"
	case TokenKindRParen:
		return "<)>"
	case TokenKindComma:
		return "<,>"
	case TokenKindSlash:
		return "</>"
	default:
		return fmt.Sprintf("<UNKNOWN %d>", t.Kind)
	}
}
