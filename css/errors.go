package css

import (
	"errors"
	"fmt"
	"math"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

//go:generate go tool go-enum --names

// Classification of parse failures.
// ENUM(general, lexical, unexpectedToken, unexpectedTerm, wrongNumberOfArguments, unconvertible)
type ErrorKind int

// ParseError describes the first failure encountered while parsing a style
// expression. Fields after Context are only meaningful for the matching Kind.
type ParseError struct {
	Kind    ErrorKind
	Message string // Human readable description
	Offset  int    // Byte offset into the parsed text
	Context string // Enclosing construct, e.g. "gradient stop 2"

	Expected TokenKind // unexpectedToken: what grammar wanted
	Got      TokenKind // unexpectedToken, unexpectedTerm: what was found
	Term     string    // unexpectedTerm: expected construct, e.g. "a color"
	Function string    // wrongNumberOfArguments
	Min, Max int       // wrongNumberOfArguments: valid argument range
	Count    int       // wrongNumberOfArguments: arguments supplied
	Value    string    // lexical, unconvertible: offending text
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Context != "" {
		sb.WriteString(e.Context)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%s at offset %d", e.Message, e.Offset)
	return sb.String()
}

// Position maps error offset back to the text the error was produced for.
func (e *ParseError) Position(text string) (line, col int, context string) {
	return parse.Position(strings.NewReader(text), e.Offset)
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// withContext labels err with the enclosing construct unless it already has one.
func withContext(err error, label string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Context == "" {
		pe.Context = label
	}
	return err
}

func newGeneralError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrorKindGeneral, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func newLexicalError(offset int, r rune) *ParseError {
	msg := fmt.Sprintf("unexpected character %q", r)
	if r == 0 {
		msg = "unexpected end of input"
	}
	return &ParseError{Kind: ErrorKindLexical, Message: msg, Offset: offset, Value: string(r)}
}

func newUnexpectedTokenError(expected TokenKind, got Token) *ParseError {
	return &ParseError{
		Kind:     ErrorKindUnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %s", expected, got),
		Offset:   got.Offset,
		Expected: expected,
		Got:      got.Kind,
	}
}

func newUnexpectedTermError(term string, got Token) *ParseError {
	return &ParseError{
		Kind:    ErrorKindUnexpectedTerm,
		Message: fmt.Sprintf("expected %s, found %s", term, got),
		Offset:  got.Offset,
		Got:     got.Kind,
		Term:    term,
	}
}

func newWrongNumberOfArgumentsError(offset int, function string, lo, hi, count int) *ParseError {
	var msg string
	switch {
	case lo == hi:
		msg = fmt.Sprintf("%s() takes %d arguments, got %d", function, lo, count)
	case hi == math.MaxInt:
		msg = fmt.Sprintf("%s() takes at least %d arguments, got %d", function, lo, count)
	default:
		msg = fmt.Sprintf("%s() takes %d to %d arguments, got %d", function, lo, hi, count)
	}
	return &ParseError{
		Kind:     ErrorKindWrongNumberOfArguments,
		Message:  msg,
		Offset:   offset,
		Function: function,
		Min:      lo,
		Max:      hi,
		Count:    count,
	}
}

func newUnconvertibleError(offset int, value, target string) *ParseError {
	return &ParseError{
		Kind:    ErrorKindUnconvertible,
		Message: fmt.Sprintf("cannot convert %q to %s", value, target),
		Offset:  offset,
		Value:   value,
	}
}
