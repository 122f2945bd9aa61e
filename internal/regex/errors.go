package regex

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a tokenize or parse failure.
type Kind int

const (
	EmptyInput Kind = iota + 1
	InvalidCharacter
	UnexpectedToken
	UnmatchedParenthesis
	UnmatchedParenthesesInRegex
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case UnmatchedParenthesesInRegex:
		return "UnmatchedParenthesesInRegex"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by Tokenize, Parse and ParseTokens.
//
// Use errors.Is against the Err* values to test for a kind:
//
//	if errors.Is(err, regex.ErrUnexpectedToken) { ... }
type Error struct {
	Kind Kind
	// Char is the offending character for InvalidCharacter and UnexpectedToken.
	Char rune
	// AtEOF is set when UnexpectedToken was raised at the end of the input.
	AtEOF bool
	Pos   lexer.Position
	// Open is the position of the '(' left unclosed by UnmatchedParenthesis.
	Open lexer.Position
	// Depth is the number of open parentheses for UnmatchedParenthesesInRegex.
	Depth int
}

var (
	ErrEmptyInput                  = &Error{Kind: EmptyInput}
	ErrInvalidCharacter            = &Error{Kind: InvalidCharacter}
	ErrUnexpectedToken             = &Error{Kind: UnexpectedToken}
	ErrUnmatchedParenthesis        = &Error{Kind: UnmatchedParenthesis}
	ErrUnmatchedParenthesesInRegex = &Error{Kind: UnmatchedParenthesesInRegex}
)

func (e *Error) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "regular expression is empty"
	case InvalidCharacter:
		return fmt.Sprintf("%s: invalid character %q", e.Pos, e.Char)
	case UnexpectedToken:
		if e.AtEOF {
			return fmt.Sprintf("%s: unexpected end of input", e.Pos)
		}
		return fmt.Sprintf("%s: unexpected token %q", e.Pos, e.Char)
	case UnmatchedParenthesis:
		return fmt.Sprintf("%s: missing ')' for '(' at %s", e.Pos, e.Open)
	case UnmatchedParenthesesInRegex:
		return fmt.Sprintf("unmatched parentheses in regex (%d open)", e.Depth)
	}
	return e.Kind.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
