package regex

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type TokenKind int

const (
	TokLiteral TokenKind = iota // alphanumeric rune
	TokUnion                    // |
	TokStar                     // *
	TokLParen                   // (
	TokRParen                   // )
)

func (k TokenKind) String() string {
	switch k {
	case TokLiteral:
		return "Literal"
	case TokUnion:
		return "Union"
	case TokStar:
		return "Star"
	case TokLParen:
		return "LParen"
	case TokRParen:
		return "RParen"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one character of a regular expression. Every source character
// produces exactly one token.
type Token struct {
	Kind TokenKind
	Char rune
	Pos  lexer.Position
}

func (t Token) String() string {
	if t.Kind == TokLiteral {
		return fmt.Sprintf("Literal(%c)", t.Char)
	}
	return t.Kind.String()
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[\p{L}\p{N}]`},
	{Name: "Union", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

var tokenKinds = func() map[lexer.TokenType]TokenKind {
	sym := regexLexer.Symbols()
	return map[lexer.TokenType]TokenKind{
		sym["Literal"]: TokLiteral,
		sym["Union"]:   TokUnion,
		sym["Star"]:    TokStar,
		sym["LParen"]:  TokLParen,
		sym["RParen"]:  TokRParen,
	}
}()

// Tokenize splits text into tokens. Whitespace is not skipped: anything other
// than a letter, a digit or one of "|*()" is rejected with InvalidCharacter.
func Tokenize(text string) ([]Token, error) {
	if text == "" {
		return nil, &Error{Kind: EmptyInput}
	}
	lex, err := regexLexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, 0, len(text))
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, invalidCharacter(text, err)
		}
		if tok.EOF() {
			return tokens, nil
		}
		r, _ := utf8.DecodeRuneInString(tok.Value)
		tokens = append(tokens, Token{Kind: tokenKinds[tok.Type], Char: r, Pos: tok.Pos})
	}
}

// invalidCharacter turns a lexing failure into an InvalidCharacter error
// pointing at the rune the lexer stopped on.
func invalidCharacter(text string, err error) error {
	var perr interface{ Position() lexer.Position }
	if !errors.As(err, &perr) {
		return err
	}
	pos := perr.Position()
	if pos.Offset < 0 || pos.Offset >= len(text) {
		return err
	}
	r, _ := utf8.DecodeRuneInString(text[pos.Offset:])
	return &Error{Kind: InvalidCharacter, Char: r, Pos: pos}
}
