package regex

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// parser is a recursive-descent parser over a read-only token slice. The
// grammar functions only ever move pos forward.
type parser struct {
	tokens []Token
	pos    int
	depth  int // '(' consumed but not yet closed
}

// Parse tokenizes and parses text.
func Parse(text string) (*Node, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens builds the syntax tree for tokens:
//
//	Expression := Term ('|' Expression)?
//	Term       := Factor+
//	Factor     := Base ('*')?
//	Base       := '(' Expression ')' | Literal
func ParseTokens(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, &Error{Kind: EmptyInput}
	}
	p := &parser{tokens: tokens}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, unexpected(tok)
	}
	if p.depth != 0 {
		return nil, &Error{Kind: UnmatchedParenthesesInRegex, Pos: p.here(), Depth: p.depth}
	}
	return node, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) at(kind TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *parser) advance() { p.pos++ }

// here is the position of the next token, or just past the last one.
func (p *parser) here() lexer.Position {
	if tok, ok := p.peek(); ok {
		return tok.Pos
	}
	last := p.tokens[len(p.tokens)-1]
	pos := last.Pos
	pos.Offset += utf8.RuneLen(last.Char)
	pos.Column++
	return pos
}

func (p *parser) parseExpression() (*Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.at(TokUnion) {
		return left, nil
	}
	p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return Union(left, right), nil
}

func (p *parser) parseTerm() (*Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == TokUnion || tok.Kind == TokRParen {
			return node, nil
		}
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = Concat(node, next)
	}
}

// parseFactor takes at most one '*'. A second star is left for parseTerm,
// which hands it to parseBase and fails there.
func (p *parser) parseFactor() (*Node, error) {
	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	if p.at(TokStar) {
		p.advance()
		return Star(base), nil
	}
	return base, nil
}

func (p *parser) parseBase() (*Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Kind: UnexpectedToken, AtEOF: true, Pos: p.here()}
	}
	switch tok.Kind {
	case TokLParen:
		p.advance()
		p.depth++
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.at(TokRParen) {
			return nil, &Error{Kind: UnmatchedParenthesis, Pos: p.here(), Open: tok.Pos}
		}
		p.advance()
		p.depth--
		return inner, nil
	case TokLiteral:
		p.advance()
		return Literal(tok.Char), nil
	}
	return nil, unexpected(tok)
}

func unexpected(tok Token) *Error {
	return &Error{Kind: UnexpectedToken, Char: tok.Char, Pos: tok.Pos}
}
