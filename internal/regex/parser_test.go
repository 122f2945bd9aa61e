package regex

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

func TestParse(t *testing.T) {
	a, b, c := Literal('a'), Literal('b'), Literal('c')
	tests := []struct {
		input string
		want  *Node
		debug string
	}{
		{"a", a, "'a'"},
		{"a*", Star(a), "star('a')"},
		{"a|b", Union(a, b), "union('a', 'b')"},
		{"ab", Concat(a, b), "concat('a', 'b')"},
		{"abc", Concat(Concat(a, b), c), "concat(concat('a', 'b'), 'c')"},
		{"a|b|c", Union(a, Union(b, c)), "union('a', union('b', 'c'))"},
		{"(a|b)*", Star(Union(a, b)), "star(union('a', 'b'))"},
		{"a|b*c", Union(a, Concat(Star(b), c)), "union('a', concat(star('b'), 'c'))"},
		{"(a|b)*c", Concat(Star(Union(a, b)), c), "concat(star(union('a', 'b')), 'c')"},
		{"((a))", a, "'a'"},
		{"(ab)*", Star(Concat(a, b)), "star(concat('a', 'b'))"},
		{"(a)(b)", Concat(a, b), "concat('a', 'b')"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := Parse(test.input)
			require.NoError(t, err)
			require.True(t, test.want.Equal(got), "want %s\ngot  %s\n%s", test.want, got, repr.String(got, repr.Indent("  ")))
			require.Equal(t, test.debug, got.String())
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	first, err := Parse("(a|b)*c|d")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Parse("(a|b)*c|d")
		require.NoError(t, err)
		require.True(t, first.Equal(again))
		require.Equal(t, first.String(), again.String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  *Error
		char  rune
	}{
		{"", ErrEmptyInput, 0},
		{"a**", ErrUnexpectedToken, '*'},
		{"a***", ErrUnexpectedToken, '*'},
		{"(a|b", ErrUnmatchedParenthesis, 0},
		{"((a)", ErrUnmatchedParenthesis, 0},
		{"|a", ErrUnexpectedToken, '|'},
		{"*a", ErrUnexpectedToken, '*'},
		{"a)", ErrUnexpectedToken, ')'},
		{"(a))", ErrUnexpectedToken, ')'},
		{"()", ErrUnexpectedToken, ')'},
		{"(a|)", ErrUnexpectedToken, ')'},
		{"a b", ErrInvalidCharacter, ' '},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := Parse(test.input)
			require.Nil(t, node)
			require.ErrorIs(t, err, test.kind)
			var rerr *Error
			require.True(t, errors.As(err, &rerr))
			require.Equal(t, test.char, rerr.Char)
		})
	}
}

func TestParseUnexpectedEnd(t *testing.T) {
	for _, input := range []string{"a|", "(", "(a|"} {
		_, err := Parse(input)
		var rerr *Error
		require.True(t, errors.As(err, &rerr), input)
		require.Equal(t, UnexpectedToken, rerr.Kind, input)
		require.True(t, rerr.AtEOF, input)
		require.Equal(t, len(input), rerr.Pos.Offset, input)
	}
}

func TestParseDoubleStarFailsAtSecondStar(t *testing.T) {
	_, err := Parse("ab**")
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, 3, rerr.Pos.Offset)
}

func TestParseUnmatchedParenthesisPositions(t *testing.T) {
	_, err := Parse("x(a|b")
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, UnmatchedParenthesis, rerr.Kind)
	require.Equal(t, 1, rerr.Open.Offset)
	require.Equal(t, 5, rerr.Pos.Offset)
}

func TestParseTokensEmpty(t *testing.T) {
	_, err := ParseTokens(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseTokensHandBuilt(t *testing.T) {
	node, err := ParseTokens([]Token{
		{Kind: TokLiteral, Char: 'x'},
		{Kind: TokStar, Char: '*'},
		{Kind: TokUnion, Char: '|'},
		{Kind: TokLiteral, Char: 'y'},
	})
	require.NoError(t, err)
	require.Equal(t, "union(star('x'), 'y')", node.String())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		kind *Error
		msg  string
	}{
		{&Error{Kind: EmptyInput}, ErrEmptyInput, "regular expression is empty"},
		{&Error{Kind: UnmatchedParenthesesInRegex, Depth: 2}, ErrUnmatchedParenthesesInRegex, "unmatched parentheses in regex (2 open)"},
	}
	for _, test := range tests {
		require.Equal(t, test.msg, test.err.Error())
		require.ErrorIs(t, test.err, test.kind)
		require.False(t, errors.Is(test.err, ErrUnexpectedToken))
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	_, err := Parse("a**")
	require.ErrorIs(t, err, ErrUnexpectedToken)
	require.False(t, errors.Is(err, ErrUnmatchedParenthesis))
	require.False(t, errors.Is(err, ErrEmptyInput))
}

func TestCountStates(t *testing.T) {
	tests := map[string]int{
		"a":       2,
		"ab":      4,
		"a|b":     6,
		"a*":      4,
		"(a|b)*c": 10,
	}
	for input, want := range tests {
		node, err := Parse(input)
		require.NoError(t, err)
		require.Equal(t, want, node.CountStates(), input)
	}
}

func TestGrammarIsWellFormed(t *testing.T) {
	g, err := ebnf.Parse("regex.ebnf", strings.NewReader(Grammar))
	require.NoError(t, err)
	require.NoError(t, ebnf.Verify(g, "Expression"))
}
