package parsec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	c := FromString("hello")
	p := ThenLeft(String("hello"), EOS[rune]())
	require.Equal(t, Accept("hello", advanced(c, 5), true), Run(p, c))

	// The mismatch is committed, the matched prefix is not given back.
	require.Equal(t, Reject[rune, string](4, true), Run(String("hello"), FromString("help")))
	require.Equal(t, Reject[rune, string](4, true), Run(String("hello"), FromString("hell")))
	require.Equal(t, Reject[rune, string](0, false), Run(String("hello"), FromString("")))
}

func TestLiteralTokens(t *testing.T) {
	c := FromSequence([]int{1, 2, 3})
	require.Equal(t, Accept([]int{1, 2}, c.Advance().Advance(), true), Run(Literal([]int{1, 2}), c))
	require.Equal(t, Accept([]int{}, c, false), Run(Literal([]int{}), c))
}

func TestLiteralDoesNotAliasInput(t *testing.T) {
	seq := []rune("ab")
	p := Literal(seq)
	seq[0] = 'x'
	c := FromString("ab")
	require.Equal(t, Accept([]rune("ab"), c.Advance().Advance(), true), Run(p, c))
}

func TestChar(t *testing.T) {
	c := FromString("a")
	require.Equal(t, Accept('a', c.Advance(), true), Run(Char('a'), c))
}

func TestDelimited(t *testing.T) {
	sql := []DelimitedOption{Open('\''), Close('\''), Escape('\'')}
	tests := []struct {
		name     string
		input    string
		options  []DelimitedOption
		expected string
		fail     bool
	}{
		{name: "Empty", input: `""`, expected: ``},
		{name: "Simple", input: `"hello"`, expected: `hello`},
		{name: "EscapedQuote", input: `"hel\"lo"`, expected: `hel\"lo`},
		{name: "EscapedEscape", input: `"a\\"`, expected: `a\\`},
		{name: "Brackets", input: `[a]b]`, options: []DelimitedOption{Open('['), Close(']')}, fail: true},
		{name: "BracketsEscaped", input: `[a\]b]`, options: []DelimitedOption{Open('['), Close(']')}, expected: `a\]b`},
		{name: "DoubledClose", input: `'it''s'`, options: sql, expected: `it''s`},
		{name: "DoubledCloseEmpty", input: `''`, options: sql, expected: ``},
		{name: "DoubledCloseSingle", input: `'a'`, options: sql, expected: `a`},
		{name: "DoubledCloseOnly", input: `''''`, options: sql, expected: `''`},
		{name: "DoubledCloseUnterminated", input: `'a''`, options: sql, fail: true},
		{name: "DoubledBracket", input: `[a]]b]`, options: []DelimitedOption{Open('['), Close(']'), Escape(']')}, expected: `a]]b`},
		{name: "Backtick", input: "`a%`b`", options: []DelimitedOption{Open('`'), Close('`'), Escape('%')}, expected: "a%`b"},
		{name: "Unterminated", input: `"abc`, fail: true},
		{name: "TrailingEscape", input: `"abc\`, fail: true},
		{name: "NoOpening", input: `abc"`, fail: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := ThenLeft(Delimited(test.options...), EOS[rune]())
			c := FromString(test.input)
			r := Run(p, c)
			if test.fail {
				require.False(t, r.Succeeded(), "%s", r)
				return
			}
			require.Equal(t, Accept(test.expected, advanced(c, len([]rune(test.input))), true), r)
		})
	}
}

func TestDelimitedCommitted(t *testing.T) {
	require.Equal(t, Reject[rune, string](4, true), Run(Delimited(), FromString(`"abc`)))
	require.Equal(t, Reject[rune, string](0, false), Run(Delimited(), FromString(`abc"`)))
	require.Equal(t, Reject[rune, string](0, false), Run(Delimited(), FromString(``)))

	// The closing delimiter ends the match, the rest is left for the next parser.
	c := FromString(`"a"b`)
	require.Equal(t, Accept("a", advanced(c, 3), true), Run(Delimited(), c))
}

func TestDelimitedAlternatives(t *testing.T) {
	c := FromString(`abc`)
	require.Equal(t, Accept(None[string](), c, false), Run(Optional(Delimited()), c))
	require.Equal(t, Accept("abc", advanced(c, 3), true), Run(Or(Delimited(), String("abc")), c))

	c = FromString(`"a""b"`)
	require.Equal(t, Accept([]string{"a", "b"}, advanced(c, 6), true), Run(ZeroOrMore(Delimited()), c))
}

func TestDelimitedBy(t *testing.T) {
	c := FromSequence([]int{0, 1, 9, 0, 2, 0})
	require.Equal(t, Accept([]int{1, 9, 0, 2}, advanced(c, 6), true), Run(DelimitedBy(0, 0, 9), c))
}

func TestDelimitedByDoesNotAliasInput(t *testing.T) {
	tokens := []int{0, 1, 2, 0, 3}
	r := Run(DelimitedBy(0, 0, 9), FromSequence(tokens))
	value := Fold(r, func(v []int, _ Cursor[int], _ bool) []int { return v }, func(int, bool) []int { return nil })
	require.Equal(t, []int{1, 2}, value)
	_ = append(value, 7)
	require.Equal(t, []int{0, 1, 2, 0, 3}, tokens)
}
