package parsec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThen(t *testing.T) {
	c := FromString("ab")
	end := c.Advance().Advance()
	require.Equal(t, Accept('a', end, true), Run(ThenLeft(Any[rune](), Any[rune]()), c))
	require.Equal(t, Accept('b', end, true), Run(ThenRight(Any[rune](), Any[rune]()), c))
	require.Equal(t, Accept(Pair[rune, rune]{'a', 'b'}, end, true), Run(ThenPair(Any[rune](), Any[rune]()), c))
}

func TestThenCommitted(t *testing.T) {
	c := FromString("a")
	// Committed if either side consumed input.
	require.Equal(t, Accept('a', c.Advance(), true), Run(ThenLeft(Any[rune](), EOS[rune]()), c))
	require.Equal(t, Accept('a', c.Advance(), true), Run(ThenRight(Pure[rune](1), Any[rune]()), c))
	require.Equal(t, Accept(Pair[int, int]{1, 2}, c, false), Run(ThenPair(Pure[rune](1), Pure[rune](2)), c))

	// A failure of the second parser after the first consumed is committed.
	require.Equal(t, Reject[rune, rune](1, true), Run(ThenLeft(Any[rune](), Any[rune]()), c))
	require.Equal(t, Reject[rune, Unit](0, false), Run(ThenRight(Pure[rune](1), EOS[rune]()), c))
}

func TestOr(t *testing.T) {
	sign := Or(OneOf('+'), OneOf('-'))
	c := FromString("-")
	require.Equal(t, Accept('-', c.Advance(), true), Run(sign, c))
	require.Equal(t, Reject[rune, rune](0, false), Run(sign, FromString("x")))
	require.Equal(t, Reject[rune, rune](0, false), Run(Or[rune, rune](), c))
}

func TestOrDoesNotBacktrackCommittedAlternatives(t *testing.T) {
	keyword := Or(String("hello"), String("help"))
	require.Equal(t, Reject[rune, string](4, true), Run(keyword, FromString("help")))

	// Token consumes before comparing, so it never falls through to the next alternative.
	require.Equal(t, Reject[rune, rune](1, true), Run(Or(Token('a'), Token('b')), FromString("b")))

	// Alternatives that can be distinguished by their first token work as expected.
	keyword = Or(
		ThenRight(OneOf('h'), String("ello")),
		ThenRight(OneOf('g'), String("oodbye")),
	)
	c := FromString("goodbye")
	require.Equal(t, Accept("oodbye", advanced(c, 7), true), Run(keyword, c))
}

type expr struct {
	Value    rune
	Children []*expr
}

func TestLazyRecursion(t *testing.T) {
	// expr = letter | "(" expr* ")"
	var p Parser[rune, *expr]
	letter := Map(Is(func(r rune) bool { return r >= 'a' && r <= 'z' }), func(r rune) *expr { return &expr{Value: r} })
	group := Map(
		ThenRight(OneOf('('), ThenLeft(ZeroOrMore(Lazy(func() Parser[rune, *expr] { return p })), Token(')'))),
		func(children []*expr) *expr { return &expr{Children: children} },
	)
	p = Or(letter, group)

	value, err := ParseString(p, "", "(a(bc)())")
	require.NoError(t, err)
	require.Equal(t, &expr{Children: []*expr{
		{Value: 'a'},
		{Children: []*expr{{Value: 'b'}, {Value: 'c'}}},
		{Children: []*expr{}},
	}}, value)

	_, err = ParseString(p, "", "(a")
	require.Error(t, err)
}
