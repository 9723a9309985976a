package parsec

import (
	"strconv"

	"github.com/alecthomas/parsec/lexer"
)

// FromLexer drains lex into a Cursor over its tokens.
//
// The EOF token is not included. Tokens with a type in elide are dropped.
func FromLexer(lex lexer.Lexer, elide ...rune) (Cursor[lexer.Token], error) {
	tokens, _, err := drain(lex, elide)
	if err != nil {
		return Cursor[lexer.Token]{}, err
	}
	return FromSequence(tokens), nil
}

// ParseLexer runs p over the tokens of lex, which must be consumed entirely.
func ParseLexer[A any](p Parser[lexer.Token, A], lex lexer.Lexer, elide ...rune) (A, error) {
	tokens, eof, err := drain(lex, elide)
	if err != nil {
		var zero A
		return zero, err
	}
	position := func(location int) lexer.Position {
		if location >= 0 && location < len(tokens) {
			return tokens[location].Pos
		}
		return eof.Pos
	}
	describe := func(location int) string {
		if location >= 0 && location < len(tokens) {
			return strconv.Quote(tokens[location].Value)
		}
		return "end of input"
	}
	return complete(Run(p, FromSequence(tokens)), position, describe)
}

func drain(lex lexer.Lexer, elide []rune) (tokens []lexer.Token, eof lexer.Token, err error) {
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, eof, err
	}
	skip := make(map[rune]bool, len(elide))
	for _, rn := range elide {
		skip[rn] = true
	}
	eof, all = all[len(all)-1], all[:len(all)-1]
	tokens = make([]lexer.Token, 0, len(all))
	for _, t := range all {
		if !skip[t.Type] {
			tokens = append(tokens, t)
		}
	}
	return tokens, eof, nil
}

// Type matches a single token of the given type.
//
// A mismatch rejects without consuming input.
func Type(typ rune) Parser[lexer.Token, lexer.Token] {
	return Is(func(t lexer.Token) bool { return t.Type == typ })
}

// Value matches a single token with the given value.
//
// A mismatch rejects without consuming input.
func Value(value string) Parser[lexer.Token, lexer.Token] {
	return Is(func(t lexer.Token) bool { return t.Value == value })
}

// Text maps a token parser to the value of the matched token.
func Text(p Parser[lexer.Token, lexer.Token]) Parser[lexer.Token, string] {
	return Map(p, func(t lexer.Token) string { return t.Value })
}
