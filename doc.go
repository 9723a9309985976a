// Package parsec is a parser combinator library over arbitrary token types.
//
// A Parser is a function from a Cursor, an immutable position within a token
// sequence, to a Result. Results are either accepted, with a value and the
// Cursor to resume from, or rejected, with the location of the failure. Both
// carry a committed flag which is true if any input was consumed.
//
// Combinators only recover from uncommitted rejections. Once a parser has
// consumed input its failure propagates to the caller, there is no implicit
// backtracking. Token and Literal consume a token before comparing it, so
// alternatives should be selected with a non-consuming test such as OneOf:
//
//	sign := parsec.Optional(parsec.OneOf('+', '-'))
//	digits := parsec.OneOrMore(parsec.Is(unicode.IsDigit))
//	number := parsec.ThenLeft(parsec.ThenPair(sign, digits), parsec.EOS[rune]())
//	result := parsec.Run(number, parsec.FromString("-42"))
//
// By contrast parsec.Or(parsec.String("hello"), parsec.String("goodbye"))
// never tries "goodbye": the first alternative consumes the "g" before
// rejecting it.
//
// The supported combinators are:
//
//   - Pure, Fail, Any, Token, Is, OneOf, EOS: primitives.
//   - Map, Join, FlatMap, Filter, Apply, Compose: monadic composition.
//   - Negate, Optional, ZeroOrMore, OneOrMore, SepBy, SepBy1: occurrence.
//   - ThenLeft, ThenRight, ThenPair, Or, Lazy: sequencing and choice.
//   - Literal, String, Char, Delimited: literals.
//   - Type, Value, Text: tokens from a lexer.Lexer.
//
// Parsers hold no mutable state and may be used concurrently.
package parsec
