package parsec

import (
	"fmt"

	"github.com/alecthomas/parsec/lexer"
)

// Error represents a rejected parse.
//
// The only diagnostic available is the position of the rejection.
type Error struct {
	Msg string
	Pos lexer.Position
	// Committed is true if input was consumed before the parse was rejected.
	Committed bool
}

// Message returns the unadorned error message.
func (e *Error) Message() string { return e.Msg }

// Position the error occurred.
func (e *Error) Position() lexer.Position { return e.Pos }

func (e *Error) Error() string { return lexer.FormatError(e.Pos, e.Msg) }

// ParseString runs p over the runes of input, which must be consumed entirely.
//
// Error positions have rune offsets.
func ParseString[A any](p Parser[rune, A], filename, input string) (A, error) {
	runes := []rune(input)
	position := func(location int) lexer.Position {
		pos := lexer.Position{Filename: filename, Line: 1, Column: 1}
		location = min(max(location, 0), len(runes))
		for _, r := range runes[:location] {
			pos = pos.Advance(r)
		}
		return pos
	}
	describe := func(location int) string {
		if location < 0 || location >= len(runes) {
			return "end of input"
		}
		return fmt.Sprintf("%q", runes[location])
	}
	return complete(Run(p, FromSequence(runes)), position, describe)
}

// complete converts the Result of a top-level parse into a value or an *Error.
func complete[T, A any](r Result[T, A], position func(int) lexer.Position, describe func(int) string) (A, error) {
	var zero A
	if !r.accepted {
		return zero, &Error{
			Msg:       "syntax error near " + describe(r.location),
			Pos:       position(r.location),
			Committed: r.committed,
		}
	}
	if !r.rest.AtEnd() {
		return zero, &Error{
			Msg:       "unexpected trailing input " + describe(r.location),
			Pos:       position(r.location),
			Committed: r.committed,
		}
	}
	return r.value, nil
}
