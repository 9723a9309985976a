package parsec

// Cursor is an immutable position within a token sequence.
//
// Cursors share the underlying sequence and are never mutated, so holding on
// to an earlier Cursor is all that is needed to backtrack.
type Cursor[T any] struct {
	tokens []T
	offset int
}

// FromSequence creates a Cursor positioned at the first token of tokens.
//
// The slice is not copied and must not be modified while any Cursor derived
// from it is in use.
func FromSequence[T any](tokens []T) Cursor[T] {
	return Cursor[T]{tokens: tokens}
}

// FromString creates a Cursor over the runes of s.
func FromString(s string) Cursor[rune] {
	return FromSequence([]rune(s))
}

// FromBytes creates a Cursor over b.
func FromBytes(b []byte) Cursor[byte] {
	return FromSequence(b)
}

// Current returns the token under the cursor.
//
// ok is false at end of stream.
func (c Cursor[T]) Current() (token T, ok bool) {
	if c.offset >= len(c.tokens) {
		return token, false
	}
	return c.tokens[c.offset], true
}

// Advance returns a Cursor at the next token.
//
// At end of stream Advance is a no-op.
func (c Cursor[T]) Advance() Cursor[T] {
	if c.offset >= len(c.tokens) {
		return c
	}
	return Cursor[T]{tokens: c.tokens, offset: c.offset + 1}
}

// Location of the cursor, as an offset into the sequence.
func (c Cursor[T]) Location() int { return c.offset }

// AtEnd returns true if there are no more tokens.
func (c Cursor[T]) AtEnd() bool { return c.offset >= len(c.tokens) }

// Remaining tokens from the cursor to the end of the sequence.
func (c Cursor[T]) Remaining() []T { return c.tokens[c.offset:] }

// Between returns the tokens consumed between c and the later cursor end.
//
// The slice shares the underlying sequence but cannot be appended into it. It
// is empty if end is not after c.
func (c Cursor[T]) Between(end Cursor[T]) []T {
	if end.offset < c.offset {
		return c.tokens[c.offset:c.offset:c.offset]
	}
	return c.tokens[c.offset:end.offset:end.offset]
}
