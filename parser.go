package parsec

// A Parser converts the tokens at a Cursor into a value of type A.
//
// Parsers must be free of side effects. A Parser may be reused any number of
// times, including concurrently on independent Cursors.
type Parser[T, A any] func(c Cursor[T]) Result[T, A]

// Unit is the value produced by parsers that match without producing anything.
type Unit struct{}

// Run p against c.
func Run[T, A any](p Parser[T, A], c Cursor[T]) Result[T, A] {
	return p(c)
}

// Pure returns a Parser that accepts v without consuming input.
func Pure[T, A any](v A) Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		return Accept(v, c, false)
	}
}

// Fail returns a Parser that always rejects without consuming input.
func Fail[T, A any]() Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		return Reject[T, A](c.Location(), false)
	}
}

// Any returns a Parser that accepts any single token.
func Any[T any]() Parser[T, T] {
	return func(c Cursor[T]) Result[T, T] {
		token, ok := c.Current()
		if !ok {
			return Reject[T, T](c.Location(), false)
		}
		return Accept(token, c.Advance(), true)
	}
}

// Token returns a Parser that accepts a single token equal to t.
//
// Token consumes the token before comparing it, so a mismatch is a committed
// rejection. Use OneOf where an alternative may follow.
func Token[T comparable](t T) Parser[T, T] {
	return Filter(Any[T](), func(v T) bool { return v == t })
}

// Is returns a Parser that accepts a single token for which predicate holds.
//
// Unlike Token, a mismatch rejects without consuming input, so Is can start
// an alternative of Or or the element of a repetition.
func Is[T any](predicate func(T) bool) Parser[T, T] {
	return func(c Cursor[T]) Result[T, T] {
		token, ok := c.Current()
		if !ok || !predicate(token) {
			return Reject[T, T](c.Location(), false)
		}
		return Accept(token, c.Advance(), true)
	}
}

// OneOf returns a Parser that accepts a single token equal to any of tokens.
//
// A mismatch rejects without consuming input.
func OneOf[T comparable](tokens ...T) Parser[T, T] {
	return Is(func(t T) bool {
		for _, candidate := range tokens {
			if t == candidate {
				return true
			}
		}
		return false
	})
}

// EOS returns a Parser that accepts only at end of stream.
//
// EOS never consumes input.
func EOS[T any]() Parser[T, Unit] {
	return func(c Cursor[T]) Result[T, Unit] {
		if c.AtEnd() {
			return Accept(Unit{}, c, false)
		}
		return Reject[T, Unit](c.Location(), false)
	}
}

// rejected converts a rejected Result to another value type.
func rejected[T, B, A any](r Result[T, A]) Result[T, B] {
	return Reject[T, B](r.location, r.committed)
}
