package parsec

// Pair of values matched in sequence.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// ThenLeft matches p then q, keeping the value of p.
func ThenLeft[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return FlatMap(p, func(a A) Parser[T, A] {
		return Map(q, func(B) A { return a })
	})
}

// ThenRight matches p then q, keeping the value of q.
func ThenRight[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return FlatMap(p, func(A) Parser[T, B] { return q })
}

// ThenPair matches p then q, keeping both values.
func ThenPair[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, Pair[A, B]] {
	return FlatMap(p, func(a A) Parser[T, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] { return Pair[A, B]{a, b} })
	})
}

// Or tries each parser in turn, returning the first accepted Result.
//
// The next alternative is only tried if the previous one rejected without
// consuming input. A committed rejection is returned as is.
func Or[T, A any](parsers ...Parser[T, A]) Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		for _, p := range parsers {
			r := p(c)
			if r.accepted || r.committed {
				return r
			}
		}
		return Reject[T, A](c.Location(), false)
	}
}

// Lazy defers construction of a Parser until it is first run.
//
// This allows recursive grammars to refer to parsers that are not yet
// defined. f is called on every invocation and must always return an
// equivalent Parser.
func Lazy[T, A any](f func() Parser[T, A]) Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		return f()(c)
	}
}
