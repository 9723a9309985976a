package parsec

// Maybe holds an optional value.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Some creates a present Maybe.
func Some[A any](v A) Maybe[A] { return Maybe[A]{value: v, ok: true} }

// None creates an absent Maybe.
func None[A any]() Maybe[A] { return Maybe[A]{} }

// Get the value and whether it is present.
func (m Maybe[A]) Get() (A, bool) { return m.value, m.ok }

// Present returns true if the Maybe holds a value.
func (m Maybe[A]) Present() bool { return m.ok }

// OrElse returns the value if present, otherwise def.
func (m Maybe[A]) OrElse(def A) A {
	if m.ok {
		return m.value
	}
	return def
}

// Negate matches a single token that p would not have matched.
//
// p is run as a lookahead only. If it succeeds Negate rejects, uncommitted,
// at the original location. Otherwise the next token is consumed.
func Negate[T, A any](p Parser[T, A]) Parser[T, T] {
	next := Any[T]()
	return func(c Cursor[T]) Result[T, T] {
		if p(c).accepted {
			return Reject[T, T](c.Location(), false)
		}
		return next(c)
	}
}

// Optional matches p zero or one times.
//
// A committed rejection from p is propagated.
func Optional[T, A any](p Parser[T, A]) Parser[T, Maybe[A]] {
	return func(c Cursor[T]) Result[T, Maybe[A]] {
		r := p(c)
		switch {
		case r.accepted:
			return Accept(Some(r.value), r.rest, r.committed)
		case r.committed:
			return rejected[T, Maybe[A]](r)
		default:
			return Accept(None[A](), c, false)
		}
	}
}

// ZeroOrMore matches p repeatedly until it rejects without consuming input.
//
// A committed rejection from p fails the whole repetition. An iteration that
// accepts without consuming input ends the repetition and its value is
// discarded, as it would otherwise match forever.
func ZeroOrMore[T, A any](p Parser[T, A]) Parser[T, []A] {
	return func(c Cursor[T]) Result[T, []A] {
		values := []A{}
		committed := false
		for {
			r := p(c)
			if !r.accepted {
				if r.committed {
					return rejected[T, []A](r)
				}
				return Accept(values, c, committed)
			}
			if !r.committed {
				return Accept(values, c, committed)
			}
			values = append(values, r.value)
			committed = true
			c = r.rest
		}
	}
}

// OneOrMore matches p at least once.
func OneOrMore[T, A any](p Parser[T, A]) Parser[T, []A] {
	rest := ZeroOrMore(p)
	return FlatMap(p, func(first A) Parser[T, []A] {
		return Map(rest, func(tail []A) []A {
			return append([]A{first}, tail...)
		})
	})
}

// SepBy matches zero or more p separated by sep.
func SepBy[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return Map(Optional(SepBy1(p, sep)), func(m Maybe[[]A]) []A {
		return m.OrElse([]A{})
	})
}

// SepBy1 matches one or more p separated by sep.
func SepBy1[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return FlatMap(p, func(first A) Parser[T, []A] {
		return Map(ZeroOrMore(ThenRight(sep, p)), func(tail []A) []A {
			return append([]A{first}, tail...)
		})
	})
}
