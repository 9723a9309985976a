package parsec

// Map applies f to the value of p.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(c Cursor[T]) Result[T, B] {
		r := p(c)
		if !r.accepted {
			return rejected[T, B](r)
		}
		return Accept(f(r.value), r.rest, r.committed)
	}
}

// Join runs the Parser produced by p on the remainder of p.
//
// The result is committed if either parser consumed input.
func Join[T, A any](p Parser[T, Parser[T, A]]) Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		outer := p(c)
		if !outer.accepted {
			return rejected[T, A](outer)
		}
		return outer.value(outer.rest).withCommitted(outer.committed)
	}
}

// FlatMap sequences p with the Parser f builds from its value.
func FlatMap[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return Join(Map(p, f))
}

// Filter accepts the value of p only if predicate holds.
//
// If p consumed input before predicate fails the rejection is committed.
func Filter[T, A any](p Parser[T, A], predicate func(A) bool) Parser[T, A] {
	return FlatMap(p, func(v A) Parser[T, A] {
		if predicate(v) {
			return Pure[T](v)
		}
		return Fail[T, A]()
	})
}

// Satisfy is an alias for Filter.
func Satisfy[T, A any](p Parser[T, A], predicate func(A) bool) Parser[T, A] {
	return Filter(p, predicate)
}

// Apply runs p, then pf, and applies the function from pf to the value of p.
//
// pf is only run once p has succeeded; failures are not accumulated.
func Apply[T, A, B any](p Parser[T, A], pf Parser[T, func(A) B]) Parser[T, B] {
	return FlatMap(p, func(v A) Parser[T, B] {
		return Map(pf, func(f func(A) B) B { return f(v) })
	})
}

// Compose two Parser constructors (Kleisli composition).
func Compose[T, A, B, C any](f func(A) Parser[T, B], g func(B) Parser[T, C]) func(A) Parser[T, C] {
	return func(x A) Parser[T, C] {
		return FlatMap(f(x), g)
	}
}
