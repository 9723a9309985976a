package parsec

import "fmt"

// Result is the outcome of applying a Parser to a Cursor.
//
// A Result is either accepted, carrying a value and the Cursor to resume
// from, or rejected, carrying the location of the failure. In both cases
// Committed reports whether any input was consumed during the attempt; a
// committed rejection is never recovered from by the combinators in this
// package.
type Result[T, A any] struct {
	accepted  bool
	value     A
	rest      Cursor[T]
	location  int
	committed bool
}

// Accept creates an accepted Result.
func Accept[T, A any](value A, rest Cursor[T], committed bool) Result[T, A] {
	return Result[T, A]{accepted: true, value: value, rest: rest, location: rest.offset, committed: committed}
}

// Reject creates a rejected Result at location.
func Reject[T, A any](location int, committed bool) Result[T, A] {
	return Result[T, A]{location: location, committed: committed}
}

// Succeeded returns true if the Result was accepted.
func (r Result[T, A]) Succeeded() bool { return r.accepted }

// Committed returns true if input was consumed.
func (r Result[T, A]) Committed() bool { return r.committed }

// Location of the remainder for an accepted Result, or of the failure for a
// rejected one.
func (r Result[T, A]) Location() int { return r.location }

// Match calls onAccept or onReject depending on the variant of r.
//
// Either function may be nil.
func (r Result[T, A]) Match(onAccept func(value A, rest Cursor[T], committed bool), onReject func(location int, committed bool)) {
	if r.accepted {
		if onAccept != nil {
			onAccept(r.value, r.rest, r.committed)
		}
		return
	}
	if onReject != nil {
		onReject(r.location, r.committed)
	}
}

// Fold a Result into a single value.
func Fold[T, A, R any](r Result[T, A], onAccept func(value A, rest Cursor[T], committed bool) R, onReject func(location int, committed bool) R) R {
	if r.accepted {
		return onAccept(r.value, r.rest, r.committed)
	}
	return onReject(r.location, r.committed)
}

// withCommitted returns r with committed or'ed into its committed flag.
func (r Result[T, A]) withCommitted(committed bool) Result[T, A] {
	r.committed = r.committed || committed
	return r
}

func (r Result[T, A]) String() string {
	if r.accepted {
		return fmt.Sprintf("Accept(%v, @%d, committed=%v)", r.value, r.location, r.committed)
	}
	return fmt.Sprintf("Reject(@%d, committed=%v)", r.location, r.committed)
}
