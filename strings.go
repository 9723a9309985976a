package parsec

// Literal matches the exact sequence of tokens seq.
//
// Tokens are matched one at a time. A mismatch after the first token is a
// committed rejection: the matched prefix is not given back.
func Literal[T comparable](seq []T) Parser[T, []T] {
	seq = append(make([]T, 0, len(seq)), seq...)
	p := Pure[T](seq)
	for i := len(seq) - 1; i >= 0; i-- {
		next := p
		p = FlatMap(Token(seq[i]), func(T) Parser[T, []T] { return next })
	}
	return p
}

// Char matches the rune r.
func Char(r rune) Parser[rune, rune] {
	return Token(r)
}

// String matches the literal string s.
func String(s string) Parser[rune, string] {
	return Map(Literal([]rune(s)), func([]rune) string { return s })
}

type delimiters struct {
	open, close, escape rune
}

// A DelimitedOption modifies the delimiters matched by Delimited.
type DelimitedOption func(d *delimiters)

// Open sets the opening delimiter. Defaults to '"'.
func Open(r rune) DelimitedOption {
	return func(d *delimiters) { d.open = r }
}

// Close sets the closing delimiter. Defaults to '"'.
func Close(r rune) DelimitedOption {
	return func(d *delimiters) { d.close = r }
}

// Escape sets the escape character. Defaults to '\\'.
func Escape(r rune) DelimitedOption {
	return func(d *delimiters) { d.escape = r }
}

// Delimited matches a delimited string, such as a double quoted string, and
// returns the raw content between the delimiters.
//
// Escape sequences are not decoded, eg. `"a\"b"` produces `a\"b`. Input that
// does not start with the opening delimiter is rejected without consuming
// anything, so Delimited can start an alternative of Or.
func Delimited(options ...DelimitedOption) Parser[rune, string] {
	d := delimiters{open: '"', close: '"', escape: '\\'}
	for _, option := range options {
		option(&d)
	}
	return Map(DelimitedBy(d.open, d.close, d.escape), func(raw []rune) string {
		return string(raw)
	})
}

// DelimitedBy matches opening, followed by any tokens up to an unescaped
// closing, followed by closing. The tokens between the delimiters are returned
// verbatim and share the input's backing array.
//
// An escape token always consumes the token that follows it. If escape and
// closing are the same token a doubled closing token is an escaped closing
// token, as in SQL: `'it''s'` produces `it''s`.
func DelimitedBy[T comparable](opening, closing, escape T) Parser[T, []T] {
	escaped := ThenRight(OneOf(escape), Any[T]())
	if escape == closing {
		escaped = doubled(closing)
	}
	special := Filter(Any[T](), func(t T) bool { return t == closing || t == escape })
	body := span(ZeroOrMore(Or(escaped, Negate(special))))
	return ThenRight(OneOf(opening), ThenLeft(body, Token(closing)))
}

// doubled matches two consecutive t tokens. Anything else is rejected without
// consuming input.
func doubled[T comparable](t T) Parser[T, T] {
	return func(c Cursor[T]) Result[T, T] {
		if first, ok := c.Current(); ok && first == t {
			if second, ok := c.Advance().Current(); ok && second == t {
				return Accept(t, c.Advance().Advance(), true)
			}
		}
		return Reject[T, T](c.Location(), false)
	}
}

// span replaces the value of p with the tokens it consumed.
func span[T, A any](p Parser[T, A]) Parser[T, []T] {
	return func(c Cursor[T]) Result[T, []T] {
		r := p(c)
		if !r.accepted {
			return rejected[T, []T](r)
		}
		return Accept(c.Between(r.rest), r.rest, r.committed)
	}
}
