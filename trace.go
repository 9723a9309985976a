package parsec

import (
	"fmt"
	"io"
)

// Trace wraps p so that each invocation is written to w.
//
// A line is written when p is entered and another with its Result when it
// returns, so nested traced parsers appear bracketed by their parent. The
// traced Parser is only as safe for concurrent use as w.
func Trace[T, A any](w io.Writer, name string, p Parser[T, A]) Parser[T, A] {
	return func(c Cursor[T]) Result[T, A] {
		token, ok := c.Current()
		if ok {
			fmt.Fprintf(w, "> %s@%d %q\n", name, c.Location(), any(token))
		} else {
			fmt.Fprintf(w, "> %s@%d <EOF>\n", name, c.Location())
		}
		r := p(c)
		fmt.Fprintf(w, "< %s@%d %s\n", name, c.Location(), r)
		return r
	}
}
