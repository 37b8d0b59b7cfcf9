package forte

import (
	"io"
	"sort"

	"github.com/alexanderspevak/forte/internal/panicerr"
)

// New returns a fresh interpreter with an empty stack and no user words.
func New(opts ...Option) *Forth {
	var f Forth
	defaultOptions.apply(&f)
	Options(opts...).apply(&f)
	return &f
}

// Eval runs every statement in input, in order, returning the first error.
// Language errors are returned as is: one of ErrDivisionByZero,
// ErrStackUnderflow, ErrUnknownWord or ErrInvalidWord. The stack is left as
// it was when the failing token was reached; the failing operator itself
// changes nothing.
func (f *Forth) Eval(input string) error {
	return panicerr.Recover("forth eval", func() error {
		return f.eval(input)
	})
}

// Stack returns a copy of the stack, bottom first.
func (f *Forth) Stack() []int {
	return append(make([]int, 0, len(f.stack)), f.stack...)
}

// Words returns the names of all user defined words, sorted.
func (f *Forth) Words() []string {
	names := make([]string, 0, len(f.words))
	for name := range f.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump writes a human readable description of the stack and the stored form
// of every user word to w.
func (f *Forth) Dump(w io.Writer) error {
	return forthDumper{f: f, out: w}.dump()
}
