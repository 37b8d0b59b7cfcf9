package forte

import (
	"errors"

	"github.com/rs/zerolog"
)

// Forth is an interpreter instance. It owns exactly one data stack and one
// word table; separate instances share nothing.
//
// A Forth is not safe for concurrent use.
type Forth struct {
	log zerolog.Logger

	// The stack is a plain LIFO of ints, growable only at its tail.
	stack []int

	// User defined words, keyed by lower-cased name.
	words words
}

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidWord    = errors.New("invalid word")
)

func (f *Forth) push(val int) {
	f.stack = append(f.stack, val)
}

func (f *Forth) pop() (val int) {
	i := len(f.stack) - 1
	val, f.stack = f.stack[i], f.stack[:i]
	return val
}

// peek returns the value n places below the top of the stack; peek(0) is
// the top.
func (f *Forth) peek(n int) int {
	return f.stack[len(f.stack)-1-n]
}

// need checks that at least n values are on the stack, so that callers may
// pop and peek without further bounds checks.
func (f *Forth) need(n int) error {
	if len(f.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}

func (f *Forth) logStack(ev *zerolog.Event) {
	ev.Ints("stack", f.stack)
}
