package forte

// builtin is a primitive stack operator. Its arity is checked before run is
// called, so run may pop and peek freely; run must either succeed fully or
// return an error without touching the stack.
type builtin struct {
	arity int
	run   func(f *Forth) error
}

// builtins maps lower-cased operator symbols to their implementation. User
// words of the same name shadow these.
var builtins = map[string]builtin{
	"+":    {2, (*Forth).add},
	"-":    {2, (*Forth).sub},
	"*":    {2, (*Forth).mul},
	"/":    {2, (*Forth).div},
	"dup":  {1, (*Forth).dup},
	"drop": {1, (*Forth).drop},
	"swap": {2, (*Forth).swap},
	"over": {2, (*Forth).over},
}

func (op builtin) apply(f *Forth) error {
	if err := f.need(op.arity); err != nil {
		return err
	}
	return op.run(f)
}

//// Integer Operations

// Symbol   Name           Function
//    +     add            pop top 2 elements of stack, add, push
//    -     binary minus   pop top 2 elements of stack, subtract top from next, push
//    *     multiply       pop top 2 elements of stack, multiply, push
//    /     divide         pop top 2 elements of stack, divide next by top, push

func (f *Forth) add() error { b, a := f.pop(), f.pop(); f.push(a + b); return nil }
func (f *Forth) sub() error { b, a := f.pop(), f.pop(); f.push(a - b); return nil }
func (f *Forth) mul() error { b, a := f.pop(), f.pop(); f.push(a * b); return nil }

// Division truncates toward zero. A zero divisor is rejected before anything
// is popped.
func (f *Forth) div() error {
	if f.peek(0) == 0 {
		return ErrDivisionByZero
	}
	b, a := f.pop(), f.pop()
	f.push(a / b)
	return nil
}

//// Stack Operations

// Name    Function
// dup     push a copy of the top of stack
// drop    discard the top of stack
// swap    exchange the top 2 elements of stack
// over    push a copy of the element below the top of stack

func (f *Forth) dup() error  { f.push(f.peek(0)); return nil }
func (f *Forth) drop() error { f.pop(); return nil }
func (f *Forth) over() error { f.push(f.peek(1)); return nil }

func (f *Forth) swap() error {
	b, a := f.pop(), f.pop()
	f.push(b)
	f.push(a)
	return nil
}
