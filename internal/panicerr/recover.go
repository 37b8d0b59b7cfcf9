package panicerr

import "runtime/debug"

// Recover calls f, converting any panic that escapes it into a non-nil error
// return. Unlike a goroutine based isolation, f runs on the caller's
// goroutine, so it may freely touch state the caller owns.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{
				name:  name,
				e:     e,
				stack: debug.Stack(),
			}
		}
	}()
	return f()
}
