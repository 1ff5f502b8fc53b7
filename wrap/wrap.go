// Package wrap provides single word unsigned integers with modular
// (wraparound) arithmetic.
//
// Every operation returns a new value whose bits equal the exact result
// reduced modulo 2^width. Nothing overflows and nothing fails, with one
// exception: dividing by the zero word is a precondition violation and
// panics with an Error. CheckedDiv returns that error instead.
//
// Mixed width operations promote the narrower operand first, so
//
//  x.AddU32(y) == y.AddU64(x)
//
// for every U64 x and U32 y.
package wrap

import (
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("wrap")

// ErrDivideByZero is returned (or panicked) when the divisor is the zero word.
var ErrDivideByZero = Error.New("division by zero")

func cmp64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}
