package wrap

import "strconv"

// U32 is a 32 bit unsigned integer with wraparound arithmetic. The zero value
// is 0.
type U32 struct {
	v uint32
}

// NewU32 returns v as a U32.
func NewU32(v uint32) U32 {
	return U32{v: v}
}

// Value returns the underlying magnitude.
func (x U32) Value() uint32 {
	return x.v
}

// Add returns x + y mod 2^32.
func (x U32) Add(y U32) U32 {
	return U32{x.v + y.v}
}

// Sub returns x - y mod 2^32.
func (x U32) Sub(y U32) U32 {
	return U32{x.v - y.v}
}

// Mul returns x * y mod 2^32.
func (x U32) Mul(y U32) U32 {
	return U32{x.v * y.v}
}

// Div returns the truncated quotient x / y. It panics with ErrDivideByZero
// when y is zero.
func (x U32) Div(y U32) U32 {
	q, err := x.CheckedDiv(y)
	if err != nil {
		panic(err)
	}

	return q
}

// CheckedDiv returns x / y, or ErrDivideByZero when y is zero.
func (x U32) CheckedDiv(y U32) (U32, error) {
	if y.v == 0 {
		return U32{}, ErrDivideByZero
	}

	return U32{x.v / y.v}, nil
}

// Xor returns x ^ y.
func (x U32) Xor(y U32) U32 {
	return U32{x.v ^ y.v}
}

func (x U32) And(y U32) U32 {
	return U32{x.v & y.v}
}

func (x U32) Or(y U32) U32 {
	return U32{x.v | y.v}
}

func (x U32) Not() U32 {
	return U32{^x.v}
}

// Shl returns x << n. Shifts of 32 or more yield 0.
func (x U32) Shl(n uint) U32 {
	return U32{x.v << n}
}

// Shr returns x >> n. Shifts of 32 or more yield 0.
func (x U32) Shr(n uint) U32 {
	return U32{x.v >> n}
}

// AddU64 promotes x to 64 bits and returns x + y mod 2^64.
func (x U32) AddU64(y U64) U64 {
	return x.U64().Add(y)
}

// SubU64 promotes x to 64 bits and returns x - y mod 2^64.
func (x U32) SubU64(y U64) U64 {
	return x.U64().Sub(y)
}

// MulU64 promotes x to 64 bits and returns x * y mod 2^64.
func (x U32) MulU64(y U64) U64 {
	return x.U64().Mul(y)
}

// DivU64 promotes x to 64 bits and returns x / y. It panics with
// ErrDivideByZero when y is zero.
func (x U32) DivU64(y U64) U64 {
	return x.U64().Div(y)
}

func (x U32) CheckedDivU64(y U64) (U64, error) {
	return x.U64().CheckedDiv(y)
}

// XorU64 promotes x to 64 bits and returns x ^ y.
func (x U32) XorU64(y U64) U64 {
	return x.U64().Xor(y)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x U32) Cmp(y U32) int {
	return cmp64(uint64(x.v), uint64(y.v))
}

func (x U32) IsZero() bool {
	return x.v == 0
}

// U64 zero extends x.
func (x U32) U64() U64 {
	return U64{uint64(x.v)}
}

// String renders x in decimal.
func (x U32) String() string {
	return strconv.FormatUint(uint64(x.v), 10)
}
