package wrap

import "strconv"

// U64 is a 64 bit unsigned integer with wraparound arithmetic. The zero value
// is 0.
type U64 struct {
	v uint64
}

// NewU64 returns v as a U64.
func NewU64(v uint64) U64 {
	return U64{v: v}
}

// Value returns the underlying magnitude.
func (x U64) Value() uint64 {
	return x.v
}

// Add returns x + y mod 2^64.
func (x U64) Add(y U64) U64 {
	return U64{x.v + y.v}
}

// Sub returns x - y mod 2^64.
func (x U64) Sub(y U64) U64 {
	return U64{x.v - y.v}
}

// Mul returns x * y mod 2^64.
func (x U64) Mul(y U64) U64 {
	return U64{x.v * y.v}
}

// Div returns the truncated quotient x / y. It panics with ErrDivideByZero
// when y is zero.
func (x U64) Div(y U64) U64 {
	q, err := x.CheckedDiv(y)
	if err != nil {
		panic(err)
	}

	return q
}

// CheckedDiv returns x / y, or ErrDivideByZero when y is zero.
func (x U64) CheckedDiv(y U64) (U64, error) {
	if y.v == 0 {
		return U64{}, ErrDivideByZero
	}

	return U64{x.v / y.v}, nil
}

// Xor returns x ^ y.
func (x U64) Xor(y U64) U64 {
	return U64{x.v ^ y.v}
}

// And returns x & y.
func (x U64) And(y U64) U64 {
	return U64{x.v & y.v}
}

// Or returns x | y.
func (x U64) Or(y U64) U64 {
	return U64{x.v | y.v}
}

// Not returns ^x.
func (x U64) Not() U64 {
	return U64{^x.v}
}

// Shl returns x << n. Shifts of 64 or more yield 0.
func (x U64) Shl(n uint) U64 {
	return U64{x.v << n}
}

// Shr returns x >> n. Shifts of 64 or more yield 0.
func (x U64) Shr(n uint) U64 {
	return U64{x.v >> n}
}

// AddU32 returns x + y mod 2^64 with y zero extended.
func (x U64) AddU32(y U32) U64 {
	return x.Add(y.U64())
}

// SubU32 returns x - y mod 2^64 with y zero extended.
func (x U64) SubU32(y U32) U64 {
	return x.Sub(y.U64())
}

// MulU32 returns x * y mod 2^64 with y zero extended.
func (x U64) MulU32(y U32) U64 {
	return x.Mul(y.U64())
}

// DivU32 returns x / y with y zero extended. It panics with ErrDivideByZero
// when y is zero.
func (x U64) DivU32(y U32) U64 {
	return x.Div(y.U64())
}

// CheckedDivU32 returns x / y with y zero extended, or ErrDivideByZero when y
// is zero.
func (x U64) CheckedDivU32(y U32) (U64, error) {
	return x.CheckedDiv(y.U64())
}

// XorU32 returns x ^ y with y zero extended.
func (x U64) XorU32(y U32) U64 {
	return x.Xor(y.U64())
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x U64) Cmp(y U64) int {
	return cmp64(x.v, y.v)
}

// IsZero reports whether x is 0.
func (x U64) IsZero() bool {
	return x.v == 0
}

// U32 truncates x to its low 32 bits.
func (x U64) U32() U32 {
	return U32{uint32(x.v)}
}

// String renders x in decimal.
func (x U64) String() string {
	return strconv.FormatUint(x.v, 10)
}
