package wide

import (
	"math/big"

	"github.com/calebcase/bid/wrap"
)

// U192 is a 192 bit unsigned integer made of 3 64 bit limbs, least
// significant limb first. The zero value is 0.
type U192 struct {
	limbs [3]wrap.U64
}

// NewU192 returns the U192 built from limbs, least significant first.
func NewU192(limbs [3]uint64) (z U192) {
	for i, l := range limbs {
		z.limbs[i] = wrap.NewU64(l)
	}

	return z
}

// U192FromLimbs returns the U192 built from limbs, least significant first.
func U192FromLimbs(limbs [3]wrap.U64) U192 {
	return U192{limbs: limbs}
}

// U192FromU64 returns v zero extended to 192 bits.
func U192FromU64(v uint64) (z U192) {
	z.limbs[0] = wrap.NewU64(v)

	return z
}

// MaskU192 returns 2^n - 1. For n >= 192 every bit is set.
func MaskU192(n uint) (z U192) {
	maskV(z.limbs[:], n)

	return z
}

// U192FromBig converts x. It fails if x is negative or does not fit in 192
// bits.
func U192FromBig(x *big.Int) (z U192, err error) {
	err = fromBig(z.limbs[:], x)

	return z, err
}

// Limbs returns the limbs of x, least significant first.
func (x U192) Limbs() [3]wrap.U64 {
	return x.limbs
}

func (x U192) Limb(i int) wrap.U64 {
	return x.limbs[i]
}

func (x U192) Equal(y U192) bool {
	return x.limbs == y.limbs
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x U192) Cmp(y U192) int {
	return cmpVV(x.limbs[:], y.limbs[:])
}

func (x U192) IsZero() bool {
	return isZeroV(x.limbs[:])
}

func (x U192) And(y U192) (z U192) {
	andVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U192) Or(y U192) (z U192) {
	orVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U192) Xor(y U192) (z U192) {
	xorVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U192) Not() (z U192) {
	notV(z.limbs[:], x.limbs[:])

	return z
}

// Lsh returns x << n mod 2^192.
func (x U192) Lsh(n uint) (z U192) {
	shlVU(z.limbs[:], x.limbs[:], n)

	return z
}

func (x U192) Rsh(n uint) (z U192) {
	shrVU(z.limbs[:], x.limbs[:], n)

	return z
}

// Bit returns the value of bit i of x (0 or 1). Bits past the width are 0.
func (x U192) Bit(i uint) uint {
	return bitV(x.limbs[:], i)
}

// Field returns the n <= 64 bits of x starting at bit lo.
func (x U192) Field(lo, n uint) uint64 {
	return fieldV(x.limbs[:], lo, n)
}

func (x U192) BitLen() uint {
	return bitLenV(x.limbs[:])
}

func (x U192) Big() *big.Int {
	return toBig(x.limbs[:])
}

// String renders x as bracketed, space separated 16 digit hex limbs, most
// significant first.
func (x U192) String() string {
	return stringV(x.limbs[:])
}

// U256 zero extends x.
func (x U192) U256() (z U256) {
	copy(z.limbs[:], x.limbs[:])

	return z
}

// U128 truncates x to its low 128 bits.
func (x U192) U128() (z U128) {
	copy(z.limbs[:], x.limbs[:])

	return z
}
