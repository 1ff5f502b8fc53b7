package wide

import (
	"math/big"

	"github.com/calebcase/bid/wrap"
)

// U128 is a 128 bit unsigned integer made of 2 64 bit limbs, least
// significant limb first. The zero value is 0.
type U128 struct {
	limbs [2]wrap.U64
}

// NewU128 returns the U128 built from limbs, least significant first.
func NewU128(limbs [2]uint64) (z U128) {
	for i, l := range limbs {
		z.limbs[i] = wrap.NewU64(l)
	}

	return z
}

// U128FromLimbs returns the U128 built from limbs, least significant first.
func U128FromLimbs(limbs [2]wrap.U64) U128 {
	return U128{limbs: limbs}
}

// U128FromU64 returns v zero extended to 128 bits.
func U128FromU64(v uint64) (z U128) {
	z.limbs[0] = wrap.NewU64(v)

	return z
}

// MaskU128 returns 2^n - 1. For n >= 128 every bit is set.
func MaskU128(n uint) (z U128) {
	maskV(z.limbs[:], n)

	return z
}

// U128FromBig converts x. It fails if x is negative or does not fit in 128
// bits.
func U128FromBig(x *big.Int) (z U128, err error) {
	err = fromBig(z.limbs[:], x)

	return z, err
}

// Limbs returns the limbs of x, least significant first.
func (x U128) Limbs() [2]wrap.U64 {
	return x.limbs
}

// Limb returns limb i of x, 0 being the least significant.
func (x U128) Limb(i int) wrap.U64 {
	return x.limbs[i]
}

func (x U128) Equal(y U128) bool {
	return x.limbs == y.limbs
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x U128) Cmp(y U128) int {
	return cmpVV(x.limbs[:], y.limbs[:])
}

func (x U128) IsZero() bool {
	return isZeroV(x.limbs[:])
}

func (x U128) And(y U128) (z U128) {
	andVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U128) Or(y U128) (z U128) {
	orVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U128) Xor(y U128) (z U128) {
	xorVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U128) Not() (z U128) {
	notV(z.limbs[:], x.limbs[:])

	return z
}

// Lsh returns x << n mod 2^128.
func (x U128) Lsh(n uint) (z U128) {
	shlVU(z.limbs[:], x.limbs[:], n)

	return z
}

// Rsh returns x >> n.
func (x U128) Rsh(n uint) (z U128) {
	shrVU(z.limbs[:], x.limbs[:], n)

	return z
}

// Bit returns the value of bit i of x (0 or 1). Bits past the width are 0.
func (x U128) Bit(i uint) uint {
	return bitV(x.limbs[:], i)
}

// Field returns the n <= 64 bits of x starting at bit lo.
func (x U128) Field(lo, n uint) uint64 {
	return fieldV(x.limbs[:], lo, n)
}

// BitLen returns the length of x in bits. The bit length of 0 is 0.
func (x U128) BitLen() uint {
	return bitLenV(x.limbs[:])
}

// Big returns x as a big.Int.
func (x U128) Big() *big.Int {
	return toBig(x.limbs[:])
}

// String renders x as bracketed, space separated 16 digit hex limbs, most
// significant first.
func (x U128) String() string {
	return stringV(x.limbs[:])
}

// U192 zero extends x.
func (x U128) U192() (z U192) {
	copy(z.limbs[:], x.limbs[:])

	return z
}

// U256 zero extends x.
func (x U128) U256() (z U256) {
	copy(z.limbs[:], x.limbs[:])

	return z
}
