package wide

import (
	"math/big"

	"github.com/calebcase/bid/wrap"
)

// U256 is a 256 bit unsigned integer made of 4 64 bit limbs, least
// significant limb first. The zero value is 0.
type U256 struct {
	limbs [4]wrap.U64
}

// NewU256 returns the U256 built from limbs, least significant first.
func NewU256(limbs [4]uint64) (z U256) {
	for i, l := range limbs {
		z.limbs[i] = wrap.NewU64(l)
	}

	return z
}

// U256FromLimbs returns the U256 built from limbs, least significant first.
func U256FromLimbs(limbs [4]wrap.U64) U256 {
	return U256{limbs: limbs}
}

// U256FromU64 returns v zero extended to 256 bits.
func U256FromU64(v uint64) (z U256) {
	z.limbs[0] = wrap.NewU64(v)

	return z
}

// MaskU256 returns 2^n - 1. For n >= 256 every bit is set.
func MaskU256(n uint) (z U256) {
	maskV(z.limbs[:], n)

	return z
}

// U256FromBig converts x. It fails if x is negative or does not fit in 256
// bits.
func U256FromBig(x *big.Int) (z U256, err error) {
	err = fromBig(z.limbs[:], x)

	return z, err
}

// Limbs returns the limbs of x, least significant first.
func (x U256) Limbs() [4]wrap.U64 {
	return x.limbs
}

// Limb returns limb i of x, 0 being the least significant.
func (x U256) Limb(i int) wrap.U64 {
	return x.limbs[i]
}

func (x U256) Equal(y U256) bool {
	return x.limbs == y.limbs
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x U256) Cmp(y U256) int {
	return cmpVV(x.limbs[:], y.limbs[:])
}

func (x U256) IsZero() bool {
	return isZeroV(x.limbs[:])
}

func (x U256) And(y U256) (z U256) {
	andVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U256) Or(y U256) (z U256) {
	orVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U256) Xor(y U256) (z U256) {
	xorVV(z.limbs[:], x.limbs[:], y.limbs[:])

	return z
}

func (x U256) Not() (z U256) {
	notV(z.limbs[:], x.limbs[:])

	return z
}

// Lsh returns x << n mod 2^256.
func (x U256) Lsh(n uint) (z U256) {
	shlVU(z.limbs[:], x.limbs[:], n)

	return z
}

// Rsh returns x >> n.
func (x U256) Rsh(n uint) (z U256) {
	shrVU(z.limbs[:], x.limbs[:], n)

	return z
}

// Bit returns the value of bit i of x (0 or 1). Bits past the width are 0.
func (x U256) Bit(i uint) uint {
	return bitV(x.limbs[:], i)
}

// Field returns the n <= 64 bits of x starting at bit lo.
func (x U256) Field(lo, n uint) uint64 {
	return fieldV(x.limbs[:], lo, n)
}

// BitLen returns the length of x in bits. The bit length of 0 is 0.
func (x U256) BitLen() uint {
	return bitLenV(x.limbs[:])
}

// Big returns x as a big.Int.
func (x U256) Big() *big.Int {
	return toBig(x.limbs[:])
}

// String renders x as bracketed, space separated 16 digit hex limbs, most
// significant first.
func (x U256) String() string {
	return stringV(x.limbs[:])
}

// U128 truncates x to its low 128 bits.
func (x U256) U128() (z U128) {
	copy(z.limbs[:], x.limbs[:])

	return z
}

// U192 truncates x to its low 192 bits.
func (x U256) U192() (z U192) {
	copy(z.limbs[:], x.limbs[:])

	return z
}

// Join128 returns the 256 bit value whose upper half is hi and lower half is
// lo.
func Join128(hi, lo U128) (z U256) {
	copy(z.limbs[:2], lo.limbs[:])
	copy(z.limbs[2:], hi.limbs[:])

	return z
}

// Halves splits x into its upper and lower 128 bit halves.
func (x U256) Halves() (hi, lo U128) {
	copy(lo.limbs[:], x.limbs[:2])
	copy(hi.limbs[:], x.limbs[2:])

	return hi, lo
}
