package decimal

import (
	"math/big"

	"github.com/calebcase/bid/wide"
)

// Format describes one BID interchange width.
type Format struct {
	// Bits is the total width of an encoded word.
	Bits uint

	// Precision is the number of coefficient digits.
	Precision uint

	// ExpBits is the width of the biased exponent field.
	ExpBits uint

	// TrailingBits is the width of the trailing significand field. NaN
	// payloads live here.
	TrailingBits uint

	// Bias is subtracted from a biased exponent to get the exponent of the
	// least significant coefficient digit.
	Bias uint32

	// Emax is the largest adjusted exponent of a finite value. The smallest
	// normal adjusted exponent is 1 - Emax.
	Emax uint32

	// MaxExponent is the largest biased exponent an encoding can carry.
	MaxExponent uint32

	// MaxCoefficient is 10^Precision - 1. Encoded coefficients above it are
	// non-canonical and read as zero.
	MaxCoefficient wide.U256
}

// Interchange formats.
var (
	Format32  = newFormat(32, 7, 8)
	Format64  = newFormat(64, 16, 10)
	Format128 = newFormat(128, 34, 14)
	Format192 = newFormat(192, 52, 18)
	Format256 = newFormat(256, 70, 22)
)

func newFormat(bits, precision, expBits uint) *Format {
	emax := uint32(3) << (expBits - 3)

	return &Format{
		Bits:           bits,
		Precision:      precision,
		ExpBits:        expBits,
		TrailingBits:   bits - 4 - expBits,
		Bias:           emax + uint32(precision) - 2,
		Emax:           emax,
		MaxExponent:    uint32(3)<<(expBits-2) - 1,
		MaxCoefficient: mustU256(new(big.Int).Sub(bigPow10(precision), big.NewInt(1))),
	}
}

// pow10 holds 10^i for every i that fits in 256 bits.
var pow10 = func() (p [78]wide.U256) {
	for i := range p {
		p[i] = mustU256(bigPow10(uint(i)))
	}

	return p
}()

func bigPow10(n uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func mustU256(x *big.Int) wide.U256 {
	z, err := wide.U256FromBig(x)
	if err != nil {
		panic(err)
	}

	return z
}

// digits returns the number of decimal digits in c. digits(0) is 0.
func digits(c wide.U256) uint {
	for d := range pow10 {
		if c.Cmp(pow10[d]) < 0 {
			return uint(d)
		}
	}

	return uint(len(pow10))
}

// smallCoefficientBits is the coefficient width of encodings whose
// combination field does not start with 11.
func (f *Format) smallCoefficientBits() uint {
	return f.Bits - 1 - f.ExpBits
}

func (f *Format) signBit() wide.U256 {
	return wide.U256FromU64(1).Lsh(f.Bits - 1)
}
