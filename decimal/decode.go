package decimal

import (
	"github.com/calebcase/bid/wide"
)

// Class is the value class selected by the combination field.
type Class uint8

const (
	Finite Class = iota
	Infinite
	QuietNaN
	SignalingNaN
)

func (c Class) String() string {
	switch c {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case QuietNaN:
		return "qnan"
	case SignalingNaN:
		return "snan"
	}

	return "unknown"
}

// Combination field prefixes (the five bits after the sign).
const (
	combInf  = 0b11110
	combNaN  = 0b11111
	combWide = 0b11 // two leading bits of a large coefficient encoding
)

// Decoded is the interpretation of an encoded word. It is computed on demand
// and never stored alongside the word.
//
// Only the fields relevant to Class are set: Exponent and Coefficient for
// Finite, Payload for the NaN classes. Infinities carry nothing beyond the
// sign, so infinities that differ only in trailing bits decode equal.
//
// A Decoded built by the caller has no format. It can be passed to Encode32
// and friends, but its classification only knows what needs no format.
type Decoded struct {
	format *Format

	Negative bool
	Class    Class

	// Exponent is the biased exponent.
	Exponent uint32

	// Coefficient is the raw coefficient magnitude. It may exceed the
	// format's MaxCoefficient, in which case the value is a zero.
	Coefficient wide.U256

	// Payload is the NaN diagnostic payload, uninterpreted.
	Payload wide.U256
}

// Format returns the format d was decoded from, or nil when d was built by
// the caller.
func (d Decoded) Format() *Format {
	return d.format
}

// Decode interprets the low f.Bits bits of raw.
func (f *Format) Decode(raw wide.U256) (d Decoded) {
	raw = raw.And(wide.MaskU256(f.Bits))

	d.format = f
	d.Negative = raw.Bit(f.Bits-1) == 1

	switch comb := raw.Field(f.Bits-6, 5); {
	case comb == combNaN:
		d.Class = QuietNaN
		if raw.Bit(f.Bits-7) == 1 {
			d.Class = SignalingNaN
		}

		d.Payload = raw.And(wide.MaskU256(f.TrailingBits))
	case comb == combInf:
		d.Class = Infinite
	case comb>>3 == combWide:
		// 1*sign 2*ones ExpBits*exponent, then the coefficient with an
		// implicit 0b100 prefix.
		cb := f.smallCoefficientBits() - 2

		d.Class = Finite
		d.Exponent = uint32(raw.Field(cb, f.ExpBits))
		d.Coefficient = raw.And(wide.MaskU256(cb)).Or(wide.U256FromU64(0b100).Lsh(cb))
	default:
		// 1*sign ExpBits*exponent, then the coefficient.
		cb := f.smallCoefficientBits()

		d.Class = Finite
		d.Exponent = uint32(raw.Field(cb, f.ExpBits))
		d.Coefficient = raw.And(wide.MaskU256(cb))
	}

	return d
}

// Encode packs d into the low f.Bits bits of a word. It fails when the
// exponent or coefficient of a finite value cannot be represented, or when a
// NaN payload does not fit the trailing significand.
func (f *Format) Encode(d Decoded) (raw wide.U256, err error) {
	defer Error.WrapP(&err)

	switch d.Class {
	case Infinite:
		raw = wide.U256FromU64(combInf).Lsh(f.Bits - 6)
	case QuietNaN, SignalingNaN:
		if d.Payload.BitLen() > f.TrailingBits {
			return raw, Error.New("decimal%d: payload exceeds %d bits", f.Bits, f.TrailingBits)
		}

		raw = wide.U256FromU64(combNaN).Lsh(f.Bits - 6).Or(d.Payload)
		if d.Class == SignalingNaN {
			raw = raw.Or(wide.U256FromU64(1).Lsh(f.Bits - 7))
		}
	case Finite:
		if d.Exponent > f.MaxExponent {
			return raw, Error.New("decimal%d: exponent %d exceeds %d", f.Bits, d.Exponent, f.MaxExponent)
		}

		exp := wide.U256FromU64(uint64(d.Exponent))
		cb := f.smallCoefficientBits()

		switch {
		case d.Coefficient.BitLen() <= cb:
			raw = exp.Lsh(cb).Or(d.Coefficient)
		case d.Coefficient.Rsh(cb-2).Equal(wide.U256FromU64(0b100)):
			cb -= 2
			raw = wide.U256FromU64(combWide).Lsh(f.Bits - 3).
				Or(exp.Lsh(cb)).
				Or(d.Coefficient.And(wide.MaskU256(cb)))
		default:
			return raw, Error.New("decimal%d: coefficient %s not encodable", f.Bits, d.Coefficient.Big())
		}
	default:
		return raw, Error.New("decimal%d: unknown class %d", f.Bits, d.Class)
	}

	if d.Negative {
		raw = raw.Or(f.signBit())
	}

	return raw, nil
}

func (f *Format) mustEncode(d Decoded) wide.U256 {
	raw, err := f.Encode(d)
	if err != nil {
		panic(err)
	}

	return raw
}

// special returns the canonical encoding of a class with no coefficient. For
// Finite that is the all-zero word with the given sign.
func (f *Format) special(c Class, negative bool) wide.U256 {
	return f.mustEncode(Decoded{Class: c, Negative: negative})
}

// extreme returns the largest finite magnitude with the given sign.
func (f *Format) extreme(negative bool) wide.U256 {
	return f.mustEncode(Decoded{
		Class:       Finite,
		Negative:    negative,
		Exponent:    f.MaxExponent,
		Coefficient: f.MaxCoefficient,
	})
}

// canonical returns the canonical encoding of raw.
func (f *Format) canonical(raw wide.U256) wide.U256 {
	return f.mustEncode(f.Decode(raw).Canonical())
}

func (f *Format) isCanonical(raw wide.U256) bool {
	return f.canonical(raw).Equal(raw.And(wide.MaskU256(f.Bits)))
}

func (f *Format) neg(raw wide.U256) wide.U256 {
	return raw.Xor(f.signBit())
}
