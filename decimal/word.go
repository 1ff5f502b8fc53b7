package decimal

import (
	"github.com/calebcase/bid/wide"
	"github.com/calebcase/bid/wrap"
)

// Raw is the set of unsigned words that back an encoded decimal. Each word
// type selects exactly one Format.
type Raw interface {
	wrap.U32 | wrap.U64 | wide.U128 | wide.U192 | wide.U256

	String() string
}

// Decimal is an encoded decimal floating-point value held in a raw word of
// type R. The zero value is positive zero.
//
// The raw word is the only state; every query decodes it afresh.
type Decimal[R Raw] struct {
	raw R
}

// Decimal types of each interchange width.
type (
	Decimal32  = Decimal[wrap.U32]
	Decimal64  = Decimal[wrap.U64]
	Decimal128 = Decimal[wide.U128]
	Decimal192 = Decimal[wide.U192]
	Decimal256 = Decimal[wide.U256]
)

func formatOf[R Raw]() *Format {
	var r R

	switch any(r).(type) {
	case wrap.U32:
		return Format32
	case wrap.U64:
		return Format64
	case wide.U128:
		return Format128
	case wide.U192:
		return Format192
	}

	return Format256
}

func widen[R Raw](r R) wide.U256 {
	switch r := any(r).(type) {
	case wrap.U32:
		return wide.U256FromU64(uint64(r.Value()))
	case wrap.U64:
		return wide.U256FromU64(r.Value())
	case wide.U128:
		return r.U256()
	case wide.U192:
		return r.U256()
	case wide.U256:
		return r
	}

	panic("unreachable")
}

// narrow truncates x to the width of R.
func narrow[R Raw](x wide.U256) (r R) {
	switch p := any(&r).(type) {
	case *wrap.U32:
		*p = x.Limb(0).U32()
	case *wrap.U64:
		*p = x.Limb(0)
	case *wide.U128:
		*p = x.U128()
	case *wide.U192:
		*p = x.U192()
	case *wide.U256:
		*p = x
	}

	return r
}

func fromRaw[R Raw](raw wide.U256) Decimal[R] {
	return Decimal[R]{raw: narrow[R](raw)}
}

func encode[R Raw](d Decoded) (Decimal[R], error) {
	raw, err := formatOf[R]().Encode(d)
	if err != nil {
		return Decimal[R]{}, err
	}

	return fromRaw[R](raw), nil
}

func special[R Raw](c Class, negative bool) Decimal[R] {
	return fromRaw[R](formatOf[R]().special(c, negative))
}

func extreme[R Raw](negative bool) Decimal[R] {
	return fromRaw[R](formatOf[R]().extreme(negative))
}

func (x Decimal[R]) u256() wide.U256 {
	return widen(x.raw)
}

// Raw returns the encoded word.
func (x Decimal[R]) Raw() R {
	return x.raw
}

// Format returns the interchange format selected by R.
func (x Decimal[R]) Format() *Format {
	return formatOf[R]()
}

// Decode interprets x.
func (x Decimal[R]) Decode() Decoded {
	return x.Format().Decode(x.u256())
}

func (x Decimal[R]) IsZero() bool      { return x.Decode().IsZero() }
func (x Decimal[R]) IsNaN() bool       { return x.Decode().IsNaN() }
func (x Decimal[R]) IsQNaN() bool      { return x.Decode().IsQNaN() }
func (x Decimal[R]) IsSNaN() bool      { return x.Decode().IsSNaN() }
func (x Decimal[R]) IsInf() bool       { return x.Decode().IsInf() }
func (x Decimal[R]) IsFinite() bool    { return x.Decode().IsFinite() }
func (x Decimal[R]) IsNormal() bool    { return x.Decode().IsNormal() }
func (x Decimal[R]) IsSubnormal() bool { return x.Decode().IsSubnormal() }

// Signbit reports whether the sign bit of x is set.
func (x Decimal[R]) Signbit() bool {
	return x.u256().Bit(x.Format().Bits-1) == 1
}

// Neg returns x with its sign bit flipped.
func (x Decimal[R]) Neg() Decimal[R] {
	return fromRaw[R](x.Format().neg(x.u256()))
}

// Canonical returns the canonical encoding of x.
func (x Decimal[R]) Canonical() Decimal[R] {
	return fromRaw[R](x.Format().canonical(x.u256()))
}

// IsCanonical reports whether x is already canonically encoded.
func (x Decimal[R]) IsCanonical() bool {
	return x.Format().isCanonical(x.u256())
}

// String renders the raw word for debugging.
func (x Decimal[R]) String() string {
	return x.raw.String()
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// big-endian interchange word.
func (x Decimal[R]) MarshalBinary() (data []byte, err error) {
	return marshalRaw(x.Format(), x.u256()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Decimal[R]) UnmarshalBinary(data []byte) (err error) {
	raw, err := unmarshalRaw(x.Format(), data)
	if err != nil {
		return err
	}

	*x = fromRaw[R](raw)

	return nil
}
