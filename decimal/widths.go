package decimal

import (
	"github.com/calebcase/bid/wide"
	"github.com/calebcase/bid/wrap"
)

// New32 returns the decimal encoded by raw.
func New32(raw uint32) Decimal32 {
	return Decimal32{raw: wrap.NewU32(raw)}
}

// Decimal32FromRaw wraps an encoded word.
func Decimal32FromRaw(raw wrap.U32) Decimal32 { return Decimal32{raw: raw} }

// Encode32 packs d using Format32.
func Encode32(d Decoded) (Decimal32, error) { return encode[wrap.U32](d) }

// Canonical 32 bit specials. NaN32 is the same as QNaN32 and every NaN has an
// empty payload. Max32 and Min32 are the finite values of largest magnitude.
func Zero32() Decimal32      { return special[wrap.U32](Finite, false) }
func MinusZero32() Decimal32 { return special[wrap.U32](Finite, true) }
func Inf32() Decimal32       { return special[wrap.U32](Infinite, false) }
func MinusInf32() Decimal32  { return special[wrap.U32](Infinite, true) }
func NaN32() Decimal32       { return QNaN32() }
func MinusNaN32() Decimal32  { return MinusQNaN32() }
func QNaN32() Decimal32      { return special[wrap.U32](QuietNaN, false) }
func MinusQNaN32() Decimal32 { return special[wrap.U32](QuietNaN, true) }
func SNaN32() Decimal32      { return special[wrap.U32](SignalingNaN, false) }
func MinusSNaN32() Decimal32 { return special[wrap.U32](SignalingNaN, true) }
func Max32() Decimal32       { return extreme[wrap.U32](false) }
func Min32() Decimal32       { return extreme[wrap.U32](true) }

// New64 returns the decimal encoded by raw.
func New64(raw uint64) Decimal64 {
	return Decimal64{raw: wrap.NewU64(raw)}
}

// Decimal64FromRaw wraps an encoded word.
func Decimal64FromRaw(raw wrap.U64) Decimal64 { return Decimal64{raw: raw} }

// Encode64 packs d using Format64.
func Encode64(d Decoded) (Decimal64, error) { return encode[wrap.U64](d) }

// Canonical 64 bit specials. NaN64 is the same as QNaN64 and every NaN has an
// empty payload. Max64 and Min64 are the finite values of largest magnitude.
func Zero64() Decimal64      { return special[wrap.U64](Finite, false) }
func MinusZero64() Decimal64 { return special[wrap.U64](Finite, true) }
func Inf64() Decimal64       { return special[wrap.U64](Infinite, false) }
func MinusInf64() Decimal64  { return special[wrap.U64](Infinite, true) }
func NaN64() Decimal64       { return QNaN64() }
func MinusNaN64() Decimal64  { return MinusQNaN64() }
func QNaN64() Decimal64      { return special[wrap.U64](QuietNaN, false) }
func MinusQNaN64() Decimal64 { return special[wrap.U64](QuietNaN, true) }
func SNaN64() Decimal64      { return special[wrap.U64](SignalingNaN, false) }
func MinusSNaN64() Decimal64 { return special[wrap.U64](SignalingNaN, true) }
func Max64() Decimal64       { return extreme[wrap.U64](false) }
func Min64() Decimal64       { return extreme[wrap.U64](true) }

// New128 returns the decimal encoded by the two 64 bit halves of a word.
func New128(hi, lo uint64) Decimal128 {
	return Decimal128{raw: wide.NewU128([2]uint64{lo, hi})}
}

// Decimal128FromRaw wraps an encoded word.
func Decimal128FromRaw(raw wide.U128) Decimal128 { return Decimal128{raw: raw} }

// Encode128 packs d using Format128.
func Encode128(d Decoded) (Decimal128, error) { return encode[wide.U128](d) }

// Canonical 128 bit specials. NaN128 is the same as QNaN128 and every NaN has an
// empty payload. Max128 and Min128 are the finite values of largest magnitude.
func Zero128() Decimal128      { return special[wide.U128](Finite, false) }
func MinusZero128() Decimal128 { return special[wide.U128](Finite, true) }
func Inf128() Decimal128       { return special[wide.U128](Infinite, false) }
func MinusInf128() Decimal128  { return special[wide.U128](Infinite, true) }
func NaN128() Decimal128       { return QNaN128() }
func MinusNaN128() Decimal128  { return MinusQNaN128() }
func QNaN128() Decimal128      { return special[wide.U128](QuietNaN, false) }
func MinusQNaN128() Decimal128 { return special[wide.U128](QuietNaN, true) }
func SNaN128() Decimal128      { return special[wide.U128](SignalingNaN, false) }
func MinusSNaN128() Decimal128 { return special[wide.U128](SignalingNaN, true) }
func Max128() Decimal128       { return extreme[wide.U128](false) }
func Min128() Decimal128       { return extreme[wide.U128](true) }

// New192 returns the decimal encoded by three 64 bit limbs, most
// significant first.
func New192(hi, mid, lo uint64) Decimal192 {
	return Decimal192{raw: wide.NewU192([3]uint64{lo, mid, hi})}
}

// Decimal192FromRaw wraps an encoded word.
func Decimal192FromRaw(raw wide.U192) Decimal192 { return Decimal192{raw: raw} }

// Encode192 packs d using Format192.
func Encode192(d Decoded) (Decimal192, error) { return encode[wide.U192](d) }

// Canonical 192 bit specials. NaN192 is the same as QNaN192 and every NaN has an
// empty payload. Max192 and Min192 are the finite values of largest magnitude.
func Zero192() Decimal192      { return special[wide.U192](Finite, false) }
func MinusZero192() Decimal192 { return special[wide.U192](Finite, true) }
func Inf192() Decimal192       { return special[wide.U192](Infinite, false) }
func MinusInf192() Decimal192  { return special[wide.U192](Infinite, true) }
func NaN192() Decimal192       { return QNaN192() }
func MinusNaN192() Decimal192  { return MinusQNaN192() }
func QNaN192() Decimal192      { return special[wide.U192](QuietNaN, false) }
func MinusQNaN192() Decimal192 { return special[wide.U192](QuietNaN, true) }
func SNaN192() Decimal192      { return special[wide.U192](SignalingNaN, false) }
func MinusSNaN192() Decimal192 { return special[wide.U192](SignalingNaN, true) }
func Max192() Decimal192       { return extreme[wide.U192](false) }
func Min192() Decimal192       { return extreme[wide.U192](true) }

// New256 returns the decimal encoded by four 64 bit limbs, most
// significant first.
func New256(w3, w2, w1, w0 uint64) Decimal256 {
	return Decimal256{raw: wide.NewU256([4]uint64{w0, w1, w2, w3})}
}

// Decimal256FromRaw wraps an encoded word.
func Decimal256FromRaw(raw wide.U256) Decimal256 { return Decimal256{raw: raw} }

// Encode256 packs d using Format256.
func Encode256(d Decoded) (Decimal256, error) { return encode[wide.U256](d) }

// Canonical 256 bit specials. NaN256 is the same as QNaN256 and every NaN has an
// empty payload. Max256 and Min256 are the finite values of largest magnitude.
func Zero256() Decimal256      { return special[wide.U256](Finite, false) }
func MinusZero256() Decimal256 { return special[wide.U256](Finite, true) }
func Inf256() Decimal256       { return special[wide.U256](Infinite, false) }
func MinusInf256() Decimal256  { return special[wide.U256](Infinite, true) }
func NaN256() Decimal256       { return QNaN256() }
func MinusNaN256() Decimal256  { return MinusQNaN256() }
func QNaN256() Decimal256      { return special[wide.U256](QuietNaN, false) }
func MinusQNaN256() Decimal256 { return special[wide.U256](QuietNaN, true) }
func SNaN256() Decimal256      { return special[wide.U256](SignalingNaN, false) }
func MinusSNaN256() Decimal256 { return special[wide.U256](SignalingNaN, true) }
func Max256() Decimal256       { return extreme[wide.U256](false) }
func Min256() Decimal256       { return extreme[wide.U256](true) }
