package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/calebcase/bid/wrap"
)

// Limb vectors are little-endian: x[0] is the least significant limb.

const _W = 64

func isZeroV(x []wrap.U64) bool {
	for _, l := range x {
		if !l.IsZero() {
			return false
		}
	}

	return true
}

// cmpVV compares x and y, which must have the same length.
func cmpVV(x, y []wrap.U64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if c := x[i].Cmp(y[i]); c != 0 {
			return c
		}
	}

	return 0
}

func andVV(z, x, y []wrap.U64) {
	for i := range z {
		z[i] = x[i].And(y[i])
	}
}

func orVV(z, x, y []wrap.U64) {
	for i := range z {
		z[i] = x[i].Or(y[i])
	}
}

func xorVV(z, x, y []wrap.U64) {
	for i := range z {
		z[i] = x[i].Xor(y[i])
	}
}

func notV(z, x []wrap.U64) {
	for i := range z {
		z[i] = x[i].Not()
	}
}

// shlVU sets z to x << s. z and x must not overlap.
func shlVU(z, x []wrap.U64, s uint) {
	w, b := int(s/_W), s%_W

	for i := len(z) - 1; i >= 0; i-- {
		var v wrap.U64

		if j := i - w; j >= 0 {
			v = x[j].Shl(b)
			if b != 0 && j > 0 {
				v = v.Or(x[j-1].Shr(_W - b))
			}
		}

		z[i] = v
	}
}

// shrVU sets z to x >> s. z and x must not overlap.
func shrVU(z, x []wrap.U64, s uint) {
	w, b := int(s/_W), s%_W

	for i := range z {
		var v wrap.U64

		if j := i + w; j < len(x) {
			v = x[j].Shr(b)
			if b != 0 && j+1 < len(x) {
				v = v.Or(x[j+1].Shl(_W - b))
			}
		}

		z[i] = v
	}
}

// maskV sets z to 2^n - 1, saturating at all ones.
func maskV(z []wrap.U64, n uint) {
	all := wrap.NewU64(0).Not()

	for i := range z {
		switch lo := uint(i) * _W; {
		case n >= lo+_W:
			z[i] = all
		case n > lo:
			z[i] = all.Shr(_W - (n - lo))
		default:
			z[i] = wrap.U64{}
		}
	}
}

func bitV(x []wrap.U64, i uint) uint {
	w := int(i / _W)
	if w >= len(x) {
		return 0
	}

	return uint(x[w].Shr(i % _W).Value() & 1)
}

// fieldV returns the n bits of x starting at bit lo. n must be at most 64.
func fieldV(x []wrap.U64, lo, n uint) uint64 {
	w, b := int(lo/_W), lo%_W
	if w >= len(x) {
		return 0
	}

	v := x[w].Shr(b)
	if b != 0 && w+1 < len(x) {
		v = v.Or(x[w+1].Shl(_W - b))
	}

	if n < _W {
		v = v.And(wrap.NewU64(1).Shl(n).Sub(wrap.NewU64(1)))
	}

	return v.Value()
}

func bitLenV(x []wrap.U64) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if !x[i].IsZero() {
			return uint(i)*_W + uint(bits.Len64(x[i].Value()))
		}
	}

	return 0
}

func toBig(x []wrap.U64) *big.Int {
	z := new(big.Int)
	t := new(big.Int)

	for i := len(x) - 1; i >= 0; i-- {
		z.Lsh(z, _W)
		z.Or(z, t.SetUint64(x[i].Value()))
	}

	return z
}

var limbMask = new(big.Int).SetUint64(^uint64(0))

func fromBig(z []wrap.U64, x *big.Int) (err error) {
	if x.Sign() < 0 {
		return Error.New("negative value: %s", x)
	}

	if x.BitLen() > len(z)*_W {
		return Error.New("value exceeds %d bits: %s", len(z)*_W, x)
	}

	t := new(big.Int).Set(x)
	l := new(big.Int)

	for i := range z {
		z[i] = wrap.NewU64(l.And(t, limbMask).Uint64())
		t.Rsh(t, _W)
	}

	return nil
}

// stringV renders x most significant limb first, one fixed width hex token
// per limb.
func stringV(x []wrap.U64) string {
	sb := &strings.Builder{}

	sb.WriteByte('[')

	for i := len(x) - 1; i >= 0; i-- {
		fmt.Fprintf(sb, "%016x", x[i].Value())

		if i > 0 {
			sb.WriteByte(' ')
		}
	}

	sb.WriteByte(']')

	return sb.String()
}
