package decimal

import "github.com/calebcase/bid/wide"

// IsNaN reports whether d is a quiet or signaling NaN.
func (d Decoded) IsNaN() bool {
	return d.Class == QuietNaN || d.Class == SignalingNaN
}

func (d Decoded) IsQNaN() bool {
	return d.Class == QuietNaN
}

func (d Decoded) IsSNaN() bool {
	return d.Class == SignalingNaN
}

func (d Decoded) IsInf() bool {
	return d.Class == Infinite
}

func (d Decoded) IsFinite() bool {
	return d.Class == Finite
}

// IsZero reports whether d is a zero of either sign. A finite coefficient
// above the format maximum is non-canonical and counts as zero. Without a
// format only a zero coefficient counts.
func (d Decoded) IsZero() bool {
	if d.Class != Finite {
		return false
	}

	if d.Coefficient.IsZero() {
		return true
	}

	return d.format != nil && d.Coefficient.Cmp(d.format.MaxCoefficient) > 0
}

// IsNormal reports whether d is finite, nonzero and its adjusted exponent is
// at least 1 - Emax. It is false without a format.
func (d Decoded) IsNormal() bool {
	if d.format == nil || d.Class != Finite || d.IsZero() {
		return false
	}

	// exponent - bias + digits - 1 >= 1 - emax, and bias = emax + precision - 2.
	return uint64(d.Exponent)+uint64(digits(d.Coefficient)) >= uint64(d.format.Precision)
}

// IsSubnormal reports whether d is finite, nonzero and not normal. It is
// false without a format.
func (d Decoded) IsSubnormal() bool {
	return d.format != nil && d.Class == Finite && !d.IsZero() && !d.IsNormal()
}

// Canonical returns d with non-canonical fields cleared: a coefficient above
// the maximum becomes 0 and a NaN payload of Precision digits or more becomes
// 0. Sign, class and exponent are kept. Without a format d is returned as is.
func (d Decoded) Canonical() Decoded {
	if d.format == nil {
		return d
	}

	switch d.Class {
	case Finite:
		if d.Coefficient.Cmp(d.format.MaxCoefficient) > 0 {
			d.Coefficient = wide.U256{}
		}
	case QuietNaN, SignalingNaN:
		if d.Payload.Cmp(pow10[d.format.Precision-1]) >= 0 {
			d.Payload = wide.U256{}
		}
	}

	return d
}
