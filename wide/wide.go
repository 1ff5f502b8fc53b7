// Package wide provides fixed width unsigned integers built from 64 bit
// wrapping limbs.
//
// The types here are deliberately small: construction, equality, ordering
// and bitwise composition. That is everything needed to slice encoded
// decimal words into fields and to compare coefficients against known
// bounds. Limbs are stored least significant first, while String renders them
// most significant first:
//
//  NewU256([4]uint64{1, 2, 3, 4}).String()
//  // [0000000000000004 0000000000000003 0000000000000002 0000000000000001]
//
// Go does not allow over-aligning a type, so U256 is 8 byte aligned like its
// limbs. The limb layout is still fixed, so two U128 halves always join into
// the same U256 (see Join128 and Halves).
package wide

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("wide")
