// Package bid moves binary integer decimal words over byte streams.
//
// The encodings themselves live in the decimal package, the arithmetic
// substrate in wrap and wide, and the status flag vocabulary in flags. This
// package only frames words: each one is written as its big-endian
// interchange bytes with no header, so a reader must know the width of every
// word it expects.
//
//  e := bid.NewEncoder(w)
//  err := e.Encode(decimal.Max128())
//
//  d := bid.NewDecoder(r)
//  var x decimal.Decimal128
//  err = d.Decode(&x)
package bid

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("bid")
