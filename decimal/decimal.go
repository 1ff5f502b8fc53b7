package decimal

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Word is implemented by every encoded decimal width.
type Word interface {
	// Format returns the interchange format of the word.
	Format() *Format

	// Decode interprets the word.
	Decode() Decoded

	MarshalBinary() (data []byte, err error)
}
