// Package decimal provides the binary integer decimal (BID) interchange
// encoding of decimal floating-point numbers.
//
// The value of a finite decimal is:
//
//  number = (-1)^sign * coefficient * 10^(exponent - bias)
//
// Where the coefficient is an unsigned integer of at most Precision digits and
// the exponent is stored biased. For example, in decimal128:
//
//  1.23 = 123 * 10^(6174 - 6176)
//
// Encoding
//
// A word is laid out first by the sign bit, then the combination field, and
// finally the trailing significand. The coefficient is stored as a plain
// binary integer (not densely packed decimal).
//
// The first five bits of the combination field select the layout:
//
//  | 0 | 1 . 2 . 3 . 4 . 5 | Layout                                           |
//  |---|-------------------|--------------------------------------------------|
//  | s | 0 . x . x . x . x | Finite, small: exponent then coefficient         |
//  | s | 1 . 0 . x . x . x | Finite, small: exponent then coefficient         |
//  | s | 1 . 1 . 0 . x . x | Finite, large: 11, exponent, 0b100 + coefficient |
//  | s | 1 . 1 . 1 . 0 . x | Finite, large: 11, exponent, 0b100 + coefficient |
//  | s | 1 . 1 . 1 . 1 . 0 | Infinity, remaining bits ignored                 |
//  | s | 1 . 1 . 1 . 1 . 1 | NaN, next bit set for signaling, payload follows |
//  |---|-------------------|--------------------------------------------------|
//
// Small encodings hold coefficients below 2^(Bits-1-ExpBits). Large encodings
// hold the rest by dropping the two leading bits of the coefficient and
// implying 0b100 in their place.
//
// Formats
//
//  | Format    | Precision | Exponent Bits | Trailing Bits | Bias    | Max Coefficient |
//  |-----------|-----------|---------------|---------------|---------|-----------------|
//  | Format32  | 7         | 8             | 20            | 101     | 10^7 - 1        |
//  | Format64  | 16        | 10            | 50            | 398     | 10^16 - 1       |
//  | Format128 | 34        | 14            | 110           | 6176    | 10^34 - 1       |
//  | Format192 | 52        | 18            | 170           | 98354   | 10^52 - 1       |
//  | Format256 | 70        | 22            | 230           | 1572932 | 10^70 - 1       |
//  |-----------|-----------|---------------|---------------|---------|-----------------|
//
// Non-canonical Encodings
//
// A finite encoding whose coefficient exceeds the maximum is non-canonical and
// is read as a zero of the same sign. The raw word is never modified; only the
// classification treats it as zero. Use Canonical to rewrite such a word.
//
// Decoding
//
// Decode returns a Decoded view computed from the raw word on every call. All
// types are immutable values, so words may be shared and classified
// concurrently.
package decimal
