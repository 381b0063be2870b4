// Package zigzag provides ZigZag codes of 8, 16, 32 and 64 bits.
//
// A ZigZag code maps a signed integer onto an unsigned integer of the same
// width so that values of small magnitude, positive or negative, get small
// codes:
//
//	| decoded | 0 | -1 | 1 | -2 | 2 | ... | 127 | -128 |
//	|---------|---|----|---|----|---|-----|-----|------|
//	| encoded | 0 |  1 | 2 |  3 | 4 | ... | 254 |  255 |
//
// Encoding
//
//	encoded = (decoded << 1) ^ (decoded >> (bits - 1))
//	decoded = (encoded >> 1) ^ -(encoded & 1)
//
// The right shift of the decoded value is arithmetic, so the second term is
// all ones for negative values and all zeros otherwise.
//
// The mapping is a bijection onto the full unsigned range. Arithmetic and
// ordering happen on the decoded value and wrap like the native signed types.
package zigzag

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("zigzag")
