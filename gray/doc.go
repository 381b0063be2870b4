// Package gray provides reflected binary (Gray) codes of 8, 16, 32, 64 and 96
// bits.
//
// A Gray value stores the code. The binary value it stands for is decoded on
// every access, so the code is the only state.
//
// Encoding
//
//	gray = binary ^ (binary >> 1)
//
// Adjacent binary values differ in exactly one bit of their codes:
//
//	| binary | 0   | 1   | 2   | 3   | 4   | 5   | 6   | 7   |
//	|--------|-----|-----|-----|-----|-----|-----|-----|-----|
//	| gray   | 000 | 001 | 011 | 010 | 110 | 111 | 101 | 100 |
//
// Decoding
//
// The code is folded onto itself with shifts from half the width down to one:
//
//	for s := width / 2; s > 0; s /= 2 {
//	        gray ^= gray >> s
//	}
//
// The 96 bit code uses the shifts 64, 32, ... 1.
//
// Arithmetic and ordering happen on the binary value. Incrementing a code
// decodes, adds one and encodes again; it is not a single bit flip of the
// stored pattern. Conversions between widths also go through the binary
// value.
package gray

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("gray")
