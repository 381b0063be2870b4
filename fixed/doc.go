// Package fixed provides binary fixed point numbers.
//
// A fixed point value is a raw integer scaled by 2^-n, where n is the number
// of fraction bits. The Q types are signed (two's complement) and the UQ types
// unsigned; the name gives the integer and fraction bit counts.
//
//	| Type    | Raw    | Fraction bits | Resolution |
//	|---------|--------|---------------|------------|
//	| Q3_4    | int8   | 4             | 2^-4       |
//	| Q7_8    | int16  | 8             | 2^-8       |
//	| Q15_16  | int32  | 16            | 2^-16      |
//	| Q31_32  | int64  | 32            | 2^-32      |
//	| UQ4_4   | uint8  | 4             | 2^-4       |
//	| UQ8_8   | uint16 | 8             | 2^-8       |
//	| UQ16_16 | uint32 | 16            | 2^-16      |
//	| UQ32_32 | uint64 | 32            | 2^-32      |
//
// Arithmetic
//
// Addition and subtraction work on the raw values directly. Multiplication
// forms the double width product and shifts it right by n; division shifts the
// dividend left by n before dividing. The 8, 16 and 32 bit types use the next
// native integer for the intermediate, the 64 bit types a 128 bit one built
// with math/bits, so every product and quotient is exact before truncation.
//
// Nothing is checked for overflow. Results wrap like the raw integer type, and
// dividing by zero panics like native integer division.
//
// Text
//
// String writes the exact decimal expansion of the value, which always
// terminates since the scale is a power of two. Parse accepts decimal text and
// truncates toward zero to the nearest representable value.
package fixed

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("fixed")
