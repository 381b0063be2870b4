// Package minifloat provides floating point numbers narrower or wider than the
// native float32 and float64.
//
// Every type is a sign, exponent and mantissa bit pattern:
//
//	| Type     | Bits | Sign | Exponent | Mantissa | Bias  |
//	|----------|------|------|----------|----------|-------|
//	| Quarter  | 8    | 1    | 5        | 2        | 15    |
//	| E5M2     | 8    | 1    | 5        | 2        | 15    |
//	| E4M3     | 8    | 1    | 4        | 3        | 7     |
//	| BFloat8  | 8    | 1    | 5        | 2        | 15    |
//	| BFloat16 | 16   | 1    | 8        | 7        | 127   |
//	| BFloat32 | 32   | 1    | 11       | 20       | 1023  |
//	| BFloat64 | 64   | 1    | 15       | 48       | 16383 |
//
// Classification follows IEEE 754: an all ones exponent holds the infinities
// (zero mantissa) and NaNs, a zero exponent holds the zeros and subnormals.
// E4M3 is the exception. It has no infinities and its only NaN is the pattern
// with every exponent and mantissa bit set, so 0x7F and 0xFF are NaN and the
// rest of the top exponent holds normal numbers up to 448. A NaN E4M3 is never
// negative.
//
// Conversion
//
// Quarter, E5M2 and E4M3 round to the nearest representable value, ties to
// even. A mantissa that rounds up past its width carries into the exponent;
// an exponent past the top becomes infinite, or saturates to the largest
// finite value for E4M3.
//
// The BFloat types are truncations. BFloat16 and BFloat32 are the upper halves
// of a float32 and a float64; BFloat8 is the upper byte of an IEEE binary16
// (rounded from float32 with github.com/x448/float16). BFloat64 is the upper
// half of an IEEE binary128, so its conversions rebias the exponent:
//
//	binary64:  | s | 11 bit exponent, bias 1023  | 52 bit mantissa |
//	BFloat64:  | s | 15 bit exponent, bias 16383 | 48 bit mantissa |
//
// A subnormal float64 is a normal BFloat64: it is normalized and then
// truncated to 48 mantissa bits. BFloat64 values below the float64 normal
// range convert to float64 subnormals, again by truncation, and to signed
// zero only below the smallest one.
//
// Arithmetic
//
// Operations decode to float64, compute natively and encode the result.
// BFloat64 values outside the float64 range therefore overflow to infinity
// when used in arithmetic, though they convert to and from text and
// wide.UInt96 exactly.
//
// Equality and Order
//
// Equal compares bit patterns except that every NaN equals every other NaN.
// Compare orders by value, treats the two zeros as equal and sorts NaN above
// everything else.
package minifloat

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("minifloat")
