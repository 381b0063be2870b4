// Package bcd provides binary coded decimal integers.
//
// Packed types hold two decimal digits per byte, one per nibble. UnpackedBCD
// holds a single digit in a whole byte.
//
//	| Type        | Raw    | Digits | Largest value     |
//	|-------------|--------|--------|-------------------|
//	| UnpackedBCD | uint8  | 1      | 9                 |
//	| PackedBCD8  | uint8  | 2      | 99                |
//	| PackedBCD16 | uint16 | 4      | 9999              |
//	| PackedBCD32 | uint32 | 8      | 99999999          |
//	| PackedBCD64 | uint64 | 16     | 9999999999999999  |
//
// Packed Layout
//
// The least significant digit is in the lowest nibble. 1234 as a PackedBCD16:
//
//	| 15 .. 12 | 11 .. 8 | 7 .. 4 | 3 .. 0 |
//	|----------|---------|--------|--------|
//	| 0001     | 0010    | 0011   | 0100   |
//
// Raw patterns with a nibble (or, for UnpackedBCD, a byte) above 9 are
// rejected with numerics.ErrInvalidRaw.
//
// Arithmetic
//
// Operations decode both operands, compute on the decimal values and encode
// the result. A result outside [0, largest value] is an ErrOverflow and
// division by zero is an ErrDivideByZero; nothing wraps.
package bcd

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("bcd")
