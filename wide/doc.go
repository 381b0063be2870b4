// Package wide provides 96 bit integers built from a 32 bit upper word and a
// 64 bit lower word.
//
// UInt96 is unsigned and Int96 is its two's complement signed counterpart.
// Addition, subtraction and multiplication wrap modulo 2^96 like the native
// fixed width integers. Division by zero is reported as an error rather than
// a panic.
//
// Layout
//
//  | 95 ... 64 | 63 ... 0 |
//  |-----------|----------|
//  |   upper   |  lower   |
//
// Multiplication splits both operands into three 32 bit limbs and sums the
// partial products that land below bit 96. Division is restoring binary long
// division. Shift amounts are taken modulo 96.
package wide

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("wide")
