// Package numerics provides the contracts shared by a family of fixed-width
// custom numeric value types.
//
// Every type in the subpackages is an immutable value wrapping a single raw
// bit pattern, together with pure conversions between that pattern and a
// semantic value:
//
//  | Package   | Types                                   | Semantic value                |
//  |-----------|-----------------------------------------|-------------------------------|
//  | minifloat | Quarter E4M3 E5M2 BFloat8/16/32/64      | IEEE 754 like approximation   |
//  | fixed     | Q3_4 Q7_8 Q15_16 Q31_32 UQ4_4 ... UQ32_32 | raw / 2^fractionBits        |
//  | gray      | Gray8/16/32/64/96                       | reflected binary decode       |
//  | zigzag    | ZigZag8/16/32/64                        | signed integer                |
//  | bcd       | PackedBCD8/16/32/64 UnpackedBCD         | decimal integer               |
//  | wide      | UInt96 Int96                            | 96 bit integer                |
//
// Construction
//
// Values are built either from a raw pattern (FromRaw, FromGray,
// FromEncoded) or from a semantic value (FromFloat64, FromBinary,
// FromDecoded, FromValue). Only BCD validates raw patterns.
//
// Errors
//
// Recoverable failures are reported as errors carrying one of the kind
// sentinels declared here (ErrInvalidRaw, ErrOutOfRange, ErrOverflow,
// ErrDivideByZero, ErrTypeMismatch, ErrSyntax). Use errors.Is to test for a
// kind; the error class of the originating package is part of the message.
//
// Text
//
// String renders canonical decimal text which Parse accepts back. Every type
// implements fmt.Formatter, and Localize/Delocalize translate canonical text
// to and from the conventions of a language.Tag.
package numerics
