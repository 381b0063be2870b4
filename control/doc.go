// Package control provides the block framing used to write numeric values to
// a byte stream.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is extracted
// by masking off the fixed bits. This is only the first byte (several control
// block types are multi-byte sequences).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                          |
//  |---------------|---------------||---------------------|------------------------------------------|
//  | 1 |                           || Data                | 2^7 = 128 values                         |
//  | 0 . 1 |                       || Data Size           | 2^6 = 64 bytes                           |
//  | 0 . 0 . 1 |                   || Data + 1            | 2^(5+8) = 8192 values                    |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 2^(4+8+8) = 1048576 values               |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 2^3 = 8 bytes size; up to 2^64 bytes     |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | fields until the matching Container End  |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost Container Unbounded |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | Empty value                              |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | Null value (for nullable fields)         |
//  |---------------|---------------||---------------------|------------------------------------------|
//
// The remaining first bytes (0x02, 0x03, 0x05 and 0x07) are invalid.
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks allow for 7 bits of data to be encoded directly into the block.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose first
// data byte fits in the low bits of the control block.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Null blocks indicate that the field is set to the null value. Empty blocks
// indicate that the field holds zero bytes.
package control

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a decoder method does not apply to the
// current field.
var ErrInvalidOperation = Error.New("invalid operation")
