// Package codec writes numeric values to control block streams.
//
// Every numeric type in this module is a Kind. A Schema names the Kind of a
// field and whether it may be null. Encoders write one Data block per value
// (or a Null block for an absent value) and decoders validate each payload
// against the schema's Kind.
//
// Payloads
//
// The payload of a value depends on its family:
//
//	| Family                    | Payload                                          |
//	|---------------------------|--------------------------------------------------|
//	| signed fixed point, Int96 | magnitude shifted left one bit, low bit the sign |
//	| bcd                       | the decimal value as an unsigned integer         |
//	| everything else           | the raw bit pattern                              |
//
// Payloads are big-endian with leading zero bytes removed, so small values fit
// the inline Data blocks. For example the Q7_8 value -1 (raw 0xFF00) is the
// magnitude 0x0100 with the sign bit set, payload 0x0201, and PackedBCD16 1234
// (raw 0x1234) is the value 0x04D2.
package codec

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("codec")
