package gray

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/wide"
)

// Gray96 is a 96 bit Gray code held in a wide.UInt96.
type Gray96 struct {
	code wide.UInt96
}

var _ numerics.Value = Gray96{}
var _ numerics.Ordered[Gray96] = Gray96{}

// Gray96FromBinary encodes b.
func Gray96FromBinary(b wide.UInt96) Gray96 {
	return Gray96{code: b.Xor(b.Rsh(1))}
}

// Gray96FromGray wraps an existing code.
func Gray96FromGray(g wide.UInt96) Gray96 { return Gray96{code: g} }

// GrayValue returns the code.
func (g Gray96) GrayValue() wide.UInt96 { return g.code }

// BinaryValue returns the decoded binary value.
func (g Gray96) BinaryValue() wide.UInt96 {
	b := g.code
	for s := uint(64); s > 0; s /= 2 {
		b = b.Xor(b.Rsh(s))
	}

	return b
}

func (g Gray96) Inc() Gray96 { return Gray96FromBinary(g.BinaryValue().Inc()) }

func (g Gray96) Dec() Gray96 { return Gray96FromBinary(g.BinaryValue().Dec()) }

func (g Gray96) Add(o Gray96) Gray96 {
	return Gray96FromBinary(g.BinaryValue().Add(o.BinaryValue()))
}

func (g Gray96) Sub(o Gray96) Gray96 {
	return Gray96FromBinary(g.BinaryValue().Sub(o.BinaryValue()))
}

// Compare orders codes by their binary values.
func (g Gray96) Compare(o Gray96) int { return g.BinaryValue().Compare(o.BinaryValue()) }

func (g Gray96) Equal(o Gray96) bool { return g.code == o.code }

func (g Gray96) CompareAny(other any) (int, error) { return numerics.CompareAny(g, other) }

func (Gray96) Bits() int { return 96 }

func (g Gray96) AppendRaw(dst []byte) []byte { return g.code.AppendRaw(dst) }

// String returns the decimal binary value.
func (g Gray96) String() string { return g.BinaryValue().String() }

func (g Gray96) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, g.String(), g.BinaryValue().Big())
}

// Gray64 narrows g, keeping the low 64 bits of the binary value.
func (g Gray96) Gray64() Gray64 { return Gray64FromBinary(g.BinaryValue().Lower()) }

// Gray96 widens g.
func (g Gray64) Gray96() Gray96 { return Gray96FromBinary(wide.FromUint64(g.BinaryValue())) }

// ParseGray96 parses the decimal binary value.
func ParseGray96(s string) (Gray96, error) {
	b, err := wide.Parse(s)
	if err != nil {
		return Gray96{}, Error.Wrap(err)
	}

	return Gray96FromBinary(b), nil
}

func TryParseGray96(s string) (Gray96, bool) { return numerics.Try(ParseGray96(s)) }

func ParseGray96Locale(s string, tag language.Tag) (Gray96, error) {
	return ParseGray96(numerics.Delocalize(s, tag))
}
