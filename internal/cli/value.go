package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/codec"
)

// lookupKind resolves a type name given on the command line.
func lookupKind(name string) (codec.Kind, error) {
	k, ok := codec.Lookup(name)
	if !ok {
		return codec.KindInvalid, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown type %q (see numconv types)", name))
	}

	return k, nil
}

// parseHex decodes hex text. A 0x prefix, underscores and spaces are ignored
// and an odd number of digits is padded on the left.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.NewReplacer("_", "", " ", "").Replace(s)

	if len(s)%2 == 1 {
		s = "0" + s
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid hex", Error.Wrap(err))
	}

	return b, nil
}

func binaryString(raw []byte) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%08b", b)
	}

	return strings.Join(parts, " ")
}

func field(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%-10s %s\n", name+":", value)
}

// ValueReport describes one value in both of its forms.
type ValueReport struct {
	Type      string `json:"type" yaml:"type"`
	Value     string `json:"value" yaml:"value"`
	Localized string `json:"localized,omitempty" yaml:"localized,omitempty"`
	Raw       string `json:"raw" yaml:"raw"`
	Binary    string `json:"binary" yaml:"binary"`
}

func newValueReport(k codec.Kind, v numerics.Value, tag language.Tag) *ValueReport {
	raw := v.AppendRaw(nil)

	r := &ValueReport{
		Type:   k.Name(),
		Value:  v.String(),
		Raw:    hex.EncodeToString(raw),
		Binary: binaryString(raw),
	}

	if l := localize(r.Value, tag); l != r.Value {
		r.Localized = l
	}

	return r
}

// localize renders canonical text for tag, leaving it alone when no locale
// was requested.
func localize(text string, tag language.Tag) string {
	if tag == language.Und {
		return text
	}

	return numerics.Localize(text, tag)
}

func delocalize(text string, tag language.Tag) string {
	if tag == language.Und {
		return text
	}

	return numerics.Delocalize(text, tag)
}

func (r *ValueReport) writeText(w io.Writer) {
	field(w, "type", r.Type)
	field(w, "value", r.Value)

	if r.Localized != "" {
		field(w, "localized", r.Localized)
	}

	field(w, "raw", r.Raw)
	field(w, "binary", r.Binary)
}

// Field is a named part of a value's bit pattern.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// InspectReport is a ValueReport with a breakdown of the value.
type InspectReport struct {
	ValueReport `yaml:",inline"`

	Family string  `json:"family" yaml:"family"`
	Class  string  `json:"class,omitempty" yaml:"class,omitempty"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type floatFields interface {
	Signbit() bool
	Exponent() uint64
	Mantissa() uint64
}

func newInspectReport(k codec.Kind, v numerics.Value, tag language.Tag) *InspectReport {
	r := &InspectReport{
		ValueReport: *newValueReport(k, v, tag),
		Family:      string(k.Family()),
	}

	if c, ok := v.(numerics.Classifier); ok {
		r.Class = classify(c)
	}

	if f, ok := v.(floatFields); ok {
		sign := "0"
		if f.Signbit() {
			sign = "1"
		}

		r.Fields = append(r.Fields,
			Field{"sign", sign},
			Field{"exponent", strconv.FormatUint(f.Exponent(), 10)},
			Field{"mantissa", strconv.FormatUint(f.Mantissa(), 10)},
		)
	}

	if d, ok := v.(interface{ Digits() string }); ok {
		r.Fields = append(r.Fields, Field{"digits", d.Digits()})
	}

	if f, ok := v.(interface{ Float64() float64 }); ok {
		r.Fields = append(r.Fields, Field{"float64", strconv.FormatFloat(f.Float64(), 'g', -1, 64)})
	}

	return r
}

func classify(c numerics.Classifier) string {
	switch {
	case c.IsNaN():
		return "nan"
	case c.IsInf():
		return "infinite"
	case c.IsZero():
		return "zero"
	case c.IsSubnormal():
		return "subnormal"
	}

	return "normal"
}

func (r *InspectReport) writeText(w io.Writer) {
	r.ValueReport.writeText(w)
	field(w, "family", r.Family)

	if r.Class != "" {
		field(w, "class", r.Class)
	}

	for _, f := range r.Fields {
		field(w, f.Name, f.Value)
	}
}
