package numerics

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbols are the number rendering conventions of a language.
type symbols struct {
	digits  [10]rune
	group   string
	decimal string

	// primary is the size of the group nearest the decimal separator and
	// secondary the size of every group further left.
	primary   int
	secondary int
}

var symbolCache sync.Map

func lookupSymbols(tag language.Tag) *symbols {
	key := tag.String()
	if s, ok := symbolCache.Load(key); ok {
		return s.(*symbols)
	}

	s, _ := symbolCache.LoadOrStore(key, discoverSymbols(tag))

	return s.(*symbols)
}

// discoverSymbols renders two sample numbers with the language's printer and
// reads the digits, separators and grouping back out of them.
func discoverSymbols(tag language.Tag) *symbols {
	p := message.NewPrinter(tag)

	s := &symbols{
		digits:    [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
		decimal:   ".",
		primary:   3,
		secondary: 3,
	}

	digits := []rune(p.Sprint(number.Decimal(1234567890, number.NoSeparator())))
	if len(digits) == 10 {
		for i, r := range digits {
			s.digits[(i+1)%10] = r
		}
	}

	sample := p.Sprint(number.Decimal(
		1234567.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))

	type run struct {
		text   string
		before int
	}

	var runs []run
	var sb strings.Builder
	count := 0

	for _, r := range sample {
		if _, ok := s.digitValue(r); ok {
			if sb.Len() > 0 && count > 0 {
				runs = append(runs, run{sb.String(), count})
			}
			sb.Reset()
			count++

			continue
		}

		sb.WriteRune(r)
	}

	if count != 8 || len(runs) == 0 {
		return s
	}

	last := runs[len(runs)-1]
	if last.before == 7 {
		s.decimal = last.text
		runs = runs[:len(runs)-1]
	}

	switch len(runs) {
	case 0:
		s.group = ""
	case 1:
		s.group = runs[0].text
		s.primary = 7 - runs[0].before
		s.secondary = s.primary
	default:
		s.group = runs[0].text
		s.primary = 7 - runs[len(runs)-1].before
		s.secondary = runs[len(runs)-1].before - runs[len(runs)-2].before
	}

	return s
}

func (s *symbols) digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}

	for i, d := range s.digits {
		if d == r {
			return byte(i), true
		}
	}

	return 0, false
}

func (s *symbols) boundary(remaining int) bool {
	if s.group == "" || s.primary <= 0 || remaining < s.primary {
		return false
	}

	if remaining == s.primary {
		return true
	}

	return s.secondary > 0 && (remaining-s.primary)%s.secondary == 0
}

// splitDecimal splits canonical decimal text into its parts. It reports false
// for text that is not a plain decimal number (NaN, infinities).
func splitDecimal(text string) (sign, whole, frac, exp string, ok bool) {
	rest := text
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign, rest = rest[:1], rest[1:]
	}

	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		rest, exp = rest[:i], rest[i:]
	}

	whole = rest
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		whole, frac = rest[:i], rest[i+1:]
	}

	if whole == "" || !asciiDigits(whole) || !asciiDigits(frac) {
		return "", "", "", "", false
	}

	return sign, whole, frac, exp, true
}

func asciiDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Localize renders canonical decimal text with the digits, digit grouping and
// decimal separator of the language. Text that is not a plain decimal number
// is returned unchanged.
func Localize(text string, tag language.Tag) string {
	sign, whole, frac, exp, ok := splitDecimal(text)
	if !ok {
		return text
	}

	s := lookupSymbols(tag)

	var b strings.Builder
	b.WriteString(sign)

	for i := 0; i < len(whole); i++ {
		if i > 0 && s.boundary(len(whole)-i) {
			b.WriteString(s.group)
		}

		b.WriteRune(s.digits[whole[i]-'0'])
	}

	if frac != "" {
		b.WriteString(s.decimal)

		for i := 0; i < len(frac); i++ {
			b.WriteRune(s.digits[frac[i]-'0'])
		}
	}

	b.WriteString(exp)

	return b.String()
}

// Delocalize turns text written with the conventions of the language back into
// canonical decimal text suitable for Parse.
func Delocalize(text string, tag language.Tag) string {
	s := lookupSymbols(tag)
	spaceGroup := s.group != "" && strings.IndexFunc(s.group, unicode.IsSpace) >= 0

	var b strings.Builder

	for rest := text; len(rest) > 0; {
		switch {
		case strings.HasPrefix(rest, s.decimal):
			b.WriteByte('.')
			rest = rest[len(s.decimal):]

			continue
		case s.group != "" && strings.HasPrefix(rest, s.group):
			rest = rest[len(s.group):]

			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]

		switch {
		case r == '\u2212':
			b.WriteByte('-')
		case r == '\u200e' || r == '\u200f' || r == '\u061c':
			// Directional marks carry no value.
		case spaceGroup && unicode.IsSpace(r):
		default:
			if d, ok := s.digitValue(r); ok {
				b.WriteByte('0' + d)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
