package numerics

import (
	"fmt"
	"strconv"
)

// Format writes a numeric value for fmt.Formatter implementations. The verbs
// 'v' and 's' print the canonical text and 'q' quotes it. Every other verb is
// handed to native, the value's closest native representation, so the usual
// integer and floating point verbs and flags apply.
func Format(f fmt.State, verb rune, text string, native any) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), text)
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), strconv.Quote(text))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), native)
	}
}

// FormatFloat returns the shortest decimal text that parses back to x.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
