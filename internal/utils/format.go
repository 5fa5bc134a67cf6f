package utils

import (
	"strconv"
	"strings"
)

// FormatAmount renders a monetary amount with thousands separators and
// two decimal places, e.g. 1234567.5 -> "1,234,567.50".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	dot := strings.Index(s, ".")
	if dot < 0 {
		// Non-finite values ("Inf", "NaN") have no decimal point
		return sign + s
	}
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(fracPart)

	return b.String()
}
