package dispute

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBRL renders a value the way the ledger stores currency: "R$ 1.234,56".
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// ParseBRL reads a ledger currency cell back into a float. Accepts "R$ 1.234,56",
// "1234,56" and plain "1234.56"; anything unparsable is 0, never an error.
func ParseBRL(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		// pt-BR form: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
