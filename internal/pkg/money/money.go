// internal/pkg/money/money.go
package money

import (
	"fmt"
	"strings"
)

// Format renders an amount in centavos using the Brazilian currency
// convention, always with exactly two decimal digits (e.g. 12990 ->
// "R$ 129,90").
func Format(centavos int64) string {
	negative := centavos < 0
	if negative {
		centavos = -centavos
	}

	reais := centavos / 100
	cents := centavos % 100

	intPart := groupThousands(reais)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, intPart, cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, ".")
}
