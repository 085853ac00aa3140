package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVND renders an amount as Vietnamese đồng with dot thousand
// separators, e.g. 10500000 -> "10.500.000 ₫". Fractions are dropped;
// VND has no subunit in practice.
func FormatVND(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(int64(amount), 10)

	var b strings.Builder
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s ₫", sign, b.String())
}
