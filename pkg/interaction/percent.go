package interaction

import (
	"math"
	"strconv"
	"strings"
)

// BelowThreshold is the label used for shares under 0.1%.
const BelowThreshold = "< 0.1 %"

// FormatPercentage formats value as a share of total with three significant
// digits ("25.0%", "3.14%", "100%"). Shares that round below 0.1% render as
// [BelowThreshold]. A zero total yields "0.00%".
func FormatPercentage(value, total float64) string {
	if total <= 0 || math.IsNaN(value) || math.IsNaN(total) {
		return "0.00%"
	}
	return formatShare(100 * value / total)
}

// formatShare applies the threshold to the rounded share, so 0.09996
// renders as "0.100%".
func formatShare(p float64) string {
	s := toPrecision(p, 3)
	if rounded, err := strconv.ParseFloat(s, 64); err != nil || rounded < 0.1 {
		return BelowThreshold
	}
	return s + "%"
}

// toPrecision renders x with the given number of significant digits, using
// positional notation unless the exponent is out of range ("1.23e+3").
func toPrecision(x float64, digits int) string {
	mantissa, e, _ := strings.Cut(strconv.FormatFloat(x, 'e', digits-1, 64), "e")
	exp, _ := strconv.Atoi(e)
	if exp < -6 || exp >= digits {
		sign := "+"
		if exp < 0 {
			sign = "-"
		}
		return mantissa + "e" + sign + strconv.Itoa(abs(exp))
	}
	return strconv.FormatFloat(x, 'f', max(0, digits-1-exp), 64)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
