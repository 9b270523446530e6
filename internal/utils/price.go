package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a rupee amount in Indian display units: crores above
// 1e7, lakhs above 1e5, plain grouped digits below that. A nil price renders
// as "N/A". Every surface that shows a price goes through this helper.
func FormatPrice(price *float64) string {
	if price == nil {
		return "N/A"
	}
	v := *price
	switch {
	case v >= 1e7:
		return fmt.Sprintf("₹%.2f Cr", v/1e7)
	case v >= 1e5:
		return fmt.Sprintf("₹%.2f Lacs", v/1e5)
	default:
		return "₹" + groupThousands(v)
	}
}

// groupThousands formats the rounded value with comma separators and no
// decimals.
func groupThousands(v float64) string {
	n := int64(math.Round(v))
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if negative {
		return "-" + string(out)
	}
	return string(out)
}
