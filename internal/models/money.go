package models

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount as Indian rupees with lakh/crore digit
// grouping and no fraction digits, e.g. ₹12,34,567.
func FormatINR(amount float64) string {
	negative := amount < 0
	whole := int64(math.Round(math.Abs(amount)))

	digits := fmt.Sprintf("%d", whole)
	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		// Last three digits form one group; the rest split in pairs.
		head := digits[:len(digits)-3]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + digits[len(digits)-3:]
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
