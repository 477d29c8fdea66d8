package seeds

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Anything that is not a digit, a decimal point or a magnitude letter.
	amountNoisePattern = regexp.MustCompile(`[^0-9.kmlKML]`)
	amountNumber       = regexp.MustCompile(`\d+(?:\.\d+)?`)

	lakh     = decimal.NewFromInt(100000)
	thousand = decimal.NewFromInt(1000)
)

// NormalizeAmount converts an amount-bearing fragment such as "₹25,000/-",
// "1.5L" or "Amount: 2k" into a number. Lakh ("l") takes precedence over
// thousand ("k"); "m" is kept by the filter but carries no multiplier.
// The second return is false when the fragment holds no number at all.
func NormalizeAmount(fragment string) (decimal.Decimal, bool) {
	clean := strings.ToLower(amountNoisePattern.ReplaceAllString(fragment, ""))

	num := amountNumber.FindString(clean)
	if num == "" {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}

	switch {
	case strings.Contains(clean, "l"):
		return value.Mul(lakh), true
	case strings.Contains(clean, "k"):
		return value.Mul(thousand), true
	default:
		return value, true
	}
}
