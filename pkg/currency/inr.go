// Package currency converts stored USD amounts to displayed INR and formats
// them with Indian digit grouping.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultUSDToINRRate is the fixed conversion rate applied when the caller
// does not supply one.
const DefaultUSDToINRRate = 83

var inr = message.NewPrinter(language.MustParse("en-IN"))

// USDToINR converts a USD amount at the given rate. Non-finite input yields
// 0. A rate of 0 or less falls back to the default.
func USDToINR(amount, rate float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if rate <= 0 {
		rate = DefaultUSDToINRRate
	}
	return amount * rate
}

// FormatINR renders an INR amount as a localized currency string, e.g.
// "₹1,00,000". Non-finite input is formatted as zero.
func FormatINR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return inr.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}
