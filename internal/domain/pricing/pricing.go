// Package pricing implements the cost-curve pricing model that maps a
// player rating to a monetary cost, plus display formatting for amounts.
package pricing

import (
	"fmt"
	"math"

	"github.com/okian/touchline/internal/domain/model"
)

// Display thresholds for FormatAmount.
const (
	billion  = 1_000_000_000
	million  = 1_000_000
	thousand = 1_000
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "€"

// Cost prices a player rating on the exponential curve:
//
//	cost = round(base × exponent^(rating − baseRating))
//
// Rounding is half-up so that costs are deterministic integers usable
// in exact budget comparisons. The result is monotonically increasing
// in rating whenever the exponent is greater than 1.
func Cost(rating int, curve model.CostCurve) int64 {
	raw := float64(curve.Base) * math.Pow(curve.Exponent, float64(rating-curve.BaseRating))
	return int64(math.Round(raw))
}

// FormatAmount renders an amount as an abbreviated currency string:
// ≥1e9 billions with 2 decimals, ≥1e6 millions with 1 decimal,
// ≥1e3 thousands with 0 decimals, otherwise the raw integer.
func FormatAmount(amount int64) string {
	switch {
	case amount >= billion:
		return fmt.Sprintf("%s%.2fB", CurrencySymbol, float64(amount)/billion)
	case amount >= million:
		return fmt.Sprintf("%s%.1fM", CurrencySymbol, float64(amount)/million)
	case amount >= thousand:
		return fmt.Sprintf("%s%.0fK", CurrencySymbol, float64(amount)/thousand)
	default:
		return fmt.Sprintf("%s%d", CurrencySymbol, amount)
	}
}
