package utils

import (
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// ComputeFare calculates the estimated fare for a ride type over a
// distance, rounded to the nearest pricing step (e.g. 25 XAF).
func ComputeFare(pricing models.PricingConfig, rideType models.RideType, distanceKm float64) decimal.Decimal {
	rate, ok := pricing.Rates[string(rideType)]
	if !ok {
		return decimal.Zero
	}

	raw := decimal.NewFromFloat(rate.Base).
		Add(decimal.NewFromFloat(rate.PerKm).Mul(decimal.NewFromFloat(distanceKm)))

	return RoundToNearest(raw, pricing.RoundTo)
}

// RoundToNearest rounds amount to the nearest multiple of step.
// A step of 0 or less returns the amount unchanged.
func RoundToNearest(amount decimal.Decimal, step int64) decimal.Decimal {
	if step <= 0 {
		return amount
	}
	stepDec := decimal.NewFromInt(step)
	return amount.Div(stepDec).Round(0).Mul(stepDec)
}
