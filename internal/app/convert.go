package app

import (
	"fmt"
	"math"

	"stayscout/internal/domain"
)

// Convert computes amount From -> To through a USD-anchored rate table
// (rates[code] = units of code per 1 USD): the amount is taken to USD
// first, then to the target. The effective cross-rate is rates[to] /
// rates[from], so from == to always yields rate 1 and an unchanged amount.
func Convert(amount float64, from, to string, rates domain.RateTable) (domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.Conversion{}, fmt.Errorf("%w: amount must be a positive number", domain.ErrInvalidAmount)
	}
	fromRate, ok := rates[from]
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: %s", domain.ErrInvalidCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: %s", domain.ErrInvalidCurrency, to)
	}

	inUSD := amount / fromRate
	return domain.Conversion{
		Amount:          amount,
		From:            from,
		To:              to,
		Rate:            toRate / fromRate,
		ConvertedAmount: inUSD * toRate,
	}, nil
}
