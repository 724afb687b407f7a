package domain

import "time"

// RateTable maps a 3-letter currency code to the number of units of that
// currency per 1 USD. Tables are fetched fresh for every conversion; there
// is no server-side fallback or cache.
type RateTable map[string]float64

func (t RateTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Conversion is the outcome of converting Amount From -> To through a
// USD-anchored rate table. Rate is the effective cross-rate To/From.
type Conversion struct {
	Amount          float64   `json:"amount"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Rate            float64   `json:"rate"`
	ConvertedAmount float64   `json:"convertedAmount"`
	Timestamp       time.Time `json:"timestamp"`
}
