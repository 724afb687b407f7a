package domain

import "context"

// HotelSearchClient is the outbound port to the third-party hotel pricing
// API. Results come back as raw JSON objects; the app layer normalizes
// them into Hotel records.
type HotelSearchClient interface {
	Search(ctx context.Context, location string) ([]map[string]any, error)
}

// RateSource is the outbound port to the exchange-rate API. The returned
// table is anchored to the requested base currency.
type RateSource interface {
	Latest(ctx context.Context, base string) (RateTable, error)
}
