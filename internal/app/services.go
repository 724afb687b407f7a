package app

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"stayscout/internal/domain"
)

// SearchService proxies hotel searches: one upstream fetch per location,
// then normalize and run the query pipeline locally. Identical concurrent
// searches share a single upstream call via singleflight; nothing is
// retained once the call returns (this is dedupe, not a cache).
type SearchService struct {
	client domain.HotelSearchClient
	sf     singleflight.Group
}

// NewSearchService accepts a nil client when the upstream credential is not
// configured; searches then fail with domain.ErrMissingConfig.
func NewSearchService(c domain.HotelSearchClient) *SearchService {
	return &SearchService{client: c}
}

func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchPage, error) {
	if s.client == nil {
		return domain.SearchPage{}, domain.ErrMissingConfig
	}

	v, err, _ := s.sf.Do(q.Location, func() (any, error) {
		return s.client.Search(ctx, q.Location)
	})
	if err != nil {
		return domain.SearchPage{}, err
	}
	raw, _ := v.([]map[string]any)

	// Normalized records are built fresh per request, so sharing the raw
	// payload across singleflight waiters is safe.
	return runQuery(normalizeHotels(raw, q.Location), q), nil
}

// ConvertService proxies currency conversions. Rates are fetched fresh for
// every request, anchored to the source currency's table; there is no
// server-side fallback when the rate source is down.
type ConvertService struct {
	source domain.RateSource
	now    func() time.Time
}

func NewConvertService(src domain.RateSource) *ConvertService {
	return &ConvertService{source: src, now: time.Now}
}

func (s *ConvertService) Convert(ctx context.Context, amount float64, from, to string) (domain.Conversion, error) {
	rates, err := s.source.Latest(ctx, from)
	if err != nil {
		return domain.Conversion{}, err
	}
	// The table is anchored to `from`, so the conversion reduces to a
	// straight multiply by rates[to]; Convert handles the general case.
	rates[from] = 1
	conv, err := Convert(amount, from, to, rates)
	if err != nil {
		return domain.Conversion{}, err
	}
	conv.Timestamp = s.now().UTC()
	return conv, nil
}
