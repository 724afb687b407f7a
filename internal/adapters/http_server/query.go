package httpserver

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"stayscout/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 200
)

// parseSearchQuery validates /search-hotels parameters up front, before any
// upstream call. Malformed numbers, out-of-range page/limit, and unknown
// sort fields are rejected rather than silently clamped.
func parseSearchQuery(v url.Values) (domain.SearchQuery, error) {
	q := domain.SearchQuery{
		Location:  strings.TrimSpace(v.Get("location")),
		CheckIn:   v.Get("checkIn"),
		CheckOut:  v.Get("checkOut"),
		Guests:    v.Get("guests"),
		SortOrder: "asc",
		Page:      defaultPage,
		Limit:     defaultLimit,
	}
	if q.Location == "" {
		return q, fmt.Errorf("%w: location is required", domain.ErrInvalidQuery)
	}

	var err error
	if q.MinPrice, err = floatParam(v, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = floatParam(v, "maxPrice"); err != nil {
		return q, err
	}
	if q.MinRating, err = floatParam(v, "minRating"); err != nil {
		return q, err
	}

	if raw := v.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Amenities = append(q.Amenities, a)
			}
		}
	}

	if sb := v.Get("sortBy"); sb != "" {
		if !domain.SortableFields[sb] {
			return q, fmt.Errorf("%w: unknown sortBy field %q", domain.ErrInvalidQuery, sb)
		}
		q.SortBy = sb
	}
	switch so := v.Get("sortOrder"); so {
	case "", "asc":
	case "desc":
		q.SortOrder = "desc"
	default:
		return q, fmt.Errorf("%w: sortOrder must be asc or desc", domain.ErrInvalidQuery)
	}

	if ps := v.Get("page"); ps != "" {
		p, err := strconv.Atoi(ps)
		if err != nil || p < 1 {
			return q, fmt.Errorf("%w: page must be an integer >= 1", domain.ErrInvalidQuery)
		}
		q.Page = p
	}
	if ls := v.Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l < 1 || l > maxLimit {
			return q, fmt.Errorf("%w: limit must be an integer between 1 and %d", domain.ErrInvalidQuery, maxLimit)
		}
		q.Limit = l
	}

	return q, nil
}

func floatParam(v url.Values, name string) (*float64, error) {
	s := v.Get(name)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidQuery, name)
	}
	return &f, nil
}
