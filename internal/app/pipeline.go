package app

import (
	"sort"
	"strings"

	"stayscout/internal/domain"
)

// runQuery applies the fixed filter -> sort -> paginate pipeline. Order
// matters: total and the pagination metadata are computed on the filtered
// set, not on the raw upstream list. The input slice is never mutated.
func runQuery(hotels []domain.Hotel, q domain.SearchQuery) domain.SearchPage {
	filtered := filterHotels(hotels, q)
	if q.SortBy != "" {
		sortHotels(filtered, q.SortBy, q.SortOrder == "desc")
	}
	return paginate(filtered, q.Page, q.Limit)
}

func filterHotels(hotels []domain.Hotel, q domain.SearchQuery) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if q.MinPrice != nil && h.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && h.Price > *q.MaxPrice {
			continue
		}
		if q.MinRating != nil && h.Rating < *q.MinRating {
			continue
		}
		if len(q.Amenities) > 0 && !hasAmenities(h.Amenities, q.Amenities) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// hasAmenities: every required term must case-insensitively substring-match
// at least one of the record's amenities (AND across terms, OR within the
// record's list).
func hasAmenities(have, required []string) bool {
	for _, req := range required {
		req = strings.ToLower(strings.TrimSpace(req))
		if req == "" {
			continue
		}
		found := false
		for _, a := range have {
			if strings.Contains(strings.ToLower(a), req) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortHotels orders in place by one of domain.SortableFields. Strings
// compare case-insensitively; the stable sort keeps equal keys in their
// upstream order so repeated queries page deterministically.
func sortHotels(hotels []domain.Hotel, field string, desc bool) {
	less := lessFunc(hotels, field)
	if less == nil {
		return
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(hotels, less)
}

func lessFunc(hs []domain.Hotel, field string) func(i, j int) bool {
	switch field {
	case "name":
		return func(i, j int) bool { return lessFold(hs[i].Name, hs[j].Name) }
	case "location":
		return func(i, j int) bool { return lessFold(hs[i].Location, hs[j].Location) }
	case "price":
		return func(i, j int) bool { return hs[i].Price < hs[j].Price }
	case "rating":
		return func(i, j int) bool { return hs[i].Rating < hs[j].Rating }
	case "reviews":
		return func(i, j int) bool { return hs[i].Reviews < hs[j].Reviews }
	}
	return nil
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// paginate slices [start, start+limit) out of the filtered list. Callers
// guarantee page >= 1 and limit >= 1.
func paginate(hotels []domain.Hotel, page, limit int) domain.SearchPage {
	total := len(hotels)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return domain.SearchPage{
		Hotels:     hotels[start:end],
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		HasMore:    end < total,
	}
}
