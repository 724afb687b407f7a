package app

import (
	"fmt"
	"strconv"
	"strings"

	"stayscout/internal/domain"
)

/********** alias registry (single source of truth) **********/

// Upstream responses are not uniform: the same logical field shows up under
// several names depending on the listing source. First match wins.
var hotelAliases = map[string][]string{
	"id":          {"id", "hotel_id", "key", "listing_id"},
	"name":        {"name", "hotel_name", "title"},
	"location":    {"location", "address", "city", "address.full", "location.name"},
	"price":       {"price", "min_price", "max_price", "price_ranges.minimum"},
	"image":       {"image", "image_url", "photo", "thumbnail"},
	"rating":      {"rating", "star_rating", "review_score", "review_summary.rating"},
	"reviews":     {"reviews", "review_count", "review_summary.count"},
	"description": {"description", "summary", "snippet"},
}

// Placeholder values used when upstream omits a field entirely.
const (
	placeholderName        = "Hotel Name Not Available"
	placeholderDescription = "No description available"
	placeholderImage       = "https://via.placeholder.com/250x150"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstString: first non-empty string for a named alias set. Numeric ids
// are accepted too since some sources send them unquoted.
func firstString(m map[string]any, key string) string {
	for _, p := range hotelAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// firstFloat: number from the alias set (float64/int/string like "8,0").
func firstFloat(m map[string]any, key string) (float64, bool) {
	for _, p := range hotelAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// stringSlice: accept []any holding strings or {name/url} objects.
func stringSlice(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
					continue
				}
				if u, ok := t["url"].(string); ok && u != "" {
					out = append(out, u)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// coords accepts {lat,lng}, {lat,lon}, {latitude,longitude} objects or a
// two-element [lat, lon] array; anything else means "no coordinates".
func coords(m map[string]any) *domain.Coords {
	switch v := lookupAny(m, "coordinates").(type) {
	case map[string]any:
		lat, okLat := asFloat(firstOf(v, "lat", "latitude"))
		lon, okLon := asFloat(firstOf(v, "lon", "lng", "longitude"))
		if okLat && okLon {
			return &domain.Coords{Lat: lat, Lon: lon}
		}
	case []any:
		if len(v) == 2 {
			lat, okLat := asFloat(v[0])
			lon, okLon := asFloat(v[1])
			if okLat && okLon {
				return &domain.Coords{Lat: lat, Lon: lon}
			}
		}
	}
	return nil
}

func firstOf(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

/********** hotel normalizer **********/

// normalizeHotel maps one raw upstream record into the canonical Hotel
// shape. idx is the record's position in the upstream response and seeds
// the fallback id, so ids are deterministic within a single response but
// NOT stable across searches — never use them as a persistence key.
// fallbackLocation (the query's location) fills in when the record carries
// no address of its own. Ratings are trusted as-is, including values
// outside 0..5.
func normalizeHotel(raw map[string]any, idx int, fallbackLocation string) domain.Hotel {
	h := domain.Hotel{
		ID:          firstString(raw, "id"),
		Name:        firstString(raw, "name"),
		Location:    firstString(raw, "location"),
		Image:       firstString(raw, "image"),
		Description: firstString(raw, "description"),
		Amenities:   stringSlice(raw, "amenities", "facilities"),
		Coordinates: coords(raw),
	}
	if h.ID == "" {
		h.ID = fmt.Sprintf("hx-%d", idx+1)
	}
	if h.Name == "" {
		h.Name = placeholderName
	}
	if h.Location == "" {
		h.Location = fallbackLocation
	}
	if h.Image == "" {
		h.Image = placeholderImage
	}
	if h.Description == "" {
		h.Description = placeholderDescription
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}
	if p, ok := firstFloat(raw, "price"); ok && p >= 0 {
		h.Price = p
	}
	if r, ok := firstFloat(raw, "rating"); ok {
		h.Rating = r
	}
	if n, ok := firstFloat(raw, "reviews"); ok && n > 0 {
		h.Reviews = int(n)
	}
	return h
}

// normalizeHotels maps a whole upstream payload in order.
func normalizeHotels(raw []map[string]any, fallbackLocation string) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for i, r := range raw {
		out = append(out, normalizeHotel(r, i, fallbackLocation))
	}
	return out
}
