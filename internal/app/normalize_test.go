package app

import "testing"

func TestNormalizeHotel_AliasFallbacks(t *testing.T) {
	raw := map[string]any{
		"hotel_id":     "xo-991",
		"hotel_name":   "Grand Plaza",
		"address":      "12 Main St",
		"min_price":    float64(129),
		"image_url":    "https://img.example/1.jpg",
		"star_rating":  4.5,
		"review_count": float64(321),
		"facilities":   []any{"Pool", "Free WiFi"},
	}

	h := normalizeHotel(raw, 0, "Lisbon")
	if h.ID != "xo-991" || h.Name != "Grand Plaza" || h.Location != "12 Main St" {
		t.Fatalf("unexpected identity fields: %+v", h)
	}
	if h.Price != 129 || h.Rating != 4.5 || h.Reviews != 321 {
		t.Fatalf("unexpected numeric fields: %+v", h)
	}
	if h.Image != "https://img.example/1.jpg" {
		t.Fatalf("image = %q", h.Image)
	}
	if len(h.Amenities) != 2 || h.Amenities[0] != "Pool" {
		t.Fatalf("amenities = %v", h.Amenities)
	}
}

func TestNormalizeHotel_PrimaryAliasWins(t *testing.T) {
	raw := map[string]any{
		"price":     float64(80),
		"min_price": float64(60),
		"max_price": float64(120),
	}
	if h := normalizeHotel(raw, 0, "x"); h.Price != 80 {
		t.Fatalf("price = %v, want primary alias 80", h.Price)
	}
}

func TestNormalizeHotel_DefaultsForEmptyRecord(t *testing.T) {
	h := normalizeHotel(map[string]any{}, 4, "Osaka")

	if h.ID != "hx-5" {
		t.Fatalf("fallback id = %q, want hx-5", h.ID)
	}
	if h.Name != placeholderName || h.Description != placeholderDescription || h.Image != placeholderImage {
		t.Fatalf("placeholders missing: %+v", h)
	}
	if h.Location != "Osaka" {
		t.Fatalf("location = %q, want query fallback", h.Location)
	}
	if h.Price != 0 || h.Rating != 0 || h.Reviews != 0 {
		t.Fatalf("numeric defaults: %+v", h)
	}
	if h.Amenities == nil || len(h.Amenities) != 0 {
		t.Fatalf("amenities should be empty, non-nil: %v", h.Amenities)
	}
	if h.Coordinates != nil {
		t.Fatalf("coordinates should be absent: %+v", h.Coordinates)
	}
}

func TestNormalizeHotels_FallbackIDsAreDeterministicPerResponse(t *testing.T) {
	raw := []map[string]any{{}, {"name": "B"}, {}}
	first := normalizeHotels(raw, "x")
	second := normalizeHotels(raw, "x")
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("id %d differs across runs: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID == first[2].ID {
		t.Fatalf("ids must be unique within a response: %s", first[0].ID)
	}
}

func TestNormalizeHotel_NumericID(t *testing.T) {
	if h := normalizeHotel(map[string]any{"id": float64(12345)}, 0, "x"); h.ID != "12345" {
		t.Fatalf("id = %q, want 12345", h.ID)
	}
}

func TestNormalizeHotel_StringNumbersCoerce(t *testing.T) {
	raw := map[string]any{"price": "149.50", "rating": "4,2"}
	h := normalizeHotel(raw, 0, "x")
	if h.Price != 149.50 {
		t.Fatalf("price = %v", h.Price)
	}
	if h.Rating != 4.2 {
		t.Fatalf("rating = %v", h.Rating)
	}
}

func TestNormalizeHotel_OutOfRangeRatingPassesThrough(t *testing.T) {
	// Upstream values are trusted as-is; no clamping to 0..5.
	if h := normalizeHotel(map[string]any{"rating": 9.6}, 0, "x"); h.Rating != 9.6 {
		t.Fatalf("rating = %v, want 9.6 untouched", h.Rating)
	}
	if h := normalizeHotel(map[string]any{"rating": -1.0}, 0, "x"); h.Rating != -1.0 {
		t.Fatalf("rating = %v, want -1 untouched", h.Rating)
	}
}

func TestNormalizeHotel_CoordinateShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
	}{
		{"lat/lng object", map[string]any{"coordinates": map[string]any{"lat": 48.85, "lng": 2.35}}},
		{"latitude/longitude object", map[string]any{"coordinates": map[string]any{"latitude": 48.85, "longitude": 2.35}}},
		{"array", map[string]any{"coordinates": []any{48.85, 2.35}}},
	}
	for _, tc := range cases {
		h := normalizeHotel(tc.raw, 0, "x")
		if h.Coordinates == nil || h.Coordinates.Lat != 48.85 || h.Coordinates.Lon != 2.35 {
			t.Fatalf("%s: coordinates = %+v", tc.name, h.Coordinates)
		}
	}

	if h := normalizeHotel(map[string]any{"coordinates": "48.85,2.35"}, 0, "x"); h.Coordinates != nil {
		t.Fatalf("unparseable coordinates should be nil, got %+v", h.Coordinates)
	}
}

func TestNormalizeHotel_NestedAliasPaths(t *testing.T) {
	raw := map[string]any{
		"review_summary": map[string]any{"rating": 4.1, "count": float64(77)},
		"location":       map[string]any{"name": "Old Town"},
	}
	h := normalizeHotel(raw, 0, "x")
	if h.Rating != 4.1 || h.Reviews != 77 {
		t.Fatalf("nested numbers: %+v", h)
	}
	if h.Location != "Old Town" {
		t.Fatalf("nested location = %q", h.Location)
	}
}
