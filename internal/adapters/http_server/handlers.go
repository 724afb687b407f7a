package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stayscout/internal/app"
	"stayscout/internal/domain"
)

type Handlers struct {
	Search  *app.SearchService
	Convert *app.ConvertService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/health", h.health)
	s.mux.Get("/search-hotels", h.searchHotels)
	s.mux.Get("/convert-currency", h.convertCurrency)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", reason(err))
		return
	}

	page, err := h.Search.Search(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrMissingConfig) {
			log.Error().Msg("hotel search requested without upstream API credential")
			writeProblem(w, http.StatusInternalServerError, "Configuration Error", "server configuration error - API key missing")
			return
		}
		// Upstream detail stays in the log; the client gets a fixed message.
		log.Error().Err(err).Str("location", q.Location).Msg("hotel search failed")
		writeProblem(w, http.StatusInternalServerError, "Search Failed", "failed to fetch hotels, please try again later")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) convertCurrency(w http.ResponseWriter, r *http.Request) {
	qp := r.URL.Query()
	amountStr := strings.TrimSpace(qp.Get("amount"))
	from := strings.ToUpper(strings.TrimSpace(qp.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(qp.Get("to")))

	if amountStr == "" || from == "" || to == "" {
		err := fmt.Errorf("%w: amount, from currency, and to currency are required", domain.ErrMissingParam)
		writeProblem(w, http.StatusBadRequest, "Missing Parameter", reason(err))
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Amount", "amount must be a positive number")
		return
	}

	conv, err := h.Convert.Convert(r.Context(), amount, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCurrency):
			writeProblem(w, http.StatusBadRequest, "Invalid Currency", reason(err))
		case errors.Is(err, domain.ErrInvalidAmount):
			writeProblem(w, http.StatusBadRequest, "Invalid Amount", reason(err))
		default:
			log.Error().Err(err).Str("from", from).Str("to", to).Msg("currency conversion failed")
			writeProblem(w, http.StatusInternalServerError, "Conversion Failed", "failed to convert currency")
		}
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// reason trims the wrapped error down to a client-safe detail string.
func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
