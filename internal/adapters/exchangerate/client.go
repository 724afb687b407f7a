package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stayscout/internal/adapters/observability"
	"stayscout/internal/domain"
)

// Client fetches latest exchange-rate tables. Deliberately single-shot: a
// failed fetch surfaces immediately as an upstream error, and recovery is
// left to the browser-side fallback table.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Latest returns the rate table anchored to base (rates[code] = units of
// code per 1 base).
func (c *Client) Latest(ctx context.Context, base string) (domain.RateTable, error) {
	u := fmt.Sprintf("%s/v4/latest/%s", c.base, strings.ToUpper(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("exchangerate", "latest", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("exchangerate", "latest", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn().Int("status", resp.StatusCode).Str("body", strings.TrimSpace(string(b))).
			Msg("exchange rate fetch failed")
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrUpstream, err)
	}
	if len(out.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table for %s", domain.ErrUpstream, base)
	}
	return domain.RateTable(out.Rates), nil
}
