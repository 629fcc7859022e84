package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/pkg/errs"
)

// FxClient fetches EUR-based exchange rates from the external rate provider.
type FxClient struct {
	baseURL string
	http    *http.Client
}

func NewFxClient(cfg config.FXConfig) *FxClient {
	return &FxClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    newHTTPClient(cfg.Timeout),
	}
}

func (c *FxClient) LatestRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest/EUR", nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build fx request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fx rate fetch failed"), errs.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.New("fx provider returned "+resp.Status), errs.ErrNetwork)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fx provider returned an unreadable body"), errs.ErrNetwork)
	}
	if payload.Rates == nil {
		return nil, errs.Mark(errs.New("fx provider returned no rates"), errs.ErrNetwork)
	}
	return payload.Rates, nil
}
