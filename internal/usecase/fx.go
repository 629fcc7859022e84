package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"eiffel-bike-client/internal/pkg/errs"
)

const baseCurrency = "EUR"

// FxService caches the EUR-based rate table and tracks the display currency.
// Conversion is presentation only: every stored or transmitted amount stays
// in EUR.
type FxService struct {
	mu       sync.RWMutex
	gateway  FxGateway
	rates    map[string]float64
	selected string
}

func NewFxService(gateway FxGateway) *FxService {
	return &FxService{
		gateway: gateway,
		// EUR is always present so the currency list is never empty while
		// the first fetch is in flight.
		rates:    map[string]float64{baseCurrency: 1},
		selected: baseCurrency,
	}
}

func (s *FxService) Refresh(ctx context.Context) error {
	rates, err := s.gateway.LatestRates(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to refresh fx rates")
	}
	rates[baseCurrency] = 1

	s.mu.Lock()
	s.rates = rates
	s.mu.Unlock()
	return nil
}

func (s *FxService) Currencies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	currencies := make([]string, 0, len(s.rates))
	for c := range s.rates {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	return currencies
}

func (s *FxService) SelectCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rates[currency]; !ok {
		return errs.Mark(errs.New("unknown currency "+currency), errs.ErrValidation)
	}
	s.selected = currency
	return nil
}

func (s *FxService) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Convert renders an EUR amount in the selected display currency. An unknown
// rate falls back to 1 rather than hiding the amount.
func (s *FxService) Convert(amountEur float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.rates[s.selected]
	if !ok {
		rate = 1
	}
	return amountEur * rate
}
