package response

import (
	"time"

	"eiffel-bike-client/internal/usecase"
)

type AlertResponse struct {
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	At       time.Time `json:"at"`
}

type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
	Selected   string   `json:"selected"`
}

func FromAlert(alert *usecase.Alert) *AlertResponse {
	if alert == nil {
		return nil
	}
	return &AlertResponse{
		Message:  alert.Message,
		Severity: string(alert.Severity),
		At:       alert.At,
	}
}
