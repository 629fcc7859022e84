package response

import (
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/rental"

	"github.com/jinzhu/copier"
)

type BikeResponse struct {
	ID           int64   `json:"id"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	DailyRateEur float64 `json:"dailyRateEur"`
	Status       string  `json:"status"`
}

type ReturnNoteResponse struct {
	ID        int64     `json:"id"`
	BikeID    int64     `json:"bikeId"`
	Condition string    `json:"condition"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBike(b bike.Bike) *BikeResponse {
	return &BikeResponse{
		ID:           b.ID,
		Description:  b.Description,
		Type:         string(b.Type),
		DailyRateEur: b.DailyRateEur,
		Status:       string(b.Status),
	}
}

func FromBikes(bikes []bike.Bike) []BikeResponse {
	resp := make([]BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		resp = append(resp, *FromBike(b))
	}
	return resp
}

func FromReturnNotes(notes []rental.ReturnNote) []ReturnNoteResponse {
	resp := make([]ReturnNoteResponse, 0, len(notes))
	_ = copier.Copy(&resp, &notes)
	return resp
}
