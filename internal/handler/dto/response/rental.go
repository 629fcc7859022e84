package response

import (
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BikeViewResponse struct {
	ID               int64   `json:"id"`
	Description      string  `json:"description"`
	Type             string  `json:"type"`
	DailyRateEur     float64 `json:"dailyRateEur"`
	Status           string  `json:"status"`
	IsRentedByMe     bool    `json:"isRentedByMe"`
	IsReservedForMe  bool    `json:"isReservedForMe"`
	ReservedRentalID int64   `json:"reservedRentalId,omitempty"`
}

type RentalResponse struct {
	ID             int64      `json:"id"`
	BikeID         int64      `json:"bikeId"`
	CustomerID     uuid.UUID  `json:"customerId"`
	Status         string     `json:"status"`
	StartAt        time.Time  `json:"startAt"`
	EndAt          *time.Time `json:"endAt,omitempty"`
	TotalAmountEur float64    `json:"totalAmountEur"`
}

type NotificationResponse struct {
	ID      int64     `json:"id"`
	BikeID  int64     `json:"bikeId"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

type WaitlistEntryResponse struct {
	ID        int64      `json:"id"`
	BikeID    int64      `json:"bikeId"`
	CreatedAt time.Time  `json:"createdAt"`
	ServedAt  *time.Time `json:"servedAt,omitempty"`
}

type DashboardResponse struct {
	Bikes         []BikeViewResponse     `json:"bikes"`
	ActiveRentals []RentalResponse       `json:"activeRentals"`
	Notifications []NotificationResponse `json:"notifications"`
}

type RentStepResponse struct {
	Stage     string            `json:"stage"`
	Bike      *BikeViewResponse `json:"bike,omitempty"`
	RentalID  int64             `json:"rentalId,omitempty"`
	AmountEur float64           `json:"amountEur,omitempty"`
	Days      int               `json:"days,omitempty"`
	Message   string            `json:"message,omitempty"`
}

func FromBikeView(v bike.View) BikeViewResponse {
	return BikeViewResponse{
		ID:               v.ID,
		Description:      v.Description,
		Type:             string(v.Type),
		DailyRateEur:     v.DailyRateEur,
		Status:           string(v.Status),
		IsRentedByMe:     v.IsRentedByMe,
		IsReservedForMe:  v.IsReservedForMe,
		ReservedRentalID: v.ReservedRentalID,
	}
}

func FromDashboard(view *usecase.DashboardView) *DashboardResponse {
	resp := &DashboardResponse{
		Bikes:         make([]BikeViewResponse, 0, len(view.Bikes)),
		ActiveRentals: make([]RentalResponse, 0, len(view.ActiveRentals)),
		Notifications: make([]NotificationResponse, 0, len(view.Notifications)),
	}
	for _, v := range view.Bikes {
		resp.Bikes = append(resp.Bikes, FromBikeView(v))
	}
	_ = copier.Copy(&resp.ActiveRentals, &view.ActiveRentals)
	_ = copier.Copy(&resp.Notifications, &view.Notifications)
	return resp
}

func FromRentStep(step *usecase.RentStep) *RentStepResponse {
	resp := &RentStepResponse{
		Stage:     string(step.Stage),
		RentalID:  step.RentalID,
		AmountEur: step.AmountEur,
		Days:      step.Days,
		Message:   step.Message,
	}
	if step.Bike != nil {
		b := FromBikeView(*step.Bike)
		resp.Bike = &b
	}
	return resp
}

func FromWaitlist(entries []rental.WaitlistEntry) []WaitlistEntryResponse {
	resp := make([]WaitlistEntryResponse, 0, len(entries))
	_ = copier.Copy(&resp, &entries)
	return resp
}
