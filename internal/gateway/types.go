package gateway

import "time"

// Wire-level snapshots of what the REST backend returns. Field names follow
// the backend's JSON contract; converters turn them into domain types.

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

type providerRef struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type bikeSnapshot struct {
	ID                 int64       `json:"id"`
	Description        string      `json:"description"`
	Type               string      `json:"type"`
	Status             string      `json:"status"`
	OfferedBy          providerRef `json:"offeredBy"`
	RentalDailyRateEur float64     `json:"rentalDailyRateEur"`
}

type rentalSnapshot struct {
	ID             int64      `json:"id"`
	BikeID         int64      `json:"bikeId"`
	CustomerID     string     `json:"customerId"`
	Status         string     `json:"status"`
	StartAt        time.Time  `json:"startAt"`
	EndAt          *time.Time `json:"endAt"`
	TotalAmountEur float64    `json:"totalAmountEur"`
}

type rentOutcomeSnapshot struct {
	Result             string `json:"result"`
	RentalID           *int64 `json:"rentalId"`
	WaitingListEntryID *int64 `json:"waitingListEntryId"`
	Message            string `json:"message"`
}

type waitlistEntrySnapshot struct {
	ID         int64      `json:"id"`
	CustomerID string     `json:"customerId"`
	BikeID     int64      `json:"bikeId"`
	CreatedAt  time.Time  `json:"createdAt"`
	ServedAt   *time.Time `json:"servedAt"`
}

type notificationSnapshot struct {
	ID         int64     `json:"id"`
	CustomerID string    `json:"customerId"`
	BikeID     int64     `json:"bikeId"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sentAt"`
}

type returnNoteSnapshot struct {
	ID        int64     `json:"id"`
	BikeID    int64     `json:"bikeId"`
	Condition string    `json:"condition"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type saleOfferSnapshot struct {
	ID             int64     `json:"id"`
	BikeID         int64     `json:"bikeId"`
	SellerCorpID   string    `json:"sellerCorpId"`
	AskingPriceEur float64   `json:"askingPriceEur"`
	Status         string    `json:"status"`
	ListedAt       time.Time `json:"listedAt"`
}

type basketItemSnapshot struct {
	ID        int64 `json:"id"`
	SaleOffer struct {
		ID             int64   `json:"id"`
		BikeID         int64   `json:"bikeId"`
		Description    string  `json:"description"`
		AskingPriceEur float64 `json:"askingPriceEur"`
	} `json:"saleOffer"`
	UnitPriceEurSnapshot float64 `json:"unitPriceEurSnapshot"`
}

type basketSnapshot struct {
	Items []basketItemSnapshot `json:"items"`
}

type purchaseSnapshot struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	TotalEur     float64   `json:"totalEur"`
	CheckedOutAt time.Time `json:"checkedOutAt"`
}

type serverError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e serverError) text() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	default:
		return e.Error.Message
	}
}
