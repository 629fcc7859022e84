package rental

type RentResult string

const (
	RentResultRented     RentResult = "RENTED"
	RentResultWaitlisted RentResult = "WAITLISTED"
)

// RentOutcome is the backend's answer to a create-rental call: either a
// rental was opened immediately, or the customer was queued on the bike's
// waitlist.
type RentOutcome struct {
	Result          RentResult
	RentalID        int64
	WaitlistEntryID int64
	Message         string
}

func (o RentOutcome) Rented() bool {
	return o.Result == RentResultRented && o.RentalID != 0
}

func (o RentOutcome) Waitlisted() bool {
	return o.Result == RentResultWaitlisted
}
