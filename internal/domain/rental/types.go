package rental

import "errors"

var ErrInvalidCondition = errors.New("invalid return condition")

type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusActive   Status = "ACTIVE"
	StatusReturned Status = "RETURNED"
)

func (s Status) String() string {
	return string(s)
}

// Condition tags the state a bike comes back in; it is required on return.
type Condition string

const (
	ConditionGood    Condition = "GOOD"
	ConditionWorn    Condition = "WORN"
	ConditionDamaged Condition = "DAMAGED"
)

func (c Condition) String() string {
	return string(c)
}

func NewCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionGood, ConditionWorn, ConditionDamaged:
		return Condition(s), nil
	default:
		return "", ErrInvalidCondition
	}
}
