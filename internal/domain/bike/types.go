package bike

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusRented    Status = "RENTED"
	StatusReserved  Status = "RESERVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusReserved:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeMountain Type = "MOUNTAIN"
	TypeRoad     Type = "ROAD"
	TypeCity     Type = "CITY"
	TypeElectric Type = "ELECTRIC"
)

func (t Type) String() string {
	return string(t)
}
