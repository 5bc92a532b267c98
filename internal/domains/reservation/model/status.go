package model

// Status is the reservation lifecycle state. Every state change must go
// through CanTransitionTo; rows are never written with a free-form status.
type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Active reports whether the reservation still holds its room nights.
// Only active reservations participate in overlap decisions.
func (s Status) Active() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}
