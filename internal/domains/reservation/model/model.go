package model

import (
	"time"

	"stayeasy/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldAdults         = "adults"
	FieldTotalRate      = "total_rate"
	FieldStatus         = "status"
	FieldIdempotencyKey = "idempotency_key"

	GuestTableName    = "guests"
	FieldGuestSurname = "surname"
)

type Reservation struct {
	ID             string    `db:"id"`
	GuestID        string    `db:"guest_id"`
	RoomID         string    `db:"room_id"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	Adults         int       `db:"adults"`
	TotalRate      float64   `db:"total_rate"`
	Status         Status    `db:"status"`
	IdempotencyKey *string   `db:"idempotency_key"`
	GuestName      string    `db:"guest_name" table:"guests" column:"first_name"`
	GuestSurname   string    `db:"guest_surname" table:"guests" column:"surname"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN guests ON guests.id = reservations.guest_id"
}

// Nights returns the number of room nights the stay occupies.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether the stay intersects [start, end) on the half-open
// interval convention: a check-out day is free for the next check-in.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.CheckIn.Before(end) && start.Before(r.CheckOut)
}
