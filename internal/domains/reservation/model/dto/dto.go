package dto

import (
	"time"

	"stayeasy/internal/domains/reservation/model"
	"stayeasy/shared"
	"stayeasy/shared/constant"
	gDto "stayeasy/shared/dto"
	gModel "stayeasy/shared/model"
	"stayeasy/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID   string  `json:"guest_id"   validate:"required,uuid4"`
	RoomID    string  `json:"room_id"    validate:"required,uuid4"`
	CheckIn   string  `json:"check_in"   validate:"required,date"`
	CheckOut  string  `json:"check_out"  validate:"required,date"`
	Adults    int     `json:"adults"     validate:"required,gte=1"`
	TotalRate float64 `json:"total_rate" validate:"omitempty,gte=0"`

	// IdempotencyKey comes from the Idempotency-Key header, not the body.
	IdempotencyKey string `json:"-"`
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	checkIn, err := time.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Reservation{}, err
	}

	checkOut, err := time.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	var idempotencyKey *string
	if c.IdempotencyKey != "" {
		idempotencyKey = &c.IdempotencyKey
	}

	return model.Reservation{
		ID:             uuid.NewString(),
		GuestID:        c.GuestID,
		RoomID:         c.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Adults:         c.Adults,
		TotalRate:      c.TotalRate,
		Status:         model.StatusConfirmed,
		IdempotencyKey: idempotencyKey,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ModifyReservationRequest struct {
	GuestID   string   `json:"guest_id"   validate:"omitempty,uuid4"`
	RoomID    string   `json:"room_id"    validate:"omitempty,uuid4"`
	CheckIn   string   `json:"check_in"   validate:"omitempty,date"`
	CheckOut  string   `json:"check_out"  validate:"omitempty,date"`
	Adults    int      `db:"adults"       json:"adults"     validate:"omitempty,gte=1"`
	TotalRate *float64 `json:"total_rate" validate:"omitempty"`
}

// Stay resolves the requested interval against the stored one, so a request
// may move just one endpoint of the stay.
func (m *ModifyReservationRequest) Stay(current model.Reservation) (start, end time.Time, err error) {
	start = current.CheckIn
	end = current.CheckOut

	if m.CheckIn != "" {
		start, err = time.Parse(constant.DateFormat, m.CheckIn)
		if err != nil {
			return start, end, err
		}
	}

	if m.CheckOut != "" {
		end, err = time.Parse(constant.DateFormat, m.CheckOut)
		if err != nil {
			return start, end, err
		}
	}

	return start, end, nil
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	GuestID      string  `json:"guest_id"`
	GuestName    string  `json:"guest_name"`
	GuestSurname string  `json:"guest_surname"`
	RoomID       string  `json:"room_id"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	Adults       int     `json:"adults"`
	TotalRate    float64 `json:"total_rate"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestSurname = model.GuestSurname
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateFormat)
	r.Nights = model.Nights()
	r.Adults = model.Adults
	r.TotalRate = model.TotalRate
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type SearchReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *SearchReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ParseID reports whether the search query is a reservation id.
func ParseID(query string) (string, bool) {
	id, err := uuid.Parse(query)
	if err != nil {
		return "", false
	}

	return id.String(), true
}
