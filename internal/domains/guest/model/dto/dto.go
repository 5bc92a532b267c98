package dto

import (
	"stayeasy/internal/domains/guest/model"
	"stayeasy/shared"
	gDto "stayeasy/shared/dto"
	gModel "stayeasy/shared/model"
	"stayeasy/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	Surname   string `json:"surname"    validate:"required,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
	Document  string `json:"document"   validate:"required,max=50"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		Surname:   c.Surname,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	Surname   string `db:"surname"    json:"surname"    validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Document  string `db:"document"   json:"document"   validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.Surname = model.Surname
	r.Email = model.Email
	r.Phone = model.Phone
	r.Document = model.Document
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
