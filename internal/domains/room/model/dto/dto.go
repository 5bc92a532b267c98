package dto

import (
	"stayeasy/internal/domains/room/model"
	"stayeasy/shared"
	gDto "stayeasy/shared/dto"
	gModel "stayeasy/shared/model"
	"stayeasy/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number int     `json:"room_number"  validate:"required,gte=1"`
	TypeID string  `json:"room_type_id" validate:"required,uuid4"`
	Status string  `json:"status"       validate:"omitempty,oneof=CLEAN DIRTY MAINTENANCE"`
	Note   *string `json:"note"         validate:"omitempty,max=255"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusClean
	if c.Status != "" {
		status = model.HousekeepingStatus(c.Status)
	}

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		TypeID: c.TypeID,
		Status: status,
		Note:   c.Note,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number int     `db:"room_number"  json:"room_number"  validate:"omitempty,gte=1"`
	TypeID string  `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid4"`
	Note   *string `db:"note"         json:"note"         validate:"omitempty,max=255"`
}

// UpdateRoomStatusRequest is the manual housekeeping override. OCCUPIED is
// excluded on purpose; only check-in may set it.
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CLEAN DIRTY MAINTENANCE"`
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Number   int     `json:"room_number"`
	TypeID   string  `json:"room_type_id"`
	TypeName string  `json:"room_type"`
	Capacity int     `json:"capacity"`
	BaseRate float64 `json:"base_rate"`
	Status   string  `json:"status"`
	Note     *string `json:"note,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.TypeID = model.TypeID
	r.TypeName = model.TypeName
	r.Capacity = model.Capacity
	r.BaseRate = model.BaseRate
	r.Status = string(model.Status)
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomTypeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	BaseRate float64 `json:"base_rate"`
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i] = RoomTypeResponse{
			ID:       mod.ID,
			Name:     mod.Name,
			Capacity: mod.Capacity,
			BaseRate: mod.BaseRate,
		}
	}
}
