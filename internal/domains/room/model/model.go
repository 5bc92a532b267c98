package model

import "stayeasy/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "room_number"
	FieldTypeID = "room_type_id"
	FieldStatus = "status"
	FieldNote   = "note"

	TypeTableName  = "room_types"
	TypeEntityName = "room_type"
)

// HousekeepingStatus is the physical state of a room. CLEAN rooms are
// sellable; OCCUPIED is owned by the reservation lifecycle and must not be
// set through the manual override.
type HousekeepingStatus string

const (
	StatusClean       HousekeepingStatus = "CLEAN"
	StatusDirty       HousekeepingStatus = "DIRTY"
	StatusMaintenance HousekeepingStatus = "MAINTENANCE"
	StatusOccupied    HousekeepingStatus = "OCCUPIED"
)

func (s HousekeepingStatus) Valid() bool {
	switch s {
	case StatusClean, StatusDirty, StatusMaintenance, StatusOccupied:
		return true
	default:
		return false
	}
}

type Room struct {
	ID       string             `db:"id"`
	Number   int                `db:"room_number"`
	TypeID   string             `db:"room_type_id"`
	Status   HousekeepingStatus `db:"status"`
	Note     *string            `db:"note"`
	TypeName string             `db:"type_name" table:"room_types" column:"name"`
	Capacity int                `db:"capacity" table:"room_types" column:"capacity"`
	BaseRate float64            `db:"base_rate" table:"room_types" column:"base_rate"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}

type RoomType struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Capacity int     `db:"capacity"`
	BaseRate float64 `db:"base_rate"`
	model.Metadata
}
