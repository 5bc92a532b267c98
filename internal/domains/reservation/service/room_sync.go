package service

import (
	"context"
	"fmt"

	roomModel "stayeasy/internal/domains/room/model"
	roomRepo "stayeasy/internal/domains/room/repository"

	"github.com/jmoiron/sqlx"
)

// RoomSync couples the room's housekeeping status to the reservation
// lifecycle. It only ever runs inside the lifecycle transaction so the
// reservation and room rows change together or not at all.
type RoomSync interface {
	OnCheckIn(ctx context.Context, tx *sqlx.Tx, roomID, user string) error
	OnCheckOut(ctx context.Context, tx *sqlx.Tx, roomID, user string) error
}

type roomSyncImpl struct {
	roomRepo roomRepo.Room
}

func NewRoomSync(roomRepo roomRepo.Room) RoomSync {
	return &roomSyncImpl{roomRepo: roomRepo}
}

func (r *roomSyncImpl) OnCheckIn(ctx context.Context, tx *sqlx.Tx, roomID, user string) error {
	return r.setStatus(ctx, tx, roomID, roomModel.StatusOccupied, user)
}

// OnCheckOut marks the room dirty; housekeeping flips it back to clean
// through the manual override.
func (r *roomSyncImpl) OnCheckOut(ctx context.Context, tx *sqlx.Tx, roomID, user string) error {
	return r.setStatus(ctx, tx, roomID, roomModel.StatusDirty, user)
}

func (r *roomSyncImpl) setStatus(ctx context.Context, tx *sqlx.Tx, roomID string, status roomModel.HousekeepingStatus, user string) error {
	room, err := r.roomRepo.LockTx(ctx, tx, roomID)
	if err != nil {
		return fmt.Errorf("failed to lock room for status sync: %w", err)
	}

	if room.ID == "" {
		return ErrRoomNotFound
	}

	if err := r.roomRepo.UpdateStatusTx(ctx, tx, roomID, status, user); err != nil {
		return fmt.Errorf("failed to sync room status: %w", err)
	}

	return nil
}
