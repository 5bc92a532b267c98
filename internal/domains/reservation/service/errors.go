package service

import "stayeasy/shared/failure"

// Lifecycle outcomes callers are expected to branch on. All of them carry an
// HTTP status code through shared/failure.
var (
	ErrReservationNotFound = failure.NotFound("reservation not found")
	ErrRoomNotFound        = failure.NotFound("room not found")
	ErrGuestNotFound       = failure.NotFound("guest not found")

	ErrDatesUnavailable  = failure.Conflict("room is not available for the requested dates")
	ErrInvalidTransition = failure.Conflict("reservation status does not allow this operation")
	ErrDuplicateRequest  = failure.Conflict("a reservation for this request already exists")

	ErrInvalidStay  = failure.BadRequestFromString("check-out must be after check-in")
	ErrNegativeRate = failure.BadRequestFromString("total rate cannot be negative")
)
