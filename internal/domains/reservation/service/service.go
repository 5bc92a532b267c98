package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayeasy/config"
	"stayeasy/infras/kafka"
	"stayeasy/infras/otel"
	guestModel "stayeasy/internal/domains/guest/model"
	guestRepo "stayeasy/internal/domains/guest/repository"
	"stayeasy/internal/domains/reservation/model"
	"stayeasy/internal/domains/reservation/model/dto"
	"stayeasy/internal/domains/reservation/repository"
	roomRepo "stayeasy/internal/domains/room/repository"
	"stayeasy/shared"
	"stayeasy/shared/constant"
	gDto "stayeasy/shared/dto"
	"stayeasy/shared/failure"
	"stayeasy/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	EventReservationCreated    = "reservation.created"
	EventReservationCheckedIn  = "reservation.checked_in"
	EventReservationCheckedOut = "reservation.checked_out"
	EventReservationCancelled  = "reservation.cancelled"
)

// ReservationEvent is the lifecycle message published to Kafka after the
// owning transaction commits.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	GuestID       string    `json:"guest_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Search(ctx context.Context, query string) (dto.SearchReservationsResponse, error)
	Modify(ctx context.Context, req dto.ModifyReservationRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	roomSync  RoomSync
	cfg       *config.Config
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	roomSync RoomSync,
	cfg *config.Config,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		roomSync:  roomSync,
		cfg:       cfg,
		kafka:     kafkaClient,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !reservation.CheckOut.After(reservation.CheckIn) {
		return res, ErrInvalidStay
	}

	if reservation.TotalRate < 0 {
		return res, ErrNegativeRate
	}

	if err := s.ensureGuestExists(ctx, req.GuestID); err != nil {
		return res, err
	}

	// Retried requests carrying the same idempotency key get the original
	// reservation back instead of a second row.
	if reservation.IdempotencyKey != nil {
		existing, err := s.repo.Get(ctx, filterByIdempotencyKey(*reservation.IdempotencyKey))
		if err != nil {
			log.Error().Err(err).Msg("failed to look up idempotency key")

			return res, fmt.Errorf("failed to look up idempotency key: %w", err)
		}

		if existing.ID != constant.Empty {
			res.FromModel(existing)

			return res, nil
		}
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, req.RoomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return ErrRoomNotFound
		}

		existing, err := s.repo.FindByRoomAndRangeTx(ctx, tx, req.RoomID, reservation.CheckIn, reservation.CheckOut)
		if err != nil {
			return fmt.Errorf("failed to load intersecting reservations: %w", err)
		}

		if !admits(reservation.CheckIn, reservation.CheckOut, existing) {
			return ErrDatesUnavailable
		}

		return s.repo.InsertTx(ctx, tx, reservation)
	})
	if err != nil {
		// A concurrent retry can slip past the pre-check above and land on
		// the unique index instead; hand back the winner's reservation.
		if reservation.IdempotencyKey != nil && isUniqueViolation(err) {
			existing, getErr := s.repo.Get(ctx, filterByIdempotencyKey(*reservation.IdempotencyKey))
			if getErr == nil && existing.ID != constant.Empty {
				res.FromModel(existing)

				return res, nil
			}
		}

		if mapped := mapPqConflict(err); mapped != nil {
			return res, mapped
		}

		if isLifecycleError(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.publishEvent(ctx, EventReservationCreated, reservation)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, ErrReservationNotFound
	}

	res.FromModel(reservation)

	return res, nil
}

// Search resolves the query as a reservation id when it parses as a UUID,
// otherwise as a case-insensitive substring of the guest surname.
func (s *serviceImpl) Search(ctx context.Context, query string) (res dto.SearchReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id, ok := dto.ParseID(query); ok {
		reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to search reservation by id")

			return res, fmt.Errorf("failed to search reservation by id: %w", err)
		}

		if reservation.ID != constant.Empty {
			res.FromModels([]model.Reservation{reservation})
		} else {
			res.FromModels(nil)
		}

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestSurname,
				Value:    query,
				Operator: gDto.FilterOperatorLike,
				Table:    model.GuestTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search reservations by surname")

		return res, fmt.Errorf("failed to search reservations by surname: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Modify(ctx context.Context, req dto.ModifyReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Modify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.TotalRate != nil && *req.TotalRate < 0 {
		return ErrNegativeRate
	}

	if req.GuestID != constant.Empty {
		if err := s.ensureGuestExists(ctx, req.GuestID); err != nil {
			return err
		}
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		reservation, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return ErrReservationNotFound
		}

		if reservation.Status.Terminal() {
			return ErrInvalidTransition
		}

		start, end, err := req.Stay(reservation)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}

		if !end.After(start) {
			return ErrInvalidStay
		}

		// Moving the stay to another room re-validates availability against
		// that room under its own row lock.
		roomID := reservation.RoomID
		if req.RoomID != constant.Empty {
			roomID = req.RoomID
		}

		room, err := s.roomRepo.LockTx(ctx, tx, roomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return ErrRoomNotFound
		}

		existing, err := s.repo.FindByRoomAndRangeTx(ctx, tx, roomID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load intersecting reservations: %w", err)
		}

		others := make([]model.Reservation, 0, len(existing))
		for _, other := range existing {
			if other.ID == reservation.ID {
				continue
			}

			others = append(others, other)
		}

		if !admits(start, end, others) {
			return ErrDatesUnavailable
		}

		fields := map[string]any{
			model.FieldCheckIn:       start,
			model.FieldCheckOut:      end,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if roomID != reservation.RoomID {
			fields[model.FieldRoomID] = roomID
		}

		if req.GuestID != constant.Empty && req.GuestID != reservation.GuestID {
			fields[model.FieldGuestID] = req.GuestID
		}

		if req.Adults > 0 {
			fields[model.FieldAdults] = req.Adults
		}

		if req.TotalRate != nil {
			fields[model.FieldTotalRate] = *req.TotalRate
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		if mapped := mapPqConflict(err); mapped != nil {
			return mapped
		}

		if isLifecycleError(err) {
			return err
		}

		log.Error().Err(err).Msg("failed to modify reservation")

		return fmt.Errorf("failed to modify reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCheckedIn, EventReservationCheckedIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCheckedOut, EventReservationCheckedOut)
}

// Cancel releases the reservation's nights. Cancelling an already cancelled
// reservation succeeds without touching anything.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		reservation model.Reservation
		noop        bool
	)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		reservation, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return ErrReservationNotFound
		}

		if reservation.Status == model.StatusCancelled {
			noop = true

			return nil
		}

		if !reservation.Status.CanTransitionTo(model.StatusCancelled) {
			return ErrInvalidTransition
		}

		// A guest cancelled while in house leaves the room behind; it
		// still needs housekeeping before it can be sold again.
		if reservation.Status == model.StatusCheckedIn {
			if err := s.roomSync.OnCheckOut(ctx, tx, reservation.RoomID, user); err != nil {
				return err
			}
		}

		return s.updateStatusTx(ctx, tx, id, model.StatusCancelled, user)
	})
	if err != nil {
		if isLifecycleError(err) {
			return err
		}

		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if !noop {
		reservation.Status = model.StatusCancelled
		s.publishEvent(ctx, EventReservationCancelled, reservation)
	}

	return nil
}

func (s *serviceImpl) transition(ctx context.Context, id string, next model.Status, eventType string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var reservation model.Reservation

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error

		reservation, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return ErrReservationNotFound
		}

		if !reservation.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		switch next {
		case model.StatusCheckedIn:
			if err := s.roomSync.OnCheckIn(ctx, tx, reservation.RoomID, user); err != nil {
				return err
			}
		case model.StatusCheckedOut:
			if err := s.roomSync.OnCheckOut(ctx, tx, reservation.RoomID, user); err != nil {
				return err
			}
		case model.StatusConfirmed, model.StatusCancelled:
		}

		return s.updateStatusTx(ctx, tx, id, next, user)
	})
	if err != nil {
		if isLifecycleError(err) {
			return err
		}

		log.Error().Err(err).Str("status", string(next)).Msg("failed to transition reservation")

		return fmt.Errorf("failed to transition reservation: %w", err)
	}

	reservation.Status = next
	s.publishEvent(ctx, eventType, reservation)

	return nil
}

func (s *serviceImpl) updateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status model.Status, user string) error {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		GuestID:       reservation.GuestID,
		Status:        string(reservation.Status),
		OccurredAt:    timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		topic := s.cfg.Kafka.Topic.ReservationEvents
		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: reservation.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) ensureGuestExists(ctx context.Context, guestID string) error {
	exists, err := s.guestRepo.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exists {
		return ErrGuestNotFound
	}

	return nil
}

func filterByIdempotencyKey(key string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIdempotencyKey,
				Value:    key,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// mapPqConflict translates constraint violations raised by the database into
// the scheduling conflict the caller can act on. The exclusion constraint on
// (room_id, stay range) is the backstop behind the room-row lock.
func mapPqConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeExclusionViolation:
		return ErrDatesUnavailable
	case constant.PqErrorCodeUniqueViolation:
		return ErrDuplicateRequest
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString("referenced guest or room does not exist")
	default:
		return nil
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

func isLifecycleError(err error) bool {
	var fail *failure.Failure

	return errors.As(err, &fail)
}
