package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stayeasy/infras/otel"
	"stayeasy/infras/postgres"
	"stayeasy/internal/domains/reservation/model"
	"stayeasy/shared/constant"
	gDto "stayeasy/shared/dto"
	"stayeasy/shared/logger"
	gRepo "stayeasy/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	FindByRoomAndRangeTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, start, end time.Time) ([]model.Reservation, error)
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindByRoomAndRangeTx returns every reservation of the room intersecting the
// half-open interval [start, end), regardless of status. It runs inside the
// caller's transaction so the result is stable under the room-row lock.
func (repo *repositoryImpl) FindByRoomAndRangeTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, start, end time.Time) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindByRoomAndRangeTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = :room_id AND %s < :range_end AND %s > :range_start",
		"id, guest_id, room_id, check_in, check_out, adults, total_rate, status, created_at, created_by, modified_at, modified_by",
		model.TableName,
		model.FieldRoomID,
		model.FieldCheckIn,
		model.FieldCheckOut,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":     roomID,
		"range_start": start,
		"range_end":   end,
	}

	var models []model.Reservation

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to find reservations by room and range: %w", err)
	}

	return models, nil
}
