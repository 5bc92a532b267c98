package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayeasy/infras/otel"
	"stayeasy/infras/postgres"
	"stayeasy/internal/domains/room/model"
	"stayeasy/shared"
	"stayeasy/shared/constant"
	gDto "stayeasy/shared/dto"
	gRepo "stayeasy/shared/repository"
	"stayeasy/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Room, error)
	UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, id string, status model.HousekeepingStatus, user string) error
	GetAllTypes(ctx context.Context, params gDto.QueryParams) ([]model.RoomType, error)
	ExistType(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	typeRepo gRepo.Repository[model.RoomType]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		typeRepo:   gRepo.NewRepository[model.RoomType](model.TypeEntityName, model.TypeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx reads the room row FOR UPDATE, serializing every writer that works
// on the same room until the transaction ends.
func (repo *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockTx")
	defer scope.End()

	room, err := repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	return room, nil
}

func (repo *repositoryImpl) UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, id string, status model.HousekeepingStatus, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateStatusTx")
	defer scope.End()

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return repo.UpdateTx(ctx, sqltx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllTypes(ctx context.Context, params gDto.QueryParams) ([]model.RoomType, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAllTypes")
	defer scope.End()

	return repo.typeRepo.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistType(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ExistType")
	defer scope.End()

	return repo.typeRepo.Exist(ctx, filter) //nolint:wrapcheck
}
