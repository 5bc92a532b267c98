package repository_test

import (
	"context"
	"testing"

	"stayeasy/infras/otel/mocks"
	"stayeasy/shared/dto"
	"stayeasy/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func TestGetForUpdateTxRequiresFilter(t *testing.T) {
	repo := repository.NewRepository[account]("account", "accounts", "id", nil, mocks.NewOtel())

	// A row lock must always be scoped; an empty filter would otherwise
	// lock the whole table.
	_, err := repo.GetForUpdateTx(context.Background(), nil, dto.FilterGroup{})

	require.Error(t, err)
	assert.EqualError(t, err, "required filter")
}
