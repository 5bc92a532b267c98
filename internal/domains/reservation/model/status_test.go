package model_test

import (
	"testing"

	"stayeasy/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		to      model.Status
		allowed bool
	}{
		{name: "confirmed to checked in", from: model.StatusConfirmed, to: model.StatusCheckedIn, allowed: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, allowed: true},
		{name: "confirmed to checked out", from: model.StatusConfirmed, to: model.StatusCheckedOut, allowed: false},
		{name: "checked in to checked out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, allowed: true},
		{name: "checked in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, allowed: true},
		{name: "checked in to confirmed", from: model.StatusCheckedIn, to: model.StatusConfirmed, allowed: false},
		{name: "checked out is terminal", from: model.StatusCheckedOut, to: model.StatusCancelled, allowed: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, allowed: false},
		{name: "cancelled cannot check in", from: model.StatusCancelled, to: model.StatusCheckedIn, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Active(t *testing.T) {
	assert.True(t, model.StatusConfirmed.Active())
	assert.True(t, model.StatusCheckedIn.Active())
	assert.False(t, model.StatusCheckedOut.Active())
	assert.False(t, model.StatusCancelled.Active())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.False(t, model.StatusCheckedIn.Terminal())
	assert.True(t, model.StatusCheckedOut.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, model.StatusConfirmed.Valid())
	assert.True(t, model.StatusCancelled.Valid())
	assert.False(t, model.Status("PENDING").Valid())
	assert.False(t, model.Status("").Valid())
}
