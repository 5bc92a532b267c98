package dto_test

import (
	"testing"

	"stayeasy/internal/domains/auth/model/dto"
	"stayeasy/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Front Desk"
	req := dto.RegisterRequest{
		Username: "frontdesk",
		Password: "plaintext",
		FullName: &fullName,
	}

	user := req.ToUserModel("admin-id", "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "frontdesk", user.Username)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleReceptionist, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, "admin-id", user.CreatedBy)
}
