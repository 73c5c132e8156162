package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

func TestParseTargetRole(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		role, err := model.ParseTargetRole("account-admin")
		gt.NoError(t, err).Required()
		gt.Equal(t, model.RoleAccountAdmin, role)

		role, err = model.ParseTargetRole("standard-user")
		gt.NoError(t, err).Required()
		gt.Equal(t, model.RoleStandardUser, role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := model.ParseTargetRole("account-owner")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidRole))
	})

	t.Run("rejects empty role", func(t *testing.T) {
		_, err := model.ParseTargetRole("")
		gt.Error(t, err)
	})
}

func TestTargetRoleDisplayName(t *testing.T) {
	gt.Equal(t, "admin", model.RoleAccountAdmin.DisplayName())
	gt.Equal(t, "standard member", model.RoleStandardUser.DisplayName())
}
