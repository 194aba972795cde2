package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
)

func TestUserService_Save(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	user, err := svc.Save(context.Background(), dto.SaveUserRequest{
		Name: "Jane", Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())
}

func TestUserService_Save_RepeatedSignupIsNoop(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	first, err := svc.Save(context.Background(), dto.SaveUserRequest{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), dto.SaveUserRequest{Name: "Janet", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.users, 1)
}

func TestUserService_Save_AdminRoleNotGrantedAtSignup(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	user, err := svc.Save(context.Background(), dto.SaveUserRequest{
		Name: "Mallory", Email: "mallory@example.com", Role: model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestUserService_Save_SellerRoleAllowed(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	user, err := svc.Save(context.Background(), dto.SaveUserRequest{
		Name: "Sam", Email: "sam@example.com", Role: model.RoleSeller,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleSeller, user.Role)
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo())
	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ChangeRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Save(context.Background(), dto.SaveUserRequest{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeRole(context.Background(), user.ID, model.RoleAdmin))

	found, err := svc.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, found.Role)
}
