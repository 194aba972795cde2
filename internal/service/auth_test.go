package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepo) List(_ context.Context, role string, skip, limit int64) ([]model.User, error) {
	var users []model.User
	for _, u := range m.users {
		if role == "" || string(u.Role) == role {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *mockUserRepo) Count(_ context.Context, role string) (int64, error) {
	users, _ := m.List(context.Background(), role, 0, 0)
	return int64(len(users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) error {
	for _, u := range m.users {
		if u.ID == id {
			if name, ok := fields["name"].(string); ok {
				u.Name = name
			}
			if photo, ok := fields["photo"].(string); ok {
				u.Photo = photo
			}
		}
	}
	return nil
}

func (m *mockUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role model.Role) error {
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
		}
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
		}
	}
	return nil
}

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestAuthService_IssueToken_DerivesRoleFromStore(t *testing.T) {
	repo := newMockUserRepo()
	repo.users["admin@example.com"] = &model.User{
		ID: primitive.NewObjectID(), Email: "admin@example.com", Role: model.RoleAdmin,
	}
	svc := NewAuthService(repo, "test-secret", 14*24*time.Hour)

	token, err := svc.IssueToken(context.Background(), "admin@example.com")
	require.NoError(t, err)

	claims := parseClaims(t, token, "test-secret")
	assert.Equal(t, "admin@example.com", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAuthService_IssueToken_UnknownEmailGetsDefaultRole(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", time.Hour)

	token, err := svc.IssueToken(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	claims := parseClaims(t, token, "test-secret")
	assert.Equal(t, "user", claims["role"])
}

func TestAuthService_IssueToken_Expiry(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", 14*24*time.Hour)

	token, err := svc.IssueToken(context.Background(), "user@example.com")
	require.NoError(t, err)

	claims := parseClaims(t, token, "test-secret")
	exp := int64(claims["exp"].(float64))
	expected := time.Now().Add(14 * 24 * time.Hour).Unix()
	assert.InDelta(t, expected, exp, 5)
}
