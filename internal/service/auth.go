package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry}
}

// IssueToken signs a session token for the given email. The role claim is
// always derived from the users collection, never taken from the caller;
// an unknown email gets the default role.
func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	role := model.RoleUser
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}
	if user != nil && user.Role != "" {
		role = user.Role
	}

	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"exp":  time.Now().Add(s.jwtExpiry).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
