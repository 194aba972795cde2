package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Save persists a user profile at signup. Repeated signups for the same email
// are a no-op returning the stored profile. The role field of the request is
// ignored unless it names the seller role; admin is only ever granted through
// the role-change operation.
func (s *UserService) Save(ctx context.Context, req dto.SaveUserRequest) (*model.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	role := model.RoleUser
	if req.Role == model.RoleSeller {
		role = model.RoleSeller
	}
	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Photo:     req.Photo,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, q dto.ListQuery) ([]model.User, error) {
	users, err := s.userRepo.List(ctx, q.Filter, q.Skip(), q.Limit())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Count(ctx context.Context, role string) (int64, error) {
	return s.userRepo.Count(ctx, role)
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	return s.userRepo.Update(ctx, id, fields)
}

func (s *UserService) ChangeRole(ctx context.Context, id primitive.ObjectID, role model.Role) error {
	return s.userRepo.SetRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.userRepo.Delete(ctx, id)
}
