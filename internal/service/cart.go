package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// AddItem adds a product to the caller's cart, or increments the quantity of
// the existing (email, productId) entry. Quantity defaults to 1.
func (s *CartService) AddItem(ctx context.Context, req dto.AddCartItemRequest) (*model.CartItem, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	item := &model.CartItem{
		Email:     req.Email,
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Quantity:  quantity,
	}
	saved, err := s.cartRepo.AddOrIncrement(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return saved, nil
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.cartRepo.ListByEmail(ctx, email)
}

func (s *CartService) UpdateItem(ctx context.Context, id primitive.ObjectID, req dto.UpdateCartItemRequest) error {
	existing, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get cart item: %w", err)
	}
	if existing == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.UpdateItem(ctx, id, req.Quantity, req.Price)
}

func (s *CartService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get cart item: %w", err)
	}
	if existing == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.Delete(ctx, id)
}
