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

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	order := &model.Order{
		Email:     req.Email,
		Items:     req.Items,
		Total:     req.Total,
		Status:    model.OrderStatusPending,
		Address:   req.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return s.orderRepo.ListByEmail(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if existing == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Update(ctx, id, fields)
}

func (s *OrderService) SetStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) error {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if existing == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.SetStatus(ctx, id, status)
}
