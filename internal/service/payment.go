package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/gateway"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

var (
	ErrInvalidPrice   = errors.New("price must be positive")
	ErrGatewayFailure = errors.New("payment creation failed")
)

// Intents are created in a single fixed currency.
const intentCurrency = "usd"

type PaymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     gateway.PaymentGateway
}

func NewPaymentService(paymentRepo repository.PaymentRepository, gw gateway.PaymentGateway) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, gateway: gw}
}

// CreateIntent converts the decimal price to integer minor units (rounded to
// the nearest cent) and requests a payment intent, returning the client-side
// confirmation secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if !price.IsPositive() {
		return "", ErrInvalidPrice
	}
	amount := price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	secret, err := s.gateway.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	return secret, nil
}

// Record persists a completed payment. The transaction id falls back to a
// generated one when the processor reference is missing, and formattedDate
// defaults to today so the admin listing can sort on it.
func (s *PaymentService) Record(ctx context.Context, req dto.RecordPaymentRequest) (*model.Payment, error) {
	now := time.Now().UTC()
	payment := &model.Payment{
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Status:        model.PaymentSucceeded,
		OrderStatus:   req.OrderStatus,
		FormattedDate: req.FormattedDate,
		CreatedAt:     now,
	}
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}
	if payment.OrderStatus == "" {
		payment.OrderStatus = model.OrderStatusPending
	}
	if payment.FormattedDate == "" {
		payment.FormattedDate = now.Format("2006-01-02")
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) ListSucceeded(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.ListSucceededByEmail(ctx, email)
}

func (s *PaymentService) ListByOrderStatus(ctx context.Context, status model.OrderStatus) ([]model.Payment, error) {
	return s.paymentRepo.ListByOrderStatus(ctx, status)
}

func (s *PaymentService) ListPaged(ctx context.Context, q dto.ListQuery) ([]model.Payment, error) {
	return s.paymentRepo.ListPaged(ctx, q.Filter, q.Skip(), q.Limit(), q.SortAscending())
}

func (s *PaymentService) Count(ctx context.Context, orderStatus string) (int64, error) {
	return s.paymentRepo.Count(ctx, orderStatus)
}

func (s *PaymentService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	return s.paymentRepo.Update(ctx, id, fields)
}
