package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
)

type mockOrderRepo struct {
	orders map[primitive.ObjectID]*model.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]*model.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	order.ID = primitive.NewObjectID()
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	return m.orders[id], nil
}

func (m *mockOrderRepo) ListByEmail(_ context.Context, email string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range m.orders {
		if o.Email == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) error {
	if o, ok := m.orders[id]; ok {
		if addr, ok := fields["address"].(string); ok {
			o.Address = addr
		}
	}
	return nil
}

func (m *mockOrderRepo) SetStatus(_ context.Context, id primitive.ObjectID, status model.OrderStatus) error {
	if o, ok := m.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func TestOrderService_Create_StartsPending(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())

	order, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		Email: "jane@example.com",
		Items: []model.OrderItem{{ProductID: primitive.NewObjectID(), Name: "a", Price: 9.99, Quantity: 1}},
		Total: 9.99,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.False(t, order.ID.IsZero())
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	_, err := svc.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_SetStatus(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo)

	order, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		Email: "jane@example.com",
		Items: []model.OrderItem{{ProductID: primitive.NewObjectID(), Name: "a", Price: 1, Quantity: 1}},
		Total: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(context.Background(), order.ID, model.OrderStatusDelivered))
	assert.Equal(t, model.OrderStatusDelivered, repo.orders[order.ID].Status)
}

func TestOrderService_SetStatus_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	err := svc.SetStatus(context.Background(), primitive.NewObjectID(), model.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
