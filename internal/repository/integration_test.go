package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

func TestUserRepo_CreateAndGetByEmail(t *testing.T) {
	cleanupCollections(t, "users")

	repo := NewUserRepository(testDB.Collection("users"))
	ctx := context.Background()

	user := &model.User{Name: "Jane", Email: "jane@example.com", Role: model.RoleUser}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.ID.IsZero())

	found, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCartRepo_AddOrIncrement(t *testing.T) {
	cleanupCollections(t, "carts")

	repo := NewCartRepository(testDB.Collection("carts"))
	ctx := context.Background()
	pid := primitive.NewObjectID()

	item := &model.CartItem{
		Email: "jane@example.com", ProductID: pid,
		Name: "Teak Chair", Price: 49.99, Quantity: 2,
	}
	first, err := repo.AddOrIncrement(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	again := &model.CartItem{
		Email: "jane@example.com", ProductID: pid,
		Name: "Teak Chair", Price: 49.99, Quantity: 3,
	}
	second, err := repo.AddOrIncrement(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := repo.ListByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartRepo_Delete(t *testing.T) {
	cleanupCollections(t, "carts")

	repo := NewCartRepository(testDB.Collection("carts"))
	ctx := context.Background()

	kept, err := repo.AddOrIncrement(ctx, &model.CartItem{
		Email: "jane@example.com", ProductID: primitive.NewObjectID(), Name: "a", Price: 1, Quantity: 1,
	})
	require.NoError(t, err)
	doomed, err := repo.AddOrIncrement(ctx, &model.CartItem{
		Email: "jane@example.com", ProductID: primitive.NewObjectID(), Name: "b", Price: 1, Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, doomed.ID))

	items, err := repo.ListByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)
}

func TestProductRepo_UpdateMergesFields(t *testing.T) {
	cleanupCollections(t, "products")

	repo := NewProductRepository(testDB.Collection("products"))
	ctx := context.Background()

	product := &model.Product{Name: "Teak Chair", Category: "furniture", Price: 49.99, Stock: 10}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Update(ctx, product.ID, map[string]any{"price": 59.99}))

	found, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 59.99, found.Price)
	assert.Equal(t, "Teak Chair", found.Name)
	assert.Equal(t, 10, found.Stock)
}

func TestPaymentRepo_ListPaged(t *testing.T) {
	cleanupCollections(t, "payments")

	repo := NewPaymentRepository(testDB.Collection("payments"))
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		status := model.OrderStatusPending
		if i%5 == 0 {
			status = model.OrderStatusDelivered
		}
		require.NoError(t, repo.Create(ctx, &model.Payment{
			Email:         "jane@example.com",
			Status:        model.PaymentSucceeded,
			OrderStatus:   status,
			FormattedDate: fmt.Sprintf("2024-01-%02d", i+1),
		}))
	}

	// second page of the ascending set: offset 10..19
	page, err := repo.ListPaged(ctx, "", 10, 10, true)
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "2024-01-11", page[0].FormattedDate)
	assert.Equal(t, "2024-01-20", page[9].FormattedDate)

	// descending by default
	desc, err := repo.ListPaged(ctx, "", 0, 5, false)
	require.NoError(t, err)
	require.Len(t, desc, 5)
	assert.Equal(t, "2024-01-25", desc[0].FormattedDate)

	// orderStatus filter
	delivered, err := repo.ListPaged(ctx, "Delivered", 0, 100, true)
	require.NoError(t, err)
	assert.Len(t, delivered, 5)

	count, err := repo.Count(ctx, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestOrderRepo_SetStatus(t *testing.T) {
	cleanupCollections(t, "orders")

	repo := NewOrderRepository(testDB.Collection("orders"))
	ctx := context.Background()

	order := &model.Order{
		Email:  "jane@example.com",
		Items:  []model.OrderItem{{ProductID: primitive.NewObjectID(), Name: "a", Price: 1, Quantity: 1}},
		Total:  1,
		Status: model.OrderStatusPending,
	}
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.SetStatus(ctx, order.ID, model.OrderStatusDelivered))

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, found.Status)
}
