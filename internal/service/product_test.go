package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
)

type mockProductRepo struct {
	products map[primitive.ObjectID]*model.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[primitive.ObjectID]*model.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) List(_ context.Context) ([]model.Product, error) {
	var all []model.Product
	for _, p := range m.products {
		all = append(all, *p)
	}
	return all, nil
}

func (m *mockProductRepo) Count(_ context.Context, category string) (int64, error) {
	var count int64
	for _, p := range m.products {
		if category == "" || p.Category == category {
			count++
		}
	}
	return count, nil
}

// Update applies a $set-style shallow merge, field by field.
func (m *mockProductRepo) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) error {
	p, ok := m.products[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			p.Name, _ = value.(string)
		case "brand":
			p.Brand, _ = value.(string)
		case "category":
			p.Category, _ = value.(string)
		case "price":
			p.Price, _ = value.(float64)
		case "stock":
			if f, ok := value.(float64); ok {
				p.Stock = int(f)
			}
		case "image":
			p.Image, _ = value.(string)
		case "description":
			p.Description, _ = value.(string)
		}
	}
	return nil
}

func TestProductService_Create(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), nil)

	product, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Teak Chair", Category: "furniture", Price: 49.99, Stock: 10,
	})
	require.NoError(t, err)
	assert.False(t, product.ID.IsZero())
	assert.Equal(t, "Teak Chair", product.Name)
}

func TestProductService_Update_MergesSubmittedFields(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, nil)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Teak Chair", Category: "furniture", Price: 49.99, Stock: 10,
		Description: "solid teak",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"price": 59.99, "stock": float64(7),
	})
	require.NoError(t, err)

	// submitted fields replaced, everything else untouched
	assert.Equal(t, 59.99, updated.Price)
	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, "Teak Chair", updated.Name)
	assert.Equal(t, "furniture", updated.Category)
	assert.Equal(t, "solid teak", updated.Description)
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), nil)
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), map[string]any{"price": 1.0})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Count_FiltersByCategory(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, nil)

	for _, category := range []string{"furniture", "furniture", "decor"} {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{
			Name: "p", Category: category, Price: 1, Stock: 1,
		})
		require.NoError(t, err)
	}

	count, err := svc.Count(context.Background(), "furniture")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
