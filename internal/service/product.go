package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

const (
	productListCacheKey = "products:all"
	productCacheTTL     = 60 * time.Second
)

type ProductService struct {
	productRepo repository.ProductRepository
	redisClient *redis.Client
}

func NewProductService(productRepo repository.ProductRepository, redisClient *redis.Client) *ProductService {
	return &ProductService{productRepo: productRepo, redisClient: redisClient}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, productListCacheKey).Result(); err == nil {
			var products []model.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				return products, nil
			}
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(products); err == nil {
			s.redisClient.Set(ctx, productListCacheKey, data, productCacheTTL)
		}
	}
	return products, nil
}

func (s *ProductService) Count(ctx context.Context, category string) (int64, error) {
	return s.productRepo.Count(ctx, category)
}

// Update merges the submitted fields into the stored document; fields not
// present in the request are left untouched.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*model.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidateCache(ctx)
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, productListCacheKey)
	}
}
