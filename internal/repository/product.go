package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
}

type mongoProductRepo struct{ coll *mongo.Collection }

func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &mongoProductRepo{coll: coll}
}

func (r *mongoProductRepo) Create(ctx context.Context, product *model.Product) error {
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoProductRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	product := &model.Product{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (r *mongoProductRepo) List(ctx context.Context) ([]model.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepo) Count(ctx context.Context, category string) (int64, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}
	count, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *mongoProductRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	delete(fields, "_id")
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}
