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

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) error
}

type mongoOrderRepo struct{ coll *mongo.Collection }

func NewOrderRepository(coll *mongo.Collection) OrderRepository {
	return &mongoOrderRepo{coll: coll}
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *model.Order) error {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	order := &model.Order{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *mongoOrderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *mongoOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoOrderRepo) list(ctx context.Context, query bson.M) ([]model.Order, error) {
	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	delete(fields, "_id")
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	return nil
}
