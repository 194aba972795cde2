package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	ListSucceededByEmail(ctx context.Context, email string) ([]model.Payment, error)
	ListByOrderStatus(ctx context.Context, status model.OrderStatus) ([]model.Payment, error)
	ListPaged(ctx context.Context, orderStatus string, skip, limit int64, sortAsc bool) ([]model.Payment, error)
	Count(ctx context.Context, orderStatus string) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
}

type mongoPaymentRepo struct{ coll *mongo.Collection }

func NewPaymentRepository(coll *mongo.Collection) PaymentRepository {
	return &mongoPaymentRepo{coll: coll}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	payment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoPaymentRepo) ListSucceededByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.list(ctx, bson.M{"email": email, "status": model.PaymentSucceeded}, nil)
}

func (r *mongoPaymentRepo) ListByOrderStatus(ctx context.Context, status model.OrderStatus) ([]model.Payment, error) {
	return r.list(ctx, bson.M{"orderStatus": status}, nil)
}

// ListPaged sorts on formattedDate; 1 for ascending, -1 otherwise.
func (r *mongoPaymentRepo) ListPaged(ctx context.Context, orderStatus string, skip, limit int64, sortAsc bool) ([]model.Payment, error) {
	query := bson.M{}
	if orderStatus != "" {
		query["orderStatus"] = orderStatus
	}
	direction := -1
	if sortAsc {
		direction = 1
	}
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "formattedDate", Value: direction}})
	return r.list(ctx, query, opts)
}

func (r *mongoPaymentRepo) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]model.Payment, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, query, opts)
	} else {
		cur, err = r.coll.Find(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var payments []model.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (r *mongoPaymentRepo) Count(ctx context.Context, orderStatus string) (int64, error) {
	query := bson.M{}
	if orderStatus != "" {
		query["orderStatus"] = orderStatus
	}
	count, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

func (r *mongoPaymentRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	delete(fields, "_id")
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}
