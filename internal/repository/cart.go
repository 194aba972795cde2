package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

type CartRepository interface {
	AddOrIncrement(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, quantity int, price *float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoCartRepo struct{ coll *mongo.Collection }

func NewCartRepository(coll *mongo.Collection) CartRepository {
	return &mongoCartRepo{coll: coll}
}

// AddOrIncrement bumps the quantity of the (email, productId) item or inserts
// it when absent. A single upserting $inc keeps concurrent adds from racing.
func (r *mongoCartRepo) AddOrIncrement(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	filter := bson.M{"email": item.Email, "productId": item.ProductID}
	update := bson.M{
		"$inc": bson.M{"quantity": item.Quantity},
		"$setOnInsert": bson.M{
			"email":     item.Email,
			"productId": item.ProductID,
			"name":      item.Name,
			"image":     item.Image,
			"price":     item.Price,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	saved := &model.CartItem{}
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(saved); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return saved, nil
}

func (r *mongoCartRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.CartItem, error) {
	item := &model.CartItem{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return item, nil
}

func (r *mongoCartRepo) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	var items []model.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

func (r *mongoCartRepo) UpdateItem(ctx context.Context, id primitive.ObjectID, quantity int, price *float64) error {
	set := bson.M{"quantity": quantity}
	if price != nil {
		set["price"] = *price
	}
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

func (r *mongoCartRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}
