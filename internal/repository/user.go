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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, role string, skip, limit int64) ([]model.User, error)
	Count(ctx context.Context, role string) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
	SetRole(ctx context.Context, id primitive.ObjectID, role model.Role) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoUserRepo struct{ coll *mongo.Collection }

func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &mongoUserRepo{coll: coll}
}

func (r *mongoUserRepo) Create(ctx context.Context, user *model.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepo) List(ctx context.Context, role string, skip, limit int64) ([]model.User, error) {
	query := bson.M{}
	if role != "" {
		query["role"] = role
	}
	cur, err := r.coll.Find(ctx, query, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepo) Count(ctx context.Context, role string) (int64, error) {
	query := bson.M{}
	if role != "" {
		query["role"] = role
	}
	count, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *mongoUserRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	delete(fields, "_id")
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *mongoUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role model.Role) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	return nil
}

func (r *mongoUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
