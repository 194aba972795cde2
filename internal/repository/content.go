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

// Reviews, features, and blogs are read-mostly content collections.

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListAll(ctx context.Context) ([]model.Review, error)
}

type FeatureRepository interface {
	ListAll(ctx context.Context) ([]model.Feature, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Feature, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogRepository interface {
	ListAll(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)
}

type mongoReviewRepo struct{ coll *mongo.Collection }

func NewReviewRepository(coll *mongo.Collection) ReviewRepository {
	return &mongoReviewRepo{coll: coll}
}

func (r *mongoReviewRepo) Create(ctx context.Context, review *model.Review) error {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

type mongoFeatureRepo struct{ coll *mongo.Collection }

func NewFeatureRepository(coll *mongo.Collection) FeatureRepository {
	return &mongoFeatureRepo{coll: coll}
}

func (r *mongoFeatureRepo) ListAll(ctx context.Context) ([]model.Feature, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	var features []model.Feature
	if err := cur.All(ctx, &features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return features, nil
}

func (r *mongoFeatureRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Feature, error) {
	feature := &model.Feature{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(feature)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feature: %w", err)
	}
	return feature, nil
}

func (r *mongoFeatureRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete feature: %w", err)
	}
	return nil
}

type mongoBlogRepo struct{ coll *mongo.Collection }

func NewBlogRepository(coll *mongo.Collection) BlogRepository {
	return &mongoBlogRepo{coll: coll}
}

func (r *mongoBlogRepo) ListAll(ctx context.Context) ([]model.Blog, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	var blogs []model.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *mongoBlogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	blog := &model.Blog{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return blog, nil
}
