package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/model"
	"github.com/swiftshop/swiftshop-api/internal/repository"
)

var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrBlogNotFound    = errors.New("blog not found")
)

type ContentService struct {
	reviewRepo  repository.ReviewRepository
	featureRepo repository.FeatureRepository
	blogRepo    repository.BlogRepository
}

func NewContentService(reviewRepo repository.ReviewRepository, featureRepo repository.FeatureRepository, blogRepo repository.BlogRepository) *ContentService {
	return &ContentService{reviewRepo: reviewRepo, featureRepo: featureRepo, blogRepo: blogRepo}
}

func (s *ContentService) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		Email:     req.Email,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ContentService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.ListAll(ctx)
}

func (s *ContentService) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	return s.featureRepo.ListAll(ctx)
}

func (s *ContentService) GetFeature(ctx context.Context, id primitive.ObjectID) (*model.Feature, error) {
	feature, err := s.featureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feature: %w", err)
	}
	if feature == nil {
		return nil, ErrFeatureNotFound
	}
	return feature, nil
}

func (s *ContentService) DeleteFeature(ctx context.Context, id primitive.ObjectID) error {
	feature, err := s.featureRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get feature: %w", err)
	}
	if feature == nil {
		return ErrFeatureNotFound
	}
	return s.featureRepo.Delete(ctx, id)
}

func (s *ContentService) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.blogRepo.ListAll(ctx)
}

func (s *ContentService) GetBlog(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}
