package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"shopprr-backend/models"
)

// CreateReviewInput is the validated payload for a new review.
type CreateReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Title     string `json:"title" validate:"min=5"`
	Comment   string `json:"comment" validate:"min=20"`
}

// ReviewStats summarizes the reviews of one product.
type ReviewStats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// ReviewService stores reviews and computes rating statistics on read.
type ReviewService struct {
	reviews  ReviewStore
	users    UserStore
	validate *validator.Validate
}

func NewReviewService(reviews ReviewStore, users UserStore) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		users:    users,
		validate: validator.New(),
	}
}

var reviewMessages = map[string]string{
	"productId": "Product ID is required",
	"rating":    "Rating must be between 1 and 5",
	"title":     "Title must be at least 5 characters",
	"comment":   "Comment must be at least 20 characters",
}

// Create validates the input, denormalizes the author's display name and
// a generated avatar URL, and persists the review. Validation failures
// name the offending field and nothing is persisted.
func (s *ReviewService) Create(ctx context.Context, userID string, input CreateReviewInput) (*models.Review, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Comment = strings.TrimSpace(input.Comment)

	if err := s.validate.Struct(input); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			field := jsonField(errs[0].StructField())
			return nil, &ValidationError{Field: field, Message: reviewMessages[field]}
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}

	now := time.Now()
	review := &models.Review{
		ProductID:  input.ProductID,
		UserID:     userID,
		Rating:     input.Rating,
		Title:      input.Title,
		Comment:    input.Comment,
		UserName:   user.Name,
		UserAvatar: avatarURL(user.Name),
		Verified:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForProduct returns a product's reviews newest first.
func (s *ReviewService) ListForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// ListForUser returns the reviews written by one user.
func (s *ReviewService) ListForUser(ctx context.Context, userID string) ([]models.Review, error) {
	reviews, err := s.reviews.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// Stats computes count, mean rating rounded to one decimal, and the
// 1..5 rating distribution. All values are zero when there are no
// reviews.
func (s *ReviewService) Stats(ctx context.Context, productID string) (*ReviewStats, error) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{
		TotalReviews:       len(reviews),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			stats.RatingDistribution[review.Rating]++
		}
	}
	stats.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return stats, nil
}

// Delete removes a review permanently.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	deleted, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Resource: "Review"}
	}
	return nil
}

// avatarURL builds the ui-avatars.com URL denormalized onto each review.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "+") + "&background=3B82F6&color=fff"
}

// jsonField maps the Go struct field name to its json tag name.
func jsonField(structField string) string {
	switch structField {
	case "ProductID":
		return "productId"
	default:
		return strings.ToLower(structField[:1]) + structField[1:]
	}
}
