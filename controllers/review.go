package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"shopprr-backend/middleware"
	"shopprr-backend/services"
)

// ReviewController handles product reviews and rating statistics.
type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// Create adds a review by the authenticated user.
func (rc *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateReviewInput
	if !decodeBody(w, r, &input) {
		return
	}

	user := middleware.UserFrom(r.Context())
	review, err := rc.Reviews.Create(r.Context(), user.ID.Hex(), input)
	if err != nil {
		respondError(w, "Error creating review", err)
		return
	}
	respondCreated(w, "Review created successfully", map[string]interface{}{"review": review})
}

// ProductReviews returns all reviews for a product, newest first.
func (rc *ReviewController) ProductReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := rc.Reviews.ListForProduct(r.Context(), mux.Vars(r)["productId"])
	if err != nil {
		respondError(w, "Error fetching reviews", err)
		return
	}
	respondOK(w, "Reviews fetched successfully", map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// Stats returns the review count, average rating, and per-star
// distribution for a product.
func (rc *ReviewController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := rc.Reviews.Stats(r.Context(), mux.Vars(r)["productId"])
	if err != nil {
		respondError(w, "Error fetching review stats", err)
		return
	}
	respondOK(w, "Review stats fetched successfully", stats)
}

// UserReviews returns the authenticated user's reviews.
func (rc *ReviewController) UserReviews(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	reviews, err := rc.Reviews.ListForUser(r.Context(), user.ID.Hex())
	if err != nil {
		respondError(w, "Error fetching reviews", err)
		return
	}
	respondOK(w, "Reviews fetched successfully", map[string]interface{}{"reviews": reviews})
}

// Delete removes a review from the admin console.
func (rc *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReviewID string `json:"reviewId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ReviewID == "" {
		respondFail(w, http.StatusBadRequest, "Review ID is required")
		return
	}

	if err := rc.Reviews.Delete(r.Context(), req.ReviewID); err != nil {
		respondError(w, "Error deleting review", err)
		return
	}
	respondOK(w, "Review deleted successfully", nil)
}
