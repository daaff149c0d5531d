package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
)

// ReviewHandler serves prediction and review endpoints.
// Every failure is recorded with c.Error and rendered by the error middleware.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler.
// Parameters:
//   - reviewService: review service instance.
//
// Returns:
//   - *ReviewHandler: initialized handler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Predict handles POST /predict.
func (h *ReviewHandler) Predict(c *gin.Context) {
	body, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	raw, err := requireField(body, "review")
	if err != nil {
		_ = c.Error(err)
		return
	}

	p, err := h.reviewService.Predict(c.Request.Context(), raw)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": p.Message})
}

// SaveReview handles POST /save-review.
func (h *ReviewHandler) SaveReview(c *gin.Context) {
	body, err := bindObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	in, err := parseSaveReview(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	saved, err := h.reviewService.SaveReview(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"sentiment": saved.Sentiment,
	})
}

// ListReviews handles GET /get-reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
