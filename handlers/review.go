package handlers

import (
	"net/http"

	"github.com/abdulaziz1812/service-review-system-server/models"
	"github.com/abdulaziz1812/service-review-system-server/services/review"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Reviews review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: svc}
}

// CreateReviewHandler handles POST /review.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var rev models.Review
	if err := c.ShouldBindJSON(&rev); err != nil {
		logger.Error("Invalid review payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Reviews.CreateReview(c.Request.Context(), rev)
	if err != nil {
		logger.Error("Failed to create review", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not create review")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReviewsByServiceHandler handles GET /review-details/:id. The id is
// the reviewed service's identifier and is matched as an opaque string
// against the serviceId field, so it is deliberately not parsed here.
func (h *ReviewHandler) ListReviewsByServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	serviceID := c.Param("id")
	reviews, err := h.Reviews.ListReviewsByService(c.Request.Context(), serviceID)
	if err != nil {
		logger.Error("Failed to list reviews by service", zap.String("serviceId", serviceID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListMyReviewsHandler handles GET /my-reviews?email=, returning the
// author's reviews enriched with their service snapshots.
func (h *ReviewHandler) ListMyReviewsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")
	reviews, err := h.Reviews.ListReviewsByAuthor(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list reviews by author", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// UpdateReviewHandler handles PUT /reviews/:id, replacing text, date and
// rating and creating the document when the identifier is unknown.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := ParseObjectID(c)
	if !ok {
		return
	}
	var fields models.ReviewFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Error("Invalid review update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Reviews.ReplaceReviewFields(c.Request.Context(), id, fields)
	if err != nil {
		logger.Error("Failed to update review", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not update review")
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteReviewHandler handles DELETE /reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := ParseObjectID(c)
	if !ok {
		return
	}
	res, err := h.Reviews.DeleteReview(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to delete review", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not delete review")
		return
	}
	c.JSON(http.StatusOK, res)
}
