package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/middleware"
	"github.com/vendhub/storefront/internal/services"
	"github.com/vendhub/storefront/pkg/models"
)

type RecommendationHandler struct {
	recommendations services.RecommendationServiceInterface
	preferences     services.PreferenceServiceInterface
	interactions    services.InteractionWriterInterface
	validator       *validator.Validate
	logger          *logrus.Logger
}

func NewRecommendationHandler(
	recommendations services.RecommendationServiceInterface,
	preferences services.PreferenceServiceInterface,
	interactions services.InteractionWriterInterface,
	logger *logrus.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		preferences:     preferences,
		interactions:    interactions,
		validator:       validator.New(),
		logger:          logger,
	}
}

// Get returns the blended recommendation list. Anonymous callers get the
// popularity-ranked baseline; known users get price-affinity and preference
// filtering plus the purchase-history expansion merged in.
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.recommendations.Recommendations(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate recommendations")
		h.internalError(c, "RECOMMENDATION_GENERATION_FAILED", "Failed to generate recommendations")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSimilar returns products sharing the seed product's category.
func (h *RecommendationHandler) GetSimilar(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	similar, err := h.recommendations.SimilarProducts(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PRODUCT_NOT_FOUND",
					"message": "Product does not exist",
				},
			})
			return
		}
		h.logger.WithError(err).WithField("product_id", productID).Error("Failed to find similar products")
		h.internalError(c, "SIMILAR_PRODUCTS_FAILED", "Failed to find similar products")
		return
	}

	c.JSON(http.StatusOK, similar)
}

// GetTrending returns the most viewed products inside the requested
// calendar window; the resolved time frame is echoed in the response.
func (h *RecommendationHandler) GetTrending(c *gin.Context) {
	timeFrame := c.DefaultQuery("time_frame", "week")

	result, err := h.recommendations.TrendingProducts(c.Request.Context(), timeFrame)
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute trending products")
		h.internalError(c, "TRENDING_PRODUCTS_FAILED", "Failed to compute trending products")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSearchBased matches the user's recent search history against the
// catalog. Requires a known user.
func (h *RecommendationHandler) GetSearchBased(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		h.unauthenticated(c)
		return
	}

	matched, err := h.recommendations.SearchBasedRecommendations(c.Request.Context(), *userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", *userID).Error("Failed to compute search-based recommendations")
		h.internalError(c, "SEARCH_RECOMMENDATIONS_FAILED", "Failed to compute search-based recommendations")
		return
	}

	c.JSON(http.StatusOK, models.SearchRecommendationsResponse{
		SearchBasedRecommendations: matched,
	})
}

// UpdatePreferences upserts the caller's preferred categories.
func (h *RecommendationHandler) UpdatePreferences(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		h.unauthenticated(c)
		return
	}

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "Invalid request body format")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.validationError(c, "preferred_categories must be a non-empty array of strings")
		return
	}

	if err := h.preferences.Update(c.Request.Context(), *userID, req.PreferredCategories); err != nil {
		h.logger.WithError(err).WithField("user_id", *userID).Error("Failed to update preferences")
		h.internalError(c, "PREFERENCE_UPDATE_FAILED", "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated successfully"})
}

// RecordFeedback appends a like or dislike interaction for a product.
func (h *RecommendationHandler) RecordFeedback(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		h.unauthenticated(c)
		return
	}

	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "Invalid request body format")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.validationError(c, "type must be either like or dislike")
		return
	}

	interaction, err := h.interactions.RecordFeedback(c.Request.Context(), *userID, productID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PRODUCT_NOT_FOUND",
					"message": "Product does not exist",
				},
			})
		case errors.Is(err, services.ErrValidation):
			h.validationError(c, "type must be either like or dislike")
		default:
			h.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":    *userID,
				"product_id": productID,
			}).Error("Failed to record feedback")
			h.internalError(c, "FEEDBACK_RECORDING_FAILED", "Failed to record feedback")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Feedback recorded successfully",
		"interaction": interaction,
	})
}

func (h *RecommendationHandler) productIDParam(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_PRODUCT_ID",
				"message": "Invalid product ID format",
			},
		})
		return 0, false
	}
	return productID, true
}

func (h *RecommendationHandler) unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "User not authenticated",
		},
	})
}

func (h *RecommendationHandler) validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    "VALIDATION_FAILED",
			"message": message,
		},
	})
}

func (h *RecommendationHandler) internalError(c *gin.Context, code, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
