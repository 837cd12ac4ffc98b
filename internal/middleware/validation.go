package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendhub/storefront/internal/validation"
)

// ValidationMiddleware applies JSON Schema validation ahead of the handlers
// so malformed write payloads are rejected before any binding logic runs.
type ValidationMiddleware struct {
	validator *validation.SchemaValidator
}

func NewValidationMiddleware(validator *validation.SchemaValidator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidatePreferenceUpdate validates UpdatePreferences request bodies.
func (vm *ValidationMiddleware) ValidatePreferenceUpdate() gin.HandlerFunc {
	return vm.validateRequestBody(vm.validator.ValidatePreferenceUpdate)
}

// ValidateFeedback validates RecordFeedback request bodies.
func (vm *ValidationMiddleware) ValidateFeedback() gin.HandlerFunc {
	return vm.validateRequestBody(vm.validator.ValidateFeedback)
}

func (vm *ValidationMiddleware) validateRequestBody(check func([]byte) *validation.ValidationResult) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			vm.sendValidationError(c, "BODY_READ_ERROR", "Failed to read request body")
			return
		}

		// Restore request body for downstream handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if len(bodyBytes) == 0 {
			vm.sendValidationError(c, "EMPTY_BODY", "Request body is required")
			return
		}

		var jsonData interface{}
		if err := json.Unmarshal(bodyBytes, &jsonData); err != nil {
			vm.sendValidationError(c, "INVALID_JSON", "Request body must be valid JSON")
			return
		}

		result := check(bodyBytes)
		if !result.Valid {
			c.JSON(http.StatusBadRequest, result.ToAPIError())
			c.Abort()
			return
		}

		c.Next()
	}
}

func (vm *ValidationMiddleware) sendValidationError(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
	c.Abort()
}
