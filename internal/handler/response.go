package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resumelens/internal/domain"
)

// APIResponse is the standard envelope for all API responses. Failures carry
// only a short category message; internals stay server-side.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, APIResponse{Success: false, Message: msg})
}

// MapDomainError translates domain errors to HTTP status codes and
// user-facing messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusBadRequest, "unsupported file type; upload a PDF or plain text resume"
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "file exceeds the maximum allowed size"
	case errors.Is(err, domain.ErrContentTooLarge):
		return http.StatusUnprocessableEntity, "extracted text is too long to analyze"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "could not extract text from the file; it may be corrupt or encrypted"
	case errors.Is(err, domain.ErrInsufficientContent):
		return http.StatusUnprocessableEntity, "the file does not contain enough text to analyze"
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, "processing took too long; try a smaller file"
	case errors.Is(err, domain.ErrAnalysisFailed):
		return http.StatusInternalServerError, "resume analysis failed"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Errors mapping to 5xx are logged with full detail and the request ID.
func HandleError(c *gin.Context, log *zap.Logger, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID := c.GetString("request_id")
		log.Error("internal error", zap.String("request_id", requestID), zap.Error(err))
	}
	RespondError(c, status, msg)
}
