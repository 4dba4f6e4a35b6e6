package handler

import (
	"errors"
	"net/http"

	"github.com/fincore/backend/internal/domain/accounting"
	"github.com/fincore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the request ID middleware
// stores the request ID.
const RequestIDKey = "request_id"

// RequestIDHeader is the HTTP header carrying the client-supplied request ID.
const RequestIDHeader = "X-Request-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDHeader); id != "" {
		return id
	}
	return ""
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	requestID := getRequestID(c)
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	))
}

// HandleError converts resolution errors to HTTP responses. Status codes
// are derived from the error code table in the dto package.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var storageErr *accounting.StorageUnavailableError
	if errors.As(err, &storageErr) {
		h.ErrorWithCode(c, dto.ErrCodeStorageUnavailable, "Mapping store is unavailable")
		return
	}

	var integrityErr *accounting.MappingIntegrityError
	if errors.As(err, &integrityErr) {
		h.ErrorWithCode(c, dto.ErrCodeMappingIntegrity, integrityErr.Error())
		return
	}

	// Default to internal error for unknown error types
	h.ErrorWithCode(c, dto.ErrCodeInternal, "An unexpected error occurred")
}
