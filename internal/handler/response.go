package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"seosik/internal/classifier"
	"seosik/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var rateLimited *classifier.RateLimitError
	var classification *classifier.ClassificationError
	switch {
	case errors.Is(err, domain.ErrNoInputDocuments):
		return http.StatusBadRequest, "NO_INPUT_DOCUMENTS", "at least one source PDF path is required"
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "source document not found"
	case errors.Is(err, domain.ErrNoDestination):
		return http.StatusUnprocessableEntity, "NO_DESTINATION", "no storage destination could be resolved"
	case errors.Is(err, domain.ErrPageOutOfRange):
		return http.StatusUnprocessableEntity, "PAGE_OUT_OF_RANGE", "requested page does not exist in the document"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "UPLOAD_FAILED", "upload to remote storage failed"
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "classifier rate limit exceeded; retry later"
	case errors.As(err, &classification):
		return http.StatusBadGateway, "CLASSIFICATION_FAILED", "document classification failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
