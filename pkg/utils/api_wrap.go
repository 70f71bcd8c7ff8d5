package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func TraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

func RespondJSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: TraceID(c),
	})
}

// HandleServiceError maps a service error onto a status code and a client-safe message.
// Internal failures are logged with their cause and reported with the fallback message.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidPayload):
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
	case errors.Is(err, ErrMissingUserFields):
		RespondError(c, http.StatusBadRequest, "Email and name are required")
	case errors.Is(err, ErrMissingFeedbackFields):
		RespondError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrRatingOutOfRange):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrRatingNotInteger):
		RespondError(c, http.StatusBadRequest, "Rating must be a whole number")
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusBadRequest, "User does not exist")
	case errors.Is(err, ErrNoFeedbackForUser):
		RespondError(c, http.StatusNotFound, "No feedback found for this user")
	case errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, "Feedback not found")
	default:
		logger.Error(fallback,
			zap.Error(err),
			zap.String("trace_id", TraceID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		RespondError(c, http.StatusInternalServerError, fallback)
	}
}
