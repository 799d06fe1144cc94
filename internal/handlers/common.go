package handlers

import (
	"errors"
	"net/http"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.QuestionView
type Category = models.Category

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Server error",
}

func abortWith(c *gin.Context, status int) {
	msg, ok := statusMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConstraint),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrWriteFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFor(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Debug("request rejected", fields...)
	}
	abortWith(c, status)
}

func NotFound(c *gin.Context) {
	abortWith(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWith(c, http.StatusMethodNotAllowed)
}

// Recover renders the uniform 500 body after a handler panic.
func Recover(c *gin.Context, _ any) {
	abortWith(c, http.StatusInternalServerError)
}
