package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopbot/internal/domain"
)

// respondError maps domain errors to HTTP statuses and masks internal ones
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrColorUnavailable):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrUnsupportedLanguage), errors.Is(err, domain.ErrInvalidQuantity):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		s.logger.Error("Request error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	c.JSON(status, gin.H{"error": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
