package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/service/portfolio"
	"portfoliokollen/internal/store"
	"portfoliokollen/pkg/logger"
)

// respondError maps the closed error taxonomy onto HTTP statuses. Wrapped
// messages ("could not fetch projects: ...") go to the client as-is; the
// presentation layer is where store errors are caught and displayed.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, portfolio.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBackend):
		logger.WithTrace(c.Request.Context(), log).Error("Backend error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.WithTrace(c.Request.Context(), log).Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
