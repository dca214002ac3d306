package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/service/portfolio"
)

type DependencyHandler struct {
	portfolio *portfolio.Service
	logger    *zap.Logger
}

func NewDependencyHandler(p *portfolio.Service, logger *zap.Logger) *DependencyHandler {
	return &DependencyHandler{portfolio: p, logger: logger}
}

// CreateDependency handles POST /dependencies
func (h *DependencyHandler) CreateDependency(c *gin.Context) {
	var req model.Dependency
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.portfolio.CreateDependency(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("CreateDependency: success",
		zap.String("dependency_id", created.ID),
		zap.String("from_activity_id", created.FromActivityID),
		zap.String("to_activity_id", created.ToActivityID),
	)
	c.JSON(http.StatusCreated, created)
}

// DeleteDependency handles DELETE /dependencies/:id
func (h *DependencyHandler) DeleteDependency(c *gin.Context) {
	if err := h.portfolio.DeleteDependency(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
