package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/service/portfolio"
)

type ActivityHandler struct {
	portfolio *portfolio.Service
	logger    *zap.Logger
}

func NewActivityHandler(p *portfolio.Service, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{portfolio: p, logger: logger}
}

// ListActivities handles GET /projects/:id/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.portfolio.ListActivities(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// CreateActivity handles POST /projects/:id/activities. The owning
// project comes from the path, not the body.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req model.Activity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.ProjectID = c.Param("id")

	created, err := h.portfolio.CreateActivity(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("CreateActivity: success",
		zap.String("activity_id", created.ID),
		zap.String("project_id", created.ProjectID),
	)
	c.JSON(http.StatusCreated, created)
}

// UpdateActivity handles PUT /activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req model.ActivityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.portfolio.UpdateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteActivity handles DELETE /activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	if err := h.portfolio.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
