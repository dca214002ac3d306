package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/service/portfolio"
)

type MilestoneHandler struct {
	portfolio *portfolio.Service
	logger    *zap.Logger
}

func NewMilestoneHandler(p *portfolio.Service, logger *zap.Logger) *MilestoneHandler {
	return &MilestoneHandler{portfolio: p, logger: logger}
}

// ListMilestones handles GET /projects/:id/milestones
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.portfolio.ListMilestones(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// CreateMilestone handles POST /projects/:id/milestones
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var req model.Milestone
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.ProjectID = c.Param("id")

	created, err := h.portfolio.CreateMilestone(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateMilestone handles PUT /milestones/:id
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	var req model.MilestoneUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.portfolio.UpdateMilestone(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMilestone handles DELETE /milestones/:id
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	if err := h.portfolio.DeleteMilestone(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
