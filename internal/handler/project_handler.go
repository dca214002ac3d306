package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/service/portfolio"
)

type ProjectHandler struct {
	portfolio *portfolio.Service
	logger    *zap.Logger
}

func NewProjectHandler(p *portfolio.Service, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{portfolio: p, logger: logger}
}

// ListProjects handles GET /projects?status=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	statusFilter := c.Query("status")

	projects, err := h.portfolio.ListProjects(c.Request.Context(), statusFilter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.portfolio.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req model.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.portfolio.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("CreateProject: success",
		zap.String("project_id", created.ID),
		zap.String("name", created.Name),
	)
	c.JSON(http.StatusCreated, created)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req model.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.portfolio.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject handles DELETE /projects/:id. Deleting an unknown id is a
// success: delete is idempotent.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.portfolio.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProjectDetails handles GET /projects/:id/details
func (h *ProjectHandler) GetProjectDetails(c *gin.Context) {
	details, err := h.portfolio.GetProjectDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, details)
}
