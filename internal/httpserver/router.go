package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"portfoliokollen/internal/handler"
	"portfoliokollen/internal/service/auth"
)

type Router struct {
	Engine *gin.Engine
}

// ReadyChecker reports whether the backing store is reachable. The memory
// backend is always ready.
type ReadyChecker func() error

func NewRouter(
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	activityHandler *handler.ActivityHandler,
	milestoneHandler *handler.MilestoneHandler,
	dependencyHandler *handler.DependencyHandler,
	authService *auth.Service,
	ready ReadyChecker,
	logger *zap.Logger,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceMiddleware())
	r.Use(RequestLogMiddleware(logger))
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/readyz", func(c *gin.Context) {
		if err := ready(); err != nil {
			c.JSON(500, gin.H{"status": "store_not_ready", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	api := r.Group("/")
	api.Use(AuthMiddleware(authService))
	{
		api.POST("/logout", authHandler.Logout)

		api.GET("/projects", projectHandler.ListProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
		api.GET("/projects/:id/details", projectHandler.GetProjectDetails)

		api.GET("/projects/:id/activities", activityHandler.ListActivities)
		api.POST("/projects/:id/activities", activityHandler.CreateActivity)
		api.PUT("/activities/:id", activityHandler.UpdateActivity)
		api.DELETE("/activities/:id", activityHandler.DeleteActivity)

		api.GET("/projects/:id/milestones", milestoneHandler.ListMilestones)
		api.POST("/projects/:id/milestones", milestoneHandler.CreateMilestone)
		api.PUT("/milestones/:id", milestoneHandler.UpdateMilestone)
		api.DELETE("/milestones/:id", milestoneHandler.DeleteMilestone)

		api.POST("/dependencies", dependencyHandler.CreateDependency)
		api.DELETE("/dependencies/:id", dependencyHandler.DeleteDependency)
	}

	return &Router{Engine: r}
}
