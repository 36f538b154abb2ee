package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/handlers"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	templateHandler *handlers.TemplateHandler,
	projectTaskHandler *handlers.ProjectTaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.ActorMiddleware())
	{
		secured.GET("/task-templates", templateHandler.ListTemplates)
		secured.POST("/task-templates", templateHandler.CreateTemplate)
		secured.POST("/task-templates/generate", templateHandler.GenerateTasks)
		secured.GET("/task-templates/:id", templateHandler.GetTemplate)
		secured.PATCH("/task-templates/:id", templateHandler.UpdateTemplate)
		secured.DELETE("/task-templates/:id", templateHandler.DeleteTemplate)
		secured.POST("/task-templates/:id/preview", templateHandler.PreviewTemplate)
		secured.GET("/projects/:id/tasks", projectTaskHandler.ListProjectTasks)
	}
}
