package http

import (
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Tasks  *handlers.TaskHandler
	Users  *handlers.UserHandler
	Board  *handlers.BoardHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.GET("/users", h.Users.ListUsers)
		api.GET("/users/:id", h.Users.GetUser)
		api.POST("/users", h.Users.CreateUser)
	}

	r.GET("/", h.Board.Index)
	page := r.Group("/")
	page.Use(middleware.LanguageMiddleware())
	{
		page.GET("/tasks", h.Board.Page)
		page.POST("/tasks/refresh", h.Board.Refresh)
		page.POST("/tasks/drag/start", h.Board.DragStart)
		page.POST("/tasks/drag/end", h.Board.DragEnd)
		page.GET("/tasks/new", h.Board.OpenForm)
		page.POST("/tasks/new", h.Board.SubmitForm)
		page.POST("/tasks/new/cancel", h.Board.CancelForm)
		page.POST("/theme", h.Board.ToggleTheme)
		page.GET("/tasks/export.pdf", h.Board.ExportPDF)
	}
}
