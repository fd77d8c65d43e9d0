package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airlabs/air-tasks/internal/container"
	handlers "github.com/airlabs/air-tasks/internal/interface/http"
	"github.com/airlabs/air-tasks/internal/interface/middleware"
)

// TaskModule wires task CRUD, toggle and the filtered listing endpoint.
type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	tasks := rg.Group("/tasks")
	tasks.Use(limiter)
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.PUT("/:id/toggle", m.Handler.Toggle)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
