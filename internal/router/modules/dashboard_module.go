package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airlabs/air-tasks/internal/container"
	handlers "github.com/airlabs/air-tasks/internal/interface/http"
	"github.com/airlabs/air-tasks/internal/interface/middleware"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
}

func NewDashboardModule(h *handlers.DashboardHandler) *DashboardModule {
	return &DashboardModule{Handler: h}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())
	rg.GET("/dashboard-stats", limiter, m.Handler.Stats)
}
