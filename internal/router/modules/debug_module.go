package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airlabs/air-tasks/internal/container"
	"github.com/airlabs/air-tasks/internal/interface/middleware"
	"github.com/airlabs/air-tasks/pkg/response"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))

	rg.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"database": "PostgreSQL",
			"status":   "operational",
		}, "air-tasks server is running", nil)
	})
}
