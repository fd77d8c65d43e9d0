package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airlabs/air-tasks/internal/container"
	handlers "github.com/airlabs/air-tasks/internal/interface/http"
	"github.com/airlabs/air-tasks/internal/interface/middleware"
)

// AuthModule wires the account endpoints. There is no session state:
// register/login validate credentials per request, logout is a no-op
// acknowledgement and check-auth is a point lookup by numeric id.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
	rg.GET("/check-auth", m.Handler.CheckAuth)
}
