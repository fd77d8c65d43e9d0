package router

import (
	"github.com/airlabs/air-tasks/internal/application"
	"github.com/airlabs/air-tasks/internal/container"
	pginfra "github.com/airlabs/air-tasks/internal/infrastructure/postgres"
	handlers "github.com/airlabs/air-tasks/internal/interface/http"
	"github.com/airlabs/air-tasks/internal/router/modules"
	"github.com/airlabs/air-tasks/pkg/helpers"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()
	pub := container.GetRabbitPub()

	userRepo := pginfra.NewUserRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)

	authSvc := application.NewAuthService(userRepo, eventPublisher(pub), logger)
	taskSvc := application.NewTaskService(taskRepo, userRepo, eventPublisher(pub), logger)
	dashSvc := application.NewDashboardService(taskRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger)))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashSvc, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// eventPublisher keeps a nil *RabbitPublisher from becoming a non-nil
// interface value inside the services.
func eventPublisher(p *helpers.RabbitPublisher) application.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
