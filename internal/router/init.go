package router

import (
	"usertaskapi/internal/application"
	"usertaskapi/internal/container"
	pginfra "usertaskapi/internal/infrastructure/postgres"
	handlers "usertaskapi/internal/interface/http"
	"usertaskapi/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)

	accountSvc := application.NewAccountService(userRepo, tokens, logger)
	taskSvc := application.NewTaskService(taskRepo, userRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(accountSvc, logger), tokens))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), tokens))
}
