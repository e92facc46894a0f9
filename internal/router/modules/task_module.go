package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"usertaskapi/internal/container"
	handlers "usertaskapi/internal/interface/http"
	"usertaskapi/internal/interface/middleware"
	"usertaskapi/pkg/helpers"
)

// TaskModule wires the task CRUD endpoints. Everything here requires a
// valid bearer token.
type TaskModule struct {
	Handler *handlers.TaskHandler
	Tokens  *helpers.TokenIssuer
}

func NewTaskModule(h *handlers.TaskHandler, tokens *helpers.TokenIssuer) *TaskModule {
	return &TaskModule{Handler: h, Tokens: tokens}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/tasks", m.Handler.Create)
		auth.GET("/tasks/user/:userId", m.Handler.ListByUser)
		auth.PUT("/tasks/:taskId", m.Handler.Update)
		auth.DELETE("/tasks/:taskId", m.Handler.Delete)
	}
}
