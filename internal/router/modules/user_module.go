package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"usertaskapi/internal/container"
	handlers "usertaskapi/internal/interface/http"
	"usertaskapi/internal/interface/middleware"
	"usertaskapi/pkg/helpers"
)

// UserModule wires the account endpoints.
// Public: POST /api/register, POST /api/login
// Protected: GET /api/users, GET /api/users/:userId
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenIssuer
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenIssuer) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.Tokens))
	{
		auth.GET("/users", m.Handler.ListUsers)
		auth.GET("/users/:userId", m.Handler.GetUser)
	}
}
