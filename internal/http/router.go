package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Registration, login and health are public; everything under the
// authenticated group requires a valid bearer token.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	accounts := NewAccountsController(cfg.AuthService)
	tasks := NewTasksController(cfg.TaskStore)

	// Public routes
	router.GET("/health", health.Status)
	router.POST("/register", accounts.Register)
	router.POST("/login", accounts.Login)

	// Protected routes
	authed := router.Group("/", cfg.AuthMiddleware.Handler())
	authed.GET("/profile", accounts.Profile)
	authed.POST("/todos/", tasks.CreateTask)
	authed.GET("/todos/", tasks.ListTasks)
	authed.PUT("/todos/:id", tasks.MarkComplete)
	authed.DELETE("/todos/:id", tasks.DeleteTask)

	return router
}
