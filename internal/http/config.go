package http

import (
	"github.com/akarpov/tasklist/internal/auth"
	"github.com/akarpov/tasklist/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// Task management
	TaskStore TaskStore

	// Application info
	Version string
}
