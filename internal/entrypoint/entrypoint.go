package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarpov/tasklist/internal/auth"
	"github.com/akarpov/tasklist/internal/config"
	"github.com/akarpov/tasklist/internal/database"
	"github.com/akarpov/tasklist/internal/database/tasks"
	"github.com/akarpov/tasklist/internal/database/users"
	http_controllers "github.com/akarpov/tasklist/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Tasklist v%s", version)

	// A missing signing secret is a deployment error, not a state to limp
	// along in with some hardcoded fallback.
	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("AUTH_JWT_SECRET is not set. Refusing to start without a token signing secret.")
	}
	if cfg.Auth.TokenTTL <= 0 {
		log.Fatalf("AUTH_TOKEN_TTL_MINUTES must be a positive integer")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Wire the auth core: repositories, token issuer, service, middleware
	userRepo := users.NewRepository(db.DB)
	taskRepo := tasks.NewRepository(db.DB)

	tokenIssuer := auth.NewTokenIssuer(cfg.Auth)
	authService := auth.NewService(userRepo, tokenIssuer, cfg.Auth)
	authMiddleware := auth.NewMiddleware(authService)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		TaskStore:      taskRepo,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
