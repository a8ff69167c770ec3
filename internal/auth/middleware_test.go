package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/tasklist/internal/config"
)

func setupMiddlewareRouter(t *testing.T, cfg config.Auth) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := setupTestService(t, cfg)

	router := gin.New()
	router.GET("/whoami", NewMiddleware(svc).Handler(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":       GetUserID(c),
			"username": GetUsername(c),
		})
	})

	return router, svc
}

func doWhoami(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_Authenticated(t *testing.T) {
	cfg := testAuthConfig()
	router, svc := setupMiddlewareRouter(t, cfg)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	token, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	w := doWhoami(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	assert.NotZero(t, body["id"])
}

func TestMiddleware_RejectionsAreIdentical(t *testing.T) {
	cfg := testAuthConfig()
	router, svc := setupMiddlewareRouter(t, cfg)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	expired, err := NewTokenIssuer(config.Auth{JWTSecret: cfg.JWTSecret, TokenTTL: -time.Minute}).Issue("alice")
	require.NoError(t, err)

	deletedUser, err := NewTokenIssuer(cfg).Issue("ghost")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no authorization header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "bearer with empty token", header: "Bearer "},
		{name: "malformed token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "token for deleted user", header: "Bearer " + deletedUser},
	}

	var firstBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doWhoami(router, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

			// Every rejection carries the same body: no path is
			// distinguishable from another.
			if firstBody == "" {
				firstBody = w.Body.String()
			}
			assert.JSONEq(t, firstBody, w.Body.String())
		})
	}
}
