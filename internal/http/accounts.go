package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov/tasklist/internal/auth"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for obtaining an access token. Bound with
// ShouldBind so both form posts and JSON bodies work.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileResponse is the authenticated user's own record.
type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// AccountsController handles registration, login and profile endpoints.
type AccountsController struct {
	service *auth.Service
}

// NewAccountsController creates a new accounts controller.
func NewAccountsController(service *auth.Service) *AccountsController {
	return &AccountsController{service: service}
}

// Register creates a new user account.
// POST /register
func (ac *AccountsController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	_, err := ac.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			respondConflict(c, "username already taken")
		case errors.Is(err, auth.ErrUsernameRequired),
			errors.Is(err, auth.ErrPasswordRequired),
			errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "register")
		}
		return
	}

	respondCreated(c, SuccessResponse{Message: "user registered successfully"})
}

// Login validates credentials and issues an access token. Failures are
// always the same generic 401, whatever actually went wrong.
// POST /login
func (ac *AccountsController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	token, err := ac.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondUnauthorized(c)
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Profile returns the authenticated user's own record.
// GET /profile
func (ac *AccountsController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, ProfileResponse{
		ID:       GetUserID(c),
		Username: auth.GetUsername(c),
	})
}
