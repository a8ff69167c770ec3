package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/tasklist/internal/config"
	"github.com/akarpov/tasklist/internal/database/users"
	"github.com/akarpov/tasklist/internal/entities"
)

// lookupTimeout bounds user-store calls during identity resolution so a
// stalled store rejects the request instead of hanging it.
const lookupTimeout = 5 * time.Second

var (
	// ErrInvalidCredentials is the single rejection for every credential or
	// token failure. "Wrong password", "no such user", "expired token" and
	// "unknown subject" are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = users.ErrUserExists

	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)

// UserRepository defines the user-store operations the service depends on.
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
}

// Service handles registration, login and token-based identity resolution.
type Service struct {
	users  UserRepository
	tokens *TokenIssuer
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(userRepo UserRepository, tokens *TokenIssuer, cfg config.Auth) *Service {
	return &Service{
		users:  userRepo,
		tokens: tokens,
		config: cfg,
	}
}

// Register creates a new account with a hashed password.
// Returns ErrUserExists when the username is taken.
func (s *Service) Register(ctx context.Context, username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login validates credentials and issues an access token. A missing user
// and a wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a presented token to the user it was issued for.
// The user lookup runs under a bounded timeout. Every failure, token or
// lookup, collapses to ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*entities.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	user, err := s.users.GetUserByUsername(lookupCtx, subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
