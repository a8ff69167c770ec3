// Package auth provides authentication for the task-list API.
//
// Clients register with a username and password, log in to receive a signed
// time-limited bearer token, and present that token on every protected
// request:
//
//	Authorization: Bearer <token>
//
// Tokens are stateless HS256 JWTs carrying the username as subject; nothing
// is persisted server-side for a session. Passwords are stored as bcrypt
// hashes only.
//
// # Configuration
//
//	AUTH_JWT_SECRET=<secret>     # Required, no default. Startup fails if unset.
//	AUTH_TOKEN_TTL_MINUTES=30    # Token validity window
//	AUTH_BCRYPT_COST=12          # bcrypt cost factor
//
// # Usage
//
// Wire up the service and middleware in the entrypoint:
//
//	svc := auth.NewService(userRepo, auth.NewTokenIssuer(cfg.Auth), cfg.Auth)
//	protected.Use(auth.NewMiddleware(svc).Handler())
//
// Extract the identity in handlers:
//
//	userID := auth.GetUserID(c)
//
// Every rejection path (missing header, malformed token, expired token,
// wrong signature, unknown user, wrong password) surfaces as the same
// generic ErrInvalidCredentials so callers cannot enumerate accounts.
package auth
