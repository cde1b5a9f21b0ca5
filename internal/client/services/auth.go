// Package services contains the application services of the hoot client:
// the auth session, the hoot write orchestration, and the session-gated
// loader that ties cache population to authentication state.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/client/repositories/credentials"
	"github.com/caojohnny91/hoot-client/internal/dbx"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

// Keys in the credentials table. The token is the only thing required for a
// session; the username is kept alongside as a prompt default.
const (
	tokenKey    = "token"
	usernameKey = "username"
)

// AuthError reports a rejected sign-in or sign-up attempt. The remote cause
// is preserved for errors.Is/errors.As; session state is unchanged when an
// AuthError is returned.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthService is the process-wide auth session.
//
// Contract:
//   - SignUp: create an account remotely, persist the returned token,
//     return the decoded identity.
//   - SignIn: same contract against the sign-in endpoint.
//   - SignOut: clear the persisted credential; no remote call.
//   - CurrentUser: decode the stored token without a network call; nil
//     means anonymous and is never an error.
//   - Token: yield the stored bearer credential for outbound requests.
type AuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) (*models.User, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	Token(ctx context.Context) (string, error)
	LastUsername(ctx context.Context) string
}

type authService struct {
	client gateway.Client
	db     *sql.DB
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// local credential database.
func NewAuthService(client gateway.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: client, db: db, log: log.With("component", "auth")}
}

func (a *authService) repo(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (*models.User, error) {
	return a.exchange(ctx, "sign-up", creds, a.client.SignUp)
}

func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (*models.User, error) {
	return a.exchange(ctx, "sign-in", creds, a.client.SignIn)
}

// exchange runs one token exchange: validate, call the endpoint, decode the
// returned token, then persist token and username in one transaction. The
// credential store is only written once the token is known to be usable.
func (a *authService) exchange(
	ctx context.Context,
	op string,
	creds models.Credentials,
	call func(ctx context.Context, creds models.Credentials) (string, error),
) (*models.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}

	token, err := call(ctx, creds)
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}

	user, err := decodeIdentity(token)
	if err != nil {
		return nil, &AuthError{Op: op, Err: fmt.Errorf("unusable token from server: %w", err)}
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, usernameKey, []byte(user.Username))
	})
	if err != nil {
		return nil, fmt.Errorf("persisting credential: %w", err)
	}

	a.log.Info(ctx, "session established", "op", op, "username", user.Username)
	return user, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.repo(a.db).Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	a.log.Info(ctx, "session ended")
	return nil
}

// CurrentUser decodes the stored token into an identity. A missing,
// unreadable, or malformed token yields nil (anonymous) and never an error.
func (a *authService) CurrentUser(ctx context.Context) *models.User {
	token, err := a.Token(ctx)
	if err != nil {
		a.log.Warn(ctx, "credential store unreadable, treating as anonymous", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	user, err := decodeIdentity(token)
	if err != nil {
		a.log.Warn(ctx, "stored token is malformed, treating as anonymous", "error", err)
		return nil
	}
	return user
}

func (a *authService) Token(ctx context.Context) (string, error) {
	value, err := a.repo(a.db).Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// LastUsername returns the username of the last established session, or ""
// when none is known. Used only as a prompt default.
func (a *authService) LastUsername(ctx context.Context) string {
	value, err := a.repo(a.db).Get(ctx, usernameKey)
	if err != nil {
		return ""
	}
	return string(value)
}

// identityClaims is the token shape issued by the backend: the user record
// nested under a "payload" claim next to the registered ones.
type identityClaims struct {
	Payload models.User `json:"payload"`
	jwt.RegisteredClaims
}

var errNoIdentity = fmt.Errorf("token carries no identity")

// decodeIdentity extracts the user identity from a bearer token. The client
// holds no signing key, so the parse is unverified; the server remains the
// authority on whether the token is accepted.
func decodeIdentity(token string) (*models.User, error) {
	var claims identityClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	if claims.Payload.ID == "" {
		return nil, errNoIdentity
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}
	user := claims.Payload
	return &user, nil
}
