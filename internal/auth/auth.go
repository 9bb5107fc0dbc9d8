package auth

import (
	"context"
	"errors"
	"time"

	tokenDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/token"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates the two token kinds carried in claims. Verification
// rejects a token presented for the wrong purpose.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT payload: the owning user, the token kind, and the
// registered claims (jti in RegisteredClaims.ID keys the blacklist).
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResult is the login response body.
type LoginResult struct {
	ID     uuid.UUID  `json:"id"`
	Email  string     `json:"email"`
	Tokens AuthTokens `json:"tokens"`
}

// RegisterResult is the signup response body.
type RegisterResult struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}

type ServiceAPI interface {
	Register(dto RegisterDTO) (*RegisterResult, error)
	Authenticate(dto LoginDTO) (*LoginResult, error)
	RefreshAccessToken(refreshToken string) (string, error)
	Logout(refreshToken string) error
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUser(userID uuid.UUID) (*userDatamodel.User, error)
}

type RepositoryAPI interface {
	CreateUser(u *userDatamodel.User) error
	GetUserByEmail(email string) (*userDatamodel.User, error)
	GetUserByID(id uuid.UUID) (*userDatamodel.User, error)
	EmailExists(email string) (bool, error)
	UsernameExists(username string) (bool, error)
	PhoneNumberExists(phone string) (bool, error)
}

// RevocationAPI is the refresh-token blacklist. Entries are consulted on
// every refresh and logout; expired entries may be pruned at any time.
type RevocationAPI interface {
	Revoke(entry *tokenDatamodel.RevokedToken) error
	IsRevoked(jti string) (bool, error)
	PruneExpired(now time.Time) (int64, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrWrongType    = errors.New("token type mismatch")

	// ErrUserNotFound is returned by RepositoryAPI lookups for a missing
	// user, so callers can tell "no such user" from a storage failure.
	ErrUserNotFound = errors.New("user not found")
)

type userCtxKey string

// ContextUserKey holds the authenticated user loaded by the auth middleware.
const ContextUserKey userCtxKey = "authUser"

func UserFromContext(ctx context.Context) (*userDatamodel.User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*userDatamodel.User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *userDatamodel.User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
