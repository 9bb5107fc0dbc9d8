package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	tokenDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/token"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LoginHook runs synchronously after a successful authentication.
type LoginHook func(u *userDatamodel.User)

// Service orchestrates registration, login, refresh, and logout over the
// user store, the token issuer, and the revocation list.
type Service struct {
	repo        RepositoryAPI
	revocations RevocationAPI
	tokens      TokenGeneratorAPI
	bcryptCost  int
	onLogin     LoginHook
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, revocations RevocationAPI, tokens TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:        repo,
		revocations: revocations,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// SetLoginHook installs the post-login hook. The hook is invoked inline on
// the request path, so it must be fast.
func (s *Service) SetLoginHook(hook LoginHook) {
	s.onLogin = hook
}

func (s *Service) Register(dto RegisterDTO) (*RegisterResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dupes := map[string]string{}
	if taken, err := s.repo.EmailExists(dto.Email); err != nil {
		return nil, apperrors.NewInternalError("failed to check email uniqueness", err)
	} else if taken {
		dupes["email"] = "User with this Email already exists."
	}
	if taken, err := s.repo.UsernameExists(dto.Username); err != nil {
		return nil, apperrors.NewInternalError("failed to check username uniqueness", err)
	} else if taken {
		dupes["username"] = "A user with that username already exists."
	}
	if taken, err := s.repo.PhoneNumberExists(dto.PhoneNumber); err != nil {
		return nil, apperrors.NewInternalError("failed to check phone number uniqueness", err)
	} else if taken {
		dupes["phone_number"] = "User with this Phone number already exists."
	}
	if len(dupes) > 0 {
		return nil, &apperrors.AppError{
			Type:       apperrors.ErrorTypeConflict,
			Code:       apperrors.ErrCodeValidationFailed,
			Message:    "Validation failed",
			Kind:       apperrors.EnvelopeValidations,
			StatusCode: http.StatusBadRequest,
			Fields:     dupes,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &userDatamodel.User{
		ID:           uuid.New(),
		Email:        dto.Email,
		Username:     dto.Username,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PhoneNumber:  dto.PhoneNumber,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.repo.CreateUser(user); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	return &RegisterResult{
		ID:      user.ID,
		Email:   user.Email,
		Message: "User created successfully",
	}, nil
}

// Authenticate verifies credentials and issues an access/refresh pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(dto.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	access, err := s.tokens.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate access token", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate refresh token", err)
	}

	if s.onLogin != nil {
		s.onLogin(user)
	}

	return &LoginResult{
		ID:     user.ID,
		Email:  user.Email,
		Tokens: AuthTokens{Access: access, Refresh: refresh},
	}, nil
}

// RefreshAccessToken exchanges a live, non-blacklisted refresh token for a
// new access token.
func (s *Service) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.verifyRefresh(refreshToken)
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			return "", err
		}
		return "", apperrors.ErrInvalidRefresh
	}

	access, err := s.tokens.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", apperrors.NewInternalError("failed to generate access token", err)
	}

	return access, nil
}

// Logout blacklists the refresh token. Presenting an already-revoked token
// fails the same way a malformed one does; logout is not idempotent.
func (s *Service) Logout(refreshToken string) error {
	claims, err := s.verifyRefresh(refreshToken)
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			return err
		}
		return apperrors.ErrLogoutInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.ErrLogoutInvalidToken
	}

	entry := &tokenDatamodel.RevokedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: time.Now(),
	}

	if err := s.revocations.Revoke(entry); err != nil {
		s.logger.Error("failed to blacklist refresh token", "error", err, "user_id", claims.UserID)
		return apperrors.NewInternalError("failed to blacklist token", err)
	}

	s.logger.Info("refresh token blacklisted", "user_id", claims.UserID, "jti", claims.ID)
	return nil
}

// verifyRefresh checks signature, expiry, kind, and the blacklist. A token
// problem comes back as a plain sentinel; a blacklist-store failure comes
// back as an internal AppError so it is not mistaken for a bad token.
func (s *Service) verifyRefresh(refreshToken string) (*Claims, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongType
	}

	revoked, err := s.revocations.IsRevoked(claims.ID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check token blacklist", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateAccessToken verifies a bearer token for request authentication.
// Refresh tokens are not accepted here.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongType
	}
	return claims, nil
}

func (s *Service) GetUser(userID uuid.UUID) (*userDatamodel.User, error) {
	return s.repo.GetUserByID(userID)
}

// PruneRevoked drops blacklist rows whose tokens have expired on their own.
func (s *Service) PruneRevoked(now time.Time) (int64, error) {
	return s.revocations.PruneExpired(now)
}
