package user

import (
	"log/slog"

	"github.com/google/uuid"
)

// Service handles profile reads and updates.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetProfile returns the profile for the given user id. Malformed ids are
// reported the same way missing users are; the original API never split the
// two for profiles.
func (s *Service) GetProfile(userID string) (*Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return fromDataModel(u), nil
}

// UpdateProfile applies a partial update to first/last name and username.
func (s *Service) UpdateProfile(userID string, dto UpdateProfileDTO) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ErrUserNotFound
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	if vErr := dto.Validate(); vErr != nil {
		return ErrInvalidPayload
	}

	if dto.Username != nil && *dto.Username != u.Username {
		taken, err := s.repo.UsernameTakenByOther(*dto.Username, id)
		if err != nil || taken {
			return ErrInvalidPayload
		}
		u.Username = *dto.Username
	}
	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", id)
		return ErrInvalidPayload
	}

	s.logger.Info("profile updated", "user_id", id)
	return nil
}
