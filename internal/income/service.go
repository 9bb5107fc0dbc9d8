package income

import (
	"log/slog"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	incomeDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/income"
	"github.com/google/uuid"
)

// Service handles income business logic. Every operation takes the
// authenticated owner; the client never supplies ownership.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ownerID uuid.UUID) ([]*Income, error) {
	recs, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		s.logger.Error("failed to list incomes", "error", err, "owner_id", ownerID)
		return nil, apperrors.NewInternalError("failed to list incomes", err)
	}
	return fromDataModelSlice(recs), nil
}

func (s *Service) Create(ownerID uuid.UUID, dto CreateIncomeDTO) (*Income, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec := &incomeDatamodel.Income{
		ID:            uuid.New(),
		NameOfRevenue: dto.NameOfRevenue,
		Amount:        *dto.Amount,
		UserID:        ownerID,
	}

	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to create income", "error", err, "owner_id", ownerID)
		return nil, apperrors.NewInternalError("failed to create income", err)
	}

	s.logger.Info("income created", "income_id", rec.ID, "owner_id", ownerID)
	return fromDataModel(rec), nil
}

func (s *Service) Get(ownerID uuid.UUID, id string) (*Income, error) {
	recID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(ownerID, recID)
	if err != nil {
		return nil, err
	}
	return fromDataModel(rec), nil
}

func (s *Service) Update(ownerID uuid.UUID, id string, dto UpdateIncomeDTO) (*UpdateIncomeResponse, error) {
	recID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(ownerID, recID)
	if err != nil {
		return nil, err
	}

	if vErr := dto.Validate(); vErr != nil {
		return nil, ErrInvalidData
	}

	if dto.NameOfRevenue != nil {
		rec.NameOfRevenue = *dto.NameOfRevenue
	}
	if dto.Amount != nil {
		rec.Amount = *dto.Amount
	}

	if err := s.repo.Update(rec); err != nil {
		s.logger.Error("failed to update income", "error", err, "income_id", recID)
		return nil, ErrInvalidData
	}

	return &UpdateIncomeResponse{
		NameOfRevenue: rec.NameOfRevenue,
		Amount:        rec.Amount,
	}, nil
}

func (s *Service) Delete(ownerID uuid.UUID, id string) error {
	recID, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ownerID, recID); err != nil {
		return err
	}

	if err := s.repo.Delete(ownerID, recID); err != nil {
		s.logger.Error("failed to delete income", "error", err, "income_id", recID)
		return ErrDeleteFailed
	}

	s.logger.Info("income deleted", "income_id", recID, "owner_id", ownerID)
	return nil
}

// parseID distinguishes a malformed identifier from a missing record.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}
