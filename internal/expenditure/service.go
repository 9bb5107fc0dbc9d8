package expenditure

import (
	"log/slog"

	apperrors "github.com/budgetwise/expense-tracker/internal"
	expenditureDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/expenditure"
	"github.com/google/uuid"
)

// Service handles expenditure business logic, always scoped to the
// authenticated owner.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ownerID uuid.UUID) ([]*Expenditure, error) {
	recs, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		s.logger.Error("failed to list expenditures", "error", err, "owner_id", ownerID)
		return nil, apperrors.NewInternalError("failed to list expenditures", err)
	}
	return fromDataModelSlice(recs), nil
}

func (s *Service) Create(ownerID uuid.UUID, dto CreateExpenditureDTO) (*Expenditure, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec := &expenditureDatamodel.Expenditure{
		ID:              uuid.New(),
		Category:        dto.Category,
		NameOfItem:      dto.NameOfItem,
		EstimatedAmount: *dto.EstimatedAmount,
		UserID:          ownerID,
	}

	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to create expenditure", "error", err, "owner_id", ownerID)
		return nil, apperrors.NewInternalError("failed to create expenditure", err)
	}

	s.logger.Info("expenditure created", "expenditure_id", rec.ID, "owner_id", ownerID)
	return fromDataModel(rec), nil
}

func (s *Service) Get(ownerID uuid.UUID, id string) (*Expenditure, error) {
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

func (s *Service) Update(ownerID uuid.UUID, id string, dto UpdateExpenditureDTO) (*UpdateExpenditureResponse, error) {
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

	if dto.Category != nil {
		rec.Category = *dto.Category
	}
	if dto.NameOfItem != nil {
		rec.NameOfItem = *dto.NameOfItem
	}
	if dto.EstimatedAmount != nil {
		rec.EstimatedAmount = *dto.EstimatedAmount
	}

	if err := s.repo.Update(rec); err != nil {
		s.logger.Error("failed to update expenditure", "error", err, "expenditure_id", recID)
		return nil, ErrInvalidData
	}

	return &UpdateExpenditureResponse{
		Category:        rec.Category,
		NameOfItem:      rec.NameOfItem,
		EstimatedAmount: rec.EstimatedAmount,
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
		s.logger.Error("failed to delete expenditure", "error", err, "expenditure_id", recID)
		return ErrDeleteFailed
	}

	s.logger.Info("expenditure deleted", "expenditure_id", recID, "owner_id", ownerID)
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}
