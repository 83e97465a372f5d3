package proposal

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/validation"
)

// SubmitProposalInput — данные нового предложения дизайнера.
type SubmitProposalInput struct {
	RequestID     uuid.UUID
	DesignerID    uuid.UUID
	Message       string
	ProposedPrice float64
	EstimatedDays int
}

// SubmitProposalUseCase создаёт предложение по открытому запросу. Дизайнер
// не может откликаться на собственный запрос и на один запрос дважды, цена
// должна попадать в бюджет клиента.
type SubmitProposalUseCase struct {
	requestRepo  repository.RequestRepository
	proposalRepo repository.ProposalRepository
}

func NewSubmitProposalUseCase(requestRepo repository.RequestRepository, proposalRepo repository.ProposalRepository) *SubmitProposalUseCase {
	return &SubmitProposalUseCase{requestRepo: requestRepo, proposalRepo: proposalRepo}
}

func (uc *SubmitProposalUseCase) Execute(ctx context.Context, input SubmitProposalInput) (*entity.Proposal, error) {
	req, err := uc.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	if !req.IsOpen() {
		return nil, apperror.New(apperror.ErrCodeInvalidState, "запрос не принимает предложения")
	}
	if req.IsOwnedBy(input.DesignerID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "нельзя откликаться на собственный запрос")
	}

	existing, err := uc.proposalRepo.FindByRequestAndDesigner(ctx, input.RequestID, input.DesignerID)
	if err != nil && !errors.Is(err, apperror.ErrProposalNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.ErrCodeConflict, "предложение по этому запросу уже отправлено")
	}

	if err := validation.ValidateProposalMessage(input.Message); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if !req.Budget.IsInRange(input.ProposedPrice) {
		return nil, apperror.New(apperror.ErrCodeValidation, "предложенная цена должна укладываться в бюджет запроса")
	}

	proposal, err := entity.NewProposal(input.RequestID, input.DesignerID, input.Message, input.ProposedPrice, input.EstimatedDays)
	if err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	return proposal, nil
}
