package proposal

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// AcceptProposalUseCase принимает предложение владельцем запроса. Принятие
// эксклюзивно: остальные ожидающие предложения запроса отклоняются, запрос
// уходит в работу.
type AcceptProposalUseCase struct {
	requestRepo  repository.RequestRepository
	proposalRepo repository.ProposalRepository
}

func NewAcceptProposalUseCase(requestRepo repository.RequestRepository, proposalRepo repository.ProposalRepository) *AcceptProposalUseCase {
	return &AcceptProposalUseCase{requestRepo: requestRepo, proposalRepo: proposalRepo}
}

func (uc *AcceptProposalUseCase) Execute(ctx context.Context, clientID, proposalID uuid.UUID) (*entity.Proposal, error) {
	proposal, err := uc.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.FindByID(ctx, proposal.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.IsOwnedBy(clientID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "предложение относится к чужому запросу")
	}

	if err := proposal.Accept(); err != nil {
		return nil, err
	}
	if err := req.StartWork(); err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	if err := uc.proposalRepo.RejectPendingExcept(ctx, req.ID, proposal.ID); err != nil {
		return nil, err
	}
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	return proposal, nil
}

// RejectProposalUseCase отклоняет предложение владельцем запроса. Статус
// запроса при этом не меняется.
type RejectProposalUseCase struct {
	requestRepo  repository.RequestRepository
	proposalRepo repository.ProposalRepository
}

func NewRejectProposalUseCase(requestRepo repository.RequestRepository, proposalRepo repository.ProposalRepository) *RejectProposalUseCase {
	return &RejectProposalUseCase{requestRepo: requestRepo, proposalRepo: proposalRepo}
}

func (uc *RejectProposalUseCase) Execute(ctx context.Context, clientID, proposalID uuid.UUID) (*entity.Proposal, error) {
	proposal, err := uc.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.FindByID(ctx, proposal.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.IsOwnedBy(clientID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "предложение относится к чужому запросу")
	}

	if err := proposal.Reject(); err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}

	return proposal, nil
}
