package proposal

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// ListProposalsUseCase отдаёт предложения: по запросу для его владельца и
// собственные для дизайнера.
type ListProposalsUseCase struct {
	requestRepo  repository.RequestRepository
	proposalRepo repository.ProposalRepository
}

func NewListProposalsUseCase(requestRepo repository.RequestRepository, proposalRepo repository.ProposalRepository) *ListProposalsUseCase {
	return &ListProposalsUseCase{requestRepo: requestRepo, proposalRepo: proposalRepo}
}

// ByRequest возвращает предложения запроса. Список доступен только владельцу
// запроса: чужие предложения друг другу не показываются.
func (uc *ListProposalsUseCase) ByRequest(ctx context.Context, clientID, requestID uuid.UUID) ([]*entity.Proposal, error) {
	req, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsOwnedBy(clientID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "предложения видны только владельцу запроса")
	}

	return uc.proposalRepo.FindByRequestID(ctx, requestID)
}

// ByDesigner возвращает все предложения дизайнера.
func (uc *ListProposalsUseCase) ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Proposal, error) {
	return uc.proposalRepo.FindByDesignerID(ctx, designerID)
}
