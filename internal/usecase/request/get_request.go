package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
)

type GetRequestUseCase struct {
	requestRepo repository.RequestRepository
}

func NewGetRequestUseCase(requestRepo repository.RequestRepository) *GetRequestUseCase {
	return &GetRequestUseCase{requestRepo: requestRepo}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	return uc.requestRepo.FindByID(ctx, id)
}
