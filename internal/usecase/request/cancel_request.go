package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// CancelRequestUseCase отменяет запрос его владельцем. Отмена возможна из
// статусов open и in_progress, отменённый запрос с доски исчезает навсегда.
type CancelRequestUseCase struct {
	requestRepo repository.RequestRepository
}

func NewCancelRequestUseCase(requestRepo repository.RequestRepository) *CancelRequestUseCase {
	return &CancelRequestUseCase{requestRepo: requestRepo}
}

func (uc *CancelRequestUseCase) Execute(ctx context.Context, clientID, requestID uuid.UUID) (*entity.Request, error) {
	req, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !req.IsOwnedBy(clientID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "запрос принадлежит другому клиенту")
	}

	if err := req.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}
