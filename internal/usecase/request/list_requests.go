package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListRequestsUseCase отдаёт публичную доску запросов с фильтрацией и
// пагинацией.
type ListRequestsUseCase struct {
	requestRepo repository.RequestRepository
}

func NewListRequestsUseCase(requestRepo repository.RequestRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{requestRepo: requestRepo}
}

// Execute возвращает страницу запросов и общее число совпадений.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return uc.requestRepo.List(ctx, filter)
}

// ByClient возвращает все запросы клиента, включая закрытые.
func (uc *ListRequestsUseCase) ByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Request, error) {
	return uc.requestRepo.FindByClientID(ctx, clientID)
}
