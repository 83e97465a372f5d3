package request

import (
	"context"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
)

// SubmitRequestUseCase сохраняет собранный мастером запрос. После успешного
// сохранения мастер сбрасывается к первому шагу.
type SubmitRequestUseCase struct {
	requestRepo repository.RequestRepository
}

func NewSubmitRequestUseCase(requestRepo repository.RequestRepository) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{requestRepo: requestRepo}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, composer *Composer) (*entity.Request, error) {
	req, err := composer.Build()
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	composer.Reset()
	return req, nil
}
