package form

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
)

// CreateFormInput — данные новой анкеты дизайнера.
type CreateFormInput struct {
	DesignerID  uuid.UUID
	Title       string
	Description string
	Fields      []entity.FieldInput
}

type CreateFormUseCase struct {
	formRepo repository.FormRepository
}

func NewCreateFormUseCase(formRepo repository.FormRepository) *CreateFormUseCase {
	return &CreateFormUseCase{formRepo: formRepo}
}

func (uc *CreateFormUseCase) Execute(ctx context.Context, input CreateFormInput) (*entity.Form, error) {
	form, err := entity.NewForm(input.DesignerID, input.Title, input.Description, input.Fields)
	if err != nil {
		return nil, err
	}

	if err := uc.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}
