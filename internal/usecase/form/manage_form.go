package form

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// ReorderFormFieldsUseCase переставляет поля анкеты её владельцем.
type ReorderFormFieldsUseCase struct {
	formRepo repository.FormRepository
}

func NewReorderFormFieldsUseCase(formRepo repository.FormRepository) *ReorderFormFieldsUseCase {
	return &ReorderFormFieldsUseCase{formRepo: formRepo}
}

func (uc *ReorderFormFieldsUseCase) Execute(ctx context.Context, designerID, formID uuid.UUID, fieldIDs []uuid.UUID) (*entity.Form, error) {
	form, err := ownedForm(ctx, uc.formRepo, designerID, formID)
	if err != nil {
		return nil, err
	}

	if err := form.Reorder(fieldIDs); err != nil {
		return nil, err
	}

	if err := uc.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// SetFormActiveUseCase включает или выключает анкету в списке доступных.
type SetFormActiveUseCase struct {
	formRepo repository.FormRepository
}

func NewSetFormActiveUseCase(formRepo repository.FormRepository) *SetFormActiveUseCase {
	return &SetFormActiveUseCase{formRepo: formRepo}
}

func (uc *SetFormActiveUseCase) Execute(ctx context.Context, designerID, formID uuid.UUID, active bool) (*entity.Form, error) {
	form, err := ownedForm(ctx, uc.formRepo, designerID, formID)
	if err != nil {
		return nil, err
	}

	if active {
		form.Activate()
	} else {
		form.Deactivate()
	}

	if err := uc.formRepo.Update(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// ListFormsUseCase отдаёт анкеты: активные для клиентов, все свои для автора.
type ListFormsUseCase struct {
	formRepo repository.FormRepository
}

func NewListFormsUseCase(formRepo repository.FormRepository) *ListFormsUseCase {
	return &ListFormsUseCase{formRepo: formRepo}
}

func (uc *ListFormsUseCase) Active(ctx context.Context) ([]*entity.Form, error) {
	return uc.formRepo.ListActive(ctx)
}

func (uc *ListFormsUseCase) ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Form, error) {
	return uc.formRepo.FindByDesignerID(ctx, designerID)
}

// GetFormUseCase находит анкету по идентификатору.
type GetFormUseCase struct {
	formRepo repository.FormRepository
}

func NewGetFormUseCase(formRepo repository.FormRepository) *GetFormUseCase {
	return &GetFormUseCase{formRepo: formRepo}
}

func (uc *GetFormUseCase) Execute(ctx context.Context, formID uuid.UUID) (*entity.Form, error) {
	return uc.formRepo.FindByID(ctx, formID)
}

func ownedForm(ctx context.Context, repo repository.FormRepository, designerID, formID uuid.UUID) (*entity.Form, error) {
	form, err := repo.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if !form.IsOwnedBy(designerID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "форма принадлежит другому дизайнеру")
	}

	return form, nil
}
