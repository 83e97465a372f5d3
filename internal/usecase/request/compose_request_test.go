package request_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/usecase/request"
)

type mockRequestRepository struct {
	requests map[uuid.UUID]*entity.Request
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{requests: make(map[uuid.UUID]*entity.Request)}
}

func (m *mockRequestRepository) Create(ctx context.Context, r *entity.Request) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *entity.Request) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperror.ErrRequestNotFound
}

func (m *mockRequestRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Request, error) {
	var result []*entity.Request
	for _, r := range m.requests {
		if r.ClientID == clientID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, int, error) {
	var matched []*entity.Request
	for _, r := range m.requests {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched, len(matched), nil
}

func validDeadline() time.Time {
	return time.Now().AddDate(0, 0, 3)
}

func TestComposer_FullFlow(t *testing.T) {
	clientID := uuid.New()
	composer := request.NewComposer(clientID)

	if err := composer.Next(); err == nil {
		t.Fatal("expected validation error on empty first step")
	}

	composer.SetBasicInfo(
		"Логотип для кофейни",
		"logo",
		"Нужен минималистичный логотип для сети кофеен",
		100, 500,
		validDeadline(),
	)
	if err := composer.Next(); err != nil {
		t.Fatalf("unexpected error on first step: %v", err)
	}
	if composer.CurrentStep() != request.StepRequirements {
		t.Fatalf("expected requirements step, got %d", composer.CurrentStep())
	}

	reqs := composer.Requirements()
	if err := reqs.Update(0, "Вектор в формате AI"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reqs.Add()
	if err := reqs.Update(1, "Три варианта цветовой схемы"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := composer.Next(); err != nil {
		t.Fatalf("unexpected error on requirements step: %v", err)
	}

	composer.SetPricing(true, 0, 0)
	quote := composer.PricePreview()
	if quote.RushFee != 250 {
		t.Errorf("expected rush fee 250, got %f", quote.RushFee)
	}
	if quote.Total != 750 {
		t.Errorf("expected total 750, got %f", quote.Total)
	}

	// Возврат на два шага назад не теряет введённые данные.
	composer.Back()
	composer.Back()
	if composer.CurrentStep() != request.StepBasicInfo {
		t.Fatalf("expected first step, got %d", composer.CurrentStep())
	}
	if got := composer.Requirements().Len(); got != 2 {
		t.Fatalf("expected 2 requirements after going back, got %d", got)
	}

	for composer.CurrentStep() != request.StepCustomForm {
		if err := composer.Next(); err != nil {
			t.Fatalf("unexpected error moving forward: %v", err)
		}
	}

	repo := newMockRequestRepository()
	uc := request.NewSubmitRequestUseCase(repo)

	created, err := uc.Execute(context.Background(), composer)
	if err != nil {
		t.Fatalf("unexpected error on submit: %v", err)
	}

	if created.Status != valueobject.RequestStatusOpen {
		t.Errorf("expected status open, got %s", created.Status)
	}
	if len(created.Requirements) != 2 {
		t.Errorf("expected 2 requirements, got %d", len(created.Requirements))
	}
	if created.TotalPrice == nil || *created.TotalPrice != 750 {
		t.Errorf("expected total price 750, got %v", created.TotalPrice)
	}
	if created.FormID != nil {
		t.Error("expected no form binding")
	}
	if _, ok := repo.requests[created.ID]; !ok {
		t.Error("expected request to be persisted")
	}
	if composer.CurrentStep() != request.StepBasicInfo {
		t.Error("expected composer to reset after submit")
	}
}

func TestComposer_DeadlineTooSoon(t *testing.T) {
	composer := request.NewComposer(uuid.New())
	composer.SetBasicInfo("Логотип", "logo", "Описание достаточной длины", 100, 500, time.Now())

	if err := composer.Next(); err == nil {
		t.Fatal("expected error for deadline earlier than tomorrow")
	}
}

func TestComposer_BudgetInvalid(t *testing.T) {
	composer := request.NewComposer(uuid.New())
	composer.SetBasicInfo("Логотип", "logo", "Описание достаточной длины", 500, 100, validDeadline())

	if err := composer.Next(); err == nil {
		t.Fatal("expected error for min budget above max")
	}
}

func TestRequirementsEditor_KeepsAtLeastOneEntry(t *testing.T) {
	editor := request.NewRequirementsEditor()

	if err := editor.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Len() != 1 {
		t.Fatalf("expected single entry to survive removal, got %d", editor.Len())
	}

	editor.Add()
	if err := editor.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", editor.Len())
	}

	if err := editor.Remove(5); err == nil {
		t.Fatal("expected error for index out of range")
	}
}

func TestRequirementsEditor_FiltersBlankValues(t *testing.T) {
	editor := request.NewRequirementsEditor()
	editor.Update(0, "  ")
	editor.Add()
	editor.Update(1, "Вектор")
	editor.Add()

	filtered := editor.Filtered()
	if len(filtered) != 1 || filtered[0] != "Вектор" {
		t.Fatalf("expected single non-blank requirement, got %v", filtered)
	}
}
