package request_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/usecase/request"
)

func createTestRequest(clientID uuid.UUID, status valueobject.RequestStatus) *entity.Request {
	budget, _ := valueobject.NewBudget(100, 500)
	return &entity.Request{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       "Логотип для кофейни",
		Category:    valueobject.CategoryLogo,
		Description: "Нужен минималистичный логотип",
		Budget:      budget,
		DeadlineAt:  time.Now().AddDate(0, 0, 7),
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestDecisionWorkflow_AcceptWithMessage(t *testing.T) {
	w := request.NewDecisionWorkflow(uuid.New(), uuid.New())

	if err := w.StartAccept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SetMessage("Готов начать сегодня")

	decision, err := w.FinalizeAccept()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Accepted {
		t.Error("expected accepted decision")
	}
	if decision.Message == nil || *decision.Message != "Готов начать сегодня" {
		t.Errorf("expected message to be carried, got %v", decision.Message)
	}
	if w.State() != request.DecisionFinalized {
		t.Errorf("expected finalized state, got %d", w.State())
	}
}

func TestDecisionWorkflow_RejectRequiresReason(t *testing.T) {
	w := request.NewDecisionWorkflow(uuid.New(), uuid.New())

	if err := w.StartReject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := w.FinalizeReject(); err == nil {
		t.Fatal("expected error for blank reason")
	}

	w.SetReason(strings.Repeat("п", 301))
	if _, err := w.FinalizeReject(); err == nil {
		t.Fatal("expected error for reason above limit")
	}

	w.SetReason("Не работаю с этой категорией")
	decision, err := w.FinalizeReject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Accepted {
		t.Error("expected rejected decision")
	}
	if decision.Reason != "Не работаю с этой категорией" {
		t.Errorf("unexpected reason: %s", decision.Reason)
	}
}

func TestDecisionWorkflow_BackDiscardsDraft(t *testing.T) {
	w := request.NewDecisionWorkflow(uuid.New(), uuid.New())

	if err := w.StartReject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SetReason("Черновик причины")

	if err := w.Back(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.State() != request.DecisionUndecided {
		t.Fatalf("expected undecided state, got %d", w.State())
	}

	// После возврата черновик пуст: отказ снова требует причину.
	if err := w.StartReject(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.FinalizeReject(); err == nil {
		t.Fatal("expected error: draft reason must not survive Back")
	}
}

func TestDecisionWorkflow_FinalizeIsTerminal(t *testing.T) {
	w := request.NewDecisionWorkflow(uuid.New(), uuid.New())

	if err := w.StartAccept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.FinalizeAccept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.StartAccept(); err == nil {
		t.Fatal("expected error after finalize")
	}
	if err := w.StartReject(); err == nil {
		t.Fatal("expected error after finalize")
	}
	if err := w.Back(); err == nil {
		t.Fatal("expected error after finalize")
	}
}

func TestDecideRequestUseCase_AcceptStartsWork(t *testing.T) {
	repo := newMockRequestRepository()
	uc := request.NewDecideRequestUseCase(repo)

	req := createTestRequest(uuid.New(), valueobject.RequestStatusOpen)
	repo.requests[req.ID] = req

	designerID := uuid.New()
	w := request.NewDecisionWorkflow(req.ID, designerID)
	w.StartAccept()
	decision, err := w.FinalizeAccept()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.Execute(context.Background(), decision)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != valueobject.RequestStatusInProgress {
		t.Errorf("expected in_progress, got %s", updated.Status)
	}
}

func TestDecideRequestUseCase_RejectReopensRequest(t *testing.T) {
	repo := newMockRequestRepository()
	uc := request.NewDecideRequestUseCase(repo)

	req := createTestRequest(uuid.New(), valueobject.RequestStatusInProgress)
	repo.requests[req.ID] = req

	w := request.NewDecisionWorkflow(req.ID, uuid.New())
	w.StartReject()
	w.SetReason("Слишком сжатые сроки")
	decision, err := w.FinalizeReject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.Execute(context.Background(), decision)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != valueobject.RequestStatusOpen {
		t.Errorf("expected open, got %s", updated.Status)
	}
}

func TestDecideRequestUseCase_OwnRequestForbidden(t *testing.T) {
	repo := newMockRequestRepository()
	uc := request.NewDecideRequestUseCase(repo)

	clientID := uuid.New()
	req := createTestRequest(clientID, valueobject.RequestStatusOpen)
	repo.requests[req.ID] = req

	w := request.NewDecisionWorkflow(req.ID, clientID)
	w.StartAccept()
	decision, _ := w.FinalizeAccept()

	if _, err := uc.Execute(context.Background(), decision); err == nil {
		t.Fatal("expected error for deciding own request")
	}
}

func TestDecideRequestUseCase_AcceptClosedRequest(t *testing.T) {
	repo := newMockRequestRepository()
	uc := request.NewDecideRequestUseCase(repo)

	req := createTestRequest(uuid.New(), valueobject.RequestStatusCancelled)
	repo.requests[req.ID] = req

	w := request.NewDecisionWorkflow(req.ID, uuid.New())
	w.StartAccept()
	decision, _ := w.FinalizeAccept()

	if _, err := uc.Execute(context.Background(), decision); err == nil {
		t.Fatal("expected error for accepting cancelled request")
	}
}
