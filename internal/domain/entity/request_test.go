package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
)

func newOpenRequest(t *testing.T) *entity.Request {
	t.Helper()

	budget, err := valueobject.NewBudget(100, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := entity.NewRequest(
		uuid.New(),
		"Упаковка для чая",
		valueobject.CategoryPackaging,
		"Дизайн серии из трёх вкусов",
		budget,
		time.Now().AddDate(0, 0, 10),
		[]string{"Готовность к печати", ""},
		false, 0, 0,
		nil, nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return req
}

func TestNewRequest_Defaults(t *testing.T) {
	req := newOpenRequest(t)

	if req.Status != valueobject.RequestStatusOpen {
		t.Errorf("expected open status, got %s", req.Status)
	}
	if len(req.Requirements) != 1 {
		t.Errorf("expected blank requirements to be dropped, got %v", req.Requirements)
	}
	if req.TotalPrice != nil {
		t.Error("expected no total price without surcharges")
	}
}

func TestNewRequest_TotalPriceWithSurcharges(t *testing.T) {
	budget, _ := valueobject.NewBudget(100, 500)

	req, err := entity.NewRequest(
		uuid.New(),
		"Упаковка для чая",
		valueobject.CategoryPackaging,
		"Дизайн серии из трёх вкусов",
		budget,
		time.Now().AddDate(0, 0, 10),
		nil,
		true, 0, 0,
		nil, nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.TotalPrice == nil || *req.TotalPrice != 750 {
		t.Errorf("expected total price 750, got %v", req.TotalPrice)
	}
}

func TestNewRequest_DeadlineBeforeTomorrow(t *testing.T) {
	budget, _ := valueobject.NewBudget(100, 500)

	_, err := entity.NewRequest(
		uuid.New(),
		"Упаковка для чая",
		valueobject.CategoryPackaging,
		"Дизайн серии из трёх вкусов",
		budget,
		time.Now(),
		nil,
		false, 0, 0,
		nil, nil,
	)
	if err == nil {
		t.Fatal("expected error for deadline earlier than tomorrow")
	}
}

func TestRequest_StatusTransitions(t *testing.T) {
	req := newOpenRequest(t)

	if err := req.Complete(); err == nil {
		t.Fatal("expected error: open request cannot complete directly")
	}

	if err := req.StartWork(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := req.Reopen(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != valueobject.RequestStatusOpen {
		t.Fatalf("expected open after reopen, got %s", req.Status)
	}

	// Reopen открытого запроса ничего не меняет.
	if err := req.Reopen(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := req.StartWork(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := req.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Завершённый запрос терминален.
	if err := req.StartWork(); err == nil {
		t.Fatal("expected error for completed request")
	}
	if err := req.Cancel(); err == nil {
		t.Fatal("expected error for completed request")
	}
	if err := req.Reopen(); err == nil {
		t.Fatal("expected error for completed request")
	}
}

func TestRequest_CancelFromBothActiveStatuses(t *testing.T) {
	open := newOpenRequest(t)
	if err := open.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inProgress := newOpenRequest(t)
	inProgress.StartWork()
	if err := inProgress.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
