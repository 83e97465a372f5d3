package entity_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
)

func newTestForm(t *testing.T) *entity.Form {
	t.Helper()

	f, err := entity.NewForm(uuid.New(), "Бриф", "", []entity.FieldInput{
		{Type: entity.FieldTypeText, Label: "Название"},
		{Type: entity.FieldTypeRadio, Label: "Формат", Options: []string{"вектор", "растр"}},
		{Type: entity.FieldTypeTextarea, Label: "Комментарий"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestNewForm_Validation(t *testing.T) {
	if _, err := entity.NewForm(uuid.New(), " ", "", []entity.FieldInput{{Type: entity.FieldTypeText, Label: "Поле"}}); err == nil {
		t.Error("expected error for blank title")
	}

	if _, err := entity.NewForm(uuid.New(), "Бриф", "", nil); err == nil {
		t.Error("expected error for form without fields")
	}

	if _, err := entity.NewForm(uuid.New(), "Бриф", "", []entity.FieldInput{{Type: entity.FieldTypeSelect, Label: "Выбор"}}); err == nil {
		t.Error("expected error for select without options")
	}

	if _, err := entity.NewForm(uuid.New(), "Бриф", "", []entity.FieldInput{{Type: "slider", Label: "Поле"}}); err == nil {
		t.Error("expected error for unknown field type")
	}
}

func TestNewForm_AssignsContiguousPositions(t *testing.T) {
	f := newTestForm(t)

	for i, field := range f.Fields {
		if field.Position != i {
			t.Errorf("expected position %d, got %d", i, field.Position)
		}
	}
}

func TestForm_Reorder(t *testing.T) {
	f := newTestForm(t)

	reversed := []uuid.UUID{f.Fields[2].ID, f.Fields[1].ID, f.Fields[0].ID}
	if err := f.Reorder(reversed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.Fields[0].Label != "Комментарий" || f.Fields[2].Label != "Название" {
		t.Errorf("unexpected order: %s, %s, %s", f.Fields[0].Label, f.Fields[1].Label, f.Fields[2].Label)
	}
	for i, field := range f.Fields {
		if field.Position != i {
			t.Errorf("expected contiguous positions after reorder, got %d at %d", field.Position, i)
		}
	}
}

func TestForm_ReorderRejectsPartialOrForeignIDs(t *testing.T) {
	f := newTestForm(t)

	if err := f.Reorder([]uuid.UUID{f.Fields[0].ID}); err == nil {
		t.Error("expected error for partial id list")
	}

	if err := f.Reorder([]uuid.UUID{f.Fields[0].ID, f.Fields[0].ID, f.Fields[1].ID}); err == nil {
		t.Error("expected error for duplicated id")
	}

	if err := f.Reorder([]uuid.UUID{f.Fields[0].ID, f.Fields[1].ID, uuid.New()}); err == nil {
		t.Error("expected error for foreign id")
	}
}

func TestForm_DeactivateKeepsForm(t *testing.T) {
	f := newTestForm(t)

	f.Deactivate()
	if f.IsActive {
		t.Error("expected form to be inactive")
	}

	f.Activate()
	if !f.IsActive {
		t.Error("expected form to be active again")
	}
}
