package form_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/usecase/form"
)

func createTestForm(t *testing.T) *entity.Form {
	t.Helper()

	f, err := entity.NewForm(uuid.New(), "Бриф на логотип", "Анкета для заказчиков логотипов", []entity.FieldInput{
		{Type: entity.FieldTypeText, Label: "Название компании", Required: true},
		{Type: entity.FieldTypeSelect, Label: "Стиль", Required: true, Options: []string{"минимализм", "винтаж", "леттеринг"}},
		{Type: entity.FieldTypeCheckbox, Label: "Носители", Options: []string{"визитки", "вывеска", "упаковка"}},
		{Type: entity.FieldTypeTextarea, Label: "Пожелания"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestBinding_SwitchingFormClearsAnswers(t *testing.T) {
	binding := form.NewBinding()

	first := createTestForm(t)
	binding.SelectForm(first)

	if err := binding.SetText(first.Fields[0].ID, "Кофейня Север"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(binding.Answers()) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(binding.Answers()))
	}

	second := createTestForm(t)
	binding.SelectForm(second)

	if got := binding.Answers(); got != nil {
		t.Fatalf("expected answers to be cleared after switching forms, got %v", got)
	}

	// Повторный выбор той же формы ответы сохраняет.
	if err := binding.SetText(second.Fields[0].ID, "Кофейня Юг"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	binding.SelectForm(second)
	if len(binding.Answers()) != 1 {
		t.Fatal("expected answers to survive reselecting the same form")
	}
}

func TestBinding_ChoiceMustBeFromOptions(t *testing.T) {
	binding := form.NewBinding()
	f := createTestForm(t)
	binding.SelectForm(f)

	styleField := f.Fields[1]
	if err := binding.SetChoice(styleField.ID, "баухаус"); err == nil {
		t.Fatal("expected error for option outside the list")
	}
	if err := binding.SetChoice(styleField.ID, "минимализм"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Текстовый сеттер не применим к полю с выбором.
	if err := binding.SetText(styleField.ID, "минимализм"); err == nil {
		t.Fatal("expected error for text setter on select field")
	}
}

func TestBinding_ToggleOption(t *testing.T) {
	binding := form.NewBinding()
	f := createTestForm(t)
	binding.SelectForm(f)

	carriers := f.Fields[2]
	if err := binding.ToggleOption(carriers.ID, "визитки"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := binding.ToggleOption(carriers.ID, "вывеска"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers := binding.Answers()
	selected, ok := answers[carriers.ID.String()].([]string)
	if !ok || len(selected) != 2 {
		t.Fatalf("expected 2 selected options, got %v", answers[carriers.ID.String()])
	}

	// Повторное переключение убирает вариант.
	if err := binding.ToggleOption(carriers.ID, "визитки"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	answers = binding.Answers()
	selected, _ = answers[carriers.ID.String()].([]string)
	if len(selected) != 1 || selected[0] != "вывеска" {
		t.Fatalf("expected only вывеска to stay selected, got %v", selected)
	}
}

func TestBinding_ValidateRequiredFields(t *testing.T) {
	binding := form.NewBinding()
	f := createTestForm(t)
	binding.SelectForm(f)

	if err := binding.Validate(); err == nil {
		t.Fatal("expected error for missing required answers")
	}

	if err := binding.SetText(f.Fields[0].ID, "Кофейня Север"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := binding.Validate(); err == nil {
		t.Fatal("expected error while required select is unanswered")
	}

	if err := binding.SetChoice(f.Fields[1].ID, "винтаж"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := binding.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBinding_NoFormIsValid(t *testing.T) {
	binding := form.NewBinding()

	if err := binding.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if binding.FormID() != nil {
		t.Error("expected nil form id without a selected form")
	}
	if binding.Answers() != nil {
		t.Error("expected nil answers without a selected form")
	}
}

func TestBinding_AnswersReturnsCopy(t *testing.T) {
	binding := form.NewBinding()
	f := createTestForm(t)
	binding.SelectForm(f)

	carriers := f.Fields[2]
	binding.ToggleOption(carriers.ID, "визитки")

	answers := binding.Answers()
	selected := answers[carriers.ID.String()].([]string)
	selected[0] = "подмена"

	fresh := binding.Answers()
	if got := fresh[carriers.ID.String()].([]string)[0]; got != "визитки" {
		t.Fatalf("expected internal state to be isolated from returned copy, got %s", got)
	}
}
