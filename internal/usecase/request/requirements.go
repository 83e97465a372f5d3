package request

import (
	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// RequirementsEditor управляет упорядоченным списком текстовых требований
// на шаге составления запроса. Список никогда не становится короче одной
// позиции, чтобы форма не оставалась без единого поля ввода; перестановка
// требований не поддерживается.
type RequirementsEditor struct {
	entries []string
}

func NewRequirementsEditor() *RequirementsEditor {
	return &RequirementsEditor{entries: []string{""}}
}

// Add добавляет пустую позицию в конец списка.
func (e *RequirementsEditor) Add() {
	e.entries = append(e.entries, "")
}

// Update заменяет значение позиции по индексу.
func (e *RequirementsEditor) Update(index int, value string) error {
	if index < 0 || index >= len(e.entries) {
		return apperror.New(apperror.ErrCodeValidation, "некорректный индекс требования")
	}
	e.entries[index] = value
	return nil
}

// Remove удаляет позицию по индексу. Последняя оставшаяся позиция не
// удаляется: операция в этом случае ничего не делает.
func (e *RequirementsEditor) Remove(index int) error {
	if index < 0 || index >= len(e.entries) {
		return apperror.New(apperror.ErrCodeValidation, "некорректный индекс требования")
	}
	if len(e.entries) == 1 {
		return nil
	}
	e.entries = append(e.entries[:index], e.entries[index+1:]...)
	return nil
}

// Values возвращает копию списка как есть, включая пустые позиции.
func (e *RequirementsEditor) Values() []string {
	values := make([]string, len(e.entries))
	copy(values, e.entries)
	return values
}

// Len возвращает текущее количество позиций.
func (e *RequirementsEditor) Len() int {
	return len(e.entries)
}

// Filtered возвращает требования без пустых позиций — в таком виде они
// попадают в итоговый запрос.
func (e *RequirementsEditor) Filtered() []string {
	return entity.FilterBlankRequirements(e.entries)
}

// Reset возвращает редактор к исходному состоянию с одной пустой позицией.
func (e *RequirementsEditor) Reset() {
	e.entries = []string{""}
}
