package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// Binding привязывает выбранную клиентом форму к черновику запроса и
// накапливает ответы на её поля. Ответы живут только вместе с выбранной
// формой: смена формы полностью очищает карту ответов.
type Binding struct {
	form    *entity.Form
	answers map[uuid.UUID]any
}

func NewBinding() *Binding {
	return &Binding{answers: make(map[uuid.UUID]any)}
}

// SelectForm выбирает форму. Повторный выбор той же формы сохраняет уже
// введённые ответы, выбор другой формы (или nil) сбрасывает их.
func (b *Binding) SelectForm(f *entity.Form) {
	if f != nil && b.form != nil && b.form.ID == f.ID {
		b.form = f
		return
	}
	b.form = f
	b.answers = make(map[uuid.UUID]any)
}

// Form возвращает выбранную форму, nil если форма не выбрана.
func (b *Binding) Form() *entity.Form {
	return b.form
}

// SetText записывает ответ на текстовое поле.
func (b *Binding) SetText(fieldID uuid.UUID, value string) error {
	field, err := b.field(fieldID)
	if err != nil {
		return err
	}
	if field.Type != entity.FieldTypeText && field.Type != entity.FieldTypeTextarea {
		return apperror.New(apperror.ErrCodeValidation, "поле не является текстовым")
	}
	b.answers[fieldID] = value
	return nil
}

// SetChoice записывает один выбранный вариант для поля select или radio.
func (b *Binding) SetChoice(fieldID uuid.UUID, option string) error {
	field, err := b.field(fieldID)
	if err != nil {
		return err
	}
	if field.Type != entity.FieldTypeSelect && field.Type != entity.FieldTypeRadio {
		return apperror.New(apperror.ErrCodeValidation, "поле не поддерживает одиночный выбор")
	}
	if !containsOption(field.Options, option) {
		return apperror.New(apperror.ErrCodeValidation, "выбран недопустимый вариант ответа")
	}
	b.answers[fieldID] = option
	return nil
}

// ToggleOption добавляет или убирает вариант в ответе на чекбокс.
func (b *Binding) ToggleOption(fieldID uuid.UUID, option string) error {
	field, err := b.field(fieldID)
	if err != nil {
		return err
	}
	if field.Type != entity.FieldTypeCheckbox {
		return apperror.New(apperror.ErrCodeValidation, "поле не поддерживает множественный выбор")
	}
	if !containsOption(field.Options, option) {
		return apperror.New(apperror.ErrCodeValidation, "выбран недопустимый вариант ответа")
	}

	selected, _ := b.answers[fieldID].([]string)
	for i, v := range selected {
		if v == option {
			selected = append(selected[:i], selected[i+1:]...)
			if len(selected) == 0 {
				delete(b.answers, fieldID)
			} else {
				b.answers[fieldID] = selected
			}
			return nil
		}
	}

	b.answers[fieldID] = append(selected, option)
	return nil
}

// Validate проверяет, что все обязательные поля формы заполнены. Поля типа
// file здесь не проверяются: файлы идут через вложения запроса.
func (b *Binding) Validate() error {
	if b.form == nil {
		return nil
	}

	for _, field := range b.form.Fields {
		if !field.Required || field.Type == entity.FieldTypeFile {
			continue
		}
		if !b.answered(field.ID) {
			return apperror.New(apperror.ErrCodeValidation, "заполните обязательное поле: "+field.Label)
		}
	}
	return nil
}

// FormID возвращает идентификатор выбранной формы для сохранения в запросе.
func (b *Binding) FormID() *uuid.UUID {
	if b.form == nil {
		return nil
	}
	id := b.form.ID
	return &id
}

// Answers выгружает ответы в формат хранения запроса. Возвращается копия,
// дальнейшее редактирование привязки её не меняет.
func (b *Binding) Answers() entity.FormAnswers {
	if b.form == nil || len(b.answers) == 0 {
		return nil
	}

	answers := make(entity.FormAnswers, len(b.answers))
	for fieldID, value := range b.answers {
		if selected, ok := value.([]string); ok {
			copied := make([]string, len(selected))
			copy(copied, selected)
			answers[fieldID.String()] = copied
			continue
		}
		answers[fieldID.String()] = value
	}
	return answers
}

// Reset снимает выбор формы и очищает ответы.
func (b *Binding) Reset() {
	b.form = nil
	b.answers = make(map[uuid.UUID]any)
}

func (b *Binding) field(fieldID uuid.UUID) (*entity.FormField, error) {
	if b.form == nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "форма не выбрана")
	}
	field, ok := b.form.FieldByID(fieldID)
	if !ok {
		return nil, apperror.New(apperror.ErrCodeValidation, "поле не принадлежит выбранной форме")
	}
	return field, nil
}

func (b *Binding) answered(fieldID uuid.UUID) bool {
	value, ok := b.answers[fieldID]
	if !ok {
		return false
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return len(v) > 0
	}
	return false
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
