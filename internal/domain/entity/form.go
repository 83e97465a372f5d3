package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// FieldType — тип поля авторской формы.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeFile     FieldType = "file"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeCheckbox, FieldTypeRadio, FieldTypeFile:
		return true
	}
	return false
}

// RequiresOptions сообщает, обязателен ли для поля непустой список вариантов.
func (t FieldType) RequiresOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio || t == FieldTypeCheckbox
}

// Form — авторская анкета дизайнера с независимым от запросов жизненным
// циклом. Неактивные формы не предлагаются клиентам, но не удаляются.
type Form struct {
	ID          uuid.UUID
	DesignerID  uuid.UUID
	Title       string
	Description string
	Fields      []FormField
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormField — одно поле формы. Position задаёт порядок отображения и после
// любой перестановки остаётся непрерывным диапазоном 0..n-1.
type FormField struct {
	ID          uuid.UUID
	FormID      uuid.UUID
	Type        FieldType
	Label       string
	Placeholder *string
	Required    bool
	Options     []string
	Position    int
}

// FieldInput описывает поле при создании или обновлении формы.
type FieldInput struct {
	Type        FieldType
	Label       string
	Placeholder *string
	Required    bool
	Options     []string
}

func NewForm(designerID uuid.UUID, title, description string, fields []FieldInput) (*Form, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "название формы обязательно")
	}
	if len(fields) == 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "форма должна содержать хотя бы одно поле")
	}

	form := &Form{
		ID:          uuid.New(),
		DesignerID:  designerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for i, input := range fields {
		field, err := newFormField(form.ID, input, i)
		if err != nil {
			return nil, err
		}
		form.Fields = append(form.Fields, *field)
	}

	return form, nil
}

func newFormField(formID uuid.UUID, input FieldInput, position int) (*FormField, error) {
	if !input.Type.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректный тип поля формы")
	}
	if strings.TrimSpace(input.Label) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "подпись поля формы обязательна")
	}

	options := make([]string, 0, len(input.Options))
	for _, opt := range input.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, apperror.New(apperror.ErrCodeValidation, "вариант ответа не может быть пустым")
		}
		options = append(options, strings.TrimSpace(opt))
	}

	if input.Type.RequiresOptions() && len(options) == 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "для поля с выбором требуется хотя бы один вариант")
	}

	return &FormField{
		ID:          uuid.New(),
		FormID:      formID,
		Type:        input.Type,
		Label:       strings.TrimSpace(input.Label),
		Placeholder: input.Placeholder,
		Required:    input.Required,
		Options:     options,
		Position:    position,
	}, nil
}

// FieldByID находит поле формы по идентификатору.
func (f *Form) FieldByID(fieldID uuid.UUID) (*FormField, bool) {
	for i := range f.Fields {
		if f.Fields[i].ID == fieldID {
			return &f.Fields[i], true
		}
	}
	return nil, false
}

// Reorder переставляет поля в порядке переданных идентификаторов. Должны
// быть перечислены все поля формы ровно по одному разу; позиции после
// перестановки перенумеровываются в 0..n-1.
func (f *Form) Reorder(fieldIDs []uuid.UUID) error {
	if len(fieldIDs) != len(f.Fields) {
		return apperror.New(apperror.ErrCodeValidation, "при перестановке должны быть указаны все поля формы")
	}

	seen := make(map[uuid.UUID]struct{}, len(fieldIDs))
	reordered := make([]FormField, 0, len(f.Fields))

	for pos, id := range fieldIDs {
		if _, dup := seen[id]; dup {
			return apperror.New(apperror.ErrCodeValidation, "поле формы указано дважды")
		}
		seen[id] = struct{}{}

		field, ok := f.FieldByID(id)
		if !ok {
			return apperror.New(apperror.ErrCodeValidation, "поле не принадлежит форме")
		}

		moved := *field
		moved.Position = pos
		reordered = append(reordered, moved)
	}

	f.Fields = reordered
	f.UpdatedAt = time.Now()
	return nil
}

// Activate включает форму в список доступных клиентам.
func (f *Form) Activate() {
	f.IsActive = true
	f.UpdatedAt = time.Now()
}

// Deactivate исключает форму из выбора, не удаляя её.
func (f *Form) Deactivate() {
	f.IsActive = false
	f.UpdatedAt = time.Now()
}

func (f *Form) IsOwnedBy(userID uuid.UUID) bool {
	return f.DesignerID == userID
}
