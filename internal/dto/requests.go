package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Username    string `json:"username"`
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — тело запроса обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateRequestRequest — тело создания запроса на дизайн.
type CreateRequestRequest struct {
	Title               string         `json:"title" binding:"required"`
	Category            string         `json:"category" binding:"required"`
	Description         string         `json:"description" binding:"required"`
	BudgetMin           float64        `json:"budget_min" binding:"required"`
	BudgetMax           float64        `json:"budget_max" binding:"required"`
	DeadlineAt          string         `json:"deadline_at" binding:"required"`
	Requirements        []string       `json:"requirements"`
	RushRequest         bool           `json:"rush_request"`
	AdditionalConcepts  int            `json:"additional_concepts"`
	AdditionalRevisions int            `json:"additional_revisions"`
	FormID              *string        `json:"form_id"`
	FormAnswers         map[string]any `json:"form_answers"`
	AttachmentIDs       []string       `json:"attachment_ids"`
}

// ParseDeadline разбирает дедлайн в формате RFC3339.
func (r *CreateRequestRequest) ParseDeadline() (time.Time, error) {
	return time.Parse(time.RFC3339, r.DeadlineAt)
}

// ParseFormID разбирает идентификатор формы, если он передан.
func (r *CreateRequestRequest) ParseFormID() (*uuid.UUID, error) {
	if r.FormID == nil || *r.FormID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*r.FormID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseAttachmentIDs разбирает идентификаторы вложений.
func (r *CreateRequestRequest) ParseAttachmentIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.AttachmentIDs))
	for _, raw := range r.AttachmentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PricePreviewRequest — тело запроса предварительного расчёта стоимости.
type PricePreviewRequest struct {
	BudgetMax           float64 `json:"budget_max" binding:"required"`
	RushRequest         bool    `json:"rush_request"`
	AdditionalConcepts  int     `json:"additional_concepts"`
	AdditionalRevisions int     `json:"additional_revisions"`
}

// SubmitProposalRequest — тело отклика дизайнера.
type SubmitProposalRequest struct {
	Message       string  `json:"message" binding:"required"`
	ProposedPrice float64 `json:"proposed_price" binding:"required"`
	EstimatedDays int     `json:"estimated_days" binding:"required"`
}

// DecideRequestRequest — решение дизайнера по запросу.
type DecideRequestRequest struct {
	Action  string `json:"action" binding:"required"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// AskQuestionRequest — тело нового вопроса.
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// RespondQuestionRequest — тело ответа клиента на вопрос.
type RespondQuestionRequest struct {
	Response string `json:"response" binding:"required"`
}

// FormFieldRequest — поле создаваемой формы.
type FormFieldRequest struct {
	Type        string   `json:"type" binding:"required"`
	Label       string   `json:"label" binding:"required"`
	Placeholder *string  `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
}

// CreateFormRequest — тело создания авторской формы.
type CreateFormRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Fields      []FormFieldRequest `json:"fields" binding:"required"`
}

// ReorderFormRequest — новый порядок полей формы.
type ReorderFormRequest struct {
	FieldIDs []string `json:"field_ids" binding:"required"`
}

// ParseFieldIDs разбирает идентификаторы полей.
func (r *ReorderFormRequest) ParseFieldIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.FieldIDs))
	for _, raw := range r.FieldIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SetFormActiveRequest — включение или выключение формы.
type SetFormActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
