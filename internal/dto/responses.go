package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
)

// ErrorResponse — единый формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse — единый формат успешного ответа без тела.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// UserResponse — публичное представление пользователя.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthResponse — пользователь вместе с парой токенов.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenResponse — пара токенов после обновления.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AttachmentResponse — вложение запроса.
type AttachmentResponse struct {
	ID      uuid.UUID `json:"id"`
	MediaID uuid.UUID `json:"media_id"`
}

// RequestResponse — представление запроса на дизайн.
type RequestResponse struct {
	ID                  uuid.UUID            `json:"id"`
	ClientID            uuid.UUID            `json:"client_id"`
	Title               string               `json:"title"`
	Category            string               `json:"category"`
	Description         string               `json:"description"`
	BudgetMin           float64              `json:"budget_min"`
	BudgetMax           float64              `json:"budget_max"`
	DeadlineAt          time.Time            `json:"deadline_at"`
	Requirements        []string             `json:"requirements"`
	RushRequest         bool                 `json:"rush_request"`
	AdditionalConcepts  int                  `json:"additional_concepts"`
	AdditionalRevisions int                  `json:"additional_revisions"`
	TotalPrice          *float64             `json:"total_price,omitempty"`
	FormID              *uuid.UUID           `json:"form_id,omitempty"`
	FormAnswers         entity.FormAnswers   `json:"form_answers,omitempty"`
	Status              string               `json:"status"`
	Attachments         []AttachmentResponse `json:"attachments"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromRequest(r *entity.Request) RequestResponse {
	attachments := make([]AttachmentResponse, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, AttachmentResponse{ID: a.ID, MediaID: a.MediaID})
	}

	return RequestResponse{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		Title:               r.Title,
		Category:            string(r.Category),
		Description:         r.Description,
		BudgetMin:           r.Budget.Min.Amount,
		BudgetMax:           r.Budget.Max.Amount,
		DeadlineAt:          r.DeadlineAt,
		Requirements:        r.Requirements,
		RushRequest:         r.RushRequest,
		AdditionalConcepts:  r.AdditionalConcepts,
		AdditionalRevisions: r.AdditionalRevisions,
		TotalPrice:          r.TotalPrice,
		FormID:              r.FormID,
		FormAnswers:         r.FormAnswers,
		Status:              string(r.Status),
		Attachments:         attachments,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func FromRequests(requests []*entity.Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, FromRequest(r))
	}
	return result
}

// RequestListResponse — страница запросов с общим количеством.
type RequestListResponse struct {
	Items  []RequestResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// QuoteResponse — расшифровка стоимости запроса.
type QuoteResponse struct {
	BasePrice   float64 `json:"base_price"`
	RushFee     float64 `json:"rush_fee"`
	ConceptFee  float64 `json:"concept_fee"`
	RevisionFee float64 `json:"revision_fee"`
	Total       float64 `json:"total"`
}

func FromQuote(q valueobject.Quote) QuoteResponse {
	return QuoteResponse{
		BasePrice:   q.BasePrice,
		RushFee:     q.RushFee,
		ConceptFee:  q.ConceptFee,
		RevisionFee: q.RevisionFee,
		Total:       q.Total,
	}
}

// ProposalResponse — отклик дизайнера.
type ProposalResponse struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	DesignerID    uuid.UUID `json:"designer_id"`
	Message       string    `json:"message"`
	ProposedPrice float64   `json:"proposed_price"`
	EstimatedDays int       `json:"estimated_days"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromProposal(p *entity.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:            p.ID,
		RequestID:     p.RequestID,
		DesignerID:    p.DesignerID,
		Message:       p.Message,
		ProposedPrice: p.ProposedPrice,
		EstimatedDays: p.EstimatedDays,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProposals(proposals []*entity.Proposal) []ProposalResponse {
	result := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		result = append(result, FromProposal(p))
	}
	return result
}

// QuestionResponse — вопрос дизайнера с вычисленным статусом.
type QuestionResponse struct {
	ID             uuid.UUID  `json:"id"`
	RequestID      uuid.UUID  `json:"request_id"`
	DesignerID     uuid.UUID  `json:"designer_id"`
	Question       string     `json:"question"`
	ClientResponse *string    `json:"client_response,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromQuestion(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:             q.ID,
		RequestID:      q.RequestID,
		DesignerID:     q.DesignerID,
		Question:       q.Question,
		ClientResponse: q.ClientResponse,
		RespondedAt:    q.RespondedAt,
		Status:         string(q.Status()),
		CreatedAt:      q.CreatedAt,
	}
}

func FromQuestions(questions []*entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, FromQuestion(q))
	}
	return result
}

// FormFieldResponse — поле формы в порядке позиций.
type FormFieldResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Label       string    `json:"label"`
	Placeholder *string   `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Position    int       `json:"position"`
}

// FormResponse — авторская форма дизайнера.
type FormResponse struct {
	ID          uuid.UUID           `json:"id"`
	DesignerID  uuid.UUID           `json:"designer_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Fields      []FormFieldResponse `json:"fields"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromForm(f *entity.Form) FormResponse {
	fields := make([]FormFieldResponse, 0, len(f.Fields))
	for _, field := range f.Fields {
		fields = append(fields, FormFieldResponse{
			ID:          field.ID,
			Type:        string(field.Type),
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Required:    field.Required,
			Options:     field.Options,
			Position:    field.Position,
		})
	}

	return FormResponse{
		ID:          f.ID,
		DesignerID:  f.DesignerID,
		Title:       f.Title,
		Description: f.Description,
		Fields:      fields,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromForms(forms []*entity.Form) []FormResponse {
	result := make([]FormResponse, 0, len(forms))
	for _, f := range forms {
		result = append(result, FromForm(f))
	}
	return result
}

// NotificationResponse — сохранённое уведомление.
type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromNotifications(notifications []entity.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, NotificationResponse{
			ID:        n.ID,
			Payload:   n.Payload,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result
}

// MediaResponse — загруженный файл.
type MediaResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMediaFile(m *entity.MediaFile) MediaResponse {
	return MediaResponse{
		ID:          m.ID,
		FileName:    m.FileName,
		URL:         "/media/" + m.FilePath,
		SizeBytes:   m.SizeBytes,
		ContentType: m.ContentType,
		CreatedAt:   m.CreatedAt,
	}
}
