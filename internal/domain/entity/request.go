package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// Request описывает запрос клиента на дизайнерскую работу.
type Request struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	Title               string
	Category            valueobject.Category
	Description         string
	Budget              valueobject.Budget
	DeadlineAt          time.Time
	Requirements        []string
	RushRequest         bool
	AdditionalConcepts  int
	AdditionalRevisions int
	TotalPrice          *float64
	FormID              *uuid.UUID
	FormAnswers         FormAnswers
	Status              valueobject.RequestStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Attachments []RequestAttachment
}

// RequestAttachment описывает файл, прикреплённый к запросу.
type RequestAttachment struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	MediaID   uuid.UUID
	CreatedAt time.Time
}

// FormAnswers хранит ответы на поля выбранной формы по идентификатору поля.
// Значение — строка либо список строк (для чекбоксов).
type FormAnswers map[string]any

// NewRequest собирает неизменяемый запрос со статусом open. Пустые строки
// требований отфильтровываются, итоговая цена считается только если выбрана
// хотя бы одна доплата, ответы формы сохраняются только если они непустые.
func NewRequest(
	clientID uuid.UUID,
	title string,
	category valueobject.Category,
	description string,
	budget valueobject.Budget,
	deadline time.Time,
	requirements []string,
	rushRequest bool,
	additionalConcepts, additionalRevisions int,
	formID *uuid.UUID,
	formAnswers FormAnswers,
) (*Request, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "название запроса обязательно")
	}
	if !category.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "некорректная категория запроса")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "описание запроса обязательно")
	}
	if deadline.Before(MinDeadline(time.Now())) {
		return nil, apperror.New(apperror.ErrCodeValidation, "дедлайн должен быть не раньше завтрашнего дня")
	}

	req := &Request{
		ID:                  uuid.New(),
		ClientID:            clientID,
		Title:               strings.TrimSpace(title),
		Category:            category,
		Description:         strings.TrimSpace(description),
		Budget:              budget,
		DeadlineAt:          deadline,
		Requirements:        FilterBlankRequirements(requirements),
		RushRequest:         rushRequest,
		AdditionalConcepts:  additionalConcepts,
		AdditionalRevisions: additionalRevisions,
		Status:              valueobject.RequestStatusOpen,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if rushRequest || additionalConcepts > 0 || additionalRevisions > 0 {
		quote := valueobject.ComputeQuote(budget.Max.Amount, rushRequest, additionalConcepts, additionalRevisions)
		req.TotalPrice = &quote.Total
	}

	if formID != nil && len(formAnswers) > 0 {
		req.FormID = formID
		req.FormAnswers = formAnswers
	}

	return req, nil
}

// MinDeadline возвращает минимально допустимый дедлайн: завтрашний день
// относительно переданного момента.
func MinDeadline(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// FilterBlankRequirements убирает пустые и состоящие из пробелов требования,
// сохраняя порядок остальных.
func FilterBlankRequirements(requirements []string) []string {
	filtered := make([]string, 0, len(requirements))
	for _, r := range requirements {
		if strings.TrimSpace(r) != "" {
			filtered = append(filtered, strings.TrimSpace(r))
		}
	}
	return filtered
}

// Quote пересчитывает стоимость запроса по текущим доплатам.
func (r *Request) Quote() valueobject.Quote {
	return valueobject.ComputeQuote(r.Budget.Max.Amount, r.RushRequest, r.AdditionalConcepts, r.AdditionalRevisions)
}

func (r *Request) StartWork() error {
	if !r.Status.CanTransitionTo(valueobject.RequestStatusInProgress) {
		return apperror.New(apperror.ErrCodeInvalidState, "невозможно начать работу в текущем статусе")
	}
	r.Status = valueobject.RequestStatusInProgress
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Request) Complete() error {
	if !r.Status.CanTransitionTo(valueobject.RequestStatusCompleted) {
		return apperror.New(apperror.ErrCodeInvalidState, "невозможно завершить запрос в текущем статусе")
	}
	r.Status = valueobject.RequestStatusCompleted
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Request) Cancel() error {
	if !r.Status.CanTransitionTo(valueobject.RequestStatusCancelled) {
		return apperror.New(apperror.ErrCodeInvalidState, "невозможно отменить запрос в текущем статусе")
	}
	r.Status = valueobject.RequestStatusCancelled
	r.UpdatedAt = time.Now()
	return nil
}

// Reopen возвращает запрос на публичную доску, например после отказа
// исполнителя.
func (r *Request) Reopen() error {
	if r.Status == valueobject.RequestStatusOpen {
		return nil
	}
	if !r.Status.CanTransitionTo(valueobject.RequestStatusOpen) {
		return apperror.New(apperror.ErrCodeInvalidState, "невозможно вернуть запрос в открытый статус")
	}
	r.Status = valueobject.RequestStatusOpen
	r.UpdatedAt = time.Now()
	return nil
}

func (r *Request) IsOpen() bool {
	return r.Status == valueobject.RequestStatusOpen
}

func (r *Request) IsOwnedBy(userID uuid.UUID) bool {
	return r.ClientID == userID
}
