package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
)

// RequestFilter описывает параметры выборки публичной доски запросов.
// Поиск — регистронезависимое вхождение в название или описание, категория
// и статус — точное совпадение; пустое значение означает «все». Все три
// предиката объединяются по И.
type RequestFilter struct {
	Search   string
	Category string
	Status   string
	Limit    int
	Offset   int
}

// Matches проверяет запрос фильтром. Используется как эталон семантики
// фильтрации: SQL реализация обязана давать тот же результат.
func (f RequestFilter) Matches(req *entity.Request) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		title := strings.ToLower(req.Title)
		description := strings.ToLower(req.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	if f.Category != "" && f.Category != "All" && string(req.Category) != f.Category {
		return false
	}

	if f.Status != "" && f.Status != "all" && string(req.Status) != f.Status {
		return false
	}

	return true
}

// RequestRepository описывает хранилище запросов.
type RequestRepository interface {
	Create(ctx context.Context, req *entity.Request) error
	Update(ctx context.Context, req *entity.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Request, error)
	List(ctx context.Context, filter RequestFilter) ([]*entity.Request, int, error)
}

// ProposalRepository описывает хранилище предложений.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	Update(ctx context.Context, proposal *entity.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error)
	FindByDesignerID(ctx context.Context, designerID uuid.UUID) ([]*entity.Proposal, error)
	FindByRequestAndDesigner(ctx context.Context, requestID, designerID uuid.UUID) (*entity.Proposal, error)
	// RejectPendingExcept отклоняет все ожидающие предложения запроса, кроме
	// указанного. Применяется при принятии одного предложения.
	RejectPendingExcept(ctx context.Context, requestID, acceptedID uuid.UUID) error
}

// QuestionRepository описывает хранилище вопросов к запросам.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	// FindByRequestID возвращает вопросы в порядке их создания.
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Question, error)
}

// FormRepository описывает хранилище авторских форм.
type FormRepository interface {
	Create(ctx context.Context, form *entity.Form) error
	Update(ctx context.Context, form *entity.Form) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Form, error)
	FindByDesignerID(ctx context.Context, designerID uuid.UUID) ([]*entity.Form, error)
	ListActive(ctx context.Context) ([]*entity.Form, error)
}
