package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// MaxQuestionLength ограничивает длину вопроса дизайнера.
const MaxQuestionLength = 500

// Question — вопрос дизайнера к запросу с опциональным ответом клиента.
// Ответ и его дата выставляются строго вместе и ровно один раз; статус
// вопроса нигде не хранится, он вычисляется из наличия ответа.
type Question struct {
	ID             uuid.UUID
	RequestID      uuid.UUID
	DesignerID     uuid.UUID
	Question       string
	ClientResponse *string
	RespondedAt    *time.Time
	CreatedAt      time.Time
}

func NewQuestion(requestID, designerID uuid.UUID, question string) (*Question, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "текст вопроса обязателен")
	}
	if utf8.RuneCountInString(question) > MaxQuestionLength {
		return nil, apperror.New(apperror.ErrCodeValidation, "вопрос не может быть длиннее 500 символов")
	}

	return &Question{
		ID:         uuid.New(),
		RequestID:  requestID,
		DesignerID: designerID,
		Question:   question,
		CreatedAt:  time.Now(),
	}, nil
}

// Status вычисляет статус вопроса из наличия ответа.
func (q *Question) Status() valueobject.QuestionStatus {
	if q.ClientResponse != nil {
		return valueobject.QuestionStatusAnswered
	}
	return valueobject.QuestionStatusPending
}

// Respond записывает ответ клиента вместе с датой ответа. Повторный ответ
// запрещён.
func (q *Question) Respond(response string) error {
	response = strings.TrimSpace(response)
	if response == "" {
		return apperror.New(apperror.ErrCodeValidation, "текст ответа обязателен")
	}
	if q.ClientResponse != nil {
		return apperror.New(apperror.ErrCodeInvalidState, "на вопрос уже дан ответ")
	}

	now := time.Now()
	q.ClientResponse = &response
	q.RespondedAt = &now
	return nil
}
