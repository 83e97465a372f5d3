package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

type QuestionRepositoryAdapter struct {
	db *sqlx.DB
}

func NewQuestionRepositoryAdapter(db *sqlx.DB) *QuestionRepositoryAdapter {
	return &QuestionRepositoryAdapter{db: db}
}

func (r *QuestionRepositoryAdapter) Create(ctx context.Context, question *entity.Question) error {
	query := `
		INSERT INTO questions (id, request_id, designer_id, question, client_response, responded_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.RequestID, question.DesignerID, question.Question,
		question.ClientResponse, question.RespondedAt, question.CreatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать вопрос")
	}
	return nil
}

func (r *QuestionRepositoryAdapter) Update(ctx context.Context, question *entity.Question) error {
	query := `
		UPDATE questions SET client_response = $2, responded_at = $3
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, question.ID, question.ClientResponse, question.RespondedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить вопрос")
	}
	return nil
}

func (r *QuestionRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var row questionRow
	query := selectQuestionColumns + ` WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrQuestionNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить вопрос")
	}
	return row.toEntity(), nil
}

func (r *QuestionRepositoryAdapter) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Question, error) {
	var rows []questionRow
	query := selectQuestionColumns + ` WHERE request_id = $1 ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &rows, query, requestID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить вопросы")
	}

	questions := make([]*entity.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, rows[i].toEntity())
	}
	return questions, nil
}

const selectQuestionColumns = `
	SELECT id, request_id, designer_id, question, client_response, responded_at, created_at
	FROM questions`

type questionRow struct {
	ID             uuid.UUID  `db:"id"`
	RequestID      uuid.UUID  `db:"request_id"`
	DesignerID     uuid.UUID  `db:"designer_id"`
	Question       string     `db:"question"`
	ClientResponse *string    `db:"client_response"`
	RespondedAt    *time.Time `db:"responded_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (row *questionRow) toEntity() *entity.Question {
	return &entity.Question{
		ID:             row.ID,
		RequestID:      row.RequestID,
		DesignerID:     row.DesignerID,
		Question:       row.Question,
		ClientResponse: row.ClientResponse,
		RespondedAt:    row.RespondedAt,
		CreatedAt:      row.CreatedAt,
	}
}
