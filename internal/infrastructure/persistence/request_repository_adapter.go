package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

type RequestRepositoryAdapter struct {
	db *sqlx.DB
}

func NewRequestRepositoryAdapter(db *sqlx.DB) *RequestRepositoryAdapter {
	return &RequestRepositoryAdapter{db: db}
}

func (r *RequestRepositoryAdapter) Create(ctx context.Context, req *entity.Request) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось открыть транзакцию")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	formAnswers, err := marshalFormAnswers(req.FormAnswers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO requests (id, client_id, title, category, description, budget_min, budget_max,
		deadline_at, rush_request, additional_concepts, additional_revisions, total_price,
		form_id, form_answers, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err = tx.ExecContext(ctx, query,
		req.ID, req.ClientID, req.Title, string(req.Category), req.Description,
		req.Budget.Min.Amount, req.Budget.Max.Amount, req.DeadlineAt,
		req.RushRequest, req.AdditionalConcepts, req.AdditionalRevisions, req.TotalPrice,
		req.FormID, formAnswers, string(req.Status), req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать запрос")
	}

	for position, content := range req.Requirements {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO request_requirements (request_id, position, content) VALUES ($1, $2, $3)`,
			req.ID, position, content,
		)
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить требование")
		}
	}

	for _, att := range req.Attachments {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO request_attachments (id, request_id, media_id, created_at) VALUES ($1, $2, $3, $4)`,
			att.ID, att.RequestID, att.MediaID, att.CreatedAt,
		)
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить вложение")
		}
	}

	if err := tx.Commit(); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось зафиксировать транзакцию")
	}
	return nil
}

// Update сохраняет изменяемую часть запроса. Требования и вложения после
// создания не редактируются.
func (r *RequestRepositoryAdapter) Update(ctx context.Context, req *entity.Request) error {
	query := `
		UPDATE requests SET status = $2, total_price = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, req.ID, string(req.Status), req.TotalPrice, req.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить запрос")
	}
	return nil
}

func (r *RequestRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var row requestRow
	if err := r.db.GetContext(ctx, &row, selectRequestColumns+` WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить запрос")
	}

	req, err := row.toEntity()
	if err != nil {
		return nil, err
	}
	if err := r.attachDetails(ctx, []*entity.Request{req}); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *RequestRepositoryAdapter) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Request, error) {
	var rows []requestRow
	query := selectRequestColumns + ` WHERE client_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, clientID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить запросы клиента")
	}

	requests, err := toRequestEntities(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachDetails(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepositoryAdapter) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, int, error) {
	where := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	condition := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM requests WHERE ` + condition
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось посчитать запросы")
	}

	args = append(args, filter.Limit, filter.Offset)
	listQuery := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		selectRequestColumns, condition, len(args)-1, len(args))

	var rows []requestRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить запросы")
	}

	requests, err := toRequestEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachDetails(ctx, requests); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// attachDetails догружает требования и вложения одним запросом на таблицу.
func (r *RequestRepositoryAdapter) attachDetails(ctx context.Context, requests []*entity.Request) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(requests))
	byID := make(map[uuid.UUID]*entity.Request, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
		byID[req.ID] = req
	}

	type requirementRow struct {
		RequestID uuid.UUID `db:"request_id"`
		Position  int       `db:"position"`
		Content   string    `db:"content"`
	}
	var reqRows []requirementRow
	query := `SELECT request_id, position, content FROM request_requirements
		WHERE request_id = ANY($1) ORDER BY request_id, position`
	if err := r.db.SelectContext(ctx, &reqRows, query, pq.Array(ids)); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить требования")
	}
	for _, row := range reqRows {
		req := byID[row.RequestID]
		req.Requirements = append(req.Requirements, row.Content)
	}

	type attachmentRow struct {
		ID        uuid.UUID `db:"id"`
		RequestID uuid.UUID `db:"request_id"`
		MediaID   uuid.UUID `db:"media_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	var attRows []attachmentRow
	query = `SELECT id, request_id, media_id, created_at FROM request_attachments
		WHERE request_id = ANY($1) ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &attRows, query, pq.Array(ids)); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить вложения")
	}
	for _, row := range attRows {
		req := byID[row.RequestID]
		req.Attachments = append(req.Attachments, entity.RequestAttachment{
			ID:        row.ID,
			RequestID: row.RequestID,
			MediaID:   row.MediaID,
			CreatedAt: row.CreatedAt,
		})
	}

	return nil
}

const selectRequestColumns = `
	SELECT id, client_id, title, category, description, budget_min, budget_max,
	deadline_at, rush_request, additional_concepts, additional_revisions, total_price,
	form_id, form_answers, status, created_at, updated_at
	FROM requests`

type requestRow struct {
	ID                  uuid.UUID  `db:"id"`
	ClientID            uuid.UUID  `db:"client_id"`
	Title               string     `db:"title"`
	Category            string     `db:"category"`
	Description         string     `db:"description"`
	BudgetMin           float64    `db:"budget_min"`
	BudgetMax           float64    `db:"budget_max"`
	DeadlineAt          time.Time  `db:"deadline_at"`
	RushRequest         bool       `db:"rush_request"`
	AdditionalConcepts  int        `db:"additional_concepts"`
	AdditionalRevisions int        `db:"additional_revisions"`
	TotalPrice          *float64   `db:"total_price"`
	FormID              *uuid.UUID `db:"form_id"`
	FormAnswers         []byte     `db:"form_answers"`
	Status              string     `db:"status"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (row *requestRow) toEntity() (*entity.Request, error) {
	budget, err := valueobject.NewBudget(row.BudgetMin, row.BudgetMax)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "некорректный бюджет в хранилище")
	}
	status, err := valueobject.NewRequestStatus(row.Status)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "некорректный статус в хранилище")
	}

	req := &entity.Request{
		ID:                  row.ID,
		ClientID:            row.ClientID,
		Title:               row.Title,
		Category:            valueobject.Category(row.Category),
		Description:         row.Description,
		Budget:              budget,
		DeadlineAt:          row.DeadlineAt,
		RushRequest:         row.RushRequest,
		AdditionalConcepts:  row.AdditionalConcepts,
		AdditionalRevisions: row.AdditionalRevisions,
		TotalPrice:          row.TotalPrice,
		FormID:              row.FormID,
		Status:              status,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}

	if len(row.FormAnswers) > 0 {
		var answers entity.FormAnswers
		if err := json.Unmarshal(row.FormAnswers, &answers); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "некорректные ответы формы в хранилище")
		}
		req.FormAnswers = answers
	}

	return req, nil
}

func toRequestEntities(rows []requestRow) ([]*entity.Request, error) {
	requests := make([]*entity.Request, 0, len(rows))
	for i := range rows {
		req, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func marshalFormAnswers(answers entity.FormAnswers) ([]byte, error) {
	if len(answers) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сериализовать ответы формы")
	}
	return data, nil
}
