package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

type FormRepositoryAdapter struct {
	db *sqlx.DB
}

func NewFormRepositoryAdapter(db *sqlx.DB) *FormRepositoryAdapter {
	return &FormRepositoryAdapter{db: db}
}

func (r *FormRepositoryAdapter) Create(ctx context.Context, form *entity.Form) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось открыть транзакцию")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO forms (id, designer_id, title, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, query,
		form.ID, form.DesignerID, form.Title, form.Description, form.IsActive,
		form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать форму")
	}

	if err := insertFields(ctx, tx, form); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось зафиксировать транзакцию")
	}
	return nil
}

// Update перезаписывает форму вместе с полями: набор и порядок полей меняются
// только целиком.
func (r *FormRepositoryAdapter) Update(ctx context.Context, form *entity.Form) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось открыть транзакцию")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE forms SET title = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, query,
		form.ID, form.Title, form.Description, form.IsActive, form.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить форму")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM form_fields WHERE form_id = $1`, form.ID); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить поля формы")
	}
	if err := insertFields(ctx, tx, form); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось зафиксировать транзакцию")
	}
	return nil
}

func (r *FormRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Form, error) {
	var row formRow
	if err := r.db.GetContext(ctx, &row, selectFormColumns+` WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrFormNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить форму")
	}

	forms, err := r.withFields(ctx, []formRow{row})
	if err != nil {
		return nil, err
	}
	return forms[0], nil
}

func (r *FormRepositoryAdapter) FindByDesignerID(ctx context.Context, designerID uuid.UUID) ([]*entity.Form, error) {
	var rows []formRow
	query := selectFormColumns + ` WHERE designer_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, designerID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить формы")
	}
	return r.withFields(ctx, rows)
}

func (r *FormRepositoryAdapter) ListActive(ctx context.Context) ([]*entity.Form, error) {
	var rows []formRow
	query := selectFormColumns + ` WHERE is_active = TRUE ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить активные формы")
	}
	return r.withFields(ctx, rows)
}

func (r *FormRepositoryAdapter) withFields(ctx context.Context, rows []formRow) ([]*entity.Form, error) {
	forms := make([]*entity.Form, 0, len(rows))
	if len(rows) == 0 {
		return forms, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	byID := make(map[uuid.UUID]*entity.Form, len(rows))
	for i := range rows {
		form := rows[i].toEntity()
		forms = append(forms, form)
		ids = append(ids, form.ID)
		byID[form.ID] = form
	}

	var fieldRows []formFieldRow
	query := `
		SELECT id, form_id, field_type, label, placeholder, required, options, position
		FROM form_fields WHERE form_id = ANY($1) ORDER BY form_id, position
	`
	if err := r.db.SelectContext(ctx, &fieldRows, query, pq.Array(ids)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить поля форм")
	}

	for i := range fieldRows {
		form := byID[fieldRows[i].FormID]
		form.Fields = append(form.Fields, fieldRows[i].toEntity())
	}

	return forms, nil
}

func insertFields(ctx context.Context, tx *sqlx.Tx, form *entity.Form) error {
	query := `
		INSERT INTO form_fields (id, form_id, field_type, label, placeholder, required, options, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, field := range form.Fields {
		_, err := tx.ExecContext(ctx, query,
			field.ID, field.FormID, string(field.Type), field.Label, field.Placeholder,
			field.Required, pq.Array(field.Options), field.Position,
		)
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить поле формы")
		}
	}
	return nil
}

const selectFormColumns = `
	SELECT id, designer_id, title, description, is_active, created_at, updated_at
	FROM forms`

type formRow struct {
	ID          uuid.UUID `db:"id"`
	DesignerID  uuid.UUID `db:"designer_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row *formRow) toEntity() *entity.Form {
	return &entity.Form{
		ID:          row.ID,
		DesignerID:  row.DesignerID,
		Title:       row.Title,
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

type formFieldRow struct {
	ID          uuid.UUID      `db:"id"`
	FormID      uuid.UUID      `db:"form_id"`
	FieldType   string         `db:"field_type"`
	Label       string         `db:"label"`
	Placeholder *string        `db:"placeholder"`
	Required    bool           `db:"required"`
	Options     pq.StringArray `db:"options"`
	Position    int            `db:"position"`
}

func (row *formFieldRow) toEntity() entity.FormField {
	return entity.FormField{
		ID:          row.ID,
		FormID:      row.FormID,
		Type:        entity.FieldType(row.FieldType),
		Label:       row.Label,
		Placeholder: row.Placeholder,
		Required:    row.Required,
		Options:     []string(row.Options),
		Position:    row.Position,
	}
}
