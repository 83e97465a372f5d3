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

// MediaRepositoryAdapter хранит записи о загруженных файлах.
type MediaRepositoryAdapter struct {
	db *sqlx.DB
}

func NewMediaRepositoryAdapter(db *sqlx.DB) *MediaRepositoryAdapter {
	return &MediaRepositoryAdapter{db: db}
}

func (r *MediaRepositoryAdapter) Create(ctx context.Context, media *entity.MediaFile) error {
	query := `
		INSERT INTO media_files (id, owner_id, file_name, file_path, size_bytes, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.OwnerID, media.FileName, media.FilePath,
		media.SizeBytes, media.ContentType, media.CreatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить файл")
	}
	return nil
}

func (r *MediaRepositoryAdapter) GetByID(ctx context.Context, id uuid.UUID) (*entity.MediaFile, error) {
	var row mediaRow
	query := `
		SELECT id, owner_id, file_name, file_path, size_bytes, content_type, created_at
		FROM media_files WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.New(apperror.ErrCodeNotFound, "файл не найден")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить файл")
	}
	return row.toEntity(), nil
}

func (r *MediaRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = $1`, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить файл")
	}
	return nil
}

type mediaRow struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	FileName    string    `db:"file_name"`
	FilePath    string    `db:"file_path"`
	SizeBytes   int64     `db:"size_bytes"`
	ContentType string    `db:"content_type"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row *mediaRow) toEntity() *entity.MediaFile {
	return &entity.MediaFile{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		FileName:    row.FileName,
		FilePath:    row.FilePath,
		SizeBytes:   row.SizeBytes,
		ContentType: row.ContentType,
		CreatedAt:   row.CreatedAt,
	}
}
