package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

type ProposalRepositoryAdapter struct {
	db *sqlx.DB
}

func NewProposalRepositoryAdapter(db *sqlx.DB) *ProposalRepositoryAdapter {
	return &ProposalRepositoryAdapter{db: db}
}

func (r *ProposalRepositoryAdapter) Create(ctx context.Context, proposal *entity.Proposal) error {
	query := `
		INSERT INTO proposals (id, request_id, designer_id, message, proposed_price, estimated_days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		proposal.ID, proposal.RequestID, proposal.DesignerID, proposal.Message,
		proposal.ProposedPrice, proposal.EstimatedDays, string(proposal.Status),
		proposal.CreatedAt, proposal.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать предложение")
	}
	return nil
}

func (r *ProposalRepositoryAdapter) Update(ctx context.Context, proposal *entity.Proposal) error {
	query := `
		UPDATE proposals SET message = $2, proposed_price = $3, estimated_days = $4, status = $5, updated_at = $6
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		proposal.ID, proposal.Message, proposal.ProposedPrice, proposal.EstimatedDays,
		string(proposal.Status), proposal.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить предложение")
	}
	return nil
}

func (r *ProposalRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	var row proposalRow
	query := selectProposalColumns + ` WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить предложение")
	}
	return row.toEntity(), nil
}

func (r *ProposalRepositoryAdapter) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error) {
	var rows []proposalRow
	query := selectProposalColumns + ` WHERE request_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, requestID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить предложения")
	}
	return toProposalEntities(rows), nil
}

func (r *ProposalRepositoryAdapter) FindByDesignerID(ctx context.Context, designerID uuid.UUID) ([]*entity.Proposal, error) {
	var rows []proposalRow
	query := selectProposalColumns + ` WHERE designer_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, designerID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить предложения")
	}
	return toProposalEntities(rows), nil
}

func (r *ProposalRepositoryAdapter) FindByRequestAndDesigner(ctx context.Context, requestID, designerID uuid.UUID) (*entity.Proposal, error) {
	var row proposalRow
	query := selectProposalColumns + ` WHERE request_id = $1 AND designer_id = $2`
	if err := r.db.GetContext(ctx, &row, query, requestID, designerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить предложение")
	}
	return row.toEntity(), nil
}

func (r *ProposalRepositoryAdapter) RejectPendingExcept(ctx context.Context, requestID, acceptedID uuid.UUID) error {
	query := `
		UPDATE proposals SET status = $3, updated_at = NOW()
		WHERE request_id = $1 AND id <> $2 AND status = $4
	`
	_, err := r.db.ExecContext(ctx, query, requestID, acceptedID,
		string(valueobject.ProposalStatusRejected), string(valueobject.ProposalStatusPending))
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отклонить остальные предложения")
	}
	return nil
}

const selectProposalColumns = `
	SELECT id, request_id, designer_id, message, proposed_price, estimated_days, status, created_at, updated_at
	FROM proposals`

type proposalRow struct {
	ID            uuid.UUID `db:"id"`
	RequestID     uuid.UUID `db:"request_id"`
	DesignerID    uuid.UUID `db:"designer_id"`
	Message       string    `db:"message"`
	ProposedPrice float64   `db:"proposed_price"`
	EstimatedDays int       `db:"estimated_days"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row *proposalRow) toEntity() *entity.Proposal {
	status, _ := valueobject.NewProposalStatus(row.Status)
	return &entity.Proposal{
		ID:            row.ID,
		RequestID:     row.RequestID,
		DesignerID:    row.DesignerID,
		Message:       row.Message,
		ProposedPrice: row.ProposedPrice,
		EstimatedDays: row.EstimatedDays,
		Status:        status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func toProposalEntities(rows []proposalRow) []*entity.Proposal {
	proposals := make([]*entity.Proposal, 0, len(rows))
	for i := range rows {
		proposals = append(proposals, rows[i].toEntity())
	}
	return proposals
}
