package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// AllowedEstimatedDays — фиксированный набор сроков, из которого дизайнер
// выбирает оценку.
var AllowedEstimatedDays = map[int]struct{}{
	3: {}, 5: {}, 7: {}, 10: {}, 14: {}, 21: {}, 30: {},
}

// Proposal представляет отклик дизайнера на запрос.
type Proposal struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	DesignerID    uuid.UUID
	Message       string
	ProposedPrice float64
	EstimatedDays int
	Status        valueobject.ProposalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProposal(requestID, designerID uuid.UUID, message string, proposedPrice float64, estimatedDays int) (*Proposal, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "сопроводительное сообщение обязательно")
	}
	if proposedPrice <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "предложенная цена должна быть положительной")
	}
	if _, ok := AllowedEstimatedDays[estimatedDays]; !ok {
		return nil, apperror.New(apperror.ErrCodeValidation, "срок выполнения должен быть одним из: 3, 5, 7, 10, 14, 21, 30 дней")
	}

	return &Proposal{
		ID:            uuid.New(),
		RequestID:     requestID,
		DesignerID:    designerID,
		Message:       strings.TrimSpace(message),
		ProposedPrice: proposedPrice,
		EstimatedDays: estimatedDays,
		Status:        valueobject.ProposalStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

func (p *Proposal) Accept() error {
	if p.Status != valueobject.ProposalStatusPending {
		return apperror.New(apperror.ErrCodeInvalidState, "можно принять только ожидающее предложение")
	}
	p.Status = valueobject.ProposalStatusAccepted
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Proposal) Reject() error {
	if p.Status != valueobject.ProposalStatusPending {
		return apperror.New(apperror.ErrCodeInvalidState, "можно отклонить только ожидающее предложение")
	}
	p.Status = valueobject.ProposalStatusRejected
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Proposal) IsOwnedBy(userID uuid.UUID) bool {
	return p.DesignerID == userID
}

func (p *Proposal) IsPending() bool {
	return p.Status == valueobject.ProposalStatusPending
}

func (p *Proposal) IsAccepted() bool {
	return p.Status == valueobject.ProposalStatusAccepted
}
