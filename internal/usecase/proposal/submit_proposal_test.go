package proposal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/usecase/proposal"
)

type mockProposalRepository struct {
	proposals map[uuid.UUID]*entity.Proposal
}

func newMockProposalRepository() *mockProposalRepository {
	return &mockProposalRepository{proposals: make(map[uuid.UUID]*entity.Proposal)}
}

func (m *mockProposalRepository) Create(ctx context.Context, p *entity.Proposal) error {
	m.proposals[p.ID] = p
	return nil
}

func (m *mockProposalRepository) Update(ctx context.Context, p *entity.Proposal) error {
	m.proposals[p.ID] = p
	return nil
}

func (m *mockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	if p, ok := m.proposals[id]; ok {
		return p, nil
	}
	return nil, apperror.ErrProposalNotFound
}

func (m *mockProposalRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error) {
	var result []*entity.Proposal
	for _, p := range m.proposals {
		if p.RequestID == requestID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProposalRepository) FindByDesignerID(ctx context.Context, designerID uuid.UUID) ([]*entity.Proposal, error) {
	var result []*entity.Proposal
	for _, p := range m.proposals {
		if p.DesignerID == designerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProposalRepository) FindByRequestAndDesigner(ctx context.Context, requestID, designerID uuid.UUID) (*entity.Proposal, error) {
	for _, p := range m.proposals {
		if p.RequestID == requestID && p.DesignerID == designerID {
			return p, nil
		}
	}
	return nil, apperror.ErrProposalNotFound
}

func (m *mockProposalRepository) RejectPendingExcept(ctx context.Context, requestID, acceptedID uuid.UUID) error {
	for _, p := range m.proposals {
		if p.RequestID == requestID && p.ID != acceptedID && p.Status == valueobject.ProposalStatusPending {
			p.Status = valueobject.ProposalStatusRejected
		}
	}
	return nil
}

type mockRequestRepository struct {
	requests map[uuid.UUID]*entity.Request
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{requests: make(map[uuid.UUID]*entity.Request)}
}

func (m *mockRequestRepository) Create(ctx context.Context, r *entity.Request) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *entity.Request) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperror.ErrRequestNotFound
}

func (m *mockRequestRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Request, error) {
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, int, error) {
	return nil, 0, nil
}

func createTestRequest(clientID uuid.UUID) *entity.Request {
	budget, _ := valueobject.NewBudget(100, 500)
	return &entity.Request{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       "Фирменный стиль студии",
		Category:    valueobject.CategoryBranding,
		Description: "Полный фирменный стиль с гайдлайном",
		Budget:      budget,
		DeadlineAt:  time.Now().AddDate(0, 0, 14),
		Status:      valueobject.RequestStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestSubmitProposalUseCase_Success(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    uuid.New(),
		Message:       "Есть опыт работы с брендингом студий",
		ProposedPrice: 300,
		EstimatedDays: 7,
	}

	result, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != valueobject.ProposalStatusPending {
		t.Errorf("expected pending status, got %s", result.Status)
	}
	if _, ok := proposalRepo.proposals[result.ID]; !ok {
		t.Error("expected proposal to be persisted")
	}
}

func TestSubmitProposalUseCase_ClosedRequest(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	req.Status = valueobject.RequestStatusInProgress
	requestRepo.requests[req.ID] = req

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    uuid.New(),
		Message:       "Готов взяться за проект",
		ProposedPrice: 300,
		EstimatedDays: 7,
	}

	if _, err := uc.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for request that is not open")
	}
}

func TestSubmitProposalUseCase_OwnRequest(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	clientID := uuid.New()
	req := createTestRequest(clientID)
	requestRepo.requests[req.ID] = req

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    clientID,
		Message:       "Сам себе предлагаю услуги",
		ProposedPrice: 300,
		EstimatedDays: 7,
	}

	if _, err := uc.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for own request")
	}
}

func TestSubmitProposalUseCase_Duplicate(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	requestRepo.requests[req.ID] = req
	designerID := uuid.New()

	first, _ := entity.NewProposal(req.ID, designerID, "Первое предложение по проекту", 200, 5)
	proposalRepo.proposals[first.ID] = first

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    designerID,
		Message:       "Второе предложение по проекту",
		ProposedPrice: 250,
		EstimatedDays: 7,
	}

	if _, err := uc.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for duplicate proposal")
	}
}

func TestSubmitProposalUseCase_PriceOutOfBudget(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    uuid.New(),
		Message:       "Сделаю дороже, но лучше",
		ProposedPrice: 1000,
		EstimatedDays: 7,
	}

	if _, err := uc.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for price out of budget")
	}
}

func TestSubmitProposalUseCase_EstimatedDaysNotAllowed(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewSubmitProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	input := proposal.SubmitProposalInput{
		RequestID:     req.ID,
		DesignerID:    uuid.New(),
		Message:       "Сделаю за четыре дня",
		ProposedPrice: 300,
		EstimatedDays: 4,
	}

	if _, err := uc.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for estimated days outside the allowed set")
	}
}

func TestAcceptProposalUseCase_RejectsPendingSiblings(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewAcceptProposalUseCase(requestRepo, proposalRepo)

	clientID := uuid.New()
	req := createTestRequest(clientID)
	requestRepo.requests[req.ID] = req

	first, _ := entity.NewProposal(req.ID, uuid.New(), "Предложение первого дизайнера", 200, 5)
	second, _ := entity.NewProposal(req.ID, uuid.New(), "Предложение второго дизайнера", 300, 7)
	proposalRepo.proposals[first.ID] = first
	proposalRepo.proposals[second.ID] = second

	accepted, err := uc.Execute(context.Background(), clientID, first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accepted.Status != valueobject.ProposalStatusAccepted {
		t.Errorf("expected accepted status, got %s", accepted.Status)
	}
	if second.Status != valueobject.ProposalStatusRejected {
		t.Errorf("expected sibling to be rejected, got %s", second.Status)
	}
	if req.Status != valueobject.RequestStatusInProgress {
		t.Errorf("expected request in progress, got %s", req.Status)
	}
}

func TestAcceptProposalUseCase_NotOwner(t *testing.T) {
	requestRepo := newMockRequestRepository()
	proposalRepo := newMockProposalRepository()
	uc := proposal.NewAcceptProposalUseCase(requestRepo, proposalRepo)

	req := createTestRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	p, _ := entity.NewProposal(req.ID, uuid.New(), "Предложение по проекту", 200, 5)
	proposalRepo.proposals[p.ID] = p

	if _, err := uc.Execute(context.Background(), uuid.New(), p.ID); err == nil {
		t.Fatal("expected error for foreign request owner")
	}
}
