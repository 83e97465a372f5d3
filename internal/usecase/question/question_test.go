package question_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/usecase/question"
)

type mockQuestionRepository struct {
	questions map[uuid.UUID]*entity.Question
}

func newMockQuestionRepository() *mockQuestionRepository {
	return &mockQuestionRepository{questions: make(map[uuid.UUID]*entity.Question)}
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *entity.Question) error {
	m.questions[q.ID] = q
	return nil
}

func (m *mockQuestionRepository) Update(ctx context.Context, q *entity.Question) error {
	m.questions[q.ID] = q
	return nil
}

func (m *mockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	if q, ok := m.questions[id]; ok {
		return q, nil
	}
	return nil, apperror.ErrQuestionNotFound
}

func (m *mockQuestionRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*entity.Question, error) {
	var result []*entity.Question
	for _, q := range m.questions {
		if q.RequestID == requestID {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
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

func createOpenRequest(clientID uuid.UUID) *entity.Request {
	budget, _ := valueobject.NewBudget(100, 500)
	return &entity.Request{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       "Иллюстрации для книги",
		Category:    valueobject.CategoryIllustration,
		Description: "Серия из десяти иллюстраций",
		Budget:      budget,
		DeadlineAt:  time.Now().AddDate(0, 0, 21),
		Status:      valueobject.RequestStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestAskQuestionUseCase_Success(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewAskQuestionUseCase(requestRepo, questionRepo)

	req := createOpenRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	q, err := uc.Execute(context.Background(), question.AskQuestionInput{
		RequestID:  req.ID,
		DesignerID: uuid.New(),
		Question:   "Какой стиль иллюстраций предпочитаете?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status() != valueobject.QuestionStatusPending {
		t.Errorf("expected pending status, got %s", q.Status())
	}
	if q.ClientResponse != nil || q.RespondedAt != nil {
		t.Error("expected new question to have no response")
	}
}

func TestAskQuestionUseCase_TooLong(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewAskQuestionUseCase(requestRepo, questionRepo)

	req := createOpenRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	_, err := uc.Execute(context.Background(), question.AskQuestionInput{
		RequestID:  req.ID,
		DesignerID: uuid.New(),
		Question:   strings.Repeat("а", 501),
	})
	if err == nil {
		t.Fatal("expected error for question above 500 characters")
	}
}

func TestAskQuestionUseCase_ClosedRequest(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewAskQuestionUseCase(requestRepo, questionRepo)

	req := createOpenRequest(uuid.New())
	req.Status = valueobject.RequestStatusCompleted
	requestRepo.requests[req.ID] = req

	_, err := uc.Execute(context.Background(), question.AskQuestionInput{
		RequestID:  req.ID,
		DesignerID: uuid.New(),
		Question:   "Ещё актуально?",
	})
	if err == nil {
		t.Fatal("expected error for closed request")
	}
}

func TestRespondQuestionUseCase_SetsResponseAndDateTogether(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewRespondQuestionUseCase(requestRepo, questionRepo)

	clientID := uuid.New()
	req := createOpenRequest(clientID)
	requestRepo.requests[req.ID] = req

	q, _ := entity.NewQuestion(req.ID, uuid.New(), "Есть ли брендбук?")
	questionRepo.questions[q.ID] = q

	answered, err := uc.Execute(context.Background(), clientID, q.ID, "Да, вышлю отдельно")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if answered.ClientResponse == nil || answered.RespondedAt == nil {
		t.Fatal("expected response and responded date to be set together")
	}
	if answered.Status() != valueobject.QuestionStatusAnswered {
		t.Errorf("expected answered status, got %s", answered.Status())
	}
}

func TestRespondQuestionUseCase_SecondResponseRejected(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewRespondQuestionUseCase(requestRepo, questionRepo)

	clientID := uuid.New()
	req := createOpenRequest(clientID)
	requestRepo.requests[req.ID] = req

	q, _ := entity.NewQuestion(req.ID, uuid.New(), "Есть ли брендбук?")
	questionRepo.questions[q.ID] = q

	if _, err := uc.Execute(context.Background(), clientID, q.ID, "Первый ответ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(context.Background(), clientID, q.ID, "Второй ответ"); err == nil {
		t.Fatal("expected error for second response")
	}
}

func TestRespondQuestionUseCase_NotOwner(t *testing.T) {
	requestRepo := newMockRequestRepository()
	questionRepo := newMockQuestionRepository()
	uc := question.NewRespondQuestionUseCase(requestRepo, questionRepo)

	req := createOpenRequest(uuid.New())
	requestRepo.requests[req.ID] = req

	q, _ := entity.NewQuestion(req.ID, uuid.New(), "Есть ли брендбук?")
	questionRepo.questions[q.ID] = q

	if _, err := uc.Execute(context.Background(), uuid.New(), q.ID, "Отвечаю на чужой запрос"); err == nil {
		t.Fatal("expected error for non-owner response")
	}
}
