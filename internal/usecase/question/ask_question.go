package question

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
)

// AskQuestionInput — новый вопрос дизайнера к запросу.
type AskQuestionInput struct {
	RequestID  uuid.UUID
	DesignerID uuid.UUID
	Question   string
}

// AskQuestionUseCase публикует уточняющий вопрос к запросу. Вопросы можно
// задавать только к открытым запросам и только чужим.
type AskQuestionUseCase struct {
	requestRepo  repository.RequestRepository
	questionRepo repository.QuestionRepository
}

func NewAskQuestionUseCase(requestRepo repository.RequestRepository, questionRepo repository.QuestionRepository) *AskQuestionUseCase {
	return &AskQuestionUseCase{requestRepo: requestRepo, questionRepo: questionRepo}
}

func (uc *AskQuestionUseCase) Execute(ctx context.Context, input AskQuestionInput) (*entity.Question, error) {
	req, err := uc.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	if !req.IsOpen() {
		return nil, apperror.New(apperror.ErrCodeInvalidState, "вопросы принимаются только по открытым запросам")
	}
	if req.IsOwnedBy(input.DesignerID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "нельзя задавать вопросы к собственному запросу")
	}

	question, err := entity.NewQuestion(input.RequestID, input.DesignerID, input.Question)
	if err != nil {
		return nil, err
	}

	if err := uc.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}
