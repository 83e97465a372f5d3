package question

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/validation"
)

// RespondQuestionUseCase записывает ответ клиента на вопрос. Отвечать может
// только владелец запроса и только один раз: ответ и его дата выставляются
// единой операцией.
type RespondQuestionUseCase struct {
	requestRepo  repository.RequestRepository
	questionRepo repository.QuestionRepository
}

func NewRespondQuestionUseCase(requestRepo repository.RequestRepository, questionRepo repository.QuestionRepository) *RespondQuestionUseCase {
	return &RespondQuestionUseCase{requestRepo: requestRepo, questionRepo: questionRepo}
}

func (uc *RespondQuestionUseCase) Execute(ctx context.Context, clientID, questionID uuid.UUID, response string) (*entity.Question, error) {
	question, err := uc.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.FindByID(ctx, question.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.IsOwnedBy(clientID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "отвечать на вопросы может только владелец запроса")
	}

	if err := validation.ValidateLength("ответ", response, 0, validation.MaxQuestionResponseLength); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	if err := question.Respond(response); err != nil {
		return nil, err
	}

	if err := uc.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// ListQuestionsUseCase возвращает ленту вопросов запроса в порядке создания.
type ListQuestionsUseCase struct {
	questionRepo repository.QuestionRepository
}

func NewListQuestionsUseCase(questionRepo repository.QuestionRepository) *ListQuestionsUseCase {
	return &ListQuestionsUseCase{questionRepo: questionRepo}
}

func (uc *ListQuestionsUseCase) Execute(ctx context.Context, requestID uuid.UUID) ([]*entity.Question, error) {
	return uc.questionRepo.FindByRequestID(ctx, requestID)
}
