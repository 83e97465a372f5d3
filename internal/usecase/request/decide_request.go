package request

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/validation"
)

// DecisionState — состояние процесса принятия решения по запросу.
type DecisionState int

const (
	DecisionUndecided DecisionState = iota
	DecisionAcceptDrafting
	DecisionRejectDrafting
	DecisionFinalized
)

// Decision — итог завершённого процесса решения.
type Decision struct {
	RequestID  uuid.UUID
	DesignerID uuid.UUID
	Accepted   bool
	// Message — необязательное сообщение при принятии.
	Message *string
	// Reason — обязательная причина при отказе.
	Reason string
}

// DecisionWorkflow ведёт дизайнера через принятие или отклонение запроса.
// Из нейтрального состояния можно начать черновик принятия или отказа,
// вернуться назад с потерей черновика, либо завершить процесс. Завершение
// необратимо: экземпляр становится одноразовым.
type DecisionWorkflow struct {
	requestID  uuid.UUID
	designerID uuid.UUID
	state      DecisionState
	message    string
	reason     string
}

func NewDecisionWorkflow(requestID, designerID uuid.UUID) *DecisionWorkflow {
	return &DecisionWorkflow{
		requestID:  requestID,
		designerID: designerID,
		state:      DecisionUndecided,
	}
}

func (w *DecisionWorkflow) State() DecisionState {
	return w.state
}

// StartAccept открывает черновик принятия.
func (w *DecisionWorkflow) StartAccept() error {
	if w.state != DecisionUndecided {
		return apperror.New(apperror.ErrCodeInvalidState, "решение уже в работе или принято")
	}
	w.state = DecisionAcceptDrafting
	return nil
}

// StartReject открывает черновик отказа.
func (w *DecisionWorkflow) StartReject() error {
	if w.state != DecisionUndecided {
		return apperror.New(apperror.ErrCodeInvalidState, "решение уже в работе или принято")
	}
	w.state = DecisionRejectDrafting
	return nil
}

// Back отменяет черновик и возвращает в нейтральное состояние. Введённый
// текст при этом теряется.
func (w *DecisionWorkflow) Back() error {
	switch w.state {
	case DecisionAcceptDrafting, DecisionRejectDrafting:
		w.state = DecisionUndecided
		w.message = ""
		w.reason = ""
		return nil
	default:
		return apperror.New(apperror.ErrCodeInvalidState, "возврат возможен только из черновика")
	}
}

func (w *DecisionWorkflow) SetMessage(message string) {
	w.message = message
}

func (w *DecisionWorkflow) SetReason(reason string) {
	w.reason = reason
}

// FinalizeAccept завершает процесс принятием. Сообщение необязательно, но
// ограничено по длине.
func (w *DecisionWorkflow) FinalizeAccept() (Decision, error) {
	if w.state != DecisionAcceptDrafting {
		return Decision{}, apperror.New(apperror.ErrCodeInvalidState, "принятие не начато")
	}

	message := strings.TrimSpace(w.message)
	if err := validation.ValidateLength("сообщение", message, 0, validation.MaxAcceptMessageLength); err != nil {
		return Decision{}, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	w.state = DecisionFinalized

	decision := Decision{
		RequestID:  w.requestID,
		DesignerID: w.designerID,
		Accepted:   true,
	}
	if message != "" {
		decision.Message = &message
	}
	return decision, nil
}

// FinalizeReject завершает процесс отказом. Причина обязательна.
func (w *DecisionWorkflow) FinalizeReject() (Decision, error) {
	if w.state != DecisionRejectDrafting {
		return Decision{}, apperror.New(apperror.ErrCodeInvalidState, "отказ не начат")
	}

	reason := strings.TrimSpace(w.reason)
	if reason == "" {
		return Decision{}, apperror.New(apperror.ErrCodeValidation, "причина отказа обязательна")
	}
	if err := validation.ValidateLength("причина отказа", reason, 0, validation.MaxRejectReasonLength); err != nil {
		return Decision{}, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	w.state = DecisionFinalized

	return Decision{
		RequestID:  w.requestID,
		DesignerID: w.designerID,
		Accepted:   false,
		Reason:     reason,
	}, nil
}

// DecideRequestUseCase применяет завершённое решение дизайнера к запросу.
// Принятие переводит открытый запрос в работу, отказ возвращает запрос на
// доску, чтобы с ним могли работать другие дизайнеры.
type DecideRequestUseCase struct {
	requestRepo repository.RequestRepository
}

func NewDecideRequestUseCase(requestRepo repository.RequestRepository) *DecideRequestUseCase {
	return &DecideRequestUseCase{requestRepo: requestRepo}
}

func (uc *DecideRequestUseCase) Execute(ctx context.Context, decision Decision) (*entity.Request, error) {
	req, err := uc.requestRepo.FindByID(ctx, decision.RequestID)
	if err != nil {
		return nil, err
	}

	if req.IsOwnedBy(decision.DesignerID) {
		return nil, apperror.New(apperror.ErrCodeForbidden, "нельзя принимать решение по собственному запросу")
	}

	if decision.Accepted {
		if err := req.StartWork(); err != nil {
			return nil, err
		}
	} else {
		if err := req.Reopen(); err != nil {
			return nil, err
		}
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}
