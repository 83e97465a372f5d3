package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/dto"
	"github.com/pixelhunt/design-backend/internal/http/handlers/common"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	requestuc "github.com/pixelhunt/design-backend/internal/usecase/request"
	"github.com/pixelhunt/design-backend/internal/ws"
)

// RequestHandler предоставляет HTTP слой для запросов на дизайн.
type RequestHandler struct {
	submitUC *requestuc.SubmitRequestUseCase
	listUC   *requestuc.ListRequestsUseCase
	getUC    *requestuc.GetRequestUseCase
	cancelUC *requestuc.CancelRequestUseCase
	decideUC *requestuc.DecideRequestUseCase
	formRepo repository.FormRepository
	hub      *ws.Hub
}

// NewRequestHandler создаёт хэндлер.
func NewRequestHandler(
	submitUC *requestuc.SubmitRequestUseCase,
	listUC *requestuc.ListRequestsUseCase,
	getUC *requestuc.GetRequestUseCase,
	cancelUC *requestuc.CancelRequestUseCase,
	decideUC *requestuc.DecideRequestUseCase,
	formRepo repository.FormRepository,
	hub *ws.Hub,
) *RequestHandler {
	return &RequestHandler{
		submitUC: submitUC,
		listUC:   listUC,
		getUC:    getUC,
		cancelUC: cancelUC,
		decideUC: decideUC,
		formRepo: formRepo,
		hub:      hub,
	}
}

// Create обрабатывает POST /requests. Черновик проводится через все шаги
// мастера, поэтому правила переходов действуют и для API клиентов.
func (h *RequestHandler) Create(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.CreateRequestRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	deadline, err := req.ParseDeadline()
	if err != nil {
		common.RespondBadRequest(c, "дедлайн должен быть в формате RFC3339")
		return
	}

	attachmentIDs, err := req.ParseAttachmentIDs()
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор вложения")
		return
	}

	composer := requestuc.NewComposer(clientID)
	composer.SetBasicInfo(req.Title, req.Category, req.Description, req.BudgetMin, req.BudgetMax, deadline)
	if err := composer.Next(); err != nil {
		c.Error(err)
		return
	}

	editor := composer.Requirements()
	for i, requirement := range req.Requirements {
		if i > 0 {
			editor.Add()
		}
		if err := editor.Update(i, requirement); err != nil {
			c.Error(err)
			return
		}
	}
	composer.SetAttachments(attachmentIDs)
	if err := composer.Next(); err != nil {
		c.Error(err)
		return
	}

	composer.SetPricing(req.RushRequest, req.AdditionalConcepts, req.AdditionalRevisions)
	if err := composer.Next(); err != nil {
		c.Error(err)
		return
	}

	if err := h.bindForm(c, composer, &req); err != nil {
		c.Error(err)
		return
	}

	created, err := h.submitUC.Execute(c.Request.Context(), composer)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusCreated, dto.FromRequest(created))
}

func (h *RequestHandler) bindForm(c *gin.Context, composer *requestuc.Composer, req *dto.CreateRequestRequest) error {
	formID, err := req.ParseFormID()
	if err != nil {
		return apperror.New(apperror.ErrCodeValidation, "неверный идентификатор формы")
	}
	if formID == nil {
		return nil
	}

	selected, err := h.formRepo.FindByID(c.Request.Context(), *formID)
	if err != nil {
		return err
	}
	if !selected.IsActive {
		return apperror.New(apperror.ErrCodeValidation, "форма недоступна для выбора")
	}

	binding := composer.Binding()
	binding.SelectForm(selected)

	for rawID, value := range req.FormAnswers {
		fieldID, err := uuid.Parse(rawID)
		if err != nil {
			return apperror.New(apperror.ErrCodeValidation, "неверный идентификатор поля формы")
		}

		field, ok := selected.FieldByID(fieldID)
		if !ok {
			return apperror.New(apperror.ErrCodeValidation, "поле не принадлежит выбранной форме")
		}

		switch field.Type {
		case entity.FieldTypeText, entity.FieldTypeTextarea:
			text, ok := value.(string)
			if !ok {
				return apperror.New(apperror.ErrCodeValidation, "ответ на текстовое поле должен быть строкой")
			}
			if err := binding.SetText(fieldID, text); err != nil {
				return err
			}
		case entity.FieldTypeSelect, entity.FieldTypeRadio:
			option, ok := value.(string)
			if !ok {
				return apperror.New(apperror.ErrCodeValidation, "ответ на поле выбора должен быть строкой")
			}
			if err := binding.SetChoice(fieldID, option); err != nil {
				return err
			}
		case entity.FieldTypeCheckbox:
			options, ok := value.([]any)
			if !ok {
				return apperror.New(apperror.ErrCodeValidation, "ответ на чекбокс должен быть списком вариантов")
			}
			for _, raw := range options {
				option, ok := raw.(string)
				if !ok {
					return apperror.New(apperror.ErrCodeValidation, "вариант ответа должен быть строкой")
				}
				if err := binding.ToggleOption(fieldID, option); err != nil {
					return err
				}
			}
		case entity.FieldTypeFile:
			// Файлы идут через вложения запроса, ответ на поле игнорируется
		}
	}

	return nil
}

// PreviewQuote обрабатывает POST /requests/preview — расчёт стоимости без
// создания запроса.
func (h *RequestHandler) PreviewQuote(c *gin.Context) {
	var req dto.PricePreviewRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	quote := valueobject.ComputeQuote(req.BudgetMax, req.RushRequest, req.AdditionalConcepts, req.AdditionalRevisions)
	common.RespondJSON(c, http.StatusOK, dto.FromQuote(quote))
}

// List обрабатывает GET /requests — публичная доска запросов.
func (h *RequestHandler) List(c *gin.Context) {
	limit, offset := common.GetPagination(c)

	filter := repository.RequestFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	}

	requests, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.RequestListResponse{
		Items:  dto.FromRequests(requests),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// My обрабатывает GET /requests/my — запросы текущего клиента.
func (h *RequestHandler) My(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	requests, err := h.listUC.ByClient(c.Request.Context(), clientID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromRequests(requests))
}

// Get обрабатывает GET /requests/:id.
func (h *RequestHandler) Get(c *gin.Context) {
	requestID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	req, err := h.getUC.Execute(c.Request.Context(), requestID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromRequest(req))
}

// Cancel обрабатывает POST /requests/:id/cancel.
func (h *RequestHandler) Cancel(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	requestID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	req, err := h.cancelUC.Execute(c.Request.Context(), clientID, requestID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromRequest(req))
}

// Decide обрабатывает POST /requests/:id/decision — принятие или отклонение
// запроса дизайнером.
func (h *RequestHandler) Decide(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	requestID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.DecideRequestRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	workflow := requestuc.NewDecisionWorkflow(requestID, designerID)

	var decision requestuc.Decision
	switch req.Action {
	case "accept":
		if err := workflow.StartAccept(); err != nil {
			c.Error(err)
			return
		}
		workflow.SetMessage(req.Message)
		decision, err = workflow.FinalizeAccept()
	case "reject":
		if err := workflow.StartReject(); err != nil {
			c.Error(err)
			return
		}
		workflow.SetReason(req.Reason)
		decision, err = workflow.FinalizeReject()
	default:
		common.RespondBadRequest(c, "action должен быть accept или reject")
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.decideUC.Execute(c.Request.Context(), decision)
	if err != nil {
		c.Error(err)
		return
	}

	event := ws.EventRequestAccepted
	payload := gin.H{
		"request_id":  updated.ID,
		"designer_id": designerID,
	}
	if decision.Accepted {
		if decision.Message != nil {
			payload["message"] = *decision.Message
		}
	} else {
		event = ws.EventRequestRejected
		payload["reason"] = decision.Reason
	}
	if err := h.hub.BroadcastToUser(updated.ClientID, event, payload); err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromRequest(updated))
}
