package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/dto"
	"github.com/pixelhunt/design-backend/internal/http/handlers/common"
	questionuc "github.com/pixelhunt/design-backend/internal/usecase/question"
	"github.com/pixelhunt/design-backend/internal/ws"
)

// QuestionHandler предоставляет HTTP слой для вопросов к запросам.
type QuestionHandler struct {
	askUC       *questionuc.AskQuestionUseCase
	respondUC   *questionuc.RespondQuestionUseCase
	listUC      *questionuc.ListQuestionsUseCase
	requestRepo repository.RequestRepository
	hub         *ws.Hub
}

// NewQuestionHandler создаёт хэндлер.
func NewQuestionHandler(
	askUC *questionuc.AskQuestionUseCase,
	respondUC *questionuc.RespondQuestionUseCase,
	listUC *questionuc.ListQuestionsUseCase,
	requestRepo repository.RequestRepository,
	hub *ws.Hub,
) *QuestionHandler {
	return &QuestionHandler{
		askUC:       askUC,
		respondUC:   respondUC,
		listUC:      listUC,
		requestRepo: requestRepo,
		hub:         hub,
	}
}

// Ask обрабатывает POST /requests/:id/questions.
func (h *QuestionHandler) Ask(c *gin.Context) {
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

	var req dto.AskQuestionRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	question, err := h.askUC.Execute(c.Request.Context(), questionuc.AskQuestionInput{
		RequestID:  requestID,
		DesignerID: designerID,
		Question:   req.Question,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if request, err := h.requestRepo.FindByID(c.Request.Context(), requestID); err == nil {
		_ = h.hub.BroadcastToUser(request.ClientID, ws.EventQuestionNew, dto.FromQuestion(question))
	}

	common.RespondJSON(c, http.StatusCreated, dto.FromQuestion(question))
}

// Respond обрабатывает POST /questions/:id/respond.
func (h *QuestionHandler) Respond(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	questionID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.RespondQuestionRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	question, err := h.respondUC.Execute(c.Request.Context(), clientID, questionID, req.Response)
	if err != nil {
		c.Error(err)
		return
	}

	_ = h.hub.BroadcastToUser(question.DesignerID, ws.EventQuestionAnswered, dto.FromQuestion(question))

	common.RespondJSON(c, http.StatusOK, dto.FromQuestion(question))
}

// ByRequest обрабатывает GET /requests/:id/questions — лента вопросов в
// порядке создания.
func (h *QuestionHandler) ByRequest(c *gin.Context) {
	requestID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	questions, err := h.listUC.Execute(c.Request.Context(), requestID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromQuestions(questions))
}
