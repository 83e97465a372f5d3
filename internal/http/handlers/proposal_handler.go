package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/dto"
	"github.com/pixelhunt/design-backend/internal/http/handlers/common"
	proposaluc "github.com/pixelhunt/design-backend/internal/usecase/proposal"
	"github.com/pixelhunt/design-backend/internal/ws"
)

// ProposalHandler предоставляет HTTP слой для предложений дизайнеров.
type ProposalHandler struct {
	submitUC    *proposaluc.SubmitProposalUseCase
	acceptUC    *proposaluc.AcceptProposalUseCase
	rejectUC    *proposaluc.RejectProposalUseCase
	listUC      *proposaluc.ListProposalsUseCase
	requestRepo repository.RequestRepository
	hub         *ws.Hub
}

// NewProposalHandler создаёт хэндлер.
func NewProposalHandler(
	submitUC *proposaluc.SubmitProposalUseCase,
	acceptUC *proposaluc.AcceptProposalUseCase,
	rejectUC *proposaluc.RejectProposalUseCase,
	listUC *proposaluc.ListProposalsUseCase,
	requestRepo repository.RequestRepository,
	hub *ws.Hub,
) *ProposalHandler {
	return &ProposalHandler{
		submitUC:    submitUC,
		acceptUC:    acceptUC,
		rejectUC:    rejectUC,
		listUC:      listUC,
		requestRepo: requestRepo,
		hub:         hub,
	}
}

// Submit обрабатывает POST /requests/:id/proposals.
func (h *ProposalHandler) Submit(c *gin.Context) {
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

	var req dto.SubmitProposalRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	proposal, err := h.submitUC.Execute(c.Request.Context(), proposaluc.SubmitProposalInput{
		RequestID:     requestID,
		DesignerID:    designerID,
		Message:       req.Message,
		ProposedPrice: req.ProposedPrice,
		EstimatedDays: req.EstimatedDays,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if request, err := h.requestRepo.FindByID(c.Request.Context(), requestID); err == nil {
		_ = h.hub.BroadcastToUser(request.ClientID, ws.EventProposalNew, dto.FromProposal(proposal))
	}

	common.RespondJSON(c, http.StatusCreated, dto.FromProposal(proposal))
}

// Accept обрабатывает POST /proposals/:id/accept.
func (h *ProposalHandler) Accept(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	proposalID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	proposal, err := h.acceptUC.Execute(c.Request.Context(), clientID, proposalID)
	if err != nil {
		c.Error(err)
		return
	}

	_ = h.hub.BroadcastToUser(proposal.DesignerID, ws.EventProposalUpdated, dto.FromProposal(proposal))

	common.RespondJSON(c, http.StatusOK, dto.FromProposal(proposal))
}

// Reject обрабатывает POST /proposals/:id/reject.
func (h *ProposalHandler) Reject(c *gin.Context) {
	clientID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	proposalID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	proposal, err := h.rejectUC.Execute(c.Request.Context(), clientID, proposalID)
	if err != nil {
		c.Error(err)
		return
	}

	_ = h.hub.BroadcastToUser(proposal.DesignerID, ws.EventProposalUpdated, dto.FromProposal(proposal))

	common.RespondJSON(c, http.StatusOK, dto.FromProposal(proposal))
}

// ByRequest обрабатывает GET /requests/:id/proposals — только для владельца.
func (h *ProposalHandler) ByRequest(c *gin.Context) {
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

	proposals, err := h.listUC.ByRequest(c.Request.Context(), clientID, requestID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromProposals(proposals))
}

// My обрабатывает GET /proposals/my — предложения текущего дизайнера.
func (h *ProposalHandler) My(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	proposals, err := h.listUC.ByDesigner(c.Request.Context(), designerID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromProposals(proposals))
}
