package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/dto"
	"github.com/pixelhunt/design-backend/internal/http/handlers/common"
	formuc "github.com/pixelhunt/design-backend/internal/usecase/form"
)

// FormHandler предоставляет HTTP слой для авторских анкет дизайнеров.
type FormHandler struct {
	createUC    *formuc.CreateFormUseCase
	reorderUC   *formuc.ReorderFormFieldsUseCase
	setActiveUC *formuc.SetFormActiveUseCase
	listUC      *formuc.ListFormsUseCase
	getUC       *formuc.GetFormUseCase
}

// NewFormHandler создаёт хэндлер.
func NewFormHandler(
	createUC *formuc.CreateFormUseCase,
	reorderUC *formuc.ReorderFormFieldsUseCase,
	setActiveUC *formuc.SetFormActiveUseCase,
	listUC *formuc.ListFormsUseCase,
	getUC *formuc.GetFormUseCase,
) *FormHandler {
	return &FormHandler{
		createUC:    createUC,
		reorderUC:   reorderUC,
		setActiveUC: setActiveUC,
		listUC:      listUC,
		getUC:       getUC,
	}
}

// Create обрабатывает POST /forms.
func (h *FormHandler) Create(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.CreateFormRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	fields := make([]entity.FieldInput, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, entity.FieldInput{
			Type:        entity.FieldType(f.Type),
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
			Options:     f.Options,
		})
	}

	form, err := h.createUC.Execute(c.Request.Context(), formuc.CreateFormInput{
		DesignerID:  designerID,
		Title:       req.Title,
		Description: req.Description,
		Fields:      fields,
	})
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusCreated, dto.FromForm(form))
}

// Reorder обрабатывает POST /forms/:id/reorder.
func (h *FormHandler) Reorder(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	formID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.ReorderFormRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	fieldIDs, err := req.ParseFieldIDs()
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор поля")
		return
	}

	form, err := h.reorderUC.Execute(c.Request.Context(), designerID, formID, fieldIDs)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromForm(form))
}

// SetActive обрабатывает PATCH /forms/:id/active.
func (h *FormHandler) SetActive(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	formID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.SetFormActiveRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	form, err := h.setActiveUC.Execute(c.Request.Context(), designerID, formID, *req.Active)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromForm(form))
}

// ListActive обрабатывает GET /forms — формы, доступные клиентам.
func (h *FormHandler) ListActive(c *gin.Context) {
	forms, err := h.listUC.Active(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromForms(forms))
}

// My обрабатывает GET /forms/my — все анкеты текущего дизайнера.
func (h *FormHandler) My(c *gin.Context) {
	designerID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	forms, err := h.listUC.ByDesigner(c.Request.Context(), designerID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromForms(forms))
}

// Get обрабатывает GET /forms/:id.
func (h *FormHandler) Get(c *gin.Context) {
	formID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	form, err := h.getUC.Execute(c.Request.Context(), formID)
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusOK, dto.FromForm(form))
}
