package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/mapper"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/validation"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
	"github.com/tkaykim/totalmanagement-sub003/pkg/apierrors"
)

type TemplateHandler struct {
	templateService ports.TemplateService
}

func NewTemplateHandler(templateService ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var query dto.ListTemplatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		if validation.FailedOn(err, "BuCode") {
			respondBadRequest(c, apierrors.MsgInvalidBusinessUnit)
			return
		}
		respondBadRequest(c, apierrors.MsgInvalidListQuery)
		return
	}

	filter := domain.TemplateFilter{IncludeInactive: query.IncludeInactive}
	if query.BuCode != "" {
		bu := domain.BusinessUnit(query.BuCode)
		filter.BusinessUnit = &bu
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTemplates, "failed to list task templates")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItems(templates))
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseID(c, apierrors.MsgInvalidTemplateID)
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTemplate, "failed to get task template", zap.Uint64("template_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItem(template))
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	body, raw, ok := readJSONBody(c)
	if !ok {
		respondBadRequest(c, apierrors.MsgInvalidTemplatePayload)
		return
	}

	var req dto.CreateTemplateRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTemplatePayload)
		return
	}

	input, err := validation.BuildCreateTemplateInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTemplatePayload, "failed to build template input")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTemplate, "failed to create task template")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTemplateItem(template))
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, apierrors.MsgInvalidTemplateID)
	if !ok {
		return
	}

	body, raw, ok := readJSONBody(c)
	if !ok {
		respondBadRequest(c, apierrors.MsgInvalidTemplatePayload)
		return
	}

	var req dto.UpdateTemplateRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTemplatePayload)
		return
	}

	input, err := validation.BuildUpdateTemplateInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidTemplatePayload, "failed to build template update")
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), actor, id, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTemplate, "failed to update task template", zap.Uint64("template_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItem(template))
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, ok := parseID(c, apierrors.MsgInvalidTemplateID)
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTemplate, "failed to delete task template", zap.Uint64("template_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTemplateResponse{Success: true})
}

func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	id, ok := parseID(c, apierrors.MsgInvalidTemplateID)
	if !ok {
		return
	}

	var req dto.PreviewTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPreviewPayload)
		return
	}

	anchor, err := domain.ParseDate(req.AnchorDate)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPreviewPayload)
		return
	}

	pending, err := h.templateService.PreviewTemplate(c.Request.Context(), id, anchor, req.Options)
	if err != nil {
		respondError(c, err, apierrors.MsgFailPreviewTemplate, "failed to preview task template", zap.Uint64("template_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.PreviewTemplateResponse{
		TemplateID: id,
		AnchorDate: domain.FormatDate(anchor),
		Tasks:      mapper.ToPendingTaskItems(pending),
		Count:      len(pending),
	})
}

func (h *TemplateHandler) GenerateTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidGeneratePayload)
		return
	}

	input, err := validation.BuildGenerateTasksInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidGeneratePayload, "failed to build generate input")
		return
	}

	result, err := h.templateService.GenerateTasks(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGenerateTasks, "failed to generate tasks",
			zap.Uint64("template_id", input.TemplateID),
			zap.Uint64("project_id", input.ProjectID),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToGenerateTasksResponse(result))
}

func parseID(c *gin.Context, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, msgKey)
		return 0, false
	}
	return id, true
}

// readJSONBody returns the body together with its top-level fields so that PATCH-style
// payloads can tell an absent field from an explicit null.
func readJSONBody(c *gin.Context) ([]byte, map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, nil, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, nil, false
	}
	return body, raw, true
}
