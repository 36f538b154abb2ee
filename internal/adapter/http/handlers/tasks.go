package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/mapper"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
	"github.com/tkaykim/totalmanagement-sub003/pkg/apierrors"
)

type ProjectTaskHandler struct {
	taskService ports.ProjectTaskService
}

func NewProjectTaskHandler(taskService ports.ProjectTaskService) *ProjectTaskHandler {
	return &ProjectTaskHandler{taskService: taskService}
}

func (h *ProjectTaskHandler) ListProjectTasks(c *gin.Context) {
	projectID, ok := parseID(c, apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProjectTasks, "failed to list project tasks", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectTaskItems(tasks))
}
