package mapper

import (
	"time"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

func ToProjectTaskItems(tasks []domain.ProjectTask) []dto.ProjectTaskItem {
	items := make([]dto.ProjectTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToProjectTaskItem(task))
	}
	return items
}

func ToProjectTaskItem(task domain.ProjectTask) dto.ProjectTaskItem {
	item := dto.ProjectTaskItem{
		ID:           task.ID,
		ProjectID:    task.ProjectID,
		BuCode:       string(task.BusinessUnit),
		Title:        task.Title,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		AssigneeRole: task.AssigneeRole,
		ManualID:     task.ManualID,
		TemplateID:   task.TemplateID,
		CreatedBy:    task.CreatedBy,
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := domain.FormatDate(*task.DueDate)
		item.DueDate = &value
	}

	return item
}

func ToGenerateTasksResponse(result domain.GenerateTasksResult) dto.GenerateTasksResponse {
	return dto.GenerateTasksResponse{
		Tasks: ToProjectTaskItems(result.Tasks),
		Count: result.Count,
	}
}

func ToDomainProjectTask(item dto.ProjectTaskItem) (domain.ProjectTask, error) {
	task := domain.ProjectTask{
		ID:           item.ID,
		ProjectID:    item.ProjectID,
		BusinessUnit: domain.BusinessUnit(item.BuCode),
		Title:        item.Title,
		Status:       domain.TaskStatus(item.Status),
		Priority:     domain.Priority(item.Priority),
		AssigneeRole: item.AssigneeRole,
		ManualID:     item.ManualID,
		TemplateID:   item.TemplateID,
		CreatedBy:    item.CreatedBy,
	}

	if item.DueDate != nil {
		dueDate, err := domain.ParseDate(*item.DueDate)
		if err != nil {
			return domain.ProjectTask{}, err
		}
		task.DueDate = &dueDate
	}

	var err error
	if task.CreatedAt, err = parseTimestamp(item.CreatedAt); err != nil {
		return domain.ProjectTask{}, err
	}
	if task.UpdatedAt, err = parseTimestamp(item.UpdatedAt); err != nil {
		return domain.ProjectTask{}, err
	}
	return task, nil
}

func ToGenerateTasksRequest(input domain.GenerateTasksInput) dto.GenerateTasksRequest {
	req := dto.GenerateTasksRequest{
		TemplateID: input.TemplateID,
		ProjectID:  input.ProjectID,
		Tasks:      make([]dto.GenerateTaskItem, 0, len(input.Tasks)),
	}
	for _, task := range input.Tasks {
		req.Tasks = append(req.Tasks, dto.GenerateTaskItem{
			Title:        task.Title,
			DueDate:      domain.FormatDate(task.DueDate),
			Priority:     string(task.Priority.OrDefault()),
			AssigneeRole: task.AssigneeRole,
			ManualID:     task.ManualID,
		})
	}
	return req
}
