package mapper

import (
	"time"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
)

func ToTemplateItems(templates []domain.TaskTemplate) []dto.TemplateItem {
	items := make([]dto.TemplateItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, ToTemplateItem(template))
	}
	return items
}

func ToTemplateItem(template domain.TaskTemplate) dto.TemplateItem {
	item := dto.TemplateItem{
		ID:            template.ID,
		BuCode:        string(template.BusinessUnit),
		Name:          template.Name,
		TemplateType:  template.TemplateType,
		OptionsSchema: ToOptionsSchemaDTO(template.OptionsSchema),
		Tasks:         ToTemplateTasks(template.Tasks),
		IsActive:      template.IsActive,
		CreatedAt:     template.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     template.UpdatedAt.Format(time.RFC3339),
	}

	if template.Description != nil {
		value := *template.Description
		item.Description = &value
	}

	if template.AuthorID != nil {
		value := *template.AuthorID
		item.AuthorID = &value
	}

	return item
}

func ToTemplateTasks(tasks []domain.TaskBlueprint) []dto.TemplateTask {
	items := make([]dto.TemplateTask, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.TemplateTask{
			Title:        task.Title,
			DaysBefore:   task.DaysBefore,
			Priority:     string(task.Priority),
			AssigneeRole: task.AssigneeRole,
			ConditionKey: task.ConditionKey,
			ManualID:     task.ManualID,
		})
	}
	return items
}

func ToDomainBlueprints(tasks []dto.TemplateTask) []domain.TaskBlueprint {
	blueprints := make([]domain.TaskBlueprint, 0, len(tasks))
	for _, task := range tasks {
		blueprints = append(blueprints, domain.TaskBlueprint{
			Title:        task.Title,
			DaysBefore:   task.DaysBefore,
			Priority:     domain.Priority(task.Priority),
			AssigneeRole: task.AssigneeRole,
			ConditionKey: task.ConditionKey,
			ManualID:     task.ManualID,
		})
	}
	return blueprints
}

func ToOptionsSchemaDTO(schema domain.OptionsSchema) dto.OptionsSchema {
	schema = schema.Normalize()
	out := dto.OptionsSchema{
		Type:       schema.Type,
		Properties: make(map[string]dto.OptionProperty, len(schema.Properties)),
		Required:   schema.Required,
	}
	for key, prop := range schema.Properties {
		out.Properties[key] = dto.OptionProperty{
			Type:   prop.Type,
			Title:  prop.Title,
			Format: prop.Format,
			Enum:   prop.Enum,
		}
	}
	return out
}

func ToDomainOptionsSchema(schema dto.OptionsSchema) domain.OptionsSchema {
	out := domain.OptionsSchema{
		Type:       schema.Type,
		Properties: make(map[string]domain.OptionProperty, len(schema.Properties)),
		Required:   schema.Required,
	}
	for key, prop := range schema.Properties {
		out.Properties[key] = domain.OptionProperty{
			Type:   prop.Type,
			Title:  prop.Title,
			Format: prop.Format,
			Enum:   prop.Enum,
		}
	}
	return out
}

func ToPendingTaskItems(tasks []domain.PendingTask) []dto.PendingTaskItem {
	items := make([]dto.PendingTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.PendingTaskItem{
			Title:        task.Title,
			Priority:     string(task.Priority),
			DueDate:      domain.FormatDate(task.DueDate),
			DaysBefore:   task.DaysBefore,
			DayLabel:     expansion.DayLabel(task.DaysBefore),
			AssigneeRole: task.AssigneeRole,
			ManualID:     task.ManualID,
			TemplateName: task.TemplateName,
		})
	}
	return items
}

// ToDomainTemplate converts an API payload back into a template, for callers of the API.
func ToDomainTemplate(item dto.TemplateItem) (domain.TaskTemplate, error) {
	template := domain.TaskTemplate{
		ID:            item.ID,
		BusinessUnit:  domain.BusinessUnit(item.BuCode),
		Name:          item.Name,
		Description:   item.Description,
		TemplateType:  item.TemplateType,
		OptionsSchema: ToDomainOptionsSchema(item.OptionsSchema).Normalize(),
		Tasks:         ToDomainBlueprints(item.Tasks),
		AuthorID:      item.AuthorID,
		IsActive:      item.IsActive,
	}

	var err error
	if template.CreatedAt, err = parseTimestamp(item.CreatedAt); err != nil {
		return domain.TaskTemplate{}, err
	}
	if template.UpdatedAt, err = parseTimestamp(item.UpdatedAt); err != nil {
		return domain.TaskTemplate{}, err
	}
	return template, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
