package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/mapper"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

const customTemplateType = "custom"

var ErrInvalidTemplatePayload = errors.New("invalid template payload")

func BuildCreateTemplateInput(req dto.CreateTemplateRequest, raw map[string]json.RawMessage) (domain.CreateTemplateInput, error) {
	if hasJSONField(raw, "tasks") && isJSONNull(raw["tasks"]) {
		return domain.CreateTemplateInput{}, domain.ErrTemplateTasksRequired
	}
	if hasJSONField(raw, "is_active") && req.IsActive == nil {
		return domain.CreateTemplateInput{}, ErrInvalidTemplatePayload
	}

	templateType, err := resolveTemplateType(req.TemplateType, req.CustomType)
	if err != nil {
		return domain.CreateTemplateInput{}, err
	}

	schema := domain.EmptyOptionsSchema()
	if req.OptionsSchema != nil {
		schema = mapper.ToDomainOptionsSchema(*req.OptionsSchema)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return domain.CreateTemplateInput{
		BusinessUnit:  domain.BusinessUnit(req.BuCode),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		TemplateType:  templateType,
		OptionsSchema: schema,
		Tasks:         mapper.ToDomainBlueprints(req.Tasks),
		IsActive:      isActive,
	}, nil
}

func BuildUpdateTemplateInput(req dto.UpdateTemplateRequest, raw map[string]json.RawMessage) (domain.UpdateTemplateInput, error) {
	if !hasTemplateUpdateFields(raw) {
		return domain.UpdateTemplateInput{}, domain.ErrNoTemplateChanges
	}

	for _, field := range []string{"name", "template_type", "is_active", "tasks"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateTemplateInput{}, ErrInvalidTemplatePayload
		}
	}

	var input domain.UpdateTemplateInput

	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		input.Name = &value
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	input.Description = req.Description

	if req.TemplateType != nil {
		value, err := resolveTemplateType(*req.TemplateType, req.CustomType)
		if err != nil {
			return domain.UpdateTemplateInput{}, err
		}
		input.TemplateType = &value
	} else if req.CustomType != nil {
		// The stored type does not say whether it came from custom_type.
		return domain.UpdateTemplateInput{}, ErrInvalidTemplatePayload
	}

	if hasJSONField(raw, "options_schema") {
		schema := domain.EmptyOptionsSchema()
		if req.OptionsSchema != nil {
			schema = mapper.ToDomainOptionsSchema(*req.OptionsSchema)
		}
		input.OptionsSchema = &schema
	}

	if hasJSONField(raw, "tasks") {
		input.TasksSet = true
		input.Tasks = mapper.ToDomainBlueprints(req.Tasks)
	}

	input.IsActive = req.IsActive

	return input, nil
}

func BuildGenerateTasksInput(req dto.GenerateTasksRequest) (domain.GenerateTasksInput, error) {
	items := make([]domain.GenerateTaskItem, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		dueDate, err := domain.ParseDate(task.DueDate)
		if err != nil {
			return domain.GenerateTasksInput{}, domain.ErrInvalidDueDate
		}

		var assigneeRole *string
		if task.AssigneeRole != nil && strings.TrimSpace(*task.AssigneeRole) != "" {
			value := strings.TrimSpace(*task.AssigneeRole)
			assigneeRole = &value
		}

		items = append(items, domain.GenerateTaskItem{
			Title:        strings.TrimSpace(task.Title),
			DueDate:      dueDate,
			Priority:     domain.Priority(task.Priority).OrDefault(),
			AssigneeRole: assigneeRole,
			ManualID:     task.ManualID,
		})
	}

	return domain.GenerateTasksInput{
		TemplateID: req.TemplateID,
		ProjectID:  req.ProjectID,
		Tasks:      items,
	}, nil
}

// resolveTemplateType returns the stored type: custom_type when the type is "custom".
// custom_type next to any other type is rejected.
func resolveTemplateType(templateType string, customType *string) (string, error) {
	templateType = strings.TrimSpace(templateType)
	if templateType != customTemplateType {
		if customType != nil && strings.TrimSpace(*customType) != "" {
			return "", ErrInvalidTemplatePayload
		}
		return templateType, nil
	}
	if customType == nil || strings.TrimSpace(*customType) == "" {
		return "", domain.ErrTemplateTypeRequired
	}
	return strings.TrimSpace(*customType), nil
}

func hasTemplateUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "template_type") ||
		hasJSONField(raw, "custom_type") ||
		hasJSONField(raw, "options_schema") ||
		hasJSONField(raw, "tasks") ||
		hasJSONField(raw, "is_active")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
