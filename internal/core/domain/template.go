package domain

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// OrDefault returns p, or medium when p is blank.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// TaskBlueprint is one checklist item of a template. days_before is relative to the anchor
// date: positive before it, zero on it, negative after it.
type TaskBlueprint struct {
	Title        string   `json:"title" yaml:"title"`
	DaysBefore   int      `json:"days_before" yaml:"days_before"`
	Priority     Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
	AssigneeRole string   `json:"assignee_role,omitempty" yaml:"assignee_role,omitempty"`
	ConditionKey string   `json:"condition_key,omitempty" yaml:"condition_key,omitempty"`
	ManualID     *int64   `json:"manual_id,omitempty" yaml:"manual_id,omitempty"`
}

type TaskTemplate struct {
	ID            uint64
	BusinessUnit  BusinessUnit
	Name          string
	Description   *string
	TemplateType  string
	OptionsSchema OptionsSchema
	Tasks         []TaskBlueprint
	AuthorID      *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DanglingConditionKeys lists condition keys that do not name a boolean option. Blueprints
// carrying them are always included at generation time.
func (t TaskTemplate) DanglingConditionKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, task := range t.Tasks {
		key := task.ConditionKey
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if t.OptionsSchema.Kind(key) != OptionKindBoolean {
			keys = append(keys, key)
		}
	}
	return keys
}

type TemplateFilter struct {
	BusinessUnit    *BusinessUnit
	IncludeInactive bool
}

type CreateTemplateInput struct {
	BusinessUnit  BusinessUnit
	Name          string
	Description   *string
	TemplateType  string
	OptionsSchema OptionsSchema
	Tasks         []TaskBlueprint
	IsActive      bool
	AuthorID      *string
}

func (in CreateTemplateInput) Validate() error {
	if !in.BusinessUnit.Valid() {
		return ErrInvalidBusinessUnit
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrTemplateNameRequired
	}
	if strings.TrimSpace(in.TemplateType) == "" {
		return ErrTemplateTypeRequired
	}
	if err := ValidateBlueprints(in.Tasks); err != nil {
		return err
	}
	return in.OptionsSchema.Validate()
}

// UpdateTemplateInput carries a partial update. Nil pointers and unset flags leave the stored
// value untouched.
type UpdateTemplateInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	TemplateType   *string
	OptionsSchema  *OptionsSchema
	Tasks          []TaskBlueprint
	TasksSet       bool
	IsActive       *bool
}

func (in UpdateTemplateInput) Empty() bool {
	return in.Name == nil &&
		!in.DescriptionSet &&
		in.TemplateType == nil &&
		in.OptionsSchema == nil &&
		!in.TasksSet &&
		in.IsActive == nil
}

func (in UpdateTemplateInput) Validate() error {
	if in.Empty() {
		return ErrNoTemplateChanges
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return ErrTemplateNameRequired
	}
	if in.TemplateType != nil && strings.TrimSpace(*in.TemplateType) == "" {
		return ErrTemplateTypeRequired
	}
	if in.TasksSet {
		if err := ValidateBlueprints(in.Tasks); err != nil {
			return err
		}
	}
	if in.OptionsSchema != nil {
		return in.OptionsSchema.Validate()
	}
	return nil
}

// Apply returns t with the update merged in.
func (in UpdateTemplateInput) Apply(t TaskTemplate) TaskTemplate {
	if in.Name != nil {
		t.Name = strings.TrimSpace(*in.Name)
	}
	if in.DescriptionSet {
		t.Description = in.Description
	}
	if in.TemplateType != nil {
		t.TemplateType = strings.TrimSpace(*in.TemplateType)
	}
	if in.OptionsSchema != nil {
		t.OptionsSchema = *in.OptionsSchema
	}
	if in.TasksSet {
		t.Tasks = NormalizeBlueprints(in.Tasks)
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	return t
}

func ValidateBlueprints(tasks []TaskBlueprint) error {
	if len(tasks) == 0 {
		return ErrTemplateTasksRequired
	}
	for i, task := range tasks {
		if strings.TrimSpace(task.Title) == "" {
			return fmt.Errorf("task %d: %w", i, ErrTaskTitleRequired)
		}
		if !task.Priority.OrDefault().Valid() {
			return fmt.Errorf("task %d: %w", i, ErrInvalidPriority)
		}
	}
	return nil
}

// NormalizeBlueprints trims titles and fills in the default priority.
func NormalizeBlueprints(tasks []TaskBlueprint) []TaskBlueprint {
	out := make([]TaskBlueprint, 0, len(tasks))
	for _, task := range tasks {
		task.Title = strings.TrimSpace(task.Title)
		task.Priority = task.Priority.OrDefault()
		task.AssigneeRole = strings.TrimSpace(task.AssigneeRole)
		task.ConditionKey = strings.TrimSpace(task.ConditionKey)
		out = append(out, task)
	}
	return out
}
