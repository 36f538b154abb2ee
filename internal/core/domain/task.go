package domain

import (
	"slices"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Project is the slice of a project row that task generation needs. Participants are the
// user ids listed on the project besides its PM.
type Project struct {
	ID           uint64
	Name         string
	BusinessUnit BusinessUnit
	PMID         *string
	Participants []string
}

func (p Project) IsPM(userID string) bool {
	return p.PMID != nil && *p.PMID == userID
}

func (p Project) HasParticipant(userID string) bool {
	return slices.Contains(p.Participants, userID)
}

// ProjectTask is a persisted task row. TemplateID records the template it was generated from;
// it is informational and survives the template's deletion.
type ProjectTask struct {
	ID           uint64
	ProjectID    uint64
	BusinessUnit BusinessUnit
	Title        string
	Status       TaskStatus
	Priority     Priority
	DueDate      *time.Time
	AssigneeRole *string
	ManualID     *int64
	TemplateID   *uint64
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingTask is a generated task that has not been persisted yet, handed to a caller that
// will save it together with a project draft.
type PendingTask struct {
	Title        string
	Priority     Priority
	DueDate      time.Time
	DaysBefore   int
	AssigneeRole string
	ManualID     *int64
	TemplateName string
}

type GenerateTaskItem struct {
	Title        string
	DueDate      time.Time
	Priority     Priority
	AssigneeRole *string
	ManualID     *int64
}

type GenerateTasksInput struct {
	TemplateID uint64
	ProjectID  uint64
	Tasks      []GenerateTaskItem
}

func (in GenerateTasksInput) Validate() error {
	if len(in.Tasks) == 0 {
		return ErrNoTasksToCreate
	}
	for _, task := range in.Tasks {
		if task.Title == "" {
			return ErrTaskTitleRequired
		}
		if task.DueDate.IsZero() {
			return ErrInvalidDueDate
		}
		if !task.Priority.OrDefault().Valid() {
			return ErrInvalidPriority
		}
	}
	return nil
}

type GenerateTasksResult struct {
	Tasks []ProjectTask
	Count int
}

type ActivityLog struct {
	UserID      string
	ActionType  string
	EntityType  string
	EntityID    string
	EntityTitle *string
	Metadata    map[string]any
	OccurredAt  time.Time
}

const (
	ActivityTaskCreated = "task_created"
	EntityTypeTask      = "task"
)
