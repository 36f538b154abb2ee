package ports

import (
	"context"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

type ProjectTaskRepository interface {
	GetProject(ctx context.Context, projectID uint64) (domain.Project, error)
	CreateBatch(ctx context.Context, project domain.Project, templateID uint64, createdBy string, items []domain.GenerateTaskItem) ([]domain.ProjectTask, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error)
}

type ProjectTaskService interface {
	ListProjectTasks(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, log domain.ActivityLog) error
}

// TaskGenerator persists a batch of generated tasks against a project, either in-process or
// through the HTTP API.
type TaskGenerator interface {
	GenerateTasks(ctx context.Context, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error)
}
