package ports

import (
	"context"
	"time"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

type TemplateRepository interface {
	List(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error)
	GetByID(ctx context.Context, id uint64) (domain.TaskTemplate, error)
	Create(ctx context.Context, input domain.CreateTemplateInput) (domain.TaskTemplate, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error)
	Delete(ctx context.Context, id uint64) error
}

type TemplateService interface {
	ListTemplates(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error)
	GetTemplate(ctx context.Context, id uint64) (domain.TaskTemplate, error)
	CreateTemplate(ctx context.Context, actor domain.Actor, input domain.CreateTemplateInput) (domain.TaskTemplate, error)
	UpdateTemplate(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error)
	DeleteTemplate(ctx context.Context, actor domain.Actor, id uint64) error
	PreviewTemplate(ctx context.Context, id uint64, anchorDate time.Time, options map[string]any) ([]domain.PendingTask, error)
	GenerateTasks(ctx context.Context, actor domain.Actor, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error)
}
