package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

type templateServiceMock struct {
	mock.Mock
}

func (m *templateServiceMock) ListTemplates(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error) {
	args := m.Called(ctx, filter)

	var templates []domain.TaskTemplate
	if value := args.Get(0); value != nil {
		templates = value.([]domain.TaskTemplate)
	}
	return templates, args.Error(1)
}

func (m *templateServiceMock) GetTemplate(ctx context.Context, id uint64) (domain.TaskTemplate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateServiceMock) CreateTemplate(ctx context.Context, actor domain.Actor, input domain.CreateTemplateInput) (domain.TaskTemplate, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateServiceMock) UpdateTemplate(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error) {
	args := m.Called(ctx, actor, id, input)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateServiceMock) DeleteTemplate(ctx context.Context, actor domain.Actor, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *templateServiceMock) PreviewTemplate(ctx context.Context, id uint64, anchorDate time.Time, options map[string]any) ([]domain.PendingTask, error) {
	args := m.Called(ctx, id, anchorDate, options)

	var pending []domain.PendingTask
	if value := args.Get(0); value != nil {
		pending = value.([]domain.PendingTask)
	}
	return pending, args.Error(1)
}

func (m *templateServiceMock) GenerateTasks(ctx context.Context, actor domain.Actor, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.GenerateTasksResult), args.Error(1)
}

type projectTaskServiceMock struct {
	mock.Mock
}

func (m *projectTaskServiceMock) ListProjectTasks(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.ProjectTask
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.ProjectTask)
	}
	return tasks, args.Error(1)
}
