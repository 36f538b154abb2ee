package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

type templateRepositoryMock struct {
	mock.Mock
}

func (m *templateRepositoryMock) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error) {
	args := m.Called(ctx, filter)

	var templates []domain.TaskTemplate
	if value := args.Get(0); value != nil {
		templates = value.([]domain.TaskTemplate)
	}
	return templates, args.Error(1)
}

func (m *templateRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.TaskTemplate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateRepositoryMock) Create(ctx context.Context, input domain.CreateTemplateInput) (domain.TaskTemplate, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateRepositoryMock) Update(ctx context.Context, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.TaskTemplate), args.Error(1)
}

func (m *templateRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetProject(ctx context.Context, projectID uint64) (domain.Project, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *taskRepositoryMock) CreateBatch(ctx context.Context, project domain.Project, templateID uint64, createdBy string, items []domain.GenerateTaskItem) ([]domain.ProjectTask, error) {
	args := m.Called(ctx, project, templateID, createdBy, items)

	var tasks []domain.ProjectTask
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.ProjectTask)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByProject(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.ProjectTask
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.ProjectTask)
	}
	return tasks, args.Error(1)
}

type activityRepositoryMock struct {
	mock.Mock
}

func (m *activityRepositoryMock) Create(ctx context.Context, log domain.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
