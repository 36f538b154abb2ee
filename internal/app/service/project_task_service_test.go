package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/tkaykim/totalmanagement-sub003/internal/app/service"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

func TestProjectTaskService_ListProjectTasks(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("GetProject", mock.Anything, uint64(42)).Return(domain.Project{ID: 42}, nil).Once()
	tasks.On("ListByProject", mock.Anything, uint64(42)).Return([]domain.ProjectTask{{ID: 1}, {ID: 2}}, nil).Once()

	got, err := appservice.NewProjectTaskService(tasks).ListProjectTasks(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, got, 2)
	tasks.AssertExpectations(t)
}

func TestProjectTaskService_ListProjectTasks_ProjectNotFound(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("GetProject", mock.Anything, uint64(7)).Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	_, err := appservice.NewProjectTaskService(tasks).ListProjectTasks(context.Background(), 7)

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	tasks.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
}
