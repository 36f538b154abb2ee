package service

import (
	"context"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

type ProjectTaskService struct {
	taskRepository ports.ProjectTaskRepository
}

func NewProjectTaskService(taskRepository ports.ProjectTaskRepository) *ProjectTaskService {
	return &ProjectTaskService{taskRepository: taskRepository}
}

func (s *ProjectTaskService) ListProjectTasks(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error) {
	if _, err := s.taskRepository.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepository.ListByProject(ctx, projectID)
}

var _ ports.ProjectTaskService = (*ProjectTaskService)(nil)
