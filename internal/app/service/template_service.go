package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

type TemplateService struct {
	templateRepository ports.TemplateRepository
	taskRepository     ports.ProjectTaskRepository
	activityRepository ports.ActivityRepository
}

func NewTemplateService(
	templateRepository ports.TemplateRepository,
	taskRepository ports.ProjectTaskRepository,
	activityRepository ports.ActivityRepository,
) *TemplateService {
	return &TemplateService{
		templateRepository: templateRepository,
		taskRepository:     taskRepository,
		activityRepository: activityRepository,
	}
}

func (s *TemplateService) ListTemplates(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error) {
	return s.templateRepository.List(ctx, filter)
}

func (s *TemplateService) GetTemplate(ctx context.Context, id uint64) (domain.TaskTemplate, error) {
	return s.templateRepository.GetByID(ctx, id)
}

func (s *TemplateService) CreateTemplate(ctx context.Context, actor domain.Actor, input domain.CreateTemplateInput) (domain.TaskTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.TaskTemplate{}, err
	}
	if actor.BusinessUnit == nil {
		return domain.TaskTemplate{}, domain.ErrActorBusinessUnitRequired
	}
	if !actor.CanManageTemplate(input.BusinessUnit) {
		return domain.TaskTemplate{}, domain.ErrPermissionDenied
	}

	input.Tasks = domain.NormalizeBlueprints(input.Tasks)
	input.OptionsSchema = input.OptionsSchema.Normalize()
	if input.AuthorID == nil && actor.ID != "" {
		authorID := actor.ID
		input.AuthorID = &authorID
	}

	template, err := s.templateRepository.Create(ctx, input)
	if err != nil {
		return domain.TaskTemplate{}, err
	}
	warnDanglingConditionKeys(template)
	return template, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error) {
	if err := input.Validate(); err != nil {
		return domain.TaskTemplate{}, err
	}

	current, err := s.templateRepository.GetByID(ctx, id)
	if err != nil {
		return domain.TaskTemplate{}, err
	}
	if !actor.CanManageTemplate(current.BusinessUnit) {
		return domain.TaskTemplate{}, domain.ErrPermissionDenied
	}

	if input.TasksSet {
		input.Tasks = domain.NormalizeBlueprints(input.Tasks)
	}
	if input.OptionsSchema != nil {
		schema := input.OptionsSchema.Normalize()
		input.OptionsSchema = &schema
	}

	template, err := s.templateRepository.Update(ctx, id, input)
	if err != nil {
		return domain.TaskTemplate{}, err
	}
	warnDanglingConditionKeys(template)
	return template, nil
}

// DeleteTemplate removes the template only. Tasks generated from it stay untouched.
func (s *TemplateService) DeleteTemplate(ctx context.Context, actor domain.Actor, id uint64) error {
	current, err := s.templateRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManageTemplate(current.BusinessUnit) {
		return domain.ErrPermissionDenied
	}
	return s.templateRepository.Delete(ctx, id)
}

// PreviewTemplate expands the template for anchorDate and the JSON-decoded options without
// persisting anything.
func (s *TemplateService) PreviewTemplate(ctx context.Context, id uint64, anchorDate time.Time, rawOptions map[string]any) ([]domain.PendingTask, error) {
	template, err := s.templateRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	options, err := template.OptionsSchema.DecodeOptions(rawOptions)
	if err != nil {
		return nil, err
	}

	session := expansion.NewSession(template)
	for key, value := range options {
		if err := session.SetOption(key, value); err != nil {
			return nil, err
		}
	}
	if err := session.SetAnchorDate(anchorDate); err != nil {
		return nil, err
	}

	projected := session.Projected()
	pending := make([]domain.PendingTask, 0, len(projected))
	for _, task := range projected {
		pending = append(pending, task.Pending(template.Name))
	}
	return pending, nil
}

func (s *TemplateService) GenerateTasks(ctx context.Context, actor domain.Actor, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error) {
	if err := input.Validate(); err != nil {
		return domain.GenerateTasksResult{}, err
	}

	project, err := s.taskRepository.GetProject(ctx, input.ProjectID)
	if err != nil {
		return domain.GenerateTasksResult{}, err
	}
	if !actor.CanCreateTasksIn(project) {
		return domain.GenerateTasksResult{}, domain.ErrPermissionDenied
	}

	tasks, err := s.taskRepository.CreateBatch(ctx, project, input.TemplateID, actor.ID, input.Tasks)
	if err != nil {
		return domain.GenerateTasksResult{}, err
	}

	for _, task := range tasks {
		s.logTaskCreated(ctx, actor, input.TemplateID, task)
	}

	return domain.GenerateTasksResult{Tasks: tasks, Count: len(tasks)}, nil
}

// GeneratorFor binds the service to actor so it can back a RemoteCommitter in-process.
func (s *TemplateService) GeneratorFor(actor domain.Actor) ports.TaskGenerator {
	return &actorGenerator{service: s, actor: actor}
}

// logTaskCreated records the activity entry; a failure is logged and does not fail generation.
func (s *TemplateService) logTaskCreated(ctx context.Context, actor domain.Actor, templateID uint64, task domain.ProjectTask) {
	if s.activityRepository == nil {
		return
	}

	var assigneeRole any
	if task.AssigneeRole != nil {
		assigneeRole = *task.AssigneeRole
	}
	title := task.Title
	err := s.activityRepository.Create(ctx, domain.ActivityLog{
		UserID:      actor.ID,
		ActionType:  domain.ActivityTaskCreated,
		EntityType:  domain.EntityTypeTask,
		EntityID:    strconv.FormatUint(task.ID, 10),
		EntityTitle: &title,
		Metadata: map[string]any{
			"project_id":    task.ProjectID,
			"template_id":   templateID,
			"priority":      string(task.Priority),
			"assignee_role": assigneeRole,
		},
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		zap.L().Warn("failed to record task activity", zap.Uint64("task_id", task.ID), zap.Error(err))
	}
}

func warnDanglingConditionKeys(template domain.TaskTemplate) {
	if keys := template.DanglingConditionKeys(); len(keys) > 0 {
		zap.L().Warn(
			"template has condition keys without a boolean option; those tasks are always generated",
			zap.Uint64("template_id", template.ID),
			zap.Strings("condition_keys", keys),
		)
	}
}

type actorGenerator struct {
	service *TemplateService
	actor   domain.Actor
}

func (g *actorGenerator) GenerateTasks(ctx context.Context, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error) {
	return g.service.GenerateTasks(ctx, g.actor, input)
}

var _ ports.TemplateService = (*TemplateService)(nil)
