package expansion

import (
	"context"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

type Mode string

const (
	ModeLocal    Mode = "local"
	ModeGenerate Mode = "generate"
)

type CommitResult struct {
	Mode    Mode
	Pending []domain.PendingTask
	Created []domain.ProjectTask
	Count   int
}

// Committer turns the final task list of a session into its output.
type Committer interface {
	Commit(ctx context.Context, template domain.TaskTemplate, tasks []ProjectedTask) (CommitResult, error)
}

// LocalCommitter returns pending tasks for a project that does not exist yet. The caller saves
// them together with the project.
type LocalCommitter struct{}

func (LocalCommitter) Commit(_ context.Context, template domain.TaskTemplate, tasks []ProjectedTask) (CommitResult, error) {
	if len(tasks) == 0 {
		return CommitResult{}, ErrNoFinalTasks
	}
	pending := make([]domain.PendingTask, 0, len(tasks))
	for _, task := range tasks {
		pending = append(pending, task.Pending(template.Name))
	}
	return CommitResult{Mode: ModeLocal, Pending: pending, Count: len(pending)}, nil
}

// RemoteCommitter persists the tasks against an existing project in one batch.
type RemoteCommitter struct {
	projectID uint64
	generator ports.TaskGenerator
}

func NewRemoteCommitter(projectID uint64, generator ports.TaskGenerator) *RemoteCommitter {
	return &RemoteCommitter{projectID: projectID, generator: generator}
}

func (c *RemoteCommitter) Commit(ctx context.Context, template domain.TaskTemplate, tasks []ProjectedTask) (CommitResult, error) {
	if len(tasks) == 0 {
		return CommitResult{}, ErrNoFinalTasks
	}
	if c.projectID == 0 {
		return CommitResult{}, ErrProjectRequired
	}
	items := make([]domain.GenerateTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, task.GenerateItem())
	}
	result, err := c.generator.GenerateTasks(ctx, domain.GenerateTasksInput{
		TemplateID: template.ID,
		ProjectID:  c.projectID,
		Tasks:      items,
	})
	if err != nil {
		return CommitResult{}, err
	}
	return CommitResult{Mode: ModeGenerate, Created: result.Tasks, Count: result.Count}, nil
}

var (
	_ Committer = LocalCommitter{}
	_ Committer = (*RemoteCommitter)(nil)
)
