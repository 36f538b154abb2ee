package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

const getProjectQuery = `SELECT id, name, bu_code, pm_id FROM projects WHERE id = ?`

const listParticipantsQuery = `SELECT user_id FROM project_participants WHERE project_id = ? ORDER BY user_id`

const projectTaskColumns = `
  id, project_id, bu_code, title, due_date, status, priority, assignee_role,
  manual_id, template_id, created_by, created_at, updated_at
`

const insertProjectTaskQuery = `
INSERT INTO project_tasks
  (project_id, bu_code, title, due_date, status, priority, assignee_role, manual_id, template_id, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const listProjectTasksQuery = `SELECT` + projectTaskColumns + `FROM project_tasks WHERE project_id = ? ORDER BY due_date, id`

type ProjectTaskRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID     uint64         `db:"id"`
	Name   string         `db:"name"`
	BuCode string         `db:"bu_code"`
	PMID   sql.NullString `db:"pm_id"`
}

type projectTaskRow struct {
	ID           uint64         `db:"id"`
	ProjectID    uint64         `db:"project_id"`
	BuCode       string         `db:"bu_code"`
	Title        string         `db:"title"`
	DueDate      sql.NullTime   `db:"due_date"`
	Status       string         `db:"status"`
	Priority     string         `db:"priority"`
	AssigneeRole sql.NullString `db:"assignee_role"`
	ManualID     sql.NullInt64  `db:"manual_id"`
	TemplateID   sql.NullInt64  `db:"template_id"`
	CreatedBy    sql.NullString `db:"created_by"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.ProjectTaskRepository = (*ProjectTaskRepository)(nil)

func NewProjectTaskRepository(db *sqlx.DB) *ProjectTaskRepository {
	return &ProjectTaskRepository{db: db}
}

func (r *ProjectTaskRepository) GetProject(ctx context.Context, projectID uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getProjectQuery), projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:           row.ID,
		Name:         row.Name,
		BusinessUnit: domain.BusinessUnit(row.BuCode),
	}
	if row.PMID.Valid {
		value := row.PMID.String
		project.PMID = &value
	}

	if err := r.db.SelectContext(ctx, &project.Participants, r.db.Rebind(listParticipantsQuery), projectID); err != nil {
		return domain.Project{}, fmt.Errorf("list participants of project %d: %w", projectID, err)
	}
	return project, nil
}

// CreateBatch inserts every item in one transaction: either all tasks are created or none.
func (r *ProjectTaskRepository) CreateBatch(
	ctx context.Context,
	project domain.Project,
	templateID uint64,
	createdBy string,
	items []domain.GenerateTaskItem,
) ([]domain.ProjectTask, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var template sql.NullInt64
	if templateID != 0 {
		template = sql.NullInt64{Int64: int64(templateID), Valid: true}
	}
	var creator sql.NullString
	if createdBy != "" {
		creator = sql.NullString{String: createdBy, Valid: true}
	}

	now := time.Now().UTC().Truncate(time.Second)
	ids := make([]uint64, 0, len(items))
	for i, item := range items {
		var manualID sql.NullInt64
		if item.ManualID != nil {
			manualID = sql.NullInt64{Int64: *item.ManualID, Valid: true}
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(insertProjectTaskQuery),
			project.ID,
			string(project.BusinessUnit),
			item.Title,
			domain.TruncateDate(item.DueDate),
			string(domain.TaskStatusTodo),
			string(item.Priority.OrDefault()),
			nullableString(item.AssigneeRole),
			manualID,
			template,
			creator,
			now,
			now,
		)
		if err != nil {
			return nil, fmt.Errorf("insert task %d: %w", i, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint64(id))
	}

	query, args, err := sqlx.In(`SELECT`+projectTaskColumns+`FROM project_tasks WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	var rows []projectTaskRow
	if err := tx.SelectContext(ctx, &rows, tx.Rebind(query), args...); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return mapProjectTaskRows(rows), nil
}

func (r *ProjectTaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.ProjectTask, error) {
	var rows []projectTaskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listProjectTasksQuery), projectID); err != nil {
		return nil, err
	}
	return mapProjectTaskRows(rows), nil
}

func mapProjectTaskRows(rows []projectTaskRow) []domain.ProjectTask {
	tasks := make([]domain.ProjectTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapProjectTaskRowToDomain(row))
	}
	return tasks
}

func mapProjectTaskRowToDomain(row projectTaskRow) domain.ProjectTask {
	task := domain.ProjectTask{
		ID:           row.ID,
		ProjectID:    row.ProjectID,
		BusinessUnit: domain.BusinessUnit(row.BuCode),
		Title:        row.Title,
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.Priority(row.Priority),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.AssigneeRole.Valid {
		value := row.AssigneeRole.String
		task.AssigneeRole = &value
	}

	if row.ManualID.Valid {
		value := row.ManualID.Int64
		task.ManualID = &value
	}

	if row.TemplateID.Valid {
		value := uint64(row.TemplateID.Int64)
		task.TemplateID = &value
	}

	if row.CreatedBy.Valid {
		value := row.CreatedBy.String
		task.CreatedBy = &value
	}

	return task
}
