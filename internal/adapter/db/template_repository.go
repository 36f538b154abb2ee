package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

const templateColumns = `
  id, bu_code, name, description, template_type, options_schema, tasks,
  author_id, is_active, created_at, updated_at
`

const getTemplateQuery = `SELECT` + templateColumns + `FROM task_templates WHERE id = ?`

const insertTemplateQuery = `
INSERT INTO task_templates
  (bu_code, name, description, template_type, options_schema, tasks, author_id, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type TemplateRepository struct {
	db *sqlx.DB
}

type templateRow struct {
	ID            uint64         `db:"id"`
	BuCode        string         `db:"bu_code"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	TemplateType  string         `db:"template_type"`
	OptionsSchema string         `db:"options_schema"`
	Tasks         string         `db:"tasks"`
	AuthorID      sql.NullString `db:"author_id"`
	IsActive      bool           `db:"is_active"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

var _ ports.TemplateRepository = (*TemplateRepository)(nil)

func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.TaskTemplate, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.BusinessUnit != nil {
		conditions = append(conditions, "bu_code = ?")
		args = append(args, string(*filter.BusinessUnit))
	}
	if !filter.IncludeInactive {
		conditions = append(conditions, "is_active = ?")
		args = append(args, true)
	}

	query := `SELECT` + templateColumns + `FROM task_templates`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	var rows []templateRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	templates := make([]domain.TaskTemplate, 0, len(rows))
	for _, row := range rows {
		template, err := mapTemplateRowToDomain(row)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uint64) (domain.TaskTemplate, error) {
	var row templateRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getTemplateQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TaskTemplate{}, domain.ErrTemplateNotFound
		}
		return domain.TaskTemplate{}, err
	}
	return mapTemplateRowToDomain(row)
}

func (r *TemplateRepository) Create(ctx context.Context, input domain.CreateTemplateInput) (domain.TaskTemplate, error) {
	schema, tasks, err := encodeTemplateDocuments(input.OptionsSchema, input.Tasks)
	if err != nil {
		return domain.TaskTemplate{}, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, r.db.Rebind(insertTemplateQuery),
		string(input.BusinessUnit),
		strings.TrimSpace(input.Name),
		nullableString(input.Description),
		strings.TrimSpace(input.TemplateType),
		schema,
		tasks,
		nullableString(input.AuthorID),
		input.IsActive,
		now,
		now,
	)
	if err != nil {
		return domain.TaskTemplate{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskTemplate{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update writes only the fields present in input. Concurrent edits are last-write-wins.
func (r *TemplateRepository) Update(ctx context.Context, id uint64, input domain.UpdateTemplateInput) (domain.TaskTemplate, error) {
	var (
		sets []string
		args []any
	)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, strings.TrimSpace(*input.Name))
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.TemplateType != nil {
		sets = append(sets, "template_type = ?")
		args = append(args, strings.TrimSpace(*input.TemplateType))
	}
	if input.OptionsSchema != nil {
		raw, err := json.Marshal(input.OptionsSchema.Normalize())
		if err != nil {
			return domain.TaskTemplate{}, fmt.Errorf("encode options schema: %w", err)
		}
		sets = append(sets, "options_schema = ?")
		args = append(args, string(raw))
	}
	if input.TasksSet {
		raw, err := json.Marshal(input.Tasks)
		if err != nil {
			return domain.TaskTemplate{}, fmt.Errorf("encode template tasks: %w", err)
		}
		sets = append(sets, "tasks = ?")
		args = append(args, string(raw))
	}
	if input.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *input.IsActive)
	}
	if len(sets) == 0 {
		return domain.TaskTemplate{}, domain.ErrNoTemplateChanges
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second), id)

	query := "UPDATE task_templates SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return domain.TaskTemplate{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM task_templates WHERE id = ?"), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func encodeTemplateDocuments(schema domain.OptionsSchema, tasks []domain.TaskBlueprint) (string, string, error) {
	rawSchema, err := json.Marshal(schema.Normalize())
	if err != nil {
		return "", "", fmt.Errorf("encode options schema: %w", err)
	}
	if tasks == nil {
		tasks = []domain.TaskBlueprint{}
	}
	rawTasks, err := json.Marshal(tasks)
	if err != nil {
		return "", "", fmt.Errorf("encode template tasks: %w", err)
	}
	return string(rawSchema), string(rawTasks), nil
}

func mapTemplateRowToDomain(row templateRow) (domain.TaskTemplate, error) {
	template := domain.TaskTemplate{
		ID:           row.ID,
		BusinessUnit: domain.BusinessUnit(row.BuCode),
		Name:         row.Name,
		TemplateType: row.TemplateType,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		template.Description = &value
	}

	if row.AuthorID.Valid {
		value := row.AuthorID.String
		template.AuthorID = &value
	}

	var schema domain.OptionsSchema
	if row.OptionsSchema != "" {
		if err := json.Unmarshal([]byte(row.OptionsSchema), &schema); err != nil {
			return domain.TaskTemplate{}, fmt.Errorf("decode options schema of template %d: %w", row.ID, err)
		}
	}
	template.OptionsSchema = schema.Normalize()

	if err := json.Unmarshal([]byte(row.Tasks), &template.Tasks); err != nil {
		return domain.TaskTemplate{}, fmt.Errorf("decode tasks of template %d: %w", row.ID, err)
	}

	return template, nil
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
