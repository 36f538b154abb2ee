package dto

type ProjectTaskItem struct {
	ID           uint64  `json:"id"`
	ProjectID    uint64  `json:"project_id"`
	BuCode       string  `json:"bu_code"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	DueDate      *string `json:"due_date"`
	AssigneeRole *string `json:"assignee_role"`
	ManualID     *int64  `json:"manual_id"`
	TemplateID   *uint64 `json:"template_id"`
	CreatedBy    *string `json:"created_by"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type GenerateTaskItem struct {
	Title        string  `json:"title" binding:"max=255"`
	DueDate      string  `json:"due_date" binding:"required,datetime=2006-01-02"`
	Priority     string  `json:"priority" binding:"omitempty,priority"`
	AssigneeRole *string `json:"assignee_role" binding:"omitempty,max=100"`
	ManualID     *int64  `json:"manual_id" binding:"omitempty,gt=0"`
}

type GenerateTasksRequest struct {
	TemplateID uint64             `json:"template_id"`
	ProjectID  uint64             `json:"project_id" binding:"required,gt=0"`
	Tasks      []GenerateTaskItem `json:"tasks" binding:"dive"`
}

type GenerateTasksResponse struct {
	Tasks []ProjectTaskItem `json:"tasks"`
	Count int               `json:"count"`
}
