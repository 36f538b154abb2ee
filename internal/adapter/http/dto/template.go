package dto

type OptionProperty struct {
	Type   string   `json:"type"`
	Title  string   `json:"title,omitempty"`
	Format string   `json:"format,omitempty"`
	Enum   []string `json:"enum,omitempty"`
}

type OptionsSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]OptionProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type TemplateTask struct {
	Title        string `json:"title" binding:"max=255"`
	DaysBefore   int    `json:"days_before" binding:"gte=-3650,lte=3650"`
	Priority     string `json:"priority,omitempty" binding:"omitempty,priority"`
	AssigneeRole string `json:"assignee_role,omitempty" binding:"max=100"`
	ConditionKey string `json:"condition_key,omitempty" binding:"max=100"`
	ManualID     *int64 `json:"manual_id,omitempty" binding:"omitempty,gt=0"`
}

type TemplateItem struct {
	ID            uint64         `json:"id"`
	BuCode        string         `json:"bu_code"`
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	TemplateType  string         `json:"template_type"`
	OptionsSchema OptionsSchema  `json:"options_schema"`
	Tasks         []TemplateTask `json:"tasks"`
	AuthorID      *string        `json:"author_id"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type ListTemplatesQuery struct {
	BuCode          string `form:"bu" binding:"omitempty,bucode"`
	IncludeInactive bool   `form:"include_inactive"`
}

// CreateTemplateRequest accepts template_type "custom" together with custom_type, which then
// becomes the stored type.
type CreateTemplateRequest struct {
	BuCode        string         `json:"bu_code" binding:"required,bucode"`
	Name          string         `json:"name" binding:"max=255"`
	Description   *string        `json:"description" binding:"omitempty,max=65535"`
	TemplateType  string         `json:"template_type" binding:"max=50"`
	CustomType    *string        `json:"custom_type" binding:"omitempty,max=50"`
	OptionsSchema *OptionsSchema `json:"options_schema"`
	Tasks         []TemplateTask `json:"tasks" binding:"dive"`
	IsActive      *bool          `json:"is_active"`
}

type UpdateTemplateRequest struct {
	Name          *string        `json:"name" binding:"omitempty,max=255"`
	Description   *string        `json:"description" binding:"omitempty,max=65535"`
	TemplateType  *string        `json:"template_type" binding:"omitempty,max=50"`
	CustomType    *string        `json:"custom_type" binding:"omitempty,max=50"`
	OptionsSchema *OptionsSchema `json:"options_schema"`
	Tasks         []TemplateTask `json:"tasks" binding:"omitempty,dive"`
	IsActive      *bool          `json:"is_active"`
}

type DeleteTemplateResponse struct {
	Success bool `json:"success"`
}

type PreviewTemplateRequest struct {
	AnchorDate string         `json:"anchor_date" binding:"required,datetime=2006-01-02"`
	Options    map[string]any `json:"options"`
}

type PendingTaskItem struct {
	Title        string `json:"title"`
	Priority     string `json:"priority"`
	DueDate      string `json:"due_date"`
	DaysBefore   int    `json:"days_before"`
	DayLabel     string `json:"day_label"`
	AssigneeRole string `json:"assignee_role,omitempty"`
	ManualID     *int64 `json:"manual_id,omitempty"`
	TemplateName string `json:"template_name"`
}

type PreviewTemplateResponse struct {
	TemplateID uint64            `json:"template_id"`
	AnchorDate string            `json:"anchor_date"`
	Tasks      []PendingTaskItem `json:"tasks"`
	Count      int               `json:"count"`
}
