package expansion

import "github.com/tkaykim/totalmanagement-sub003/internal/core/domain"

type SnapshotTask struct {
	Key          string          `json:"key"`
	Title        string          `json:"title"`
	DaysBefore   int             `json:"days_before"`
	DayLabel     string          `json:"day_label"`
	DueDate      string          `json:"due_date"`
	Priority     domain.Priority `json:"priority"`
	AssigneeRole string          `json:"assignee_role,omitempty"`
	ManualID     *int64          `json:"manual_id,omitempty"`
	Excluded     bool            `json:"excluded"`
}

// Snapshot is a serializable view of a session.
type Snapshot struct {
	TemplateID   uint64                        `json:"template_id"`
	TemplateName string                        `json:"template_name"`
	AnchorDate   string                        `json:"anchor_date,omitempty"`
	Options      map[string]domain.OptionValue `json:"options"`
	Tasks        []SnapshotTask                `json:"tasks"`
	Excluded     []int                         `json:"excluded"`
	FinalCount   int                           `json:"final_count"`
	Closed       bool                          `json:"closed"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		TemplateID:   s.template.ID,
		TemplateName: s.template.Name,
		Options:      s.Options(),
		Tasks:        make([]SnapshotTask, 0, len(s.projected)),
		Excluded:     s.Excluded(),
		FinalCount:   len(s.FinalTasks()),
		Closed:       s.closed,
	}
	if s.hasAnchor {
		snap.AnchorDate = domain.FormatDate(s.anchor)
	}
	for _, task := range s.projected {
		_, excluded := s.excluded[task.Key]
		snap.Tasks = append(snap.Tasks, SnapshotTask{
			Key:          task.Key,
			Title:        task.Blueprint.Title,
			DaysBefore:   task.Blueprint.DaysBefore,
			DayLabel:     task.DayLabel(),
			DueDate:      domain.FormatDate(task.DueDate),
			Priority:     task.Blueprint.Priority.OrDefault(),
			AssigneeRole: task.Blueprint.AssigneeRole,
			ManualID:     task.Blueprint.ManualID,
			Excluded:     excluded,
		})
	}
	return snap
}
