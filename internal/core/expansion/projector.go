package expansion

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

type ProjectedTask struct {
	Key       string
	Blueprint domain.TaskBlueprint
	DueDate   time.Time
}

// DueDate is anchor minus daysBefore calendar days. No business-day or holiday adjustment.
func DueDate(anchor time.Time, daysBefore int) time.Time {
	return domain.TruncateDate(anchor).AddDate(0, 0, -daysBefore)
}

// Project dates every item against anchor and orders the result by due date, earliest first.
// Items with the same offset keep their relative order.
func Project(items []Item, anchor time.Time) []ProjectedTask {
	out := make([]ProjectedTask, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectedTask{
			Key:       item.Key,
			Blueprint: item.Blueprint,
			DueDate:   DueDate(anchor, item.Blueprint.DaysBefore),
		})
	}
	slices.SortStableFunc(out, func(a, b ProjectedTask) int {
		return cmp.Compare(b.Blueprint.DaysBefore, a.Blueprint.DaysBefore)
	})
	return out
}

// ProjectBlueprints is Project over plain blueprints; the returned tasks carry no key.
func ProjectBlueprints(tasks []domain.TaskBlueprint, anchor time.Time) []ProjectedTask {
	items := make([]Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, Item{Blueprint: task})
	}
	return Project(items, anchor)
}

func (t ProjectedTask) DayLabel() string {
	return DayLabel(t.Blueprint.DaysBefore)
}

// DayLabel renders an offset the way schedules are written: D-11, D-Day, D+2.
func DayLabel(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	case days == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

func (t ProjectedTask) Pending(templateName string) domain.PendingTask {
	return domain.PendingTask{
		Title:        t.Blueprint.Title,
		Priority:     t.Blueprint.Priority.OrDefault(),
		DueDate:      t.DueDate,
		DaysBefore:   t.Blueprint.DaysBefore,
		AssigneeRole: t.Blueprint.AssigneeRole,
		ManualID:     t.Blueprint.ManualID,
		TemplateName: templateName,
	}
}

func (t ProjectedTask) GenerateItem() domain.GenerateTaskItem {
	item := domain.GenerateTaskItem{
		Title:    t.Blueprint.Title,
		DueDate:  t.DueDate,
		Priority: t.Blueprint.Priority.OrDefault(),
		ManualID: t.Blueprint.ManualID,
	}
	if t.Blueprint.AssigneeRole != "" {
		role := t.Blueprint.AssigneeRole
		item.AssigneeRole = &role
	}
	return item
}
