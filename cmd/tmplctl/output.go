package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
)

var (
	colorPrimary   = lipgloss.Color("205")
	colorSecondary = lipgloss.Color("241")
	colorSuccess   = lipgloss.Color("42")
	colorWarning   = lipgloss.Color("214")
	colorError     = lipgloss.Color("160")

	styleHeader   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleSubtle   = lipgloss.NewStyle().Foreground(colorSecondary)
	styleExcluded = lipgloss.NewStyle().Foreground(colorSecondary).Strikethrough(true)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorSuccess)
	styleWarning  = lipgloss.NewStyle().Foreground(colorWarning)
	styleError    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderTemplates(w io.Writer, templates []domain.TaskTemplate) {
	if len(templates) == 0 {
		fmt.Fprintln(w, styleSubtle.Render("No templates found."))
		return
	}
	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%-5s %-10s %-12s %-6s %s", "ID", "BU", "TYPE", "TASKS", "NAME")))
	for _, t := range templates {
		line := fmt.Sprintf("%-5d %-10s %-12s %-6d %s", t.ID, t.BusinessUnit, t.TemplateType, len(t.Tasks), t.Name)
		if !t.IsActive {
			line = styleSubtle.Render(line + " (inactive)")
		}
		fmt.Fprintln(w, line)
	}
}

// renderSnapshot prints the projection with 1-based positions, the ones --exclude takes.
func renderSnapshot(w io.Writer, snap expansion.Snapshot) {
	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%s, anchor %s", snap.TemplateName, snap.AnchorDate)))
	for i, task := range snap.Tasks {
		line := fmt.Sprintf("%3d  %-6s %s  %-6s %s", i+1, task.DayLabel, task.DueDate, task.Priority, task.Title)
		if task.AssigneeRole != "" {
			line += "  @" + task.AssigneeRole
		}
		if task.Excluded {
			line = styleExcluded.Render(line + "  (excluded)")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, styleSubtle.Render(fmt.Sprintf("%d of %d tasks selected", snap.FinalCount, len(snap.Tasks))))
}

func renderCreated(w io.Writer, result expansion.CommitResult) {
	fmt.Fprintln(w, styleSuccess.Render(fmt.Sprintf("Created %d tasks", result.Count)))
	for _, task := range result.Created {
		due := "-"
		if task.DueDate != nil {
			due = domain.FormatDate(*task.DueDate)
		}
		fmt.Fprintf(w, "%6d  %s  %-6s %s\n", task.ID, due, task.Priority, task.Title)
	}
}
