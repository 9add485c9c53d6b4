package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zendo/internal/task"
	"zendo/models"
)

var titleCaser = cases.Title(language.English)

// TruncateID shortens an ID for display (first 8 chars).
func TruncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func checkbox(done bool) string {
	if done {
		return StyleSuccess.Render("[x]")
	}
	return "[ ]"
}

// RenderTaskList writes the filtered collection as a table, with the
// collection progress underneath.
func RenderTaskList(w io.Writer, tasks []models.Task, filter task.Filter) {
	heading := titleCaser.String(string(filter))
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s tasks (%d)", heading, len(tasks))))

	if len(tasks) == 0 {
		fmt.Fprintln(w, StyleSubtle.Render("Nothing here. Add a task with: zendo add \"Your task\""))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"", "ID", "Task", "Priority", "Steps"})
	for _, t := range tasks {
		text := t.Text
		if t.Completed {
			text = StyleDone.Render(text)
		}
		steps := ""
		if n := len(t.Subtasks); n > 0 {
			steps = fmt.Sprintf("%d%% of %d", task.SubtaskPercent(t), n)
		}
		tw.AppendRow(table.Row{
			checkbox(t.Completed),
			TruncateID(t.ID),
			text,
			PriorityStyle(string(t.Priority)).Render(string(t.Priority)),
			steps,
		})
	}
	tw.Render()

	fmt.Fprintln(w, StyleSubtle.Render(fmt.Sprintf("Overall progress: %d%%", task.CollectionPercent(tasks))))
}

// RenderTask writes one task with its subtask checklist.
func RenderTask(w io.Writer, t models.Task) {
	fmt.Fprintf(w, "%s %s  %s\n", checkbox(t.Completed), StyleTitle.Render(t.Text), PriorityStyle(string(t.Priority)).Render(string(t.Priority)))
	fmt.Fprintln(w, StyleSubtle.Render("ID: "+t.ID))
	if len(t.Subtasks) == 0 {
		return
	}
	for _, st := range t.Subtasks {
		text := st.Text
		if st.Completed {
			text = StyleDone.Render(text)
		}
		fmt.Fprintf(w, "  %s %s %s\n", checkbox(st.Completed), text, StyleSubtle.Render("("+TruncateID(st.ID)+")"))
	}
	fmt.Fprintln(w, StyleSubtle.Render(fmt.Sprintf("Steps done: %d%%", task.SubtaskPercent(t))))
}

// ProgressBar renders a fixed-width text progress bar for the given percent.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return StylePrimary.Render(bar)
}
