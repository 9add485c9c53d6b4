package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zendo/models"
	"zendo/types"
)

var priorityCycle = []string{"Low", "Medium", "High"}

// previewModel lets the user review and edit an AI breakdown before it
// becomes a task. Row 0 is the title, row 1 the priority, the rest are
// subtasks.
type previewModel struct {
	output    types.BreakdownOutput
	cursor    int
	editing   bool
	adding    bool
	input     textinput.Model
	confirmed bool
}

func newPreviewModel(output types.BreakdownOutput) previewModel {
	ti := textinput.New()
	ti.CharLimit = 250
	return previewModel{output: output, input: ti}
}

func (m previewModel) rowCount() int {
	return 2 + len(m.output.Subtasks)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch keyMsg.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			switch {
			case m.adding:
				if value != "" {
					m.output.Subtasks = append(m.output.Subtasks, value)
				}
			case m.cursor == 0:
				if value != "" {
					m.output.RefinedTitle = value
				}
			case m.cursor >= 2:
				if value != "" {
					m.output.Subtasks[m.cursor-2] = value
				}
			}
			m.editing = false
			m.adding = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.editing = false
			m.adding = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "left", "right", "h", "l":
		if m.cursor == 1 {
			step := 1
			if keyMsg.String() == "left" || keyMsg.String() == "h" {
				step = len(priorityCycle) - 1
			}
			idx := 0
			for i, p := range priorityCycle {
				if p == m.output.Priority {
					idx = i
					break
				}
			}
			m.output.Priority = priorityCycle[(idx+step)%len(priorityCycle)]
		}
	case "enter", "e":
		if m.cursor == 0 {
			m.editing = true
			m.input.SetValue(m.output.RefinedTitle)
			m.input.Focus()
			return m, textinput.Blink
		}
		if m.cursor >= 2 {
			m.editing = true
			m.input.SetValue(m.output.Subtasks[m.cursor-2])
			m.input.Focus()
			return m, textinput.Blink
		}
	case "a":
		m.editing = true
		m.adding = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "d", "backspace":
		if m.cursor >= 2 {
			i := m.cursor - 2
			m.output.Subtasks = append(m.output.Subtasks[:i], m.output.Subtasks[i+1:]...)
			if m.cursor >= m.rowCount() {
				m.cursor = m.rowCount() - 1
			}
		}
	case "y", "ctrl+s":
		m.confirmed = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m previewModel) View() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Review AI breakdown") + "\n\n")

	marker := func(row int) string {
		if row == m.cursor {
			return StyleSelected.Render("> ")
		}
		return "  "
	}

	sb.WriteString(marker(0) + "Title:    " + m.output.RefinedTitle + "\n")
	sb.WriteString(marker(1) + "Priority: " + PriorityStyle(m.output.Priority).Render(m.output.Priority) + "\n")
	if len(m.output.Subtasks) > 0 {
		sb.WriteString("\n" + StyleSubtle.Render("Steps:") + "\n")
		for i, st := range m.output.Subtasks {
			sb.WriteString(marker(2+i) + fmt.Sprintf("%d. %s\n", i+1, st))
		}
	}

	if m.editing {
		label := "Edit"
		if m.adding {
			label = "New step"
		}
		sb.WriteString("\n" + StylePreviewBox.Render(label+": "+m.input.View()) + "\n")
		sb.WriteString(StyleSubtle.Render("enter save, esc cancel") + "\n")
	} else {
		sb.WriteString("\n" + StyleSubtle.Render("↑/↓ move, enter edit, ←/→ priority, a add step, d delete, y accept, q cancel") + "\n")
	}
	return sb.String()
}

// RunPreview opens the interactive editor and returns the (possibly
// edited) breakdown and whether the user accepted it.
func RunPreview(output types.BreakdownOutput) (types.BreakdownOutput, bool, error) {
	if output.Priority == "" {
		output.Priority = string(models.PriorityMedium)
	}
	p := tea.NewProgram(newPreviewModel(output))
	final, err := p.Run()
	if err != nil {
		return output, false, fmt.Errorf("run preview: %w", err)
	}
	m, ok := final.(previewModel)
	if !ok {
		return output, false, fmt.Errorf("unexpected preview model type")
	}
	return m.output, m.confirmed, nil
}
