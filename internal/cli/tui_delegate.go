package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	rowTitleStyle = lipgloss.NewStyle().PaddingLeft(2)
	rowDescStyle  = rowTitleStyle.Foreground(colorMuted)

	selectedRowBorder     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorAccent).PaddingLeft(1)
	selectedRowTitleStyle = selectedRowBorder.Foreground(colorAccent).Bold(true)
	selectedRowDescStyle  = selectedRowBorder.Foreground(colorMuted)
)

// taskDelegate renders a task with its whole title wrapped to the list width.
// Every row reserves room for the longest title so pagination stays exact.
type taskDelegate struct {
	titleLines int
}

func newTaskDelegate(items []list.Item, listWidth int) taskDelegate {
	lines := 1
	for _, item := range items {
		t, ok := item.(taskItem)
		if !ok {
			continue
		}
		if n := len(wrapTitle(t.Task.Title, rowWrapWidth(listWidth))); n > lines {
			lines = n
		}
	}
	return taskDelegate{titleLines: lines}
}

// border, padding and a right margin
func rowWrapWidth(listWidth int) int {
	return listWidth - 4
}

func (d taskDelegate) Height() int                             { return d.titleLines + 1 }
func (d taskDelegate) Spacing() int                            { return 1 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t, ok := item.(taskItem)
	if !ok {
		return
	}
	titleStyle, descStyle := rowTitleStyle, rowDescStyle
	if index == m.Index() {
		titleStyle, descStyle = selectedRowTitleStyle, selectedRowDescStyle
	}

	lines := wrapTitle(t.Task.Title, rowWrapWidth(m.Width()))
	rendered := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		rendered = append(rendered, titleStyle.Render(line))
	}
	rendered = append(rendered, descStyle.Render(t.Description()))
	fmt.Fprint(w, strings.Join(rendered, "\n"))
}
