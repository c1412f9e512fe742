package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/task"
	"tasklist/internal/tasklist"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusSearch
	focusList
)

var (
	colorAccent  = lipgloss.Color("205")
	colorEditing = lipgloss.Color("162")
	colorDanger  = lipgloss.Color("203")
	colorMuted   = lipgloss.Color("241")

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

type keyMap struct {
	Submit    key.Binding
	Order     key.Binding
	DeleteAll key.Binding
	Next      key.Binding
	Prev      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/save")),
	Order:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "order the tasks list")),
	DeleteAll: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete all tasks")),
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit/quit")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type taskItem struct {
	Task task.Task
}

func (t taskItem) Title() string       { return t.Task.Title }
func (t taskItem) Description() string { return "[" + strconv.Itoa(t.Task.ID) + "]" }
func (t taskItem) FilterValue() string { return t.Task.Title }

type tuiModel struct {
	app   *App
	tasks *tasklist.TaskList

	form     textinput.Model
	search   textinput.Model
	taskList list.Model
	focus    focusArea

	alert  string
	status string

	winW int
	winH int
}

func startTUI(app *App) error {
	p := tea.NewProgram(newTUIModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newTUIModel(app *App) tuiModel {
	form := textinput.New()
	form.Placeholder = "new task"
	form.CharLimit = 500
	form.Focus()

	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.CharLimit = 200

	m := tuiModel{
		app:      app,
		tasks:    app.Tasks,
		form:     form,
		search:   search,
		taskList: newTasksListModel(nil),
		focus:    focusForm,
	}
	m.refresh()
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) setSizes() {
	if m.winW == 0 || m.winH == 0 {
		return
	}
	m.form.Width = m.winW - 32
	m.search.Width = m.winW - 10
	m.taskList.SetSize(m.winW-4, m.winH-14)
	m.syncDelegate()
}

// refresh rebuilds the visible rows from the task list's filtered view.
func (m *tuiModel) refresh() {
	filtered := m.tasks.Filtered()
	items := make([]list.Item, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, taskItem{Task: t})
	}
	m.taskList.SetItems(items)
	m.syncDelegate()
	if m.focus == focusList && m.tasks.Len() == 0 {
		m.setFocus(focusForm)
	}
}

// syncDelegate sizes rows for the current titles and list width.
func (m *tuiModel) syncDelegate() {
	m.taskList.SetDelegate(newTaskDelegate(m.taskList.Items(), m.taskList.Width()))
}

func (m *tuiModel) setFocus(f focusArea) {
	m.focus = f
	m.form.Blur()
	m.search.Blur()
	switch f {
	case focusForm:
		m.form.Focus()
	case focusSearch:
		m.search.Focus()
	}
}

func (m *tuiModel) cycleFocus(step int) {
	areas := []focusArea{focusForm, focusSearch}
	if m.tasks.Len() > 0 {
		areas = append(areas, focusList)
	}
	idx := 0
	for i, a := range areas {
		if a == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(areas)) % len(areas)
	m.setFocus(areas[idx])
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winW = msg.Width
		m.winH = msg.Height
		m.setSizes()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		// the alert is modal: the next key only dismisses it
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Back):
			if _, editing := m.tasks.Editing(); editing {
				m.tasks.CancelEdit()
				m.form.SetValue("")
				m.status = "Edit cancelled"
				m.setFocus(focusForm)
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.cycleFocus(1)
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.cycleFocus(-1)
			return m, nil
		case key.Matches(msg, keys.Order):
			m.report(m.tasks.Sort(), "Tasks ordered")
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.DeleteAll):
			m.report(m.tasks.DeleteAll(), "All tasks deleted")
			m.refresh()
			return m, nil
		}
	}

	switch m.focus {
	case focusForm:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Submit) {
			m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case focusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.tasks.Search() {
			m.tasks.SetSearch(m.search.Value())
			m.refresh()
		}
		return m, cmd
	case focusList:
		if k, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(k, keys.Edit):
				m.editSelected()
				return m, nil
			case key.Matches(k, keys.Delete):
				m.deleteSelected()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) submit() {
	_, wasEditing := m.tasks.Editing()
	m.tasks.SetInput(m.form.Value())
	err := m.tasks.Submit()
	if errors.Is(err, tasklist.ErrEmptyTitle) {
		m.alert = err.Error()
		return
	}
	m.form.SetValue(m.tasks.Input())
	msg := "Task added"
	if wasEditing {
		msg = "Task updated"
	}
	m.report(err, msg)
	m.refresh()
}

func (m *tuiModel) selectedTask() (task.Task, bool) {
	item := m.taskList.SelectedItem()
	if item == nil {
		return task.Task{}, false
	}
	t, ok := item.(taskItem)
	if !ok {
		return task.Task{}, false
	}
	return t.Task, true
}

func (m *tuiModel) editSelected() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	m.tasks.BeginEdit(t.ID)
	m.form.SetValue(m.tasks.Input())
	m.form.CursorEnd()
	m.status = ""
	m.setFocus(focusForm)
}

func (m *tuiModel) deleteSelected() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	m.report(m.tasks.Delete(t.ID), "Task deleted")
	m.refresh()
}

func (m *tuiModel) report(err error, ok string) {
	if err != nil {
		m.app.Logger.Error("operation failed", "err", err)
		m.status = err.Error()
		return
	}
	m.status = ok
}

func (m tuiModel) View() string {
	padding := lipgloss.NewStyle().Padding(1, 2)
	if m.alert != "" {
		return padding.Render(renderAlert(m.alert))
	}

	var b strings.Builder
	b.WriteString(renderHeader("Tasks") + "\n\n")

	_, editing := m.tasks.Editing()
	b.WriteString(m.fieldMarker(focusForm) + m.form.View() + "  " + renderSubmitButton(editing) + "\n\n")
	b.WriteString(renderButton("Order the tasks list", colorAccent) + " " + renderButton("Delete all tasks", colorDanger) + "\n\n")
	b.WriteString(m.fieldMarker(focusSearch) + m.search.View() + "\n\n")

	if m.tasks.Len() > 0 {
		b.WriteString(m.taskList.View() + "\n")
	}

	help := "enter: add/save • ctrl+o: order • ctrl+x: delete all • tab: next field • esc: quit"
	switch {
	case m.focus == focusList:
		help = "e: edit • d: delete • ↑/↓: move • tab: next field • esc: quit"
	case editing:
		help = "enter: finish edit • esc: cancel edit • tab: next field"
	}
	helpStyle := mutedStyle
	if m.winW > 0 {
		helpStyle = helpStyle.Width(m.winW - 4)
	}
	b.WriteString("\n" + helpStyle.Render(help))
	if m.status != "" {
		b.WriteString("\n\n" + mutedStyle.Render(m.status))
	}
	return padding.Render(b.String())
}

func (m tuiModel) fieldMarker(area focusArea) string {
	if m.focus == area {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("▶ ")
	}
	return "  "
}

func renderHeader(title string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("tasklist") + " · " + lipgloss.NewStyle().Bold(true).Render(title)
}

func renderSubmitButton(editing bool) string {
	if editing {
		return renderButton("Finish task edition", colorEditing)
	}
	return renderButton("Add new task", colorAccent)
}

func renderButton(label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(color).
		Padding(0, 1).
		Render(label)
}

func renderAlert(msg string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDanger).
		Padding(1, 4).
		Render(lipgloss.NewStyle().Bold(true).Render(msg) + "\n\n" + mutedStyle.Render("press any key"))
	return fmt.Sprintf("%s\n\n%s", renderHeader("Alert"), box)
}

func newTasksListModel(items []list.Item) list.Model {
	model := list.New(items, newTaskDelegate(items, 0), 0, 0)
	model.SetShowTitle(false)
	model.SetShowStatusBar(false)
	model.SetFilteringEnabled(false)
	model.SetShowHelp(false)
	model.KeyMap.Quit.SetEnabled(false)
	// "d" deletes a row here, not page down
	model.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	return styleList(model)
}

func styleList(model list.Model) list.Model {
	styles := model.Styles
	styles.Title = styles.Title.Foreground(colorAccent).Bold(true)
	styles.PaginationStyle = styles.PaginationStyle.Foreground(colorMuted)
	styles.HelpStyle = styles.HelpStyle.Foreground(colorMuted)
	model.Styles = styles
	return model
}
