// Package tasklist holds the to-do list state and keeps it in sync with
// persistent storage. Every operation that replaces the task sequence writes
// the whole sequence back to the store before returning.
package tasklist

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"tasklist/internal/task"
)

// EmptyTitleError rejects a blank submission. Its text is the alert shown
// to the user.
type EmptyTitleError struct{}

func (EmptyTitleError) Error() string { return "You must enter a task" }

// ErrEmptyTitle is returned by Submit and Replace when a title is blank.
var ErrEmptyTitle error = EmptyTitleError{}

type Option func(*TaskList)

func WithIDGenerator(gen task.IDGenerator) Option {
	return func(l *TaskList) {
		if gen != nil {
			l.ids = gen
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(l *TaskList) {
		if logger != nil {
			l.logger = logger
		}
	}
}

type TaskList struct {
	store  task.Store
	ids    task.IDGenerator
	logger *log.Logger

	tasks     []task.Task
	editingID int
	editing   bool
	search    string
	input     string
}

// New loads the persisted sequence and re-saves it. A store that cannot be
// read yields an empty list; the failure is only logged.
func New(store task.Store, opts ...Option) *TaskList {
	l := &TaskList{
		store:  store,
		ids:    task.Sequential{},
		logger: log.New(io.Discard),
		tasks:  []task.Task{},
	}
	for _, opt := range opts {
		opt(l)
	}

	loaded, ok, err := store.Load()
	switch {
	case err != nil:
		l.logger.Warn("stored tasks unavailable, starting empty", "err", err)
	case ok && loaded != nil:
		l.tasks = loaded
	}
	l.logger.Debug("tasks loaded", "count", len(l.tasks), "present", ok)

	if err := l.persist(); err != nil {
		l.logger.Error("initial save failed", "err", err)
	}
	return l
}

// Tasks returns a copy of the full sequence.
func (l *TaskList) Tasks() []task.Task {
	return slices.Clone(l.tasks)
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Find returns the first task with id.
func (l *TaskList) Find(id int) (task.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Editing returns the id whose title the next Submit replaces.
func (l *TaskList) Editing() (int, bool) {
	return l.editingID, l.editing
}

func (l *TaskList) Input() string {
	return l.input
}

func (l *TaskList) SetInput(text string) {
	l.input = text
}

func (l *TaskList) Search() string {
	return l.search
}

func (l *TaskList) SetSearch(term string) {
	l.search = term
}

// Filtered is the visible view: tasks whose title contains the search term,
// ignoring case.
func (l *TaskList) Filtered() []task.Task {
	return task.Filter(l.tasks, l.search)
}

// Submit adds the input as a new task, or replaces the title of the task
// being edited. The input is cleared on success.
func (l *TaskList) Submit() error {
	value := l.input
	if task.Blank(value) {
		return ErrEmptyTitle
	}

	if id, ok := l.Editing(); ok {
		l.replaceTitle(id, value)
		l.editing = false
		l.editingID = 0
		l.logger.Debug("task edited", "id", id)
	} else {
		t := task.Task{Title: value, ID: l.ids.Next(l.tasks)}
		next := make([]task.Task, 0, len(l.tasks)+1)
		next = append(next, l.tasks...)
		l.tasks = append(next, t)
		l.logger.Debug("task added", "id", t.ID)
	}
	l.input = ""
	return l.persist()
}

func (l *TaskList) replaceTitle(id int, title string) {
	next := make([]task.Task, len(l.tasks))
	for i, t := range l.tasks {
		if t.ID == id {
			t = task.Task{Title: title, ID: t.ID}
		}
		next[i] = t
	}
	l.tasks = next
}

// BeginEdit enters editing mode for id and loads its title into the input.
// An unknown id leaves the input empty.
func (l *TaskList) BeginEdit(id int) {
	l.editingID = id
	l.editing = true
	if t, ok := l.Find(id); ok {
		l.input = t.Title
		return
	}
	l.input = ""
}

// CancelEdit leaves editing mode and clears the input.
func (l *TaskList) CancelEdit() {
	l.editing = false
	l.editingID = 0
	l.input = ""
}

// Delete removes every task with id. Unknown ids leave the sequence as is.
func (l *TaskList) Delete(id int) error {
	next := make([]task.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	l.tasks = next
	return l.persist()
}

// DeleteAll empties the list and removes the stored entry.
func (l *TaskList) DeleteAll() error {
	l.tasks = []task.Task{}
	if err := l.store.Clear(); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	l.logger.Debug("all tasks deleted")
	return nil
}

// Sort orders the sequence by title, byte-wise ascending.
func (l *TaskList) Sort() error {
	l.tasks = task.SortByTitle(l.tasks)
	return l.persist()
}

// Replace swaps in a whole new sequence, e.g. from an import.
func (l *TaskList) Replace(tasks []task.Task) error {
	for _, t := range tasks {
		if task.Blank(t.Title) {
			return ErrEmptyTitle
		}
	}
	l.tasks = slices.Clone(tasks)
	if l.tasks == nil {
		l.tasks = []task.Task{}
	}
	return l.persist()
}

func (l *TaskList) persist() error {
	if err := l.store.Save(l.tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
