// Package task defines the task record and how task sequences are stored.
package task

import (
	"fmt"
	"slices"
	"strings"
)

// Task is a single to-do entry.
type Task struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	ID    int    `json:"id" yaml:"id" toml:"id"`
}

func (t Task) String() string {
	return fmt.Sprintf("%s [%d]", t.Title, t.ID)
}

// Store persists a whole task sequence.
type Store interface {
	// Load returns the stored sequence. ok is false when nothing is stored.
	Load() (tasks []Task, ok bool, err error)
	Save(tasks []Task) error
	// Clear removes the stored entry entirely.
	Clear() error
}

// Blank reports whether title is empty once surrounding whitespace is removed.
func Blank(title string) bool {
	return strings.TrimSpace(title) == ""
}

// SortByTitle returns a copy of tasks in ascending byte-wise title order.
func SortByTitle(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []Task{}
	}
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return strings.Compare(a.Title, b.Title)
	})
	return sorted
}

// Filter returns the tasks whose title contains term, ignoring case.
func Filter(tasks []Task, term string) []Task {
	needle := strings.ToLower(term)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			out = append(out, t)
		}
	}
	return out
}
