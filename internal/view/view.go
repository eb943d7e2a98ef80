// Package view computes read-only projections over the persisted slots.
// Nothing here mutates state.
package view

import (
	"strings"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

// FilterByQuery returns the items whose selected text fields contain query,
// case-insensitively. An empty query returns the input unchanged, in the
// same order.
func FilterByQuery[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var out []T
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// JoinProjectTasks replaces each project's embedded task list with the live
// subset of tasks owned by it. This is the authoritative read path: the
// embedded copies inside Project are stale once a task is mutated by ID.
func JoinProjectTasks(projects []domain.Project, tasks []domain.Task) []domain.Project {
	out := make([]domain.Project, len(projects))
	copy(out, projects)
	for i := range out {
		owned := []domain.Task{}
		for _, t := range tasks {
			if t.ProjectID == out[i].ID {
				owned = append(owned, t)
			}
		}
		out[i].Tasks = owned
	}
	return out
}

// CompletionPoint is one day of the task-completion histogram.
type CompletionPoint struct {
	Label string // short weekday name, e.g. "Mon"
	Date  string // calendar date, YYYY-MM-DD
	Count int
}

// TaskCompletionHistogram counts completed tasks per day over the 7
// calendar days ending at ref inclusive, oldest first.
func TaskCompletionHistogram(tasks []domain.Task, ref time.Time) []CompletionPoint {
	points := make([]CompletionPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		date := day.Format(domain.DateLayout)
		count := 0
		for _, t := range tasks {
			if t.CompletionDate == date {
				count++
			}
		}
		points = append(points, CompletionPoint{
			Label: day.Weekday().String()[:3],
			Date:  date,
			Count: count,
		})
	}
	return points
}
