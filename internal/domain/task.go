package domain

// DateLayout is the calendar-date format used for due and completion dates.
const DateLayout = "2006-01-02"

// Task is a single unit of work belonging to exactly one project.
// CompletionDate is present if and only if Status is TaskDone.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Status         TaskStatus `json:"status"`
	DueDate        string     `json:"dueDate"`
	Source         TaskSource `json:"source"`
	ProjectID      string     `json:"projectId"`
	CompletionDate string     `json:"completionDate,omitempty"`
}
