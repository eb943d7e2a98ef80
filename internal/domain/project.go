package domain

// Project groups tasks under one piece of work (a building, a tender, a
// model coordination effort).
//
// Tasks holds the embedded copies written at task-creation time. It is a
// write-time convenience only: once tasks are mutated by ID elsewhere the
// embedded copies go stale, so reads must always go through
// view.JoinProjectTasks instead of trusting this field.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tasks       []Task `json:"tasks"`
	BIMModelURL string `json:"bimModelUrl,omitempty"`
}
