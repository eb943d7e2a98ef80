// Package mutate holds the pure state-transition functions of the core.
// Each mutator takes the current value of the affected slot(s) plus a
// validated request and returns the next value(s). Mutators never perform
// I/O; persistence and handshakes belong to the service layer.
package mutate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

// AddProject appends a new project with a fresh ID and an empty task list.
func AddProject(projects []domain.Project, req AddProjectRequest) ([]domain.Project, domain.Project, error) {
	if err := checkRequest(req); err != nil {
		return nil, domain.Project{}, err
	}

	p := domain.Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Tasks:       []domain.Task{},
		BIMModelURL: req.BIMModelURL,
	}

	next := make([]domain.Project, len(projects), len(projects)+1)
	copy(next, projects)
	return append(next, p), p, nil
}

// AddTask appends a new task with status "To Do" and mirrors it into the
// owning project's embedded task list. The embedded copy is a write-time
// convenience only; reads must go through view.JoinProjectTasks.
func AddTask(tasks []domain.Task, projects []domain.Project, req AddTaskRequest) ([]domain.Task, []domain.Project, domain.Task, error) {
	if err := checkRequest(req); err != nil {
		return nil, nil, domain.Task{}, err
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}
	if !domain.ValidTaskSources[source] {
		return nil, nil, domain.Task{}, fmt.Errorf("%w: unknown task source %q", ErrValidation, source)
	}

	parentIdx := -1
	for i := range projects {
		if projects[i].ID == req.ProjectID {
			parentIdx = i
			break
		}
	}
	if parentIdx == -1 {
		return nil, nil, domain.Task{}, fmt.Errorf("%w: project %q not found", ErrValidation, req.ProjectID)
	}

	t := domain.Task{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Status:    domain.TaskToDo,
		DueDate:   req.DueDate,
		Source:    source,
		ProjectID: req.ProjectID,
	}

	nextTasks := make([]domain.Task, len(tasks), len(tasks)+1)
	copy(nextTasks, tasks)
	nextTasks = append(nextTasks, t)

	nextProjects := make([]domain.Project, len(projects))
	copy(nextProjects, projects)
	parent := nextProjects[parentIdx]
	parent.Tasks = append(append([]domain.Task{}, parent.Tasks...), t)
	nextProjects[parentIdx] = parent

	return nextTasks, nextProjects, t, nil
}

// ToggleTaskStatus flips a task between "Done" and "To Do". Completing sets
// the completion date to now's calendar date; un-completing clears it.
// Unknown IDs are a silent no-op: under single-session use the caller
// cannot hold a stale reference.
func ToggleTaskStatus(tasks []domain.Task, taskID string, now time.Time) []domain.Task {
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	for i := range next {
		if next[i].ID != taskID {
			continue
		}
		if next[i].Status == domain.TaskDone {
			next[i].Status = domain.TaskToDo
			next[i].CompletionDate = ""
		} else {
			next[i].Status = domain.TaskDone
			next[i].CompletionDate = now.Format(domain.DateLayout)
		}
		break
	}
	return next
}

// AddMeeting prepends a new meeting so the list stays newest-first.
func AddMeeting(meetings []domain.Meeting, req AddMeetingRequest) ([]domain.Meeting, domain.Meeting, error) {
	if err := checkRequest(req); err != nil {
		return nil, domain.Meeting{}, err
	}
	if !domain.ValidMeetingPlatforms[req.Platform] {
		return nil, domain.Meeting{}, fmt.Errorf("%w: unknown meeting platform %q", ErrValidation, req.Platform)
	}

	m := domain.Meeting{
		ID:                uuid.New().String(),
		Title:             req.Title,
		Date:              req.Date,
		Platform:          req.Platform,
		TranscriptSummary: req.Summary,
		ActionItems:       req.ActionItems,
	}
	if m.ActionItems == nil {
		m.ActionItems = []string{}
	}

	next := make([]domain.Meeting, 0, len(meetings)+1)
	next = append(next, m)
	next = append(next, meetings...)
	return next, m, nil
}

// AddArticle appends a new article stamped with the current time.
func AddArticle(articles []domain.KnowledgeArticle, req AddArticleRequest, now time.Time) ([]domain.KnowledgeArticle, domain.KnowledgeArticle, error) {
	if err := checkRequest(req); err != nil {
		return nil, domain.KnowledgeArticle{}, err
	}

	a := domain.KnowledgeArticle{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	next := make([]domain.KnowledgeArticle, len(articles), len(articles)+1)
	copy(next, articles)
	return append(next, a), a, nil
}

// SetIntegrationLoading updates one integration's transient loading flag.
// No-op if the name is not in the catalog.
func SetIntegrationLoading(integrations []domain.Integration, name string, loading bool) []domain.Integration {
	next := make([]domain.Integration, len(integrations))
	copy(next, integrations)
	for i := range next {
		if next[i].Name == name {
			next[i].Loading = loading
			break
		}
	}
	return next
}

// SetIntegrationConnected updates one integration's connection state. When
// disconnecting, token and settings are always cleared: partial credential
// retention after disconnect is a leak, not a feature. No-op if the name is
// not in the catalog.
func SetIntegrationConnected(integrations []domain.Integration, name string, connected bool, token string, settings map[string]string) []domain.Integration {
	next := make([]domain.Integration, len(integrations))
	copy(next, integrations)
	for i := range next {
		if next[i].Name != name {
			continue
		}
		next[i].Connected = connected
		next[i].Loading = false
		if connected {
			next[i].AccessToken = token
			next[i].Settings = settings
		} else {
			next[i].AccessToken = ""
			next[i].Settings = nil
		}
		break
	}
	return next
}
