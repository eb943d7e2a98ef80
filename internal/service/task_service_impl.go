package service

import (
	"context"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/intelligence"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
)

type taskService struct {
	store *store.Store
	sync  intelligence.TaskSyncService
}

// NewTaskService creates a TaskService. sync may be nil when generation is
// disabled; Sync then reports a generation failure without a provider call.
func NewTaskService(st *store.Store, sync intelligence.TaskSyncService) TaskService {
	return &taskService{store: st, sync: sync}
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.Tasks(ctx)
}

func (s *taskService) Add(ctx context.Context, req mutate.AddTaskRequest) (domain.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	nextTasks, nextProjects, created, err := mutate.AddTask(tasks, projects, req)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.store.SaveTasks(ctx, nextTasks); err != nil {
		return domain.Task{}, err
	}
	if err := s.store.SaveProjects(ctx, nextProjects); err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

func (s *taskService) Toggle(ctx context.Context, taskID string) error {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return err
	}
	next := mutate.ToggleTaskStatus(tasks, taskID, time.Now())
	return s.store.SaveTasks(ctx, next)
}

func (s *taskService) Sync(ctx context.Context) ([]domain.Task, error) {
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return nil, err
	}
	projectIDs := make([]string, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	if s.sync == nil {
		return nil, intelligence.ErrGeneration
	}
	drafts, err := s.sync.GenerateTasks(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	added := make([]domain.Task, 0, len(drafts))
	for _, draft := range drafts {
		var created domain.Task
		tasks, projects, created, err = mutate.AddTask(tasks, projects, draft)
		if err != nil {
			// Drafts were validated by the synchronizer; a failure here
			// aborts the whole batch before anything is persisted.
			return nil, err
		}
		added = append(added, created)
	}

	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, err
	}
	if err := s.store.SaveProjects(ctx, projects); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *taskService) CompletionHistogram(ctx context.Context, ref time.Time) ([]view.CompletionPoint, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return view.TaskCompletionHistogram(tasks, ref), nil
}
