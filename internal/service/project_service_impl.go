package service

import (
	"context"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
)

type projectService struct {
	store *store.Store
}

func NewProjectService(st *store.Store) ProjectService {
	return &projectService{store: st}
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.Projects(ctx)
}

func (s *projectService) ListWithTasks(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return view.JoinProjectTasks(projects, tasks), nil
}

func (s *projectService) Add(ctx context.Context, req mutate.AddProjectRequest) (domain.Project, error) {
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return domain.Project{}, err
	}

	next, created, err := mutate.AddProject(projects, req)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.store.SaveProjects(ctx, next); err != nil {
		return domain.Project{}, err
	}
	return created, nil
}
