package service

import (
	"context"
	"fmt"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
)

type userService struct {
	store *store.Store
}

func NewUserService(st *store.Store) UserService {
	return &userService{store: st}
}

func (s *userService) Get(ctx context.Context) (domain.UserProfile, error) {
	return s.store.User(ctx)
}

func (s *userService) Update(ctx context.Context, u domain.UserProfile) error {
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", mutate.ErrValidation)
	}
	return s.store.SaveUser(ctx, u)
}
