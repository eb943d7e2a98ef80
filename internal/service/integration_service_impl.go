package service

import (
	"context"
	"fmt"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
)

// GoogleDriveIntegration is the catalog entry backed by a real token-based
// handshake; every other entry connects by accepting its credentials.
const GoogleDriveIntegration = "Google Drive"

type integrationService struct {
	store  *store.Store
	tokens TokenSource
}

// NewIntegrationService creates an IntegrationService. tokens may be nil;
// connecting Google Drive then fails as a precondition error.
func NewIntegrationService(st *store.Store, tokens TokenSource) IntegrationService {
	return &integrationService{store: st, tokens: tokens}
}

func (s *integrationService) List(ctx context.Context) ([]domain.Integration, error) {
	return s.store.Integrations(ctx)
}

func (s *integrationService) Connect(ctx context.Context, name string, settings map[string]string) (domain.Integration, error) {
	integrations, err := s.store.Integrations(ctx)
	if err != nil {
		return domain.Integration{}, err
	}

	entry, ok := findIntegration(integrations, name)
	if !ok {
		return domain.Integration{}, fmt.Errorf("%w: integration %q not in catalog", mutate.ErrValidation, name)
	}

	for _, field := range entry.Fields {
		if settings[field.ID] == "" {
			return domain.Integration{}, fmt.Errorf("%w: %s requires %s", mutate.ErrValidation, name, field.Label)
		}
	}

	// Loading goes up before the first external call and comes down on
	// every exit path; it is the only re-entrancy guard in the system.
	integrations = mutate.SetIntegrationLoading(integrations, name, true)
	if err := s.store.SaveIntegrations(ctx, integrations); err != nil {
		return domain.Integration{}, err
	}

	token, err := s.handshake(ctx, name)
	if err != nil {
		integrations = mutate.SetIntegrationLoading(integrations, name, false)
		if saveErr := s.store.SaveIntegrations(ctx, integrations); saveErr != nil {
			return domain.Integration{}, saveErr
		}
		return domain.Integration{}, err
	}

	integrations = mutate.SetIntegrationConnected(integrations, name, true, token, settings)
	if err := s.store.SaveIntegrations(ctx, integrations); err != nil {
		return domain.Integration{}, err
	}

	connected, _ := findIntegration(integrations, name)
	return connected, nil
}

func (s *integrationService) Disconnect(ctx context.Context, name string) error {
	integrations, err := s.store.Integrations(ctx)
	if err != nil {
		return err
	}
	if _, ok := findIntegration(integrations, name); !ok {
		return fmt.Errorf("%w: integration %q not in catalog", mutate.ErrValidation, name)
	}

	integrations = mutate.SetIntegrationLoading(integrations, name, true)
	if err := s.store.SaveIntegrations(ctx, integrations); err != nil {
		return err
	}

	integrations = mutate.SetIntegrationConnected(integrations, name, false, "", nil)
	return s.store.SaveIntegrations(ctx, integrations)
}

// handshake performs the provider-specific part of a connect. Only Google
// Drive has a real token flow; the rest of the catalog accepts the supplied
// credentials as-is.
func (s *integrationService) handshake(ctx context.Context, name string) (string, error) {
	if name != GoogleDriveIntegration {
		return "", nil
	}
	if s.tokens == nil {
		return "", drive.ErrNoToken
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("acquiring access token: %w", err)
	}
	if token == "" {
		return "", drive.ErrNoToken
	}
	return token, nil
}

func findIntegration(integrations []domain.Integration, name string) (domain.Integration, bool) {
	for _, i := range integrations {
		if i.Name == name {
			return i, true
		}
	}
	return domain.Integration{}, false
}
