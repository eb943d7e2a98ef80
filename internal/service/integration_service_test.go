package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
	"github.com/rankor24/BIM-AI-Crew/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenSource struct {
	token string
	err   error
}

func (f fakeTokenSource) Token(ctx context.Context) (string, error) {
	return f.token, f.err
}

func findByName(t *testing.T, integrations []domain.Integration, name string) domain.Integration {
	t.Helper()
	for _, i := range integrations {
		if i.Name == name {
			return i
		}
	}
	t.Fatalf("integration %q not found", name)
	return domain.Integration{}
}

func asanaSettings() map[string]string {
	return map[string]string{"token": "pat-secret", "workspaceId": "ws-42"}
}

func TestIntegrationService_ListServesCatalogByDefault(t *testing.T) {
	svc := NewIntegrationService(testutil.NewTestStore(t), nil)

	integrations, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIntegrations(), integrations)
}

func TestIntegrationService_Connect(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewIntegrationService(st, nil)
	ctx := context.Background()

	connected, err := svc.Connect(ctx, "Asana", asanaSettings())
	require.NoError(t, err)

	assert.True(t, connected.Connected)
	assert.False(t, connected.Loading, "loading cleared after the handshake")
	assert.Equal(t, asanaSettings(), connected.Settings)

	// Persisted, not just returned.
	stored, err := st.Integrations(ctx)
	require.NoError(t, err)
	got := findByName(t, stored, "Asana")
	assert.True(t, got.Connected)
	assert.False(t, got.Loading)
}

func TestIntegrationService_Connect_UnknownName(t *testing.T) {
	svc := NewIntegrationService(testutil.NewTestStore(t), nil)

	_, err := svc.Connect(context.Background(), "Not A Thing", nil)
	assert.ErrorIs(t, err, mutate.ErrValidation)
}

func TestIntegrationService_Connect_MissingCredentials(t *testing.T) {
	svc := NewIntegrationService(testutil.NewTestStore(t), nil)

	_, err := svc.Connect(context.Background(), "Asana", map[string]string{})
	assert.ErrorIs(t, err, mutate.ErrValidation)
}

func TestIntegrationService_Connect_GoogleDrive(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewIntegrationService(st, fakeTokenSource{token: "drive-token"})
	ctx := context.Background()

	settings := map[string]string{"clientId": "abc.apps.googleusercontent.com"}
	connected, err := svc.Connect(ctx, GoogleDriveIntegration, settings)
	require.NoError(t, err)

	assert.True(t, connected.Connected)
	assert.Equal(t, "drive-token", connected.AccessToken)
}

func TestIntegrationService_Connect_GoogleDriveWithoutTokenSource(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewIntegrationService(st, nil)
	ctx := context.Background()

	settings := map[string]string{"clientId": "abc"}
	_, err := svc.Connect(ctx, GoogleDriveIntegration, settings)
	assert.ErrorIs(t, err, drive.ErrNoToken)

	// The failed handshake must leave the catalog idle.
	stored, err := st.Integrations(ctx)
	require.NoError(t, err)
	got := findByName(t, stored, GoogleDriveIntegration)
	assert.False(t, got.Connected)
	assert.False(t, got.Loading, "loading cleared on the failure path")
}

func TestIntegrationService_Connect_HandshakeFailureClearsLoading(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewIntegrationService(st, fakeTokenSource{err: fmt.Errorf("oauth refused")})
	ctx := context.Background()

	_, err := svc.Connect(ctx, GoogleDriveIntegration, map[string]string{"clientId": "abc"})
	require.Error(t, err)

	stored, err := st.Integrations(ctx)
	require.NoError(t, err)
	got := findByName(t, stored, GoogleDriveIntegration)
	assert.False(t, got.Loading)
	assert.False(t, got.Connected)
}

func TestIntegrationService_Disconnect(t *testing.T) {
	st := testutil.NewTestStore(t)
	svc := NewIntegrationService(st, nil)
	ctx := context.Background()

	_, err := svc.Connect(ctx, "Asana", asanaSettings())
	require.NoError(t, err)

	require.NoError(t, svc.Disconnect(ctx, "Asana"))

	stored, err := st.Integrations(ctx)
	require.NoError(t, err)
	got := findByName(t, stored, "Asana")
	assert.False(t, got.Connected)
	assert.False(t, got.Loading)
	assert.Empty(t, got.AccessToken)
	assert.Nil(t, got.Settings, "disconnect clears stored credentials")
}

func TestIntegrationService_Disconnect_UnknownName(t *testing.T) {
	svc := NewIntegrationService(testutil.NewTestStore(t), nil)
	err := svc.Disconnect(context.Background(), "Not A Thing")
	assert.ErrorIs(t, err, mutate.ErrValidation)
}

func TestIntegrationService_ConnectionSurvivesReload(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	svc := NewIntegrationService(store.New(database), nil)
	_, err := svc.Connect(ctx, "Asana", asanaSettings())
	require.NoError(t, err)

	// A second service over the same database sees the connection.
	svc2 := NewIntegrationService(store.New(database), nil)
	integrations, err := svc2.List(ctx)
	require.NoError(t, err)
	assert.True(t, findByName(t, integrations, "Asana").Connected)
}
