package intelligence

import (
	"context"
	"testing"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSync_GenerateTasks(t *testing.T) {
	client := &fakeClient{text: `Here you go:
[
  {"title":"Review structural model","projectId":"p1","dueDate":"2026-09-10","source":"Asana"},
  {"title":"Reply to architect","projectId":"p2","dueDate":"2026-09-12","source":"Outlook"},
  {"title":"Site photos follow-up","projectId":"p1","dueDate":"2026-09-14","source":"Whatsapp"}
]`}
	svc := NewTaskSyncService(client)

	drafts, err := svc.GenerateTasks(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)

	require.Len(t, drafts, 3)
	assert.Equal(t, "Review structural model", drafts[0].Title)
	assert.Equal(t, domain.SourceAsana, drafts[0].Source)
	assert.Equal(t, "p2", drafts[1].ProjectID)
	assert.Equal(t, llm.TaskTaskSync, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "'p1', 'p2'")
}

func TestTaskSync_NoProjectsFailsBeforeCall(t *testing.T) {
	client := &fakeClient{text: "[]"}
	svc := NewTaskSyncService(client)

	_, err := svc.GenerateTasks(context.Background(), nil)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Zero(t, client.calls, "provider must not be called with no projects")
}

func TestTaskSync_UnknownProjectRejectsWholeBatch(t *testing.T) {
	client := &fakeClient{text: `[
  {"title":"Valid","projectId":"p1","dueDate":"2026-09-10","source":"Asana"},
  {"title":"Invalid","projectId":"ghost","dueDate":"2026-09-10","source":"Asana"}
]`}
	svc := NewTaskSyncService(client)

	drafts, err := svc.GenerateTasks(context.Background(), []string{"p1"})
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Nil(t, drafts, "all-or-nothing: one bad draft rejects the batch")
}

func TestTaskSync_BadDateRejected(t *testing.T) {
	client := &fakeClient{text: `[{"title":"T","projectId":"p1","dueDate":"tomorrow","source":"Asana"}]`}
	svc := NewTaskSyncService(client)

	_, err := svc.GenerateTasks(context.Background(), []string{"p1"})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestTaskSync_UnparsableResponse(t *testing.T) {
	client := &fakeClient{text: "I'm sorry, I can't help with that."}
	svc := NewTaskSyncService(client)

	_, err := svc.GenerateTasks(context.Background(), []string{"p1"})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestTaskSync_ProviderError(t *testing.T) {
	client := &fakeClient{err: llm.ErrUnavailable}
	svc := NewTaskSyncService(client)

	_, err := svc.GenerateTasks(context.Background(), []string{"p1"})
	assert.ErrorIs(t, err, ErrGeneration)
}
