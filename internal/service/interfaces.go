package service

import (
	"context"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
)

type UserService interface {
	Get(ctx context.Context) (domain.UserProfile, error)
	Update(ctx context.Context, u domain.UserProfile) error
}

type ProjectService interface {
	// List returns the raw project slot.
	List(ctx context.Context) ([]domain.Project, error)
	// ListWithTasks returns projects with their live task join. This is
	// the only read path whose embedded task lists can be trusted.
	ListWithTasks(ctx context.Context) ([]domain.Project, error)
	Add(ctx context.Context, req mutate.AddProjectRequest) (domain.Project, error)
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Add(ctx context.Context, req mutate.AddTaskRequest) (domain.Task, error)
	// Toggle flips a task between Done and To Do. Unknown IDs are a
	// silent no-op.
	Toggle(ctx context.Context, taskID string) error
	// Sync asks the generation provider for a batch of task drafts and
	// adds them all, or none on failure.
	Sync(ctx context.Context) ([]domain.Task, error)
	CompletionHistogram(ctx context.Context, ref time.Time) ([]view.CompletionPoint, error)
}

type MeetingService interface {
	List(ctx context.Context) ([]domain.Meeting, error)
	// Log summarizes the transcript and stores the resulting meeting.
	// Nothing is stored if summarization fails.
	Log(ctx context.Context, title, date string, platform domain.MeetingPlatform, transcript string) (domain.Meeting, error)
	Transcribe(ctx context.Context, media []byte, mimeType string) (string, error)
}

type ArticleService interface {
	List(ctx context.Context) ([]domain.KnowledgeArticle, error)
	// Create stores a new article. With a non-empty topic the body is AI
	// drafted; creation succeeds even when the provider is down.
	Create(ctx context.Context, title, topic string) (domain.KnowledgeArticle, error)
}

// TokenSource yields a bearer token for the remote storage provider. The
// acquisition flow (OAuth popup, device code, cached credential) is opaque
// to this core.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type IntegrationService interface {
	List(ctx context.Context) ([]domain.Integration, error)
	// Connect runs the loading-flag lifecycle: set loading, perform the
	// provider handshake, then mark connected with token and settings.
	// Loading is cleared on every exit path.
	Connect(ctx context.Context, name string, settings map[string]string) (domain.Integration, error)
	// Disconnect clears the connection along with its token and settings.
	Disconnect(ctx context.Context, name string) error
}
