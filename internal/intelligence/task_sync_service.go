package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/llm"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
)

// taskBatchSize is how many tasks one sync round trip asks for.
const taskBatchSize = 3

// TaskSyncService fabricates a batch of plausible task drafts for the given
// projects in a single provider round trip.
type TaskSyncService interface {
	// GenerateTasks returns validated task drafts whose project IDs are
	// drawn from projectIDs. All-or-nothing: a response that fails to parse
	// or references an unknown project yields no drafts at all.
	GenerateTasks(ctx context.Context, projectIDs []string) ([]mutate.AddTaskRequest, error)
}

type taskSyncService struct {
	client llm.Client
	now    func() time.Time
}

// NewTaskSyncService creates a TaskSyncService backed by a generation client.
func NewTaskSyncService(client llm.Client) TaskSyncService {
	return &taskSyncService{client: client, now: time.Now}
}

func (s *taskSyncService) GenerateTasks(ctx context.Context, projectIDs []string) ([]mutate.AddTaskRequest, error) {
	// Pre-check before any provider call: no projects means nothing to
	// attach tasks to, and the caller owes the user a message.
	if len(projectIDs) == 0 {
		return nil, fmt.Errorf("%w: no projects to generate tasks for", ErrGeneration)
	}

	prompt := fmt.Sprintf(taskSyncPromptTemplate,
		taskBatchSize,
		strings.Join(projectIDs, "', '"),
		s.now().Format(domain.DateLayout),
	)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTaskSync,
		SystemPrompt: taskSyncSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	known := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		known[id] = true
	}

	drafts, err := llm.ExtractJSON[[]mutate.AddTaskRequest](resp.Text, func(drafts []mutate.AddTaskRequest) error {
		if len(drafts) == 0 {
			return fmt.Errorf("no tasks in response")
		}
		for i, d := range drafts {
			if d.Title == "" {
				return fmt.Errorf("task %d: missing title", i)
			}
			if !known[d.ProjectID] {
				return fmt.Errorf("task %d: unknown project %q", i, d.ProjectID)
			}
			if _, err := time.Parse(domain.DateLayout, d.DueDate); err != nil {
				return fmt.Errorf("task %d: bad due date %q", i, d.DueDate)
			}
			if !domain.ValidTaskSources[d.Source] {
				return fmt.Errorf("task %d: unknown source %q", i, d.Source)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return drafts, nil
}
