package mutate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

var validate = validator.New()

// AddProjectRequest creates a new project with an empty task list.
type AddProjectRequest struct {
	Name        string `validate:"required"`
	Description string
	BIMModelURL string `validate:"omitempty,url"`
}

// AddTaskRequest creates a new task under an existing project. The JSON tags
// match the shape the generation provider is instructed to emit, so AI task
// drafts parse directly into this type.
type AddTaskRequest struct {
	Title     string            `json:"title" validate:"required"`
	ProjectID string            `json:"projectId" validate:"required"`
	DueDate   string            `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Source    domain.TaskSource `json:"source"`
}

// AddMeetingRequest logs a new meeting with its AI-produced notes.
type AddMeetingRequest struct {
	Title       string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Platform    domain.MeetingPlatform
	Summary     string
	ActionItems []string
}

// AddArticleRequest creates a new knowledge article.
type AddArticleRequest struct {
	Title   string `validate:"required"`
	Content string
}

func checkRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
