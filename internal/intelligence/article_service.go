package intelligence

import (
	"context"
	"fmt"

	"github.com/rankor24/BIM-AI-Crew/internal/llm"
)

// PlaceholderBody is used when the provider cannot supply article content.
// Article creation always succeeds with at least this text.
const PlaceholderBody = "Start writing your notes here..."

// ArticleContentService drafts free-form markdown bodies for knowledge
// articles.
type ArticleContentService interface {
	// GenerateBody returns the raw text response for the topic verbatim.
	// If the provider is unavailable or returns nothing, the fixed
	// placeholder is returned instead: article creation never fails on
	// account of the provider.
	GenerateBody(ctx context.Context, topic string) string
}

type articleContentService struct {
	client llm.Client
}

// NewArticleContentService creates an ArticleContentService backed by a
// generation client.
func NewArticleContentService(client llm.Client) ArticleContentService {
	return &articleContentService{client: client}
}

func (s *articleContentService) GenerateBody(ctx context.Context, topic string) string {
	if topic == "" {
		return PlaceholderBody
	}

	prompt := fmt.Sprintf(articlePromptTemplate, topic)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskArticle,
		SystemPrompt: articleSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil || resp.Text == "" {
		return PlaceholderBody
	}

	return resp.Text
}
