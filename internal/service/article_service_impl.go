package service

import (
	"context"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/intelligence"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
)

type articleService struct {
	store   *store.Store
	content intelligence.ArticleContentService
}

// NewArticleService creates an ArticleService. content may be nil when
// generation is disabled; articles are then created with the placeholder
// body.
func NewArticleService(st *store.Store, content intelligence.ArticleContentService) ArticleService {
	return &articleService{store: st, content: content}
}

func (s *articleService) List(ctx context.Context) ([]domain.KnowledgeArticle, error) {
	return s.store.Articles(ctx)
}

func (s *articleService) Create(ctx context.Context, title, topic string) (domain.KnowledgeArticle, error) {
	body := intelligence.PlaceholderBody
	if topic != "" && s.content != nil {
		body = s.content.GenerateBody(ctx, topic)
	}

	articles, err := s.store.Articles(ctx)
	if err != nil {
		return domain.KnowledgeArticle{}, err
	}

	next, created, err := mutate.AddArticle(articles, mutate.AddArticleRequest{
		Title:   title,
		Content: body,
	}, time.Now())
	if err != nil {
		return domain.KnowledgeArticle{}, err
	}

	if err := s.store.SaveArticles(ctx, next); err != nil {
		return domain.KnowledgeArticle{}, err
	}
	return created, nil
}
