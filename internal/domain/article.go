package domain

// KnowledgeArticle is a markdown note in the knowledge base.
// Immutable after creation.
type KnowledgeArticle struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}
