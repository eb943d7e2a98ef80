package cli

import "github.com/rankor24/BIM-AI-Crew/internal/domain"

// Search field selectors for --query filtering, one per list view.

func projectSearchFields(p domain.Project) []string {
	return []string{p.Name, p.Description}
}

func taskSearchFields(t domain.Task) []string {
	return []string{t.Title}
}

func meetingSearchFields(m domain.Meeting) []string {
	return []string{m.Title, m.TranscriptSummary}
}

func articleSearchFields(a domain.KnowledgeArticle) []string {
	return []string{a.Title, a.Content}
}
