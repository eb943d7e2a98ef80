package domain

// Meeting is an AI-summarized meeting record. Immutable after creation.
type Meeting struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Date              string          `json:"date"`
	Platform          MeetingPlatform `json:"platform"`
	TranscriptSummary string          `json:"transcriptSummary"`
	ActionItems       []string        `json:"actionItems"`
}
