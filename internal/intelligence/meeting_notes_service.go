package intelligence

import (
	"context"
	"fmt"

	"github.com/rankor24/BIM-AI-Crew/internal/llm"
)

// MeetingNotes is the structured output of one summarization round trip.
type MeetingNotes struct {
	Summary     string   `json:"transcriptSummary"`
	ActionItems []string `json:"actionItems"`
}

// MeetingNotesService turns transcripts into summaries and action items,
// and raw meeting recordings into transcripts.
type MeetingNotesService interface {
	// Summarize produces notes from a transcript. Title, date and
	// transcript are all required; a failed or unparsable response leaves
	// no meeting created.
	Summarize(ctx context.Context, title, date, transcript string) (*MeetingNotes, error)

	// Transcribe sends recorded media inline and returns the verbatim
	// transcript text.
	Transcribe(ctx context.Context, media []byte, mimeType string) (string, error)
}

type meetingNotesService struct {
	client llm.Client
}

// NewMeetingNotesService creates a MeetingNotesService backed by a
// generation client.
func NewMeetingNotesService(client llm.Client) MeetingNotesService {
	return &meetingNotesService{client: client}
}

func (s *meetingNotesService) Summarize(ctx context.Context, title, date, transcript string) (*MeetingNotes, error) {
	if title == "" || date == "" || transcript == "" {
		return nil, fmt.Errorf("%w: title, date and transcript are all required", ErrGeneration)
	}

	prompt := fmt.Sprintf(meetingNotesPromptTemplate, title, date, transcript)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskMeetingNotes,
		UserPrompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	notes, err := llm.ExtractJSON[MeetingNotes](resp.Text, func(n MeetingNotes) error {
		if n.Summary == "" {
			return fmt.Errorf("transcriptSummary is required")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if notes.ActionItems == nil {
		notes.ActionItems = []string{}
	}

	return &notes, nil
}

func (s *meetingNotesService) Transcribe(ctx context.Context, media []byte, mimeType string) (string, error) {
	if len(media) == 0 {
		return "", fmt.Errorf("%w: no media to transcribe", ErrGeneration)
	}
	if mimeType == "" {
		mimeType = "video/webm"
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskTranscribe,
		UserPrompt: transcribePrompt,
		Media:      &llm.InlineMedia{MIMEType: mimeType, Data: media},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return resp.Text, nil
}
