package intelligence

import (
	"context"
	"testing"

	"github.com/rankor24/BIM-AI-Crew/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingNotes_Summarize(t *testing.T) {
	client := &fakeClient{text: "```json\n" + `{"transcriptSummary":"Agreed on facade option B.","actionItems":["Update model","Send minutes"]}` + "\n```"}
	svc := NewMeetingNotesService(client)

	notes, err := svc.Summarize(context.Background(), "Design review", "2026-08-31", "long transcript...")
	require.NoError(t, err)

	assert.Equal(t, "Agreed on facade option B.", notes.Summary)
	assert.Equal(t, []string{"Update model", "Send minutes"}, notes.ActionItems)
	assert.Equal(t, llm.TaskMeetingNotes, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Design review")
}

func TestMeetingNotes_Summarize_MissingActionItemsBecomesEmpty(t *testing.T) {
	client := &fakeClient{text: `{"transcriptSummary":"Short sync, nothing assigned."}`}
	svc := NewMeetingNotesService(client)

	notes, err := svc.Summarize(context.Background(), "Standup", "2026-08-31", "transcript")
	require.NoError(t, err)
	assert.NotNil(t, notes.ActionItems)
	assert.Empty(t, notes.ActionItems)
}

func TestMeetingNotes_Summarize_RequiredFields(t *testing.T) {
	client := &fakeClient{text: `{"transcriptSummary":"x"}`}
	svc := NewMeetingNotesService(client)

	for _, tc := range []struct {
		name                    string
		title, date, transcript string
	}{
		{"no title", "", "2026-08-31", "t"},
		{"no date", "Review", "", "t"},
		{"no transcript", "Review", "2026-08-31", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Summarize(context.Background(), tc.title, tc.date, tc.transcript)
			assert.ErrorIs(t, err, ErrGeneration)
		})
	}
	assert.Zero(t, client.calls)
}

func TestMeetingNotes_Summarize_MissingSummaryRejected(t *testing.T) {
	client := &fakeClient{text: `{"actionItems":["a"]}`}
	svc := NewMeetingNotesService(client)

	_, err := svc.Summarize(context.Background(), "Review", "2026-08-31", "transcript")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestMeetingNotes_Transcribe(t *testing.T) {
	client := &fakeClient{text: "Speaker 1: shall we begin?"}
	svc := NewMeetingNotesService(client)

	got, err := svc.Transcribe(context.Background(), []byte{0x01, 0x02}, "audio/mp4")
	require.NoError(t, err)

	assert.Equal(t, "Speaker 1: shall we begin?", got)
	require.NotNil(t, client.lastReq.Media)
	assert.Equal(t, "audio/mp4", client.lastReq.Media.MIMEType)
	assert.Equal(t, llm.TaskTranscribe, client.lastReq.Task)
}

func TestMeetingNotes_Transcribe_DefaultMIMEType(t *testing.T) {
	client := &fakeClient{text: "transcript"}
	svc := NewMeetingNotesService(client)

	_, err := svc.Transcribe(context.Background(), []byte{0x01}, "")
	require.NoError(t, err)
	assert.Equal(t, "video/webm", client.lastReq.Media.MIMEType)
}

func TestMeetingNotes_Transcribe_EmptyMedia(t *testing.T) {
	client := &fakeClient{text: "transcript"}
	svc := NewMeetingNotesService(client)

	_, err := svc.Transcribe(context.Background(), nil, "video/webm")
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Zero(t, client.calls)
}
