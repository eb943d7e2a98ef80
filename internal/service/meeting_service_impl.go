package service

import (
	"context"

	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/intelligence"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
)

type meetingService struct {
	store *store.Store
	notes intelligence.MeetingNotesService
}

// NewMeetingService creates a MeetingService. notes may be nil when
// generation is disabled; Log and Transcribe then fail without a provider
// call.
func NewMeetingService(st *store.Store, notes intelligence.MeetingNotesService) MeetingService {
	return &meetingService{store: st, notes: notes}
}

func (s *meetingService) List(ctx context.Context) ([]domain.Meeting, error) {
	return s.store.Meetings(ctx)
}

func (s *meetingService) Log(ctx context.Context, title, date string, platform domain.MeetingPlatform, transcript string) (domain.Meeting, error) {
	if s.notes == nil {
		return domain.Meeting{}, intelligence.ErrGeneration
	}

	notes, err := s.notes.Summarize(ctx, title, date, transcript)
	if err != nil {
		return domain.Meeting{}, err
	}

	meetings, err := s.store.Meetings(ctx)
	if err != nil {
		return domain.Meeting{}, err
	}

	next, created, err := mutate.AddMeeting(meetings, mutate.AddMeetingRequest{
		Title:       title,
		Date:        date,
		Platform:    platform,
		Summary:     notes.Summary,
		ActionItems: notes.ActionItems,
	})
	if err != nil {
		return domain.Meeting{}, err
	}

	if err := s.store.SaveMeetings(ctx, next); err != nil {
		return domain.Meeting{}, err
	}
	return created, nil
}

func (s *meetingService) Transcribe(ctx context.Context, media []byte, mimeType string) (string, error) {
	if s.notes == nil {
		return "", intelligence.ErrGeneration
	}
	return s.notes.Transcribe(ctx, media, mimeType)
}
