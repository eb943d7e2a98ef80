package intelligence

import (
	"context"

	"github.com/rankor24/BIM-AI-Crew/internal/llm"
)

// fakeClient is a scripted llm.Client for service tests.
type fakeClient struct {
	text    string
	err     error
	calls   int
	lastReq llm.GenerateRequest
}

func (f *fakeClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}
