package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	return cfg
}

func geminiReply(text string) geminiResponse {
	return geminiResponse{
		Candidates: []geminiCandidate{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
		ModelVersion: "gemini-2.5-flash",
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user prompt", req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "system prompt", req.SystemInstruction.Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskTaskSync,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiClient_Generate_InlineMedia(t *testing.T) {
	media := []byte{0x1a, 0x45, 0xdf, 0xa3}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		parts := req.Contents[0].Parts
		require.Len(t, parts, 2, "media part precedes the prompt part")
		require.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "video/webm", parts[0].InlineData.MIMEType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(media), parts[0].InlineData.Data)
		assert.Equal(t, "transcribe this", parts[1].Text)

		json.NewEncoder(w).Encode(geminiReply("the transcript"))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskTranscribe,
		UserPrompt: "transcribe this",
		Media:      &InlineMedia{MIMEType: "video/webm", Data: media},
	})

	require.NoError(t, err)
	assert.Equal(t, "the transcript", resp.Text)
}

func TestGeminiClient_Generate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskArticle,
		UserPrompt: "anything",
	})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_Generate_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(geminiReply("second time lucky"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewGeminiClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskTaskSync,
		UserPrompt: "test",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "second time lucky", resp.Text)
}

func TestGeminiClient_Generate_RetriesExhausted(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskTaskSync,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 3, attempts)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskTaskSync: {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 50},
	}

	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskTaskSync,
		UserPrompt: "test",
	})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDisabledClient(t *testing.T) {
	_, err := NewDisabledClient().Generate(context.Background(), GenerateRequest{
		Task:       TaskArticle,
		UserPrompt: "anything",
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}
