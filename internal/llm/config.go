package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskTaskSync     TaskType = "task_sync"
	TaskMeetingNotes TaskType = "meeting_notes"
	TaskArticle      TaskType = "article"
	TaskTranscribe   TaskType = "transcribe"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskTaskSync:     {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 20000},
			TaskMeetingNotes: {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 20000},
			TaskArticle:      {Temperature: 0.6, MaxTokens: 2048, TimeoutMs: 30000},
			TaskTranscribe:   {Temperature: 0.1, MaxTokens: 8192, TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays environment variables on cfg. A present API key enables
// generation unless BIMCREW_LLM_ENABLED says otherwise.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("BIMCREW_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BIMCREW_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BIMCREW_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BIMCREW_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BIMCREW_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BIMCREW_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
