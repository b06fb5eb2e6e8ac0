package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of capability task being performed.
type TaskType string

const (
	TaskExtract TaskType = "extract"
	TaskReview  TaskType = "review"
)

// TaskConfig holds per-task capability parameters.
type TaskConfig struct {
	Temperature float64
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the capability subsystem.
type Config struct {
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:      "gemini-2.0-flash",
		TimeoutMs:  120000,
		MaxRetries: 2,
		LogCalls:   false,
		Tasks: map[TaskType]TaskConfig{
			// Extraction wants near-deterministic output; review can
			// afford slightly more latitude when phrasing findings.
			TaskExtract: {Temperature: 0.1, TimeoutMs: 180000},
			TaskReview:  {Temperature: 0.2, TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads capability configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TENDER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TENDER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TENDER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("TENDER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskExtract, "TENDER_LLM_EXTRACT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReview, "TENDER_LLM_REVIEW_TIMEOUT_MS")

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

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
