package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	genai "google.golang.org/genai"
)

// GeminiClient implements Client on top of the official genai SDK.
type GeminiClient struct {
	cli      *genai.Client
	cfg      Config
	observer Observer
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg Config, observer Observer) (*GeminiClient, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiClient{cli: cli, cfg: cfg, observer: observer}, nil
}

// Generate sends the instruction prompt plus all text/attachment parts
// and requests application/json output. The MIME constraint is advisory:
// callers still treat the returned text as untrusted.
func (g *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	timeoutMs := g.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	parts := make([]*genai.Part, 0, len(req.Parts)+1)
	if req.Instructions != "" {
		parts = append(parts, &genai.Part{Text: req.Instructions})
	}
	for _, p := range req.Parts {
		if p.Attachment != nil {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{
				MIMEType: p.Attachment.MIME,
				Data:     p.Attachment.Data,
			}})
			continue
		}
		if p.Text != "" {
			parts = append(parts, &genai.Part{Text: p.Text})
		}
	}

	genCfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if tc, ok := g.cfg.Tasks[req.Task]; ok {
		genCfg.Temperature = genai.Ptr(float32(tc.Temperature))
	}

	var lastErr error
	attempts := 1 + g.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := g.cli.Models.GenerateContent(ctx, g.cfg.Model,
			[]*genai.Content{{Parts: parts}}, genCfg)
		if err == nil {
			text := ""
			if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil &&
				len(resp.Candidates[0].Content.Parts) > 0 {
				text = resp.Candidates[0].Content.Parts[0].Text
			}
			latency := time.Since(start).Milliseconds()
			g.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Model:     g.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{Text: text, Model: g.cfg.Model, LatencyMs: latency}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
		time.Sleep(time.Duration(300*(1<<i)) * time.Millisecond)
	}

	latency := time.Since(start).Milliseconds()
	g.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     g.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("%w: %v", ErrCapability, lastErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedResponse):
		return "MALFORMED"
	default:
		return "TRANSPORT"
	}
}
