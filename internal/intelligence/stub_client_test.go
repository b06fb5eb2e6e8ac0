package intelligence

import (
	"context"

	"github.com/avdanilov/tender/internal/llm"
)

// stubClient is a canned-response capability client. It counts calls so
// tests can assert that preconditions short-circuit before any external
// invocation.
type stubClient struct {
	calls   int
	resp    string
	err     error
	lastReq llm.GenerateRequest
}

func (s *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.resp, Model: "stub"}, nil
}
