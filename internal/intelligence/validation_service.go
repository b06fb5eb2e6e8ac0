package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/llm"
)

// findingRecord is the JSON shape the capability returns per finding.
type findingRecord struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// ValidationService requests a technical consistency review of the
// current line item set from the capability.
type ValidationService interface {
	// Review returns an ordered finding list meant to replace any prior
	// findings wholesale. An empty item slice is a legal input; the
	// capability decides what to say about it. A failure must leave the
	// caller's items and findings untouched; Review never mutates.
	Review(ctx context.Context, items []domain.LineItem) ([]domain.ValidationFinding, error)
}

type validationService struct {
	client llm.Client
}

// NewValidationService creates a ValidationService backed by a
// capability client.
func NewValidationService(client llm.Client) ValidationService {
	return &validationService{client: client}
}

func (s *validationService) Review(ctx context.Context, items []domain.LineItem) ([]domain.ValidationFinding, error) {
	// Lossless serialization: every field, ids included, so findings
	// can reference concrete rows.
	serialized, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing items: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		Instructions: reviewInstructions,
		Parts: []llm.Part{
			llm.TextPart("[CURRENT LINE ITEMS]\n" + string(serialized)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("review call failed: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, llm.ErrEmptyResponse
	}

	records, err := llm.ExtractJSONArray[findingRecord](resp.Text, validateFindingRecord)
	if err != nil {
		return nil, fmt.Errorf("review response: %w", err)
	}

	findings := make([]domain.ValidationFinding, 0, len(records))
	for _, r := range records {
		kind := domain.FindingKind(r.Type)
		if !domain.ValidFindingKinds[r.Type] {
			kind = domain.FindingWarning
		}
		findings = append(findings, domain.ValidationFinding{
			Kind:       kind,
			Message:    r.Message,
			Suggestion: r.Suggestion,
		})
	}
	return findings, nil
}

func validateFindingRecord(r findingRecord) error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
