package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/llm"
)

// ExtractionInput carries the raw material for line item extraction:
// free-text specification and/or an attached specification document,
// plus a free-text pricing corpus and/or an attached pricing document.
type ExtractionInput struct {
	SpecText  string
	SpecDoc   *llm.Attachment
	PriceText string
	PriceDoc  *llm.Attachment
}

// HasSpecification reports whether any specification source is present.
func (in ExtractionInput) HasSpecification() bool {
	return strings.TrimSpace(in.SpecText) != "" || in.SpecDoc != nil
}

// extractedRecord is the JSON shape the capability returns per row.
// IDs are deliberately absent: they are generated locally, never taken
// from the payload.
type extractedRecord struct {
	Name       string          `json:"name"`
	Model      string          `json:"model"`
	Qty        decimal.Decimal `json:"qty"`
	Unit       string          `json:"unit"`
	EquipPrice decimal.Decimal `json:"equipPrice"`
	WorkName   string          `json:"workName"`
	WorkPrice  decimal.Decimal `json:"workPrice"`
	Category   string          `json:"category"`
}

// ExtractionService turns a heterogeneous equipment specification and a
// pricing corpus into an ordered batch of priced line items.
type ExtractionService interface {
	// Extract performs one extraction call. The returned batch is meant
	// to replace the caller's current item set wholesale; the service
	// itself mutates nothing.
	Extract(ctx context.Context, input ExtractionInput) ([]domain.LineItem, error)
}

type extractionService struct {
	client llm.Client
}

// NewExtractionService creates an ExtractionService backed by a
// capability client.
func NewExtractionService(client llm.Client) ExtractionService {
	return &extractionService{client: client}
}

func (s *extractionService) Extract(ctx context.Context, input ExtractionInput) ([]domain.LineItem, error) {
	if !input.HasSpecification() {
		return nil, fmt.Errorf("%w: supply specification text or attach a document", llm.ErrEmptyInput)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtract,
		Instructions: extractionInstructions,
		Parts:        buildExtractionParts(input),
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, llm.ErrEmptyResponse
	}

	records, err := llm.ExtractJSONArray[extractedRecord](resp.Text, validateExtractedRecord)
	if err != nil {
		return nil, fmt.Errorf("extraction response: %w", err)
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, r := range records {
		category := domain.Category(r.Category)
		if !domain.ValidCategories[r.Category] {
			category = domain.CategoryEquipment
		}
		items = append(items, domain.LineItem{
			ID:         domain.NewItemID(),
			Name:       r.Name,
			Model:      r.Model,
			Qty:        r.Qty,
			Unit:       r.Unit,
			EquipPrice: r.EquipPrice,
			WorkName:   r.WorkName,
			WorkPrice:  r.WorkPrice,
			Category:   category,
		})
	}
	return items, nil
}

// buildExtractionParts assembles the multimodal request in a fixed
// order: pricing corpus first (text, then document with its note), the
// specification after it. Raw texts go in verbatim.
func buildExtractionParts(input ExtractionInput) []llm.Part {
	var parts []llm.Part

	if strings.TrimSpace(input.PriceText) != "" {
		parts = append(parts, llm.TextPart("[PRICING CORPUS]\n"+input.PriceText))
	}
	if input.PriceDoc != nil {
		parts = append(parts,
			llm.TextPart(pricingDocNote),
			llm.AttachmentPart(input.PriceDoc))
	}

	if strings.TrimSpace(input.SpecText) != "" {
		parts = append(parts, llm.TextPart("[EQUIPMENT SPECIFICATION]\n"+input.SpecText))
	}
	if input.SpecDoc != nil {
		parts = append(parts,
			llm.TextPart(specDocNote),
			llm.AttachmentPart(input.SpecDoc))
	}

	return parts
}

func validateExtractedRecord(r extractedRecord) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
