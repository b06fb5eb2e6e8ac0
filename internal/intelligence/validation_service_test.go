package intelligence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/llm"
)

const reviewPayload = `Review complete.
[
  {"type":"error","message":"No power supply for the alarm panel","suggestion":"Add a 12V backup PSU"},
  {"type":"warning","message":"Cable length looks low for 24 detectors"},
  {"type":"success","message":"Detector count matches the covered area"}
]`

func testItems() []domain.LineItem {
	return []domain.LineItem{{
		ID:         "li-1",
		Name:       "Smoke detector",
		Model:      "IP-212-141",
		Qty:        decimal.NewFromInt(24),
		Unit:       "pcs",
		EquipPrice: decimal.NewFromInt(450),
		WorkName:   "Detector installation",
		WorkPrice:  decimal.NewFromInt(350),
		Category:   domain.CategoryEquipment,
	}}
}

func TestReview_ParsesFindings(t *testing.T) {
	stub := &stubClient{resp: reviewPayload}
	svc := NewValidationService(stub)

	findings, err := svc.Review(context.Background(), testItems())
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, domain.FindingError, findings[0].Kind)
	assert.Equal(t, "No power supply for the alarm panel", findings[0].Message)
	assert.Equal(t, "Add a 12V backup PSU", findings[0].Suggestion)

	assert.Equal(t, domain.FindingWarning, findings[1].Kind)
	assert.Empty(t, findings[1].Suggestion)

	assert.Equal(t, domain.FindingSuccess, findings[2].Kind)
}

func TestReview_SerializesAllItemFields(t *testing.T) {
	stub := &stubClient{resp: reviewPayload}
	svc := NewValidationService(stub)

	_, err := svc.Review(context.Background(), testItems())
	require.NoError(t, err)
	require.Equal(t, 1, stub.calls)

	req := stub.lastReq
	assert.Equal(t, llm.TaskReview, req.Task)
	require.Len(t, req.Parts, 1)

	serialized := req.Parts[0].Text
	for _, fragment := range []string{
		`"li-1"`, `"Smoke detector"`, `"IP-212-141"`, `"equipPrice"`,
		`"workName"`, `"workPrice"`, `"category"`, `"unit"`,
	} {
		assert.Contains(t, serialized, fragment)
	}
}

func TestReview_EmptyItemSetIsLegal(t *testing.T) {
	stub := &stubClient{resp: `[{"type":"warning","message":"Nothing to validate"}]`}
	svc := NewValidationService(stub)

	findings, err := svc.Review(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	// The empty set still goes to the capability; no local special case.
	assert.Equal(t, 1, stub.calls)
}

func TestReview_UnknownKindBecomesWarning(t *testing.T) {
	stub := &stubClient{resp: `[{"type":"notice","message":"Something"}]`}
	svc := NewValidationService(stub)

	findings, err := svc.Review(context.Background(), testItems())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.FindingWarning, findings[0].Kind)
}

func TestReview_EmptyResponse(t *testing.T) {
	stub := &stubClient{resp: ""}
	svc := NewValidationService(stub)

	_, err := svc.Review(context.Background(), testItems())
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestReview_MalformedResponse(t *testing.T) {
	stub := &stubClient{resp: "The items look fine to me."}
	svc := NewValidationService(stub)

	_, err := svc.Review(context.Background(), testItems())
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestReview_CapabilityFailurePropagates(t *testing.T) {
	stub := &stubClient{err: llm.ErrCapability}
	svc := NewValidationService(stub)

	_, err := svc.Review(context.Background(), testItems())
	assert.ErrorIs(t, err, llm.ErrCapability)
}
