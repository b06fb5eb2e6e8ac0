package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/intelligence"
	"github.com/avdanilov/tender/internal/llm"
	"github.com/avdanilov/tender/internal/testutil"
)

// blockingExtraction lets a test hold an extraction call open until it
// decides to release it. started receives one signal per call, after
// the session has taken the busy flag.
type blockingExtraction struct {
	started chan struct{}
	release chan struct{}
	result  []domain.LineItem
	err     error
}

func (b *blockingExtraction) Extract(ctx context.Context, _ intelligence.ExtractionInput) ([]domain.LineItem, error) {
	if b.started != nil {
		select {
		case b.started <- struct{}{}:
		default:
		}
	}
	if b.release != nil {
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return b.result, b.err
}

type fixedValidation struct {
	findings []domain.ValidationFinding
	err      error
	calls    int
	lastSeen []domain.LineItem
}

func (f *fixedValidation) Review(_ context.Context, items []domain.LineItem) ([]domain.ValidationFinding, error) {
	f.calls++
	f.lastSeen = items
	return f.findings, f.err
}

func sampleItem(name string, qty, equip, work int64) domain.LineItem {
	return testutil.NewTestItem(name,
		testutil.WithQty(strconv.FormatInt(qty, 10)),
		testutil.WithPrices(strconv.FormatInt(equip, 10), strconv.FormatInt(work, 10)),
	)
}

func TestSession_ExtractReplacesItemsWholesale(t *testing.T) {
	extracted := []domain.LineItem{sampleItem("New detector", 10, 500, 300)}
	sess := NewEstimateSession(&blockingExtraction{result: extracted}, &fixedValidation{})

	sess.ReplaceItems([]domain.LineItem{sampleItem("Old panel", 1, 9000, 2000)})

	items, err := sess.Extract(context.Background(), intelligence.ExtractionInput{SpecText: "spec"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New detector", items[0].Name)

	current := sess.Items()
	require.Len(t, current, 1)
	assert.Equal(t, "New detector", current[0].Name, "old items must be fully replaced, not merged")
}

func TestSession_ExtractFailureKeepsPriorItems(t *testing.T) {
	sess := NewEstimateSession(&blockingExtraction{err: llm.ErrCapability}, &fixedValidation{})

	prior := []domain.LineItem{sampleItem("Kept panel", 1, 9000, 2000)}
	sess.ReplaceItems(prior)

	_, err := sess.Extract(context.Background(), intelligence.ExtractionInput{SpecText: "spec"})
	assert.ErrorIs(t, err, llm.ErrCapability)

	current := sess.Items()
	require.Len(t, current, 1)
	assert.Equal(t, "Kept panel", current[0].Name)
}

func TestSession_SecondCallWhileBusyIsRejected(t *testing.T) {
	ext := &blockingExtraction{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  []domain.LineItem{sampleItem("Item", 1, 100, 50)},
	}
	val := &fixedValidation{}
	sess := NewEstimateSession(ext, val)

	done := make(chan error, 1)
	go func() {
		_, err := sess.Extract(context.Background(), intelligence.ExtractionInput{SpecText: "spec"})
		done <- err
	}()

	// Wait until the first call is holding the busy flag.
	select {
	case <-ext.started:
	case <-time.After(time.Second):
		t.Fatal("extraction never started")
	}

	_, err := sess.Validate(context.Background())
	assert.ErrorIs(t, err, ErrBusy, "validation must be rejected while extraction is in flight")
	_, err = sess.Extract(context.Background(), intelligence.ExtractionInput{SpecText: "again"})
	assert.ErrorIs(t, err, ErrBusy, "a second extraction must be rejected, not queued")
	assert.Equal(t, 0, val.calls, "rejected calls must not reach the orchestrator")

	close(ext.release)
	require.NoError(t, <-done)

	// The gate reopens once the in-flight call completes.
	val.findings = []domain.ValidationFinding{{Kind: domain.FindingSuccess, Message: "ok"}}
	_, err = sess.Validate(context.Background())
	assert.NoError(t, err)
}

func TestSession_ValidateReplacesFindingsWholesale(t *testing.T) {
	val := &fixedValidation{findings: []domain.ValidationFinding{
		{Kind: domain.FindingWarning, Message: "first run"},
	}}
	sess := NewEstimateSession(&blockingExtraction{}, val)
	sess.ReplaceItems([]domain.LineItem{sampleItem("Detector", 4, 450, 350)})

	_, err := sess.Validate(context.Background())
	require.NoError(t, err)
	require.Len(t, sess.Findings(), 1)

	val.findings = []domain.ValidationFinding{
		{Kind: domain.FindingSuccess, Message: "second run"},
		{Kind: domain.FindingWarning, Message: "another"},
	}
	_, err = sess.Validate(context.Background())
	require.NoError(t, err)

	findings := sess.Findings()
	require.Len(t, findings, 2, "findings are replaced, never appended")
	assert.Equal(t, "second run", findings[0].Message)
}

func TestSession_ValidateFailureKeepsItemsAndFindings(t *testing.T) {
	val := &fixedValidation{findings: []domain.ValidationFinding{
		{Kind: domain.FindingSuccess, Message: "kept"},
	}}
	sess := NewEstimateSession(&blockingExtraction{}, val)
	sess.ReplaceItems([]domain.LineItem{sampleItem("Detector", 4, 450, 350)})

	_, err := sess.Validate(context.Background())
	require.NoError(t, err)

	val.err = llm.ErrMalformedResponse
	_, err = sess.Validate(context.Background())
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)

	assert.Len(t, sess.Items(), 1, "items survive a failed validation")
	findings := sess.Findings()
	require.Len(t, findings, 1, "prior findings survive a failed validation")
	assert.Equal(t, "kept", findings[0].Message)
}

func TestSession_ValidateSendsSnapshotOfCurrentItems(t *testing.T) {
	val := &fixedValidation{}
	sess := NewEstimateSession(&blockingExtraction{}, val)

	items := testutil.NewTestItems(3)
	sess.ReplaceItems(items)

	_, err := sess.Validate(context.Background())
	require.NoError(t, err)
	require.Len(t, val.lastSeen, 3)
	assert.Equal(t, items[0].ID, val.lastSeen[0].ID)
	assert.Equal(t, items[2].ID, val.lastSeen[2].ID)
}

func TestSession_EditsFlowIntoTotals(t *testing.T) {
	sess := NewEstimateSession(&blockingExtraction{}, &fixedValidation{})
	sess.SetCoefficients(domain.Coefficients{PNRPct: 15, ContingencyPct: 2, VATPct: 20})

	added := sess.AddItem(domain.LineItem{
		Name:       "Detector",
		Qty:        decimal.NewFromInt(2),
		EquipPrice: decimal.NewFromInt(1000),
		WorkPrice:  decimal.NewFromInt(200),
		Category:   domain.CategoryEquipment,
	})
	require.NotEmpty(t, added.ID)

	b := sess.Totals()
	assert.True(t, b.GrandTotal.Equal(decimal.RequireFromString("3011.04")), "grand: %s", b.GrandTotal)

	// Editing quantity changes the next recomputation.
	added.Qty = decimal.NewFromInt(4)
	require.NoError(t, sess.UpdateItem(added))
	assert.True(t, sess.Totals().EquipmentTotal.Equal(decimal.NewFromInt(4000)))

	// Removal brings the cascade back to zero.
	require.NoError(t, sess.RemoveItem(added.ID))
	assert.True(t, sess.Totals().GrandTotal.IsZero())

	assert.ErrorIs(t, sess.RemoveItem("missing"), ErrUnknownItem)
	assert.ErrorIs(t, sess.UpdateItem(domain.LineItem{ID: "missing"}), ErrUnknownItem)
}

func TestSession_TotalsIsIdempotent(t *testing.T) {
	sess := NewEstimateSession(&blockingExtraction{}, &fixedValidation{})
	sess.SetCoefficients(domain.Coefficients{PNRPct: 7.5, ContingencyPct: 3, VATPct: 20})
	sess.ReplaceItems([]domain.LineItem{sampleItem("Detector", 24, 450, 350)})

	a := sess.Totals()
	b := sess.Totals()
	assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
	assert.True(t, a.PremiumTotal.Equal(b.PremiumTotal))
}

func TestSession_ScheduleIsIndependentOfItems(t *testing.T) {
	sess := NewEstimateSession(&blockingExtraction{}, &fixedValidation{})
	sess.SetSchedule(domain.ScheduleSettings{
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		TotalDays: 45,
	})

	before := sess.Schedule()
	sess.ReplaceItems([]domain.LineItem{sampleItem("Detector", 24, 450, 350)})
	after := sess.Schedule()

	assert.Equal(t, before, after, "line item edits must not affect the schedule")
	require.Len(t, after, 5)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), after[4].End)
}
