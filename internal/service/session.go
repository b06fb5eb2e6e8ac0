package service

import (
	"context"
	"errors"
	"sync"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/finance"
	"github.com/avdanilov/tender/internal/intelligence"
	"github.com/avdanilov/tender/internal/scheduler"
)

var (
	// ErrBusy is returned when an extraction or validation call is
	// already in flight. Concurrent invocations are rejected, never
	// queued.
	ErrBusy = errors.New("an extraction or validation call is already in flight")

	// ErrUnknownItem is returned when an edit names an id that is not
	// in the current item set.
	ErrUnknownItem = errors.New("unknown line item id")
)

// EstimateSession is the workflow context for one proposal. It
// exclusively owns the line item sequence, the coefficients, the
// findings and the schedule settings; engines stay pure functions over
// snapshots of this state. At most one capability call is outstanding
// at any time.
type EstimateSession struct {
	extraction intelligence.ExtractionService
	validation intelligence.ValidationService

	mu       sync.Mutex
	busy     bool
	items    []domain.LineItem
	coefs    domain.Coefficients
	findings []domain.ValidationFinding
	schedule domain.ScheduleSettings
}

// NewEstimateSession creates a session around the two orchestrators.
func NewEstimateSession(extraction intelligence.ExtractionService, validation intelligence.ValidationService) *EstimateSession {
	return &EstimateSession{
		extraction: extraction,
		validation: validation,
	}
}

// Extract runs the extraction orchestrator and, on success, replaces
// the current item set wholesale. On failure the prior items are kept.
// Returns ErrBusy while another capability call is outstanding.
func (s *EstimateSession) Extract(ctx context.Context, input intelligence.ExtractionInput) ([]domain.LineItem, error) {
	if err := s.beginCall(); err != nil {
		return nil, err
	}
	defer s.endCall()

	items, err := s.extraction.Extract(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return domain.CloneItems(items), nil
}

// Validate runs the validation orchestrator over a snapshot of the
// current items and, on success, replaces the findings wholesale. A
// failure leaves both items and prior findings untouched. Returns
// ErrBusy while another capability call is outstanding.
func (s *EstimateSession) Validate(ctx context.Context) ([]domain.ValidationFinding, error) {
	if err := s.beginCall(); err != nil {
		return nil, err
	}
	defer s.endCall()

	s.mu.Lock()
	snapshot := domain.CloneItems(s.items)
	s.mu.Unlock()

	findings, err := s.validation.Review(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.findings = findings
	s.mu.Unlock()

	out := make([]domain.ValidationFinding, len(findings))
	copy(out, findings)
	return out, nil
}

// ReplaceItems swaps in a complete item set, e.g. one loaded from disk.
func (s *EstimateSession) ReplaceItems(items []domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.CloneItems(items)
}

// AddItem appends an item, assigning a fresh id when none is set.
func (s *EstimateSession) AddItem(item domain.LineItem) domain.LineItem {
	if item.ID == "" {
		item.ID = domain.NewItemID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return item
}

// UpdateItem replaces the item with the same id in place.
func (s *EstimateSession) UpdateItem(item domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	return ErrUnknownItem
}

// RemoveItem deletes the item with the given id, preserving order.
func (s *EstimateSession) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrUnknownItem
}

// Items returns a copy of the current item set in display order.
func (s *EstimateSession) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneItems(s.items)
}

// Findings returns a copy of the current findings.
func (s *EstimateSession) Findings() []domain.ValidationFinding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ValidationFinding, len(s.findings))
	copy(out, s.findings)
	return out
}

// SetCoefficients stores the percentage coefficients.
func (s *EstimateSession) SetCoefficients(c domain.Coefficients) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coefs = c
}

// Coefficients returns the current coefficients.
func (s *EstimateSession) Coefficients() domain.Coefficients {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coefs
}

// SetSchedule stores the schedule settings.
func (s *EstimateSession) SetSchedule(settings domain.ScheduleSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = settings
}

// Totals recomputes the financial breakdown from scratch. There is no
// cached state: calling this on every edit is the intended usage.
func (s *EstimateSession) Totals() finance.Breakdown {
	s.mu.Lock()
	items := domain.CloneItems(s.items)
	coefs := s.coefs
	s.mu.Unlock()
	return finance.Compute(items, coefs)
}

// Schedule synthesizes the phase plan from the current settings. It is
// independent of the line items.
func (s *EstimateSession) Schedule() []scheduler.Phase {
	s.mu.Lock()
	settings := s.schedule
	s.mu.Unlock()
	return scheduler.Synthesize(settings)
}

func (s *EstimateSession) beginCall() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *EstimateSession) endCall() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
