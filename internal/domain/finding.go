package domain

// ValidationFinding is one result of a technical review of the current
// line item set. Findings are ephemeral: every review run replaces the
// whole list, nothing is merged.
type ValidationFinding struct {
	Kind       FindingKind `json:"type"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}
