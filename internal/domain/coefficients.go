package domain

// Coefficients holds the three user-set percentage values applied in the
// financial cascade. None of them is range-constrained; zero is legal.
type Coefficients struct {
	// PNRPct is the installation-and-commissioning surcharge, applied to
	// the labor subtotal only.
	PNRPct float64 `json:"pnrPct"`

	// ContingencyPct is applied to equipment+labor+commissioning.
	ContingencyPct float64 `json:"contingencyPct"`

	// VATPct is applied last, after contingency.
	VATPct float64 `json:"vatPct"`
}
