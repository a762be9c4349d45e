package constants

// AdmissibilityStatus is the per-item decision. Stable values, the
// review UI and exports render these exact strings.
type AdmissibilityStatus string

const (
	StatusAdmissible    AdmissibilityStatus = "Admissible"
	StatusNotAdmissible AdmissibilityStatus = "Not Admissible"
)
