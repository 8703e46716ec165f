package dto

// RateUpdateSummary reports the outcome of a completed rate refresh run.
// Warnings carry per-currency messages for rates the source could not
// resolve; those do not abort the run.
type RateUpdateSummary struct {
	Updated  int      `json:"updated"`
	Warnings []string `json:"warnings,omitempty"`
}
