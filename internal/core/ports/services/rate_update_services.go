package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/dto"
)

// RateUpdateSvc refreshes exchange rates from the hub's configured source.
// One synchronous run per invocation; periodic triggering is the caller's
// responsibility.
type RateUpdateSvc interface {
	// RunRateUpdate fetches rates and applies them per currency. Policy
	// rejections (manual source, missing credential) and fetch failures
	// surface as errors before any mutation; per-currency resolution
	// failures are collected as warnings in the summary.
	RunRateUpdate(ctx context.Context, hubID, userID string) (*dto.RateUpdateSummary, error)
}
