package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunState tracks where a consolidation run is in its pipeline.
type RunState string

const (
	RunStateFetch               RunState = "FETCH"
	RunStateInternalConsolidate RunState = "INTERNAL_CONSOLIDATE"
	RunStateRefresh             RunState = "REFRESH"
	RunStateCrossBankTopup      RunState = "CROSS_BANK_TOPUP"
	RunStateDone                RunState = "DONE"
	RunStateSkipped             RunState = "SKIPPED"
	RunStateError               RunState = "ERROR"
)

func (s RunState) Terminal() bool {
	switch s {
	case RunStateDone, RunStateSkipped, RunStateError:
		return true
	default:
		return false
	}
}

// InternalSweep is one sub-account to Main move executed inside a bank.
type InternalSweep struct {
	BankName    string
	FromAccount string
	Amount      decimal.Decimal
	Result      TransferResult
}

// ConsolidationResult is the outcome of sweeping sub-accounts into Main
// across every reachable bank.
type ConsolidationResult struct {
	MovedTotal decimal.Decimal
	Sweeps     []InternalSweep
	Errors     []string
}

// TopupResult is the outcome of executing a cross-bank top-up plan.
type TopupResult struct {
	TotalMoved decimal.Decimal
	Topups     []ExecutedTopup
	Errors     []string
}

// ConsolidationRun is the full record of one engine invocation.
type ConsolidationRun struct {
	RunID      string
	State      RunState
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time

	Snapshot      BalanceSnapshot
	Consolidation ConsolidationResult
	Plan          TopupPlan
	TopupOutcome  TopupResult

	// Errors aggregates the non-fatal failures from every phase.
	Errors []string

	// SkipReason is set when the run ends in SKIPPED.
	SkipReason string

	// RunError is set when the run ends in ERROR.
	RunError string
}

type ConsolidationRequest struct {
	DryRun bool `json:"dryRun"`
	Force  bool `json:"force"`
}

type ConsolidationRunOut struct {
	Kind       string `json:"kind"`
	RunID      string `json:"runId"`
	State      string `json:"state"`
	DryRun     bool   `json:"dryRun"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt"`

	Snapshot             BalanceSnapshotOut `json:"snapshot"`
	TotalUsdConsolidated string             `json:"totalUsdConsolidated"`
	TotalUsdTransferred  string             `json:"totalUsdTransferred"`
	InternalSweeps       []InternalSweepOut `json:"internalSweeps"`
	Topups               []TopupStepOut     `json:"topups"`
	Shortfall            string             `json:"shortfall,omitempty"`

	Errors     []string `json:"errors"`
	SkipReason string   `json:"skipReason,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type InternalSweepOut struct {
	Kind        string `json:"kind"`
	BankName    string `json:"bankName"`
	FromAccount string `json:"fromAccount"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
}

func (r ConsolidationRun) ToResponse() ConsolidationRunOut {
	out := ConsolidationRunOut{
		Kind:                 "consolidationRun",
		RunID:                r.RunID,
		State:                string(r.State),
		DryRun:               r.DryRun,
		StartedAt:            r.StartedAt.Format(time.RFC3339),
		FinishedAt:           r.FinishedAt.Format(time.RFC3339),
		Snapshot:             r.Snapshot.ToResponse(),
		TotalUsdConsolidated: r.Consolidation.MovedTotal.String(),
		TotalUsdTransferred:  r.TopupOutcome.TotalMoved.String(),
		InternalSweeps:       make([]InternalSweepOut, 0, len(r.Consolidation.Sweeps)),
		Topups:               make([]TopupStepOut, 0, len(r.TopupOutcome.Topups)),
		Errors:               r.Errors,
		SkipReason:           r.SkipReason,
		Error:                r.RunError,
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	for _, sweep := range r.Consolidation.Sweeps {
		out.InternalSweeps = append(out.InternalSweeps, InternalSweepOut{
			Kind:        "internalSweep",
			BankName:    sweep.BankName,
			FromAccount: sweep.FromAccount,
			Amount:      sweep.Amount.String(),
			Status:      string(sweep.Result.Status),
		})
	}
	for _, t := range r.TopupOutcome.Topups {
		out.Topups = append(out.Topups, TopupStepOut{
			Kind:       "topup",
			SourceBank: t.Step.SourceBank,
			TargetBank: t.Step.TargetBank,
			Amount:     t.Step.Amount.String(),
			Status:     string(t.Result.Status),
		})
	}
	if !r.Plan.Shortfall.IsZero() {
		out.Shortfall = r.Plan.Shortfall.String()
	}
	return out
}
