package models

import (
	"github.com/shopspring/decimal"
)

// TopupStep is one planned cross-bank move inside a top-up plan.
type TopupStep struct {
	SourceBank string
	TargetBank string
	Amount     decimal.Decimal
}

// TopupPlan lists the moves needed to lift every underfunded Main account
// back above the minimum. Shortfall is what remains uncovered when the
// sources ran dry, with one entry in Errors per unfunded bank.
type TopupPlan struct {
	Steps     []TopupStep
	Shortfall decimal.Decimal
	Errors    []string
}

func (p TopupPlan) Empty() bool {
	return len(p.Steps) == 0
}

func (p TopupPlan) Covered() bool {
	return p.Shortfall.IsZero() || p.Shortfall.IsNegative()
}

type TopupStepOut struct {
	Kind       string `json:"kind"`
	SourceBank string `json:"sourceBank"`
	TargetBank string `json:"targetBank"`
	Amount     string `json:"amount"`
	Status     string `json:"status,omitempty"`
}

// ExecutedTopup pairs a planned step with the transfer outcome.
type ExecutedTopup struct {
	Step   TopupStep
	Result TransferResult
}
