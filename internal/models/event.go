package models

import (
	"time"
)

const (
	EventTypeRunCompleted  = "treasury.run.completed"
	EventTypePayoutMatched = "treasury.payout.matched"
)

// RunCompletedEvent is published to the treasury topic after every run,
// terminal state included.
type RunCompletedEvent struct {
	EventType  string `json:"eventType"`
	RunID      string `json:"runId"`
	State      string `json:"state"`
	DryRun     bool   `json:"dryRun"`
	TotalUSD   string `json:"totalUsd"`
	SweepCount int    `json:"sweepCount"`
	TopupCount int    `json:"topupCount"`
	Shortfall  string `json:"shortfall,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
	Error      string `json:"error,omitempty"`
	FinishedAt string `json:"finishedAt"`
}

func NewRunCompletedEvent(run ConsolidationRun) RunCompletedEvent {
	ev := RunCompletedEvent{
		EventType:  EventTypeRunCompleted,
		RunID:      run.RunID,
		State:      string(run.State),
		DryRun:     run.DryRun,
		TotalUSD:   run.Snapshot.TotalUSD.String(),
		SweepCount: len(run.Consolidation.Sweeps),
		TopupCount: len(run.TopupOutcome.Topups),
		SkipReason: run.SkipReason,
		Error:      run.RunError,
		FinishedAt: run.FinishedAt.Format(time.RFC3339),
	}
	if !run.Plan.Shortfall.IsZero() {
		ev.Shortfall = run.Plan.Shortfall.String()
	}
	return ev
}

// PayoutMatchedEvent is published when an observed incoming amount
// reconciles against an expected payout.
type PayoutMatchedEvent struct {
	EventType      string  `json:"eventType"`
	PayoutID       int64   `json:"payoutId"`
	TraderRef      string  `json:"traderRef"`
	Platform       string  `json:"platform"`
	BankName       string  `json:"bankName"`
	ExpectedAmount string  `json:"expectedAmount"`
	ObservedAmount string  `json:"observedAmount"`
	Score          float64 `json:"score"`
	MatchedAt      string  `json:"matchedAt"`
}

func NewPayoutMatchedEvent(m PayoutMatch, matchedAt time.Time) PayoutMatchedEvent {
	return PayoutMatchedEvent{
		EventType:      EventTypePayoutMatched,
		PayoutID:       m.Payout.ID,
		TraderRef:      m.Payout.TraderRef,
		Platform:       string(m.Payout.Platform),
		BankName:       m.BankName,
		ExpectedAmount: m.Payout.ExpectedAmount.String(),
		ObservedAmount: m.ObservedAmount.String(),
		Score:          m.Score,
		MatchedAt:      matchedAt.Format(time.RFC3339),
	}
}
