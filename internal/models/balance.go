package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankBalance is one bank's view inside a snapshot. Adjusted is the Main
// balance minus the bank's in-flight outbound transfers, floored at zero,
// so money in transit is never counted twice.
type BankBalance struct {
	BankName         string
	MainBalance      decimal.Decimal
	SubAccountTotal  decimal.Decimal
	PendingReduction decimal.Decimal
	Adjusted         decimal.Decimal
	FetchedAt        time.Time

	// FetchError is set when the bank could not be reached. The bank is
	// reported but excluded from totals and from top-up planning.
	FetchError string
}

func (b BankBalance) Reachable() bool {
	return b.FetchError == ""
}

// Surplus is what the bank could give away while staying above min.
func (b BankBalance) Surplus(minBalance decimal.Decimal) decimal.Decimal {
	s := b.Adjusted.Sub(minBalance)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

type BalanceSnapshot struct {
	Banks       []BankBalance
	TotalUSD    decimal.Decimal
	GeneratedAt time.Time
}

func (s BalanceSnapshot) Bank(name string) (BankBalance, bool) {
	for _, b := range s.Banks {
		if b.BankName == name {
			return b, true
		}
	}
	return BankBalance{}, false
}

type BankBalanceOut struct {
	Kind             string `json:"kind"`
	BankName         string `json:"bankName"`
	MainBalance      string `json:"mainBalance"`
	SubAccountTotal  string `json:"subAccountTotal"`
	PendingReduction string `json:"pendingReduction"`
	AdjustedBalance  string `json:"adjustedBalance"`
	FetchedAt        string `json:"fetchedAt"`
	FetchError       string `json:"fetchError,omitempty"`
}

type BalanceSnapshotOut struct {
	Kind        string           `json:"kind"`
	Banks       []BankBalanceOut `json:"banks"`
	TotalUsd    string           `json:"totalUsd"`
	GeneratedAt string           `json:"generatedAt"`
}

func (s BalanceSnapshot) ToResponse() BalanceSnapshotOut {
	out := BalanceSnapshotOut{
		Kind:        "balanceSnapshot",
		Banks:       make([]BankBalanceOut, 0, len(s.Banks)),
		TotalUsd:    s.TotalUSD.String(),
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
	}
	for _, b := range s.Banks {
		out.Banks = append(out.Banks, BankBalanceOut{
			Kind:             "bankBalance",
			BankName:         b.BankName,
			MainBalance:      b.MainBalance.String(),
			SubAccountTotal:  b.SubAccountTotal.String(),
			PendingReduction: b.PendingReduction.String(),
			AdjustedBalance:  b.Adjusted.String(),
			FetchedAt:        b.FetchedAt.Format(time.RFC3339),
			FetchError:       b.FetchError,
		})
	}
	return out
}
