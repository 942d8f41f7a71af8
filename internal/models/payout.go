package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PayoutStatusPending  = "PENDING"
	PayoutStatusReceived = "RECEIVED"
)

// ExpectedPayout is a payout we are told to expect from a platform. It is
// created when the platform approves the withdrawal and closed when an
// incoming amount reconciles against it.
type ExpectedPayout struct {
	ID             int64
	TraderRef      string
	Platform       Platform
	BaseAmount     decimal.Decimal
	ExpectedAmount decimal.Decimal
	Status         string
	ObservedAmount decimal.NullDecimal
	ReceivedBank   string
	CreatedAt      *time.Time
	ReceivedAt     *time.Time
}

func (p ExpectedPayout) Received() bool {
	return p.Status == PayoutStatusReceived
}

type ExpectedPayoutOut struct {
	Kind           string `json:"kind"`
	ID             int64  `json:"id"`
	TraderRef      string `json:"traderRef"`
	Platform       string `json:"platform"`
	BaseAmount     string `json:"baseAmount"`
	ExpectedAmount string `json:"expectedAmount"`
	Status         string `json:"status"`
	ObservedAmount string `json:"observedAmount,omitempty"`
	ReceivedBank   string `json:"receivedBank,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	ReceivedAt     string `json:"receivedAt,omitempty"`
}

func (p ExpectedPayout) ToResponse() ExpectedPayoutOut {
	out := ExpectedPayoutOut{
		Kind:           "expectedPayout",
		ID:             p.ID,
		TraderRef:      p.TraderRef,
		Platform:       string(p.Platform),
		BaseAmount:     p.BaseAmount.String(),
		ExpectedAmount: p.ExpectedAmount.String(),
		Status:         p.Status,
		ReceivedBank:   p.ReceivedBank,
	}
	if p.ObservedAmount.Valid {
		out.ObservedAmount = p.ObservedAmount.Decimal.String()
	}
	if p.CreatedAt != nil {
		out.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if p.ReceivedAt != nil {
		out.ReceivedAt = p.ReceivedAt.Format(time.RFC3339)
	}
	return out
}

type CreateExpectedPayoutIn struct {
	TraderRef      string
	Platform       Platform
	BaseAmount     decimal.Decimal
	ExpectedAmount decimal.Decimal
}

type CreateExpectedPayoutRequest struct {
	TraderRef  string          `json:"traderRef" validate:"required,max=64"`
	Platform   string          `json:"platform" validate:"required"`
	BaseAmount decimal.Decimal `json:"baseAmount" validate:"decimalGreaterThan=0"`
}

// PayoutMatch is the outcome of reconciling one observed incoming amount.
type PayoutMatch struct {
	Payout         ExpectedPayout
	ObservedAmount decimal.Decimal
	BankName       string
	Score          float64
}

type PayoutMatchOut struct {
	Kind           string            `json:"kind"`
	Payout         ExpectedPayoutOut `json:"payout"`
	ObservedAmount string            `json:"observedAmount"`
	BankName       string            `json:"bankName"`
	Score          float64           `json:"score"`
}

func (m PayoutMatch) ToResponse() PayoutMatchOut {
	return PayoutMatchOut{
		Kind:           "payoutMatch",
		Payout:         m.Payout.ToResponse(),
		ObservedAmount: m.ObservedAmount.String(),
		BankName:       m.BankName,
		Score:          m.Score,
	}
}

type PayoutFilterOptions struct {
	Platform Platform
	Limit    int
}

type ReconcileRequest struct {
	BankName       string          `json:"bankName" validate:"required"`
	ObservedAmount decimal.Decimal `json:"observedAmount" validate:"decimalGreaterThan=0"`

	// AccountName is the receiving account label, kept for the audit log
	// only; matching is amount-driven.
	AccountName string `json:"accountName"`
}
