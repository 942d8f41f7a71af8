package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyKeyPendingTransfers is the property row holding the pending
// transfer ledger as a JSON list.
const PropertyKeyPendingTransfers = "treasury:pending_transfers"

// PendingTransfer is an in-flight cross-bank transfer. It is tracked from
// the moment a bank accepts the instruction until the destination confirms
// receipt or the entry ages out.
type PendingTransfer struct {
	TransactionID string          `json:"transactionId"`
	FromBank      string          `json:"fromBank"`
	ToBank        string          `json:"toBank"`
	Amount        decimal.Decimal `json:"amount"`
	Status        TransferStatus  `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (p PendingTransfer) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.CreatedAt) > ttl
}

type PendingTransferOut struct {
	Kind          string `json:"kind"`
	TransactionID string `json:"transactionId"`
	FromBank      string `json:"fromBank"`
	ToBank        string `json:"toBank"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

func (p PendingTransfer) ToResponse() PendingTransferOut {
	return PendingTransferOut{
		Kind:          "pendingTransfer",
		TransactionID: p.TransactionID,
		FromBank:      p.FromBank,
		ToBank:        p.ToBank,
		Amount:        p.Amount.String(),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
