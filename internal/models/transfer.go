package models

import (
	"github.com/shopspring/decimal"
)

// TransferStatus is what a bank reports after a transfer instruction.
type TransferStatus string

const (
	// TransferStatusCompleted means the money moved synchronously.
	TransferStatusCompleted TransferStatus = "completed"

	// TransferStatusProcessing means the bank accepted the instruction and
	// will settle it asynchronously.
	TransferStatusProcessing TransferStatus = "processing"

	// TransferStatusConsolidationRequested means the bank sweeps
	// sub-accounts itself and has queued the sweep.
	TransferStatusConsolidationRequested TransferStatus = "consolidation_requested"

	// TransferStatusManualRequired means the bank cannot execute the
	// transfer via API and an operator has to do it by hand.
	TransferStatusManualRequired TransferStatus = "manual_required"

	// TransferStatusPending means the bank reported neither success nor
	// failure yet.
	TransferStatusPending TransferStatus = "pending"

	// TransferStatusPlanned is a dry-run outcome: the move was proposed
	// but deliberately not sent to the bank.
	TransferStatusPlanned TransferStatus = "planned"

	// TransferStatusFailed means the bank rejected or never accepted the
	// instruction. The balance stays where it was.
	TransferStatusFailed TransferStatus = "failed"
)

// InFlight reports whether the transfer still has money in transit and
// must be tracked as a pending transfer.
func (s TransferStatus) InFlight() bool {
	switch s {
	case TransferStatusProcessing, TransferStatusPending:
		return true
	default:
		return false
	}
}

type TransferInstruction struct {
	TransactionID string
	FromBank      string
	FromAccount   string
	ToBank        string
	ToAccount     string
	Amount        decimal.Decimal
	Reference     string
}

type TransferResult struct {
	TransactionID string
	Status        TransferStatus
	BankReference string
}
