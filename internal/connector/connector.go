package connector

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/models"
)

// Connector talks to the bank proxy, the internal service that normalises
// every bank API behind one surface.
type Connector interface {
	// ListAccounts returns every account the bank exposes, Main included.
	ListAccounts(ctx context.Context, bankName string) ([]models.Account, error)

	// GetMainBalance returns the current Main account balance.
	GetMainBalance(ctx context.Context, bankName string) (decimal.Decimal, error)

	// Transfer executes one move. It is never retried: a timed-out
	// instruction may still have gone through on the bank side.
	Transfer(ctx context.Context, instruction models.TransferInstruction) (models.TransferResult, error)
}
