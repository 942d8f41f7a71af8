package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

// BalanceService builds the per-run snapshot of every bank's Main account.
type BalanceService interface {
	// Snapshot fetches every configured bank's Main balance and subtracts
	// in-flight outbound transfers, floored at zero. One unreachable bank
	// never aborts the others; it is reported with a fetch error and a
	// zero balance instead.
	Snapshot(ctx context.Context) (models.BalanceSnapshot, error)
}

type balance service

var _ BalanceService = (*balance)(nil)

func (s *balance) Snapshot(ctx context.Context) (snapshot models.BalanceSnapshot, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	pending, err := s.srv.PendingTransfer.List(ctx)
	if err != nil {
		return snapshot, err
	}

	reductions := make(map[string]decimal.Decimal, len(pending))
	for _, t := range pending {
		reductions[t.FromBank] = reductions[t.FromBank].Add(t.Amount)
	}

	snapshot.GeneratedAt = common.Now()
	snapshot.Banks = make([]models.BankBalance, 0, len(s.srv.conf.Treasury.Banks))

	for _, bankName := range s.srv.conf.Treasury.Banks {
		bank := s.fetchBank(ctx, bankName)

		reduction := reductions[bankName]
		bank.PendingReduction = reduction
		bank.Adjusted = bank.MainBalance.Sub(reduction)
		if bank.Adjusted.IsNegative() {
			bank.Adjusted = decimal.Zero
		}

		if bank.Reachable() {
			snapshot.TotalUSD = snapshot.TotalUSD.Add(bank.Adjusted)
		}

		snapshot.Banks = append(snapshot.Banks, bank)
	}

	s.srv.metrics.GetTreasuryPrometheus().RecordSnapshot(snapshot)

	return snapshot, nil
}

// fetchBank asks the dedicated balance endpoint for Main and the account
// listing for the sub-account total. Either call failing marks the bank
// unreachable.
func (s *balance) fetchBank(ctx context.Context, bankName string) models.BankBalance {
	bank := models.BankBalance{
		BankName:  bankName,
		FetchedAt: common.Now(),
	}

	err := s.srv.retryer.Retry(ctx, func() error {
		var fetchErr error
		bank.MainBalance, fetchErr = s.srv.bankConnector.GetMainBalance(ctx, bankName)
		return fetchErr
	})
	if err != nil {
		log.Warn(ctx, "[BALANCE-AGGREGATOR]",
			log.String("bankName", bankName),
			log.Err(err),
			log.String("message", "bank unreachable, reported with zero balance"))
		bank.FetchError = err.Error()
		return bank
	}

	var accounts []models.Account
	err = s.srv.retryer.Retry(ctx, func() error {
		var fetchErr error
		accounts, fetchErr = s.srv.bankConnector.ListAccounts(ctx, bankName)
		return fetchErr
	})
	if err != nil {
		log.Warn(ctx, "[BALANCE-AGGREGATOR]",
			log.String("bankName", bankName),
			log.Err(err),
			log.String("message", "account listing failed, bank excluded from totals"))
		bank.FetchError = err.Error()
		return bank
	}

	for _, account := range accounts {
		if account.IsMain() || account.Currency != common.CurrencyUSD {
			continue
		}
		bank.SubAccountTotal = bank.SubAccountTotal.Add(account.Balance)
	}

	return bank
}
