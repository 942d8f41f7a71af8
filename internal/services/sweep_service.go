package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

var logMessageSweep = "[INTERNAL-CONSOLIDATION]"

// SweepService consolidates every bank's sub-accounts into its Main
// account.
type SweepService interface {
	// Consolidate proposes and, unless dryRun is set, executes one
	// account-to-Main transfer per funded non-Main USD account. Every
	// swept balance is also offered to the reconciliation matcher first:
	// an incoming payout usually lands on a sub-account, so any non-Main
	// balance is a payout signal worth checking regardless of whether the
	// sweep itself succeeds.
	Consolidate(ctx context.Context, dryRun bool) (models.ConsolidationResult, error)
}

type sweep service

var _ SweepService = (*sweep)(nil)

func (s *sweep) Consolidate(ctx context.Context, dryRun bool) (result models.ConsolidationResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	for _, bankName := range s.srv.conf.Treasury.Banks {
		var accounts []models.Account
		fetchErr := s.srv.retryer.Retry(ctx, func() error {
			var listErr error
			accounts, listErr = s.srv.bankConnector.ListAccounts(ctx, bankName)
			return listErr
		})
		if fetchErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: list accounts: %v", bankName, fetchErr))
			continue
		}

		for _, account := range accounts {
			if account.IsMain() || account.Currency != common.CurrencyUSD || !account.Balance.IsPositive() {
				continue
			}

			s.offerToMatcher(ctx, account, dryRun)

			sweepResult := s.executeSweep(ctx, account, dryRun, &result)
			result.Sweeps = append(result.Sweeps, models.InternalSweep{
				BankName:    account.BankName,
				FromAccount: account.Name,
				Amount:      account.Balance,
				Result:      sweepResult,
			})
		}
	}

	return result, nil
}

// offerToMatcher feeds a swept balance to the payout matcher. A miss is
// normal, not an error: most sub-account balances are not payouts.
func (s *sweep) offerToMatcher(ctx context.Context, account models.Account, dryRun bool) {
	match, err := s.srv.Reconcile.match(ctx, account.Balance, account.BankName, !dryRun)
	if err != nil {
		if !errors.Is(err, common.ErrNoSuitableMatch) {
			log.Warn(ctx, logMessageSweep,
				log.String("bankName", account.BankName),
				log.String("account", account.Name),
				log.Err(err))
		}
		return
	}

	log.Info(ctx, logMessageSweep,
		log.String("bankName", account.BankName),
		log.String("account", account.Name),
		log.Int64("payoutId", match.Payout.ID),
		log.Decimal("observedAmount", match.ObservedAmount),
		log.String("message", "swept balance reconciled against expected payout"))
}

func (s *sweep) executeSweep(ctx context.Context, account models.Account, dryRun bool, result *models.ConsolidationResult) models.TransferResult {
	transactionID := s.srv.idgenerator.Generate("CONS")

	if dryRun {
		return models.TransferResult{
			TransactionID: transactionID,
			Status:        models.TransferStatusPlanned,
		}
	}

	transferResult, err := s.srv.bankConnector.Transfer(ctx, models.TransferInstruction{
		TransactionID: transactionID,
		FromBank:      account.BankName,
		FromAccount:   account.AccountID,
		ToBank:        account.BankName,
		ToAccount:     models.MainAccountName,
		Amount:        account.Balance,
		Reference:     transactionID,
	})
	if err != nil {
		if errors.Is(err, common.ErrManualTransferRequired) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: manual transfer required", account.BankName, account.Name))
			return models.TransferResult{
				TransactionID: transactionID,
				Status:        models.TransferStatusManualRequired,
			}
		}

		result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: transfer: %v", account.BankName, account.Name, err))
		return models.TransferResult{
			TransactionID: transactionID,
			Status:        models.TransferStatusFailed,
		}
	}

	if transferResult.Status == models.TransferStatusManualRequired {
		result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: manual transfer required", account.BankName, account.Name))
		return transferResult
	}

	result.MovedTotal = result.MovedTotal.Add(account.Balance)

	if transferResult.Status != models.TransferStatusCompleted {
		if addErr := s.srv.PendingTransfer.Add(ctx, models.PendingTransfer{
			TransactionID: transferResult.TransactionID,
			FromBank:      account.BankName,
			ToBank:        account.BankName,
			Amount:        account.Balance,
			Status:        transferResult.Status,
			CreatedAt:     common.Now(),
		}); addErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s/%s: record pending transfer: %v", account.BankName, account.Name, addErr))
		}
	}

	return transferResult
}
