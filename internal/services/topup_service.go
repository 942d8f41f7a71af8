package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

// TopupService plans and executes cross-bank top-ups for Main accounts
// that fell below the configured minimum.
type TopupService interface {
	// Plan partitions banks into those below the threshold and potential
	// sources, then greedily assigns each underfunded bank the first
	// source in the configured priority order that can still supply a
	// full fixed-size top-up. The planner always moves the fixed amount,
	// never "fill to threshold": predictable moves over optimal ones.
	Plan(ctx context.Context, snapshot models.BalanceSnapshot) models.TopupPlan

	// Execute performs the planned moves. Partial failure is tolerated;
	// a failed step is recorded and the rest of the plan continues.
	Execute(ctx context.Context, plan models.TopupPlan, dryRun bool) (models.TopupResult, error)
}

type topup service

var _ TopupService = (*topup)(nil)

// sourceCandidate tracks the remaining capacity of a donor bank as the
// planner consumes it within a single run.
type sourceCandidate struct {
	bankName  string
	canSupply decimal.Decimal
}

func (s *topup) Plan(ctx context.Context, snapshot models.BalanceSnapshot) (plan models.TopupPlan) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish()

	threshold := decimal.NewFromFloat(s.srv.conf.Treasury.MinBalanceUSD)
	transferAmount := decimal.NewFromFloat(s.srv.conf.Treasury.TopupAmountUSD)

	var needsTopup []models.BankBalance
	for _, bank := range snapshot.Banks {
		if !bank.Reachable() {
			continue
		}
		if bank.Adjusted.LessThan(threshold) {
			needsTopup = append(needsTopup, bank)
		}
	}
	if len(needsTopup) == 0 {
		return plan
	}

	// Candidacy requires room for a full top-up on top of the source's own
	// threshold. Order is the configured business priority, not surplus
	// size.
	candidates := make([]*sourceCandidate, 0, len(snapshot.Banks))
	for _, bankName := range s.srv.conf.Treasury.SourcePriority {
		bank, ok := snapshot.Bank(bankName)
		if !ok || !bank.Reachable() {
			continue
		}
		if surplus := bank.Surplus(threshold); surplus.GreaterThanOrEqual(transferAmount) {
			candidates = append(candidates, &sourceCandidate{
				bankName:  bank.BankName,
				canSupply: surplus,
			})
		}
	}

	for _, target := range needsTopup {
		assigned := false
		for _, candidate := range candidates {
			if candidate.bankName == target.BankName {
				continue
			}
			if candidate.canSupply.GreaterThanOrEqual(transferAmount) {
				plan.Steps = append(plan.Steps, models.TopupStep{
					SourceBank: candidate.bankName,
					TargetBank: target.BankName,
					Amount:     transferAmount,
				})
				candidate.canSupply = candidate.canSupply.Sub(transferAmount)
				assigned = true
				break
			}
		}
		if !assigned {
			plan.Shortfall = plan.Shortfall.Add(transferAmount)
			plan.Errors = append(plan.Errors, fmt.Sprintf(
				"%s: no source bank can supply %s (balance %s below threshold %s)",
				target.BankName, transferAmount, target.Adjusted, threshold))
		}
	}

	return plan
}

func (s *topup) Execute(ctx context.Context, plan models.TopupPlan, dryRun bool) (result models.TopupResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result.Errors = append(result.Errors, plan.Errors...)

	for _, step := range plan.Steps {
		transactionID := s.srv.idgenerator.Generate("TOPUP")

		if dryRun {
			result.Topups = append(result.Topups, models.ExecutedTopup{
				Step: step,
				Result: models.TransferResult{
					TransactionID: transactionID,
					Status:        models.TransferStatusPlanned,
				},
			})
			continue
		}

		transferResult, transferErr := s.srv.bankConnector.Transfer(ctx, models.TransferInstruction{
			TransactionID: transactionID,
			FromBank:      step.SourceBank,
			FromAccount:   models.MainAccountName,
			ToBank:        step.TargetBank,
			ToAccount:     models.MainAccountName,
			Amount:        step.Amount,
			Reference:     transactionID,
		})
		if transferErr != nil {
			status := models.TransferStatusFailed
			if errors.Is(transferErr, common.ErrManualTransferRequired) {
				status = models.TransferStatusManualRequired
				result.Errors = append(result.Errors, fmt.Sprintf("%s->%s: manual transfer required", step.SourceBank, step.TargetBank))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("%s->%s: transfer: %v", step.SourceBank, step.TargetBank, transferErr))
			}
			result.Topups = append(result.Topups, models.ExecutedTopup{
				Step: step,
				Result: models.TransferResult{
					TransactionID: transactionID,
					Status:        status,
				},
			})
			continue
		}

		result.TotalMoved = result.TotalMoved.Add(step.Amount)
		result.Topups = append(result.Topups, models.ExecutedTopup{
			Step:   step,
			Result: transferResult,
		})

		if transferResult.Status != models.TransferStatusCompleted {
			if addErr := s.srv.PendingTransfer.Add(ctx, models.PendingTransfer{
				TransactionID: transferResult.TransactionID,
				FromBank:      step.SourceBank,
				ToBank:        step.TargetBank,
				Amount:        step.Amount,
				Status:        transferResult.Status,
				CreatedAt:     common.Now(),
			}); addErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s->%s: record pending transfer: %v", step.SourceBank, step.TargetBank, addErr))
			}
		}
	}

	return result, nil
}
