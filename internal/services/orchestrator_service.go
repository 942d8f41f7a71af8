package services

import (
	"context"
	"fmt"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/common/publisher"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

var logMessageOrchestrator = "[CONSOLIDATION-RUN]"

// OrchestratorService drives one consolidation run through its states:
// FETCH, INTERNAL_CONSOLIDATE, REFRESH, CROSS_BANK_TOPUP, DONE, with
// SKIPPED and ERROR as the other terminal states.
type OrchestratorService interface {
	// RunConsolidation executes one run to a terminal state. Unexpected
	// failures never propagate; the run reports ERROR with partial
	// results instead. With dryRun set, every mutating bank and ledger
	// call is short-circuited while the full plan is still computed.
	RunConsolidation(ctx context.Context, req models.ConsolidationRequest) (models.ConsolidationRun, error)
}

type orchestrator service

var _ OrchestratorService = (*orchestrator)(nil)

func (s *orchestrator) RunConsolidation(ctx context.Context, req models.ConsolidationRequest) (run models.ConsolidationRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	run = models.ConsolidationRun{
		RunID:     s.srv.idgenerator.Generate("RUN"),
		State:     models.RunStateFetch,
		DryRun:    req.DryRun,
		StartedAt: common.Now(),
	}

	// Two schedulers firing at once is the one race the pending-transfer
	// gate cannot catch, so the run also takes a short redis lease.
	acquired, leaseErr := s.srv.cacheRepo.SetIfNotExists(ctx, models.RunLeaseKey, run.RunID, s.srv.conf.Treasury.RunLeaseTTL)
	if leaseErr != nil {
		log.Warn(ctx, logMessageOrchestrator,
			log.String("runId", run.RunID),
			log.Err(leaseErr),
			log.String("message", "run lease unavailable, continuing with ledger gate only"))
	} else if !acquired {
		err = common.ErrRunAlreadyInProgress
		run.State = models.RunStateSkipped
		run.SkipReason = "another consolidation run holds the lease"
		run.FinishedAt = common.Now()
		return run, err
	} else {
		defer func() {
			if delErr := s.srv.cacheRepo.Del(ctx, models.RunLeaseKey); delErr != nil {
				log.Warn(ctx, logMessageOrchestrator,
					log.String("runId", run.RunID),
					log.Err(delErr),
					log.String("message", "failed to release run lease, it will expire on its own"))
			}
		}()
	}

	defer func() {
		if p := recover(); p != nil {
			run.State = models.RunStateError
			run.RunError = fmt.Sprintf("panic: %v", p)
			log.Error(ctx, logMessageOrchestrator,
				log.String("runId", run.RunID),
				log.String("error", run.RunError))
		}

		run.FinishedAt = common.Now()
		s.srv.metrics.GetTreasuryPrometheus().RecordRun(run)
		s.publishRunCompleted(ctx, run)
	}()

	log.Info(ctx, logMessageOrchestrator,
		log.String("runId", run.RunID),
		log.Bool("dryRun", req.DryRun),
		log.Bool("force", req.Force),
		log.String("message", "consolidation run started"))

	// Pending-transfer gate: money still settling means a run could move
	// the same funds twice. Skip unless the operator forces it.
	hasPending, err := s.srv.PendingTransfer.HasAny(ctx)
	if err != nil {
		run.State = models.RunStateError
		run.RunError = err.Error()
		return run, nil
	}
	if hasPending && !req.Force {
		run.State = models.RunStateSkipped
		run.SkipReason = "pending transfers exist, re-run with force to override"
		return run, nil
	}

	snapshot, err := s.srv.Balance.Snapshot(ctx)
	if err != nil {
		run.State = models.RunStateError
		run.RunError = err.Error()
		return run, nil
	}
	run.Snapshot = snapshot

	run.State = models.RunStateInternalConsolidate
	consolidation, err := s.srv.Sweep.Consolidate(ctx, req.DryRun)
	if err != nil {
		run.State = models.RunStateError
		run.RunError = err.Error()
		return run, nil
	}
	run.Consolidation = consolidation
	run.Errors = append(run.Errors, consolidation.Errors...)

	// REFRESH folds the swept amounts into the in-memory snapshot instead
	// of re-querying the banks: the top-up planner must see the
	// consolidated balances even when the bank APIs lag behind.
	run.State = models.RunStateRefresh
	refreshed := s.foldSweeps(snapshot, consolidation)

	run.State = models.RunStateCrossBankTopup
	run.Plan = s.srv.Topup.Plan(ctx, refreshed)
	outcome, err := s.srv.Topup.Execute(ctx, run.Plan, req.DryRun)
	if err != nil {
		run.State = models.RunStateError
		run.RunError = err.Error()
		return run, nil
	}
	run.TopupOutcome = outcome
	run.Errors = append(run.Errors, outcome.Errors...)

	run.State = models.RunStateDone

	log.Info(ctx, logMessageOrchestrator,
		log.String("runId", run.RunID),
		log.Decimal("totalUsdConsolidated", run.Consolidation.MovedTotal),
		log.Decimal("totalUsdTransferred", run.TopupOutcome.TotalMoved),
		log.Int("errors", len(run.Errors)),
		log.String("message", "consolidation run finished"))

	return run, nil
}

// foldSweeps adds each successfully swept amount to its bank's adjusted
// balance so the planner sees post-consolidation numbers.
func (s *orchestrator) foldSweeps(snapshot models.BalanceSnapshot, consolidation models.ConsolidationResult) models.BalanceSnapshot {
	moved := make(map[string]bool)
	for _, sweepEntry := range consolidation.Sweeps {
		switch sweepEntry.Result.Status {
		case models.TransferStatusManualRequired, models.TransferStatusFailed:
			continue
		}
		moved[sweepEntry.BankName] = true
	}

	refreshed := snapshot
	refreshed.Banks = make([]models.BankBalance, len(snapshot.Banks))
	copy(refreshed.Banks, snapshot.Banks)

	for i, bank := range refreshed.Banks {
		if !moved[bank.BankName] {
			continue
		}
		for _, sweepEntry := range consolidation.Sweeps {
			if sweepEntry.BankName != bank.BankName {
				continue
			}
			switch sweepEntry.Result.Status {
			case models.TransferStatusManualRequired, models.TransferStatusFailed:
				continue
			}
			refreshed.Banks[i].Adjusted = refreshed.Banks[i].Adjusted.Add(sweepEntry.Amount)
			refreshed.TotalUSD = refreshed.TotalUSD.Add(sweepEntry.Amount)
		}
	}

	return refreshed
}

func (s *orchestrator) publishRunCompleted(ctx context.Context, run models.ConsolidationRun) {
	event := models.NewRunCompletedEvent(run)
	if err := s.srv.runPub.Publish(ctx, event, publisher.WithKey(run.RunID)); err != nil {
		log.Warn(ctx, logMessageOrchestrator,
			log.String("runId", run.RunID),
			log.Err(err),
			log.String("message", "failed to publish run completed event"))
	}
}
