package consolidation

import (
	"context"
	"fmt"

	"github.com/torxlabs/go-treasury/internal/common/flag"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/services"
)

type consolidationHandler struct {
	orchestratorSrv services.OrchestratorService
}

func Routes(os services.OrchestratorService) map[string]func(ctx context.Context, flag flag.Job) error {
	handler := consolidationHandler{
		orchestratorSrv: os,
	}
	return map[string]func(ctx context.Context, flag flag.Job) error{
		"RunConsolidation": handler.RunConsolidation,
		// add more job here
	}
}

// RunConsolidation drives one full engine pass from the worker. A run that
// ends in ERROR fails the job so the scheduler retries it.
func (ch *consolidationHandler) RunConsolidation(ctx context.Context, flag flag.Job) error {
	run, err := ch.orchestratorSrv.RunConsolidation(ctx, models.ConsolidationRequest{
		DryRun: flag.DryRun,
		Force:  flag.Force,
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "RunConsolidation",
		log.String("run_id", run.RunID),
		log.String("state", string(run.State)),
		log.Bool("dry_run", run.DryRun),
		log.Decimal("total_usd_consolidated", run.Consolidation.MovedTotal),
		log.Decimal("total_usd_transferred", run.TopupOutcome.TotalMoved),
		log.Int("errors", len(run.Errors)),
	)

	if run.State == models.RunStateError {
		return fmt.Errorf("consolidation run %s failed: %s", run.RunID, run.RunError)
	}

	return nil
}
