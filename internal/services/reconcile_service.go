package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/common/publisher"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
	"github.com/torxlabs/go-treasury/internal/repositories"
)

var logMessageReconcile = "[PAYOUT-RECONCILE]"

// ReconcileService matches observed incoming amounts against expected
// platform payouts.
type ReconcileService interface {
	// Reconcile finds the best-scoring unreceived payout whose fee-model
	// range covers the observed amount and marks it received. At most one
	// record matches per call; a miss leaves the amount unreconciled for
	// a later run.
	Reconcile(ctx context.Context, req models.ReconcileRequest) (*models.PayoutMatch, error)

	CreateExpectedPayout(ctx context.Context, req models.CreateExpectedPayoutRequest) (*models.ExpectedPayout, error)

	ListPendingPayouts(ctx context.Context, opts models.PayoutFilterOptions) ([]models.ExpectedPayout, error)
}

type reconcile service

var _ ReconcileService = (*reconcile)(nil)

func (s *reconcile) Reconcile(ctx context.Context, req models.ReconcileRequest) (match *models.PayoutMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	log.Debug(ctx, logMessageReconcile,
		log.String("bankName", req.BankName),
		log.String("accountName", req.AccountName),
		log.Decimal("observedAmount", req.ObservedAmount))

	return s.match(ctx, req.ObservedAmount, req.BankName, true)
}

// match is the shared matcher. With persist false it only scores, leaving
// every record untouched; dry runs and rehearsals use that mode.
func (s *reconcile) match(ctx context.Context, observed decimal.Decimal, bankName string, persist bool) (match *models.PayoutMatch, err error) {
	if !observed.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	best, err := s.findBest(ctx, observed, bankName)
	if err != nil {
		return nil, err
	}

	threshold := s.srv.conf.Treasury.MatchScoreThreshold
	if best == nil || best.Score <= threshold {
		s.srv.metrics.GetTreasuryPrometheus().RecordPayoutMatch(models.PlatformUnknown, "no_match")
		return nil, common.ErrNoSuitableMatch
	}

	if persist {
		err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
			updated, markErr := r.GetPayoutRepository().MarkReceived(ctx, best.Payout.ID, observed, bankName)
			if markErr != nil {
				return markErr
			}
			best.Payout = *updated
			return nil
		})
		if err != nil {
			return nil, err
		}

		event := models.NewPayoutMatchedEvent(*best, common.Now())
		if pubErr := s.srv.payoutPub.Publish(ctx, event, publisher.WithKey(best.Payout.TraderRef)); pubErr != nil {
			log.Warn(ctx, logMessageReconcile,
				log.Int64("payoutId", best.Payout.ID),
				log.Err(pubErr),
				log.String("message", "match stored but event publish failed"))
		}
	}

	s.srv.metrics.GetTreasuryPrometheus().RecordPayoutMatch(best.Payout.Platform, "matched")

	log.Info(ctx, logMessageReconcile,
		log.Int64("payoutId", best.Payout.ID),
		log.String("platform", string(best.Payout.Platform)),
		log.String("bankName", bankName),
		log.Decimal("observedAmount", observed),
		log.Decimal("expectedAmount", best.Payout.ExpectedAmount),
		log.Any("score", best.Score))

	return best, nil
}

func (s *reconcile) findBest(ctx context.Context, observed decimal.Decimal, bankName string) (*models.PayoutMatch, error) {
	candidates, err := s.srv.sqlRepo.GetPayoutRepository().ListUnreceived(ctx, models.PayoutFilterOptions{})
	if err != nil {
		return nil, err
	}

	var best *models.PayoutMatch
	for _, candidate := range candidates {
		if !candidate.BaseAmount.IsPositive() {
			continue
		}

		low, high := candidate.Platform.MatchRange(candidate.BaseAmount)
		if observed.LessThan(low) || observed.GreaterThan(high) {
			continue
		}

		score := models.MatchScore(observed, candidate.Platform.ExpectedNet(candidate.BaseAmount))
		if best == nil || score > best.Score {
			candidate := candidate
			best = &models.PayoutMatch{
				Payout:         candidate,
				ObservedAmount: observed,
				BankName:       bankName,
				Score:          score,
			}
		}
	}

	return best, nil
}

func (s *reconcile) CreateExpectedPayout(ctx context.Context, req models.CreateExpectedPayoutRequest) (created *models.ExpectedPayout, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !req.BaseAmount.IsPositive() {
		err = common.ErrInvalidAmount
		return nil, err
	}

	platform := models.PlatformFromString(req.Platform)
	in := models.CreateExpectedPayoutIn{
		TraderRef:      req.TraderRef,
		Platform:       platform,
		BaseAmount:     req.BaseAmount,
		ExpectedAmount: platform.ExpectedNet(req.BaseAmount),
	}

	return s.srv.sqlRepo.GetPayoutRepository().Create(ctx, &in)
}

func (s *reconcile) ListPendingPayouts(ctx context.Context, opts models.PayoutFilterOptions) (payouts []models.ExpectedPayout, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.srv.sqlRepo.GetPayoutRepository().ListUnreceived(ctx, opts)
}
