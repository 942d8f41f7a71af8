package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

// PendingTransferService tracks in-flight transfers in the property store.
// The whole ledger lives under one key as a JSON list and is read, pruned,
// and rewritten as a unit.
type PendingTransferService interface {
	// List returns the live ledger. Entries older than the configured TTL
	// are pruned and the pruned list persisted before returning.
	List(ctx context.Context) ([]models.PendingTransfer, error)

	// ListByBank narrows the live ledger to transfers leaving one bank.
	ListByBank(ctx context.Context, bankName string) ([]models.PendingTransfer, error)

	// HasAny reports whether any transfer is still settling. The
	// orchestrator consults it before planning a run.
	HasAny(ctx context.Context) (bool, error)

	Add(ctx context.Context, transfer models.PendingTransfer) error

	// MarkReceived removes the entry once the destination bank confirmed
	// the money arrived, then offers the received amount to the payout
	// matcher. A matcher miss is not a failure.
	MarkReceived(ctx context.Context, transactionID string) (*models.PendingTransfer, error)
}

type pendingTransfer service

var _ PendingTransferService = (*pendingTransfer)(nil)

func (s *pendingTransfer) List(ctx context.Context) (transfers []models.PendingTransfer, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	transfers, err = s.load(ctx)
	if err != nil {
		return nil, err
	}

	live := make([]models.PendingTransfer, 0, len(transfers))
	now := common.Now()
	ttl := s.srv.conf.Treasury.PendingTransferTTL
	for _, t := range transfers {
		if t.Expired(ttl, now) {
			log.Warn(ctx, "[PENDING-TRANSFER]",
				log.String("transactionId", t.TransactionID),
				log.String("fromBank", t.FromBank),
				log.String("toBank", t.ToBank),
				log.Decimal("amount", t.Amount),
				log.String("message", "transfer aged out without confirmation"))
			continue
		}
		live = append(live, t)
	}

	if len(live) != len(transfers) {
		if err = s.store(ctx, live); err != nil {
			return nil, err
		}
	}

	s.srv.metrics.GetTreasuryPrometheus().SetPendingTransfers(len(live))

	return live, nil
}

func (s *pendingTransfer) ListByBank(ctx context.Context, bankName string) ([]models.PendingTransfer, error) {
	transfers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.PendingTransfer, 0, len(transfers))
	for _, t := range transfers {
		if t.FromBank == bankName {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}

func (s *pendingTransfer) HasAny(ctx context.Context) (bool, error) {
	transfers, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return len(transfers) > 0, nil
}

func (s *pendingTransfer) Add(ctx context.Context, transfer models.PendingTransfer) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	transfers, err := s.load(ctx)
	if err != nil {
		return err
	}

	transfers = append(transfers, transfer)
	if err = s.store(ctx, transfers); err != nil {
		return err
	}

	s.srv.metrics.GetTreasuryPrometheus().SetPendingTransfers(len(transfers))

	return nil
}

func (s *pendingTransfer) MarkReceived(ctx context.Context, transactionID string) (received *models.PendingTransfer, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	transfers, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]models.PendingTransfer, 0, len(transfers))
	for _, t := range transfers {
		if t.TransactionID == transactionID && received == nil {
			t := t
			received = &t
			continue
		}
		remaining = append(remaining, t)
	}

	if received == nil {
		err = common.ErrPendingTransferNotFound
		return nil, err
	}

	if err = s.store(ctx, remaining); err != nil {
		return nil, err
	}

	s.srv.metrics.GetTreasuryPrometheus().SetPendingTransfers(len(remaining))

	// Money landing on the destination bank may be a platform payout, so
	// every confirmed amount goes through the matcher once.
	if match, matchErr := s.srv.Reconcile.match(ctx, received.Amount, received.ToBank, true); matchErr != nil {
		if !errors.Is(matchErr, common.ErrNoSuitableMatch) {
			log.Warn(ctx, "[PENDING-TRANSFER]",
				log.String("transactionId", received.TransactionID),
				log.String("toBank", received.ToBank),
				log.Err(matchErr))
		}
	} else {
		log.Info(ctx, "[PENDING-TRANSFER]",
			log.String("transactionId", received.TransactionID),
			log.Int64("payoutId", match.Payout.ID),
			log.Decimal("amount", received.Amount),
			log.String("message", "received transfer reconciled against expected payout"))
	}

	return received, nil
}

func (s *pendingTransfer) load(ctx context.Context) ([]models.PendingTransfer, error) {
	raw, err := s.srv.sqlRepo.GetPropertyRepository().Get(ctx, models.PropertyKeyPendingTransfers)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if raw == "" {
		return nil, nil
	}

	var transfers []models.PendingTransfer
	if err := json.Unmarshal([]byte(raw), &transfers); err != nil {
		return nil, fmt.Errorf("corrupt pending transfer ledger: %w", err)
	}

	return transfers, nil
}

func (s *pendingTransfer) store(ctx context.Context, transfers []models.PendingTransfer) error {
	if transfers == nil {
		transfers = []models.PendingTransfer{}
	}

	raw, err := json.Marshal(transfers)
	if err != nil {
		return err
	}

	return s.srv.sqlRepo.GetPropertyRepository().Set(ctx, models.PropertyKeyPendingTransfers, string(raw))
}
