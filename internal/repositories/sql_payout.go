package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/models"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

type PayoutRepository interface {
	Create(ctx context.Context, in *models.CreateExpectedPayoutIn) (created *models.ExpectedPayout, err error)
	GetByID(ctx context.Context, id int64) (*models.ExpectedPayout, error)
	ListUnreceived(ctx context.Context, opts models.PayoutFilterOptions) ([]models.ExpectedPayout, error)
	MarkReceived(ctx context.Context, id int64, observed decimal.Decimal, bankName string) (*models.ExpectedPayout, error)
}

type payoutRepository sqlRepo

var _ PayoutRepository = (*payoutRepository)(nil)

func (r *payoutRepository) Create(ctx context.Context, in *models.CreateExpectedPayoutIn) (created *models.ExpectedPayout, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var payout models.ExpectedPayout
	err = db.QueryRowContext(ctx, queryPayoutCreate,
		in.TraderRef,
		string(in.Platform),
		in.BaseAmount,
		in.ExpectedAmount,
		models.PayoutStatusPending,
	).Scan(
		&payout.ID,
		&payout.TraderRef,
		(*string)(&payout.Platform),
		&payout.BaseAmount,
		&payout.ExpectedAmount,
		&payout.Status,
		&payout.CreatedAt,
	)
	if err != nil {
		err = common.ErrUnableToCreate
		return
	}
	created = &payout

	return
}

func (r *payoutRepository) GetByID(ctx context.Context, id int64) (*models.ExpectedPayout, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var payout models.ExpectedPayout
	err = db.QueryRowContext(ctx, queryPayoutGetByID, id).Scan(
		&payout.ID,
		&payout.TraderRef,
		(*string)(&payout.Platform),
		&payout.BaseAmount,
		&payout.ExpectedAmount,
		&payout.Status,
		&payout.ObservedAmount,
		&payout.ReceivedBank,
		&payout.CreatedAt,
		&payout.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &payout, nil
}

func (r *payoutRepository) ListUnreceived(ctx context.Context, opts models.PayoutFilterOptions) (payouts []models.ExpectedPayout, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	builder := sq.Select(
		`"id"`, `"traderRef"`, `"platform"`, `"baseAmount"`, `"expectedAmount"`,
		`"status"`, `"createdAt"`,
	).
		From(`"expected_payout"`).
		Where(sq.Eq{`"status"`: models.PayoutStatusPending}).
		OrderBy(`"createdAt" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.Platform != "" {
		builder = builder.Where(sq.Eq{`"platform"`: string(opts.Platform)})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payout models.ExpectedPayout
		if err = rows.Scan(
			&payout.ID,
			&payout.TraderRef,
			(*string)(&payout.Platform),
			&payout.BaseAmount,
			&payout.ExpectedAmount,
			&payout.Status,
			&payout.CreatedAt,
		); err != nil {
			return nil, err
		}
		payouts = append(payouts, payout)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}

func (r *payoutRepository) MarkReceived(ctx context.Context, id int64, observed decimal.Decimal, bankName string) (updated *models.ExpectedPayout, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var payout models.ExpectedPayout
	err = db.QueryRowContext(ctx, queryPayoutMarkReceived,
		observed,
		bankName,
		models.PayoutStatusReceived,
		id,
		models.PayoutStatusPending,
	).Scan(
		&payout.ID,
		&payout.TraderRef,
		(*string)(&payout.Platform),
		&payout.BaseAmount,
		&payout.ExpectedAmount,
		&payout.Status,
		&payout.ObservedAmount,
		&payout.ReceivedBank,
		&payout.CreatedAt,
		&payout.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrPayoutAlreadyReceived
		}
		return nil, err
	}

	return &payout, nil
}
