package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/monitoring"
)

// PropertyRepository is a small string key/value store used for engine
// state that has to survive restarts, like the pending transfer ledger.
type PropertyRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type propertyRepository sqlRepo

var _ PropertyRepository = (*propertyRepository)(nil)

func (r *propertyRepository) Get(ctx context.Context, key string) (value string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryPropertyGet, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrDataNotFound
		}
		return "", err
	}

	return value, nil
}

func (r *propertyRepository) Set(ctx context.Context, key string, value string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryPropertyUpsert, key, value)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, key string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryPropertyDelete, key)
	return err
}
