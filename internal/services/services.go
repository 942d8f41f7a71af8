package services

import (
	"github.com/torxlabs/go-treasury/internal/common/idgenerator"
	"github.com/torxlabs/go-treasury/internal/common/metrics"
	"github.com/torxlabs/go-treasury/internal/common/publisher"
	"github.com/torxlabs/go-treasury/internal/common/retry"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/connector"
	"github.com/torxlabs/go-treasury/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	bankConnector connector.Connector
	idgenerator   idgenerator.Generator
	retryer       retry.Retryer
	runPub        publisher.Publisher
	payoutPub     publisher.Publisher
	metrics       metrics.Metrics

	common service

	Balance         *balance
	PendingTransfer *pendingTransfer
	Sweep           *sweep
	Topup           *topup
	Reconcile       *reconcile
	Orchestrator    *orchestrator
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	bankConnector connector.Connector,
	idgenerator idgenerator.Generator,
	retryer retry.Retryer,
	runPub publisher.Publisher,
	payoutPub publisher.Publisher,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cacheRepo:     cacheRepo,
		bankConnector: bankConnector,
		idgenerator:   idgenerator,
		retryer:       retryer,
		runPub:        runPub,
		payoutPub:     payoutPub,
		metrics:       metrics,
	}
	srv.common.srv = srv
	srv.Balance = (*balance)(&srv.common)
	srv.PendingTransfer = (*pendingTransfer)(&srv.common)
	srv.Sweep = (*sweep)(&srv.common)
	srv.Topup = (*topup)(&srv.common)
	srv.Reconcile = (*reconcile)(&srv.common)
	srv.Orchestrator = (*orchestrator)(&srv.common)

	return srv
}
