package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/torxlabs/go-treasury/internal/common/ctxdata"
	"github.com/torxlabs/go-treasury/internal/common/graceful"
	commonhttp "github.com/torxlabs/go-treasury/internal/common/http"
	"github.com/torxlabs/go-treasury/internal/common/http/middleware"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/deliveries/http/health"
	"github.com/torxlabs/go-treasury/internal/services"

	v1balance "github.com/torxlabs/go-treasury/internal/deliveries/http/v1/balance"
	v1consolidation "github.com/torxlabs/go-treasury/internal/deliveries/http/v1/consolidation"
	v1payout "github.com/torxlabs/go-treasury/internal/deliveries/http/v1/payout"
	v1pendingTransfer "github.com/torxlabs/go-treasury/internal/deliveries/http/v1/pending_transfer"
	v1reconciliation "github.com/torxlabs/go-treasury/internal/deliveries/http/v1/reconciliation"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	orchestratorService services.OrchestratorService,
	balanceService services.BalanceService,
	pendingTransferService services.PendingTransferService,
	reconcileService services.ReconcileService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")

	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1consolidation.New(v1Group, orchestratorService)
	v1balance.New(v1Group, balanceService)
	v1pendingTransfer.New(v1Group, pendingTransferService)
	v1payout.New(v1Group, reconcileService)
	v1reconciliation.New(v1Group, reconcileService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
