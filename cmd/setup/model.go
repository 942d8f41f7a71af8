package setup

import (
	"database/sql"

	cMetrics "github.com/torxlabs/go-treasury/internal/common/metrics"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/repositories"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}
