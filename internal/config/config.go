package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app" mapstructure:"app"`
		Postgres           Postgres `json:"postgres" mapstructure:"postgres"`
		Redis              Redis    `json:"redis" mapstructure:"redis"`
		SecretKey          string   `json:"secret_key" mapstructure:"secret_key"`
		NewRelicLicenseKey string   `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		Treasury           TreasuryConfig           `json:"treasury" mapstructure:"treasury"`
		BankProxy          HTTPConfiguration        `json:"bank_proxy" mapstructure:"bank_proxy"`
		MessageBroker      MessageBroker            `json:"message_broker" mapstructure:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// TreasuryConfig drives the consolidation engine. Amounts are USD.
	TreasuryConfig struct {
		// Banks is the set of banks the engine manages, in reporting order.
		Banks []string `json:"banks" mapstructure:"banks"`

		// SourcePriority orders top-up source candidates. This is a business
		// priority, not a surplus-size ordering.
		SourcePriority []string `json:"source_priority" mapstructure:"source_priority"`

		// MinBalanceUSD is the threshold a Main account should stay above.
		MinBalanceUSD float64 `json:"min_balance_usd" mapstructure:"min_balance_usd"`

		// TopupAmountUSD is the fixed amount each top-up moves. The planner
		// always moves this amount even when the shortfall is smaller.
		TopupAmountUSD float64 `json:"topup_amount_usd" mapstructure:"topup_amount_usd"`

		// PendingTransferTTL ages out in-flight transfers that never settled.
		PendingTransferTTL time.Duration `json:"pending_transfer_ttl" mapstructure:"pending_transfer_ttl"`

		// RunLeaseTTL bounds the best-effort run lease held in redis.
		RunLeaseTTL time.Duration `json:"run_lease_ttl" mapstructure:"run_lease_ttl"`

		// MatchScoreThreshold is the minimum reconciliation score to accept.
		MatchScoreThreshold float64 `json:"match_score_threshold" mapstructure:"match_score_threshold"`
	}

	MessageBroker struct {
		Brokers            []string `json:"brokers" mapstructure:"brokers"`
		TopicTreasury      string   `json:"topic_treasury" mapstructure:"topic_treasury"`
		TopicPayoutMatches string   `json:"topic_payout_matches" mapstructure:"topic_payout_matches"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url" mapstructure:"base_url"`
		SecretKey     string        `json:"secret_key" mapstructure:"secret_key"`
		RetryCount    int           `json:"retry_count" mapstructure:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time" mapstructure:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`

		// CacheTTL bounds the account-list read-through cache. Zero or
		// negative disables caching.
		CacheTTL time.Duration `json:"cache_ttl" mapstructure:"cache_ttl"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)

const (
	DefaultPendingTransferTTL  = 72 * time.Hour
	DefaultRunLeaseTTL         = 15 * time.Minute
	DefaultMatchScoreThreshold = 0.80

	// DefaultAccountCacheTTL keeps the cache window shorter than any
	// plausible gap between consolidation runs.
	DefaultAccountCacheTTL = 30 * time.Second
)

// ApplyDefaults fills the engine knobs that have well-known defaults.
func (c *Config) ApplyDefaults() {
	if c.Treasury.PendingTransferTTL == 0 {
		c.Treasury.PendingTransferTTL = DefaultPendingTransferTTL
	}
	if c.Treasury.RunLeaseTTL == 0 {
		c.Treasury.RunLeaseTTL = DefaultRunLeaseTTL
	}
	if c.Treasury.MatchScoreThreshold == 0 {
		c.Treasury.MatchScoreThreshold = DefaultMatchScoreThreshold
	}
	if len(c.Treasury.SourcePriority) == 0 {
		c.Treasury.SourcePriority = c.Treasury.Banks
	}
	if c.BankProxy.CacheTTL == 0 {
		c.BankProxy.CacheTTL = DefaultAccountCacheTTL
	}
}
