package publisher

import (
	"hash"
	"time"

	"github.com/Shopify/sarama"
	saramaMetrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return sarama.NewSyncProducer(brokers, saramaCfg)
}

func WithCustomHasher(hasher func() hash.Hash32) Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.Partitioner = sarama.NewCustomHashPartitioner(hasher)
	}
}

// WithMetricRegistry plugs a shared registry in so producer metrics surface
// on /metrics through the prometheus bridge.
func WithMetricRegistry(registry saramaMetrics.Registry) Option {
	return func(cfg *sarama.Config) {
		cfg.MetricRegistry = registry
	}
}
