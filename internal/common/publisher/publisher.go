package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/torxlabs/go-treasury/internal/common"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/common/metrics"

	"github.com/Shopify/sarama"
)

const logIdentifier = "[TREASURY-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

func NewPublisher(p sarama.SyncProducer, topic string, metrics *metrics.PublisherPrometheusMetrics) Publisher {
	return publisher{
		producer: p,
		topic:    topic,
		metrics:  metrics,
	}
}

func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) error {
	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.prepareMessage(message, options)
	if err != nil {
		log.Error(ctx, logIdentifier,
			log.String("status", "failed prepare message"),
			log.Err(err))
		return err
	}

	startTime := time.Now()
	_, _, err = d.producer.SendMessage(msg)
	d.metrics.GenerateMetrics(startTime, d.topic, err)
	if err != nil {
		log.Error(ctx, logIdentifier,
			log.String("status", "failed send message"),
			log.Err(err))
		return err
	}

	log.Info(ctx, logIdentifier,
		log.String("status", "success publish message"),
		log.Time("timestamp", common.Now()),
		log.String("topic", d.topic),
	)

	return nil
}

func (d publisher) prepareMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts != nil {
		if opts.key != "" {
			producerMsg.Key = sarama.StringEncoder(opts.key)
		}

		if len(opts.headers) > 0 {
			var headers []sarama.RecordHeader
			for key, value := range opts.headers {
				headers = append(headers, sarama.RecordHeader{
					Key:   []byte(key),
					Value: []byte(value),
				})
			}

			producerMsg.Headers = headers
		}
	}

	return producerMsg, nil
}
