package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

const (
	producerRetryMax = 5
)

// Producer - асинхронный продюсер команд. SendMessage только ставит
// сообщение в очередь, ошибки доставки дренируются в фоне и логируются:
// командный канал не дает вызывающему транзакционных гарантий.
type Producer struct {
	log   logger.Logger
	async sarama.AsyncProducer
}

func NewProducer(log logger.Logger, versionStr string, brokers []string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true

	async, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	producerLog := log.With(
		logger.NewField("brokers", brokers),
	)

	producer := &Producer{
		log:   producerLog,
		async: async,
	}
	go producer.drainErrors()

	return producer, nil
}

func (p *Producer) SendMessage(ctx context.Context, topic, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	select {
	case p.async.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Producer) Close() error {
	return p.async.Close()
}

func (p *Producer) drainErrors() {
	for producerErr := range p.async.Errors() {
		p.log.With(
			logger.NewField("topic", producerErr.Msg.Topic),
			logger.NewField("error", producerErr.Err),
		).Error("Kafka produce failed")
	}
}
