package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/config"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
	retrierconfig "github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/retrier"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/retrier/backoff_adapter"
)

const (
	pingInitialInterval = 1 * time.Second
	pingMaxInterval     = 30 * time.Second
	pingMaxElapsedTime  = 2 * time.Minute
	pingRandomization   = 0.5
	pingMultiplier      = 2
)

// Consumer подписывает обработчик командного канала на consumer group.
// Ребалансировка и коммит оффсетов на стороне sarama, обработка
// сообщений - в handler.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.Strategy = rebalanceStrategy

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	// OffsetOldest: после простоя воркер должен дочитать накопившиеся
	// команды, а не начинать с конца топика
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	err = waitForKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		groupCloseErr := group.Close()
		if groupCloseErr != nil {
			return nil, fmt.Errorf("kafka client connection: %w (failed to close: %w)", err, groupCloseErr)
		}
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены контекста. Consume возвращается на каждой
// ребалансировке, поэтому крутится в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		err := c.group.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("consumer session failed")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

func waitForKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: pingInitialInterval,
		MaxInterval:     pingMaxInterval,
		MaxElapsedTime:  pingMaxElapsedTime,
		Randomization:   pingRandomization,
		Multiplier:      pingMultiplier,
		ShouldRetry:     nil, // на старте любые ошибки временные
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("connecting to kafka")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("kafka is unreachable, retries exhausted")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("kafka connection established")
	return nil
}
