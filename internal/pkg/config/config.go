package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		StaleOrdersCheckInterval time.Duration
		StaleOrderThreshold      time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter qps
		RateLimiterBurst int           // middleware rate limiter burst
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderCommands OrderCommands
	}

	OrderCommands struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	staleCheckInterval, err := osGetEnvDuration("BACKGROUND_STALE_ORDERS_CHECK_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	staleThreshold, err := osGetEnvDuration("BACKGROUND_STALE_ORDER_THRESHOLD")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("HTTP_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("HTTP_RATE_LIMITER_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("HTTP_RATE_LIMITER_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderCommandsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_COMMANDS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			StaleOrdersCheckInterval: staleCheckInterval,
			StaleOrderThreshold:      staleThreshold,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			PortHealthcheck: os.Getenv("KAFKA_HEALTHCHECK_PORT"),
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_ORDER_COMMANDS_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_ORDER_COMMANDS_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderCommands: OrderCommands{
					ProcessTimeout: orderCommandsTimeout,
				},
			},
		},
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_ORDER_COMMANDS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_ORDER_COMMANDS_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func osGetEnvDuration(key string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return duration, nil
}

func osGetInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return number, nil
}

func osGetBool(key string) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return false, fmt.Errorf("%s is required", key)
	}

	flag, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return flag, nil
}
