//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	commandsGateway "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/gateway/kafka/commands"
	ordercmdhandler "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/kafka-consumer/order_commands"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/tasks/stale_orders"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/config"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/factory/command_handle"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/kafka"
	orderRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/order"
	statusRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/statustracker"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/resolver"
	orderService "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
	statusService "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/statustracker"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideStatusTrackerRepository,
		provideUserRepository,
		provideProductRepository,
		provideCategoryRepository,
		provideReviewRepository,

		provideStatusTracker,
		provideResolverRegistry,
		provideResolver,
		provideServiceOrder,

		provideCommandGateway,
		provideServiceOrderCommands,

		provideStaleOrdersInterval,
		provideStaleOrdersThreshold,
		provideStaleOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceOrderCommands), new(*ordercommands.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.StatusTracker), new(*statusService.Tracker)),
		wire.Bind(new(orderService.Resolver), new(*resolver.Resolver)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(statusService.Repository), new(*statusRepo.Repository)),
		wire.Bind(new(ordercommands.Publisher), new(*commandsGateway.CommandGateway)),
		wire.Bind(new(stale_orders.StatusTracker), new(*statusService.Tracker)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-commands)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideStatusTrackerRepository,
		provideUserRepository,
		provideProductRepository,
		provideCategoryRepository,
		provideReviewRepository,

		provideStatusTracker,
		provideResolverRegistry,
		provideResolver,
		provideServiceOrder,
		provideCommandHandlerFactory,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.StatusTracker), new(*statusService.Tracker)),
		wire.Bind(new(orderService.Resolver), new(*resolver.Resolver)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(statusService.Repository), new(*statusRepo.Repository)),
		wire.Bind(new(ordercmdhandler.HandlerFactory), new(*command_handle.CommandHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
