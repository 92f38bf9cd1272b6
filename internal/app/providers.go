package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	commandsGateway "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/gateway/kafka/commands"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/tasks/stale_orders"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/config"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/factory/command_handle"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/pkg/kafka"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
	categoryRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/category"
	orderRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/order"
	productRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/product"
	reviewRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/review"
	statusRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/statustracker"
	userRepo "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository/user"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/resolver"
	orderService "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
	statusService "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/statustracker"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/background"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/querier"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/tx"
)

type (
	StaleOrdersInterval  time.Duration
	StaleOrdersThreshold time.Duration
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideStatusTrackerRepository(querier *querier.Querier) *statusRepo.Repository {
	return statusRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideCategoryRepository(querier *querier.Querier) *categoryRepo.Repository {
	return categoryRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideStatusTracker(repository statusService.Repository) *statusService.Tracker {
	return statusService.New(repository)
}

// provideResolverRegistry регистрирует source для каждого referenceable-типа.
// Ключи user/product/review - десятичные id, category - имя.
func provideResolverRegistry(
	users *userRepo.Repository,
	products *productRepo.Repository,
	categories *categoryRepo.Repository,
	reviews *reviewRepo.Repository,
) *resolver.Registry {
	return resolver.NewRegistry().
		Register(reference.KindUser, resolver.NewTypedSource(
			(*entities.User).ReferenceKey,
			func(ctx context.Context, key reference.Key) (*entities.User, error) {
				id, err := int64Key(key)
				if err != nil {
					return nil, nil
				}
				return users.GetByID(ctx, id)
			},
			func(ctx context.Context, keys []reference.Key) ([]*entities.User, error) {
				return users.GetByIDs(ctx, int64Keys(keys))
			},
			func(err error) bool { return errors.Is(err, userRepo.ErrUserNotFound) },
		)).
		Register(reference.KindProduct, resolver.NewTypedSource(
			(*entities.Product).ReferenceKey,
			func(ctx context.Context, key reference.Key) (*entities.Product, error) {
				id, err := int64Key(key)
				if err != nil {
					return nil, nil
				}
				return products.GetByID(ctx, id)
			},
			func(ctx context.Context, keys []reference.Key) ([]*entities.Product, error) {
				return products.GetByIDs(ctx, int64Keys(keys))
			},
			func(err error) bool { return errors.Is(err, productRepo.ErrProductNotFound) },
		)).
		Register(reference.KindCategory, resolver.NewTypedSource(
			(*entities.Category).ReferenceKey,
			func(ctx context.Context, key reference.Key) (*entities.Category, error) {
				return categories.GetByName(ctx, string(key))
			},
			func(ctx context.Context, keys []reference.Key) ([]*entities.Category, error) {
				names := make([]string, 0, len(keys))
				for _, key := range keys {
					names = append(names, string(key))
				}
				return categories.GetByNames(ctx, names)
			},
			func(err error) bool { return errors.Is(err, categoryRepo.ErrCategoryNotFound) },
		)).
		Register(reference.KindReview, resolver.NewTypedSource(
			(*entities.Review).ReferenceKey,
			func(ctx context.Context, key reference.Key) (*entities.Review, error) {
				id, err := int64Key(key)
				if err != nil {
					return nil, nil
				}
				return reviews.GetByID(ctx, id)
			},
			func(ctx context.Context, keys []reference.Key) ([]*entities.Review, error) {
				return reviews.GetByIDs(ctx, int64Keys(keys))
			},
			func(err error) bool { return errors.Is(err, reviewRepo.ErrReviewNotFound) },
		))
}

func provideResolver(log logger.Logger, registry *resolver.Registry) *resolver.Resolver {
	return resolver.New(log, registry)
}

func provideServiceOrder(
	repository orderService.Repository,
	statusTracker orderService.StatusTracker,
	refResolver orderService.Resolver,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, statusTracker, refResolver, txManager)
}

func provideCommandGateway(producer *kafka.Producer, cfg *config.Config) *commandsGateway.CommandGateway {
	return commandsGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrderCommands(publisher ordercommands.Publisher) *ordercommands.Service {
	return ordercommands.New(publisher)
}

func provideCommandHandlerFactory(orderService *orderService.Service) *command_handle.CommandHandlerFactory {
	return command_handle.NewCommandHandlerFactory(orderService)
}

func provideStaleOrdersInterval(cfg *config.Config) StaleOrdersInterval {
	return StaleOrdersInterval(cfg.Tasks.StaleOrdersCheckInterval)
}

func provideStaleOrdersThreshold(cfg *config.Config) StaleOrdersThreshold {
	return StaleOrdersThreshold(cfg.Tasks.StaleOrderThreshold)
}

func provideStaleOrdersTask(
	log logger.Logger,
	tracker stale_orders.StatusTracker,
	interval StaleOrdersInterval,
	threshold StaleOrdersThreshold,
) *stale_orders.StaleOrders {
	return stale_orders.NewStaleOrders(log, tracker, time.Duration(interval), time.Duration(threshold))
}

func provideTaskList(
	staleOrdersTask *stale_orders.StaleOrders,
) []background.Task {
	return []background.Task{
		staleOrdersTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func int64Key(key reference.Key) (int64, error) {
	return strconv.ParseInt(string(key), 10, 64)
}

func int64Keys(keys []reference.Key) []int64 {
	ids := make([]int64, 0, len(keys))
	for _, key := range keys {
		id, err := int64Key(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
