//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	order_approve_post "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_approve_post"
	order_get "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_get"
	order_post "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_post"
	order_put "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_put"
	order_reject_post "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_reject_post"
	order_validate_post "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/order_validate_post"
	orders_get "github.com/vidyarathna/order-workflow-api/internal/handlers/rest/orders_get"
	"github.com/vidyarathna/order-workflow-api/internal/handlers/tasks/order_stats"
	"github.com/vidyarathna/order-workflow-api/internal/pkg/config"

	orderRepo "github.com/vidyarathna/order-workflow-api/internal/repository/order"
	orderService "github.com/vidyarathna/order-workflow-api/internal/service/order"
	validationService "github.com/vidyarathna/order-workflow-api/internal/service/validation"

	"github.com/vidyarathna/order-workflow-api/pkg/background"
	"github.com/vidyarathna/order-workflow-api/pkg/logger"
	"github.com/vidyarathna/order-workflow-api/pkg/querier"
	"github.com/vidyarathna/order-workflow-api/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceValidation ServiceValidation
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_post.Service
	order_put.Service
	orders_get.Service
	order_approve_post.Service
	order_reject_post.Service
}

type ServiceValidation interface {
	order_validate_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,

		provideOrderRepository,

		provideServiceOrder,
		provideCoordinator,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceValidation), new(*validationService.Coordinator)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(validationService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

// provideCoordinator запускает проверки в отдельных горутинах
func provideCoordinator(
	log logger.Logger,
	repository validationService.Repository,
	cfg *config.Config,
) *validationService.Coordinator {
	return validationService.New(
		log,
		repository,
		validationService.NewGoroutineExecutor(),
		cfg.Validation.CheckDelay,
	)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	service order_stats.Service,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, service, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
