package app

import (
	"context"
	"time"

	"service/internal/handlers/rest/order_get"
	"service/internal/handlers/rest/order_post"
	"service/internal/handlers/rest/order_put"
	"service/internal/handlers/rest/orders_get"
	"service/internal/handlers/tasks/order_stats"
	"service/internal/pkg/config"
	ordersRepo "service/internal/repository/orders"
	orderService "service/internal/service/order"
	"service/pkg/background"
	"service/pkg/logger"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_put.Service
	orders_get.Service
}

func provideOrderRepository() *ordersRepo.Repository {
	return ordersRepo.New(ordersRepo.Fixtures()...)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	repository order_stats.Repository,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(repository, time.Duration(interval))
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
