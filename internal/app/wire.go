//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"service/internal/handlers/tasks/order_stats"
	"service/internal/pkg/config"
	ordersRepo "service/internal/repository/orders"
	orderService "service/internal/service/order"
	"service/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication builds the HTTP service object graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideOrderRepository,
		provideServiceOrder,
		provideStatsInterval,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(orderService.Repository), new(*ordersRepo.Repository)),
		wire.Bind(new(order_stats.Repository), new(*ordersRepo.Repository)),
	)
	return &Application{}, nil
}
