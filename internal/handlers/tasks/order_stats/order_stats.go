package order_stats

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Order, error)
}

// OrderStats periodically recounts orders per status and publishes the
// counts as gauges.
type OrderStats struct {
	repository Repository
	interval   time.Duration
}

func NewOrderStats(repository Repository, interval time.Duration) *OrderStats {
	return &OrderStats{
		repository: repository,
		interval:   interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	orders, err := o.repository.List(ctxWithTimeout)
	if err != nil {
		return err
	}

	counts := map[entities.OrderStatus]int{
		entities.OrderPending:   0,
		entities.OrderShipped:   0,
		entities.OrderDelivered: 0,
		entities.OrderCancelled: 0,
	}
	for _, orderEntity := range orders {
		counts[orderEntity.Status]++
	}

	for status, count := range counts {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
