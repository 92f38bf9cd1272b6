package stale_orders

import (
	"context"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

type StatusTracker interface {
	StaleOrders(ctx context.Context, statuses []entities.Status, olderThan time.Time) ([]entities.StatusTrackerRecord, error)
}

// StaleOrders периодически считает заказы, зависшие в нетерминальных
// статусах дольше threshold, и выставляет gauge-метрику по каждому статусу.
type StaleOrders struct {
	log       logger.Logger
	tracker   StatusTracker
	interval  time.Duration
	threshold time.Duration
}

func NewStaleOrders(log logger.Logger, tracker StatusTracker, interval, threshold time.Duration) *StaleOrders {
	return &StaleOrders{
		log:       log,
		tracker:   tracker,
		interval:  interval,
		threshold: threshold,
	}
}

func (s *StaleOrders) TTL() time.Duration {
	return s.interval
}

func (s *StaleOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	statuses := []entities.Status{
		entities.StatusCreated,
		entities.StatusInProgress,
		entities.StatusInAWay,
	}

	olderThan := time.Now().UTC().Add(-s.threshold)
	stale, err := s.tracker.StaleOrders(ctxWithTimeout, statuses, olderThan)
	if err != nil {
		return err
	}

	counts := make(map[entities.Status]int, len(statuses))
	for _, record := range stale {
		counts[record.Status]++
	}
	for _, status := range statuses {
		StaleOrdersGauge.WithLabelValues(string(status)).Set(float64(counts[status]))
	}

	if len(stale) > 0 {
		s.log.With(
			logger.NewField("stale_orders", len(stale)),
			logger.NewField("threshold", s.threshold.String()),
		).Warn("stale orders check")
	}

	return nil
}

func (s *StaleOrders) Info() string {
	return "stale orders check"
}
