package priceoracle

import (
	"context"
	"time"

	"pegvault/service/oracle"
	"pegvault/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Worker keeps the in-process price feeds fresh from a remote oracle
// endpoint. The engine itself never fetches prices; staleness rejection
// in the adapter covers the window between refreshes.
type Worker struct {
	worker.TickWorker
	client *oracle.Client
	feeds  map[string]*oracle.MemoryFeed
}

// New new price oracle worker
func New(client *oracle.Client, delay time.Duration, feeds ...*oracle.MemoryFeed) *Worker {
	w := &Worker{
		TickWorker: worker.TickWorker{Delay: delay},
		client:     client,
		feeds:      make(map[string]*oracle.MemoryFeed, len(feeds)),
	}

	for _, feed := range feeds {
		w.feeds[feed.AssetID()] = feed
	}

	return w
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")

	tickers, err := w.client.PullAllPriceTickers(ctx, time.Now())
	if err != nil {
		log.WithError(err).Errorln("pull price tickers")
		return err
	}

	for _, ticker := range tickers {
		feed, ok := w.feeds[ticker.AssetID]
		if !ok {
			continue
		}

		if ticker.Price.LessThanOrEqual(decimal.Zero) {
			log.Errorln("invalid ticker price:", ticker.AssetID, ":", ticker.Price)
			continue
		}

		updatedAt := ticker.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now()
		}

		feed.SetAnswer(ticker.Price, updatedAt)
	}

	return nil
}
