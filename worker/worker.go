package worker

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
)

// Worker is a long running job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a function on a fixed interval until the context ends
type TickWorker struct {
	Delay time.Duration
}

// StartTick start the tick loop
func (w *TickWorker) StartTick(ctx context.Context, onTick func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = 10 * time.Second
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onTick(ctx); err != nil {
				logger.FromContext(ctx).WithError(err).Errorln("tick failed")
			}
			timer.Reset(delay)
		}
	}
}
