package service

import (
	"context"
	"time"
)

// Simulator periodically advances a random non-terminal demo order to
// emulate kitchen progress. It only ever touches the demo source and is
// wired exclusively under DEMO_MODE.
type Simulator struct {
	source   *DemoOrderSource
	interval time.Duration
	cancel   context.CancelFunc
}

func NewSimulator(source *DemoOrderSource, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 45 * time.Second
	}
	return &Simulator{source: source, interval: interval}
}

// Start launches the background ticker. Stop or cancelling the parent
// context ends it.
func (s *Simulator) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if event, ok := s.source.AdvanceRandom(); ok {
					logger.Info().Str("orderId", event.OrderID).Str("status", event.Status).Msg("Demo order advanced")
				}
			}
		}
	}()
}

func (s *Simulator) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
