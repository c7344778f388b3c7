package phasetimer

import (
	"sync"
	"time"
)

// TickerClock delivers ticks from a time.Ticker on its own goroutine.
type TickerClock struct {
	Interval time.Duration
}

// NewTickerClock returns a clock ticking every interval, one second by default.
func NewTickerClock(interval time.Duration) *TickerClock {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickerClock{Interval: interval}
}

type tickerSubscription struct {
	stopCh chan struct{}
	once   sync.Once
}

// Start launches the ticking loop.
func (clock *TickerClock) Start(tick func()) Subscription {
	interval := clock.Interval
	if interval <= 0 {
		interval = time.Second
	}
	sub := &tickerSubscription{stopCh: make(chan struct{})}
	go sub.run(interval, tick)
	return sub
}

// Stop terminates the ticking loop. It is safe to call more than once.
func (sub *tickerSubscription) Stop() {
	sub.once.Do(func() {
		close(sub.stopCh)
	})
}

func (sub *tickerSubscription) run(interval time.Duration, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stopCh:
			return
		case <-ticker.C:
			tick()
		}
	}
}
