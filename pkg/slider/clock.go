package slider

import (
	"sync"
	"time"
)

// Timer is a running recurring trigger
type Timer interface {
	Stop()
}

// Clock starts recurring triggers. The controller owns every Timer it gets
// from a Clock and stops it before starting another.
type Clock interface {
	Every(d time.Duration, fn func()) Timer
}

// SystemClock runs fn on a time.Ticker in its own goroutine
type SystemClock struct{}

// Every calls fn once per interval d until the returned Timer is stopped
func (SystemClock) Every(d time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) run(fn func()) {
	for {
		select {
		case <-t.ticker.C:
			fn()
		case <-t.done:
			return
		}
	}
}

// Stop is safe to call more than once
func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
