package scheduler

import (
	"sync"
	"time"
)

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d, first after one full d.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct {
	*time.Ticker
}

func (t stdTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// continuousTicker fires back-to-back for zero intervals, which
// time.NewTicker rejects.
type continuousTicker struct {
	c    chan time.Time
	done chan struct{}
	once sync.Once
}

func newContinuousTicker() *continuousTicker {
	t := &continuousTicker{
		c:    make(chan time.Time),
		done: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case t.c <- time.Now():
			case <-t.done:
				return
			}
		}
	}()
	return t
}

func (t *continuousTicker) C() <-chan time.Time {
	return t.c
}

func (t *continuousTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}

func NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		return newContinuousTicker()
	}
	return stdTicker{time.NewTicker(d)}
}
