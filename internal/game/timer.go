package game

import (
	"sync"
	"time"
)

// Scheduler is the source of countdown ticks. Every starts calling fn once
// per interval until the returned cancel func is called; cancel is safe to
// call more than once and must not block.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs each schedule on its own goroutine driven by a time.Ticker
type TickerScheduler struct{}

// Every implements Scheduler
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(quit) })
	}
}
