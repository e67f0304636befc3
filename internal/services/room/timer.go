package room

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

// timerTable tracks the stop channel of each room's countdown goroutine.
// Like the lock table, the map itself is synchronized independently of the
// per-room locks.
type timerTable struct {
	mu    sync.Mutex
	stops map[model.RoomCode]chan struct{}
}

func newTimerTable() *timerTable {
	return &timerTable{stops: make(map[model.RoomCode]chan struct{})}
}

// start registers a stop channel for a room. Returns nil if a timer is
// already running so a room never gets two countdown goroutines.
func (t *timerTable) start(code model.RoomCode) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.stops[code]; ok {
		return nil
	}
	stop := make(chan struct{})
	t.stops[code] = stop
	return stop
}

// stop cancels a room's timer if one is running. Idempotent.
func (t *timerTable) stop(code model.RoomCode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if stop, ok := t.stops[code]; ok {
		close(stop)
		delete(t.stops, code)
	}
}

// startTimer spawns the countdown goroutine for a room. The goroutine ticks
// once per second and exits when the timer is stopped, which happens when
// the room ends, empties or is reclaimed.
func (c *Controller) startTimer(code model.RoomCode) {
	stop := c.timers.start(code)
	if stop == nil {
		return
	}
	go c.runTimer(code, stop)
}

func (c *Controller) runTimer(code model.RoomCode, stop chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("room timer panicked",
				slog.String("room", string(code)),
				slog.Any("panic", r),
			)
			c.timers.stop(code)
		}
	}()

	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.Tick(context.Background(), code); err != nil {
				c.logger.Error("room tick failed",
					slog.String("room", string(code)),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
