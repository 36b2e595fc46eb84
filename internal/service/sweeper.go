package service

import (
	"context"
	"time"
)

// SweepIdleSessions раз в maxIdle/2 выгружает простаивающие мастера, пока не отменен ctx.
// При maxIdle <= 0 сразу возвращается.
func SweepIdleSessions(ctx context.Context, svc IntakeService, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.EvictIdle(maxIdle)
		}
	}
}
