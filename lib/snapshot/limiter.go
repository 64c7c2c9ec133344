// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/semaphore"
)

var requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "chainfork_snapshot",
	Name:      "requests_in_flight",
	Help:      "number of node requests holding a limiter permit",
})

// Limiter bounds the number of requests in flight to the node.
// A single limiter is shared by every request of a snapshot.
type Limiter struct {
	semaphore *semaphore.Weighted
	capacity  int64
}

// NewLimiter creates a limiter allowing capacity requests in flight.
func NewLimiter(capacity int64) *Limiter {
	return &Limiter{
		semaphore: semaphore.NewWeighted(capacity),
		capacity:  capacity,
	}
}

// Acquire blocks until a permit is available or the context is done.
func (l *Limiter) Acquire(ctx context.Context) (err error) {
	err = l.semaphore.Acquire(ctx, 1)
	if err != nil {
		return err
	}
	requestsInFlight.Inc()
	return nil
}

// Release returns a permit acquired with Acquire.
func (l *Limiter) Release() {
	requestsInFlight.Dec()
	l.semaphore.Release(1)
}

// Capacity returns the maximum number of permits.
func (l *Limiter) Capacity() int64 {
	return l.capacity
}
