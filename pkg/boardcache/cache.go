package boardcache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stopboard/pkg/ctdf"
	"github.com/travigo/stopboard/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 15 * time.Second

const degradedMessage = "API unreachable, showing cached data"

type State string

const (
	StateEmpty State = "empty"
	StateFresh State = "fresh"
	StateStale State = "stale"
)

// Cache holds the last good board of a DepartureSource and serves it for TTL. When a
// refresh fails it falls back to the previous board marked with a degradation message.
type Cache struct {
	Source ctdf.DepartureSource
	TTL    time.Duration

	// SingleFlight coalesces concurrent refreshes into one upstream call.
	SingleFlight bool

	Now func() time.Time

	mutex      sync.Mutex
	snapshot   *ctdf.Board
	lastFetch  time.Time
	generation uint64

	flight singleflight.Group
}

func New(source ctdf.DepartureSource, ttl time.Duration) *Cache {
	return &Cache{
		Source: source,
		TTL:    ttl,
		Now:    time.Now,
	}
}

func (c *Cache) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.stateAt(c.now())
}

func (c *Cache) Status() string {
	return string(c.State())
}

// Board returns the board to serve. ok is false only when the refresh failed and no
// board has ever been fetched; the returned board then carries the failure detail.
//
// Without SingleFlight there is no request coalescing: every caller that finds the slot
// stale calls the source until one of them repopulates it.
func (c *Cache) Board(ctx context.Context) (*ctdf.Board, bool) {
	now := c.now()

	c.mutex.Lock()
	if c.stateAt(now) == StateFresh {
		board := c.snapshot.Clone()
		c.mutex.Unlock()

		metrics.BoardRequests.WithLabelValues("fresh").Inc()
		return board, true
	}
	generation := c.generation
	c.mutex.Unlock()

	// Caller cancellation never aborts the upstream call, only the client timeout does.
	ctx = context.WithoutCancel(ctx)

	if !c.SingleFlight {
		return c.refresh(ctx, now, generation)
	}

	shared, _, _ := c.flight.Do("board", func() (any, error) {
		board, ok := c.refresh(ctx, now, generation)
		return refreshResult{board: board, ok: ok}, nil
	})
	result := shared.(refreshResult)

	return result.board.Clone(), result.ok
}

type refreshResult struct {
	board *ctdf.Board
	ok    bool
}

func (c *Cache) refresh(ctx context.Context, now time.Time, generation uint64) (*ctdf.Board, bool) {
	startTime := time.Now()
	departures, err := c.Source.Departures(ctx)
	metrics.UpstreamLatency.Observe(time.Since(startTime).Seconds())

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err == nil {
		c.snapshot = &ctdf.Board{Departures: departures, FetchedAt: now}
		c.lastFetch = now
		c.generation++

		metrics.UpstreamRequests.WithLabelValues("success").Inc()
		metrics.BoardDepartures.Set(float64(len(departures)))
		metrics.BoardRequests.WithLabelValues("refreshed").Inc()
		log.Debug().
			Str("source", c.Source.GetName()).
			Int("departures", len(departures)).
			Str("latency", time.Since(startTime).String()).
			Msg("Refreshed departure board")

		return c.snapshot.Clone(), true
	}

	reason := failureReason(err)
	metrics.UpstreamRequests.WithLabelValues(reason).Inc()
	log.Error().Err(err).Str("source", c.Source.GetName()).Str("reason", reason).Msg("API fetch error")

	if c.snapshot == nil {
		metrics.BoardRequests.WithLabelValues("unavailable").Inc()

		return &ctdf.Board{
			Departures: []ctdf.Departure{},
			FetchedAt:  now,
			Error:      "API unreachable: " + err.Error(),
		}, false
	}

	// A concurrent caller stored a newer board while this one was failing, serve it as is.
	if c.generation == generation {
		c.snapshot.Error = degradedMessage
	}
	metrics.BoardRequests.WithLabelValues("degraded").Inc()

	return c.snapshot.Clone(), true
}

func (c *Cache) stateAt(now time.Time) State {
	switch {
	case c.snapshot == nil:
		return StateEmpty
	case now.Sub(c.lastFetch) < c.TTL:
		return StateFresh
	default:
		return StateStale
	}
}

func (c *Cache) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}

func failureReason(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return "unknown"
}
