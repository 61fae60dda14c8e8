// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/presence-analyzer/internal/cache"
	"github.com/tomtom215/presence-analyzer/internal/logging"
	"github.com/tomtom215/presence-analyzer/internal/metrics"
	"github.com/tomtom215/presence-analyzer/internal/presence"
)

// ErrCircuitOpen is returned while a breaker rejects reads.
var ErrCircuitOpen = errors.New("data source temporarily unavailable")

// Breaker names, also used as the "source" label of the breaker gauge.
const (
	csvBreaker    = "csv"
	rosterBreaker = "roster"
)

// Config locates the input files and tunes the breakers.
type Config struct {
	CSVPath string
	XMLPath string

	// BreakerThreshold consecutive read failures open a file's breaker.
	// Default: 3
	BreakerThreshold uint32

	// BreakerTimeout is how long a breaker stays open.
	// Default: 30s
	BreakerTimeout time.Duration
}

// Source implements the API's data access on top of the presence package.
// The CSV and the roster each sit behind their own breaker, so a broken
// roster never blocks the presence endpoints.
type Source struct {
	cfg      Config
	cache    *cache.Cache
	cacheKey string
	csvCB    *gobreaker.CircuitBreaker[interface{}]
	rosterCB *gobreaker.CircuitBreaker[interface{}]
	logger   zerolog.Logger
}

// New creates a Source that caches the dataset in c.
func New(cfg Config, c *cache.Cache) *Source {
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	s := &Source{
		cfg:      cfg,
		cache:    c,
		cacheKey: cache.GenerateKey("dataset", cfg.CSVPath),
		logger:   logging.WithComponent("datasource"),
	}
	s.csvCB = s.newBreaker(csvBreaker)
	s.rosterCB = s.newBreaker(rosterBreaker)
	return s
}

func (s *Source) newBreaker(name string) *gobreaker.CircuitBreaker[interface{}] {
	metrics.SetBreakerOpen(name, false)
	threshold := s.cfg.BreakerThreshold
	return gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     s.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A file that was read but holds bad content is not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || presence.IsContentError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.SetBreakerOpen(name, to == gobreaker.StateOpen)
		},
	})
}

// Dataset returns the parsed presence data, from cache when fresh.
// Callers must treat the result as read-only.
func (s *Source) Dataset(ctx context.Context) (presence.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, hit, err := s.cache.GetOrLoad(s.cacheKey, func() (interface{}, error) {
		return s.execute(s.csvCB, func() (interface{}, error) { return s.loadDataset(ctx) })
	})
	metrics.RecordCacheLookup(hit)
	if err != nil {
		return nil, err
	}

	ds, ok := v.(presence.Dataset)
	if !ok {
		return nil, fmt.Errorf("datasource: unexpected cached type %T", v)
	}
	return ds, nil
}

// Roster reads the roster file. It is never cached.
func (s *Source) Roster(ctx context.Context) (presence.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := s.execute(s.rosterCB, func() (interface{}, error) {
		roster, err := presence.LoadRoster(s.cfg.XMLPath)
		if err != nil {
			return nil, err
		}
		metrics.SetRosterUsers(len(roster))
		return roster, nil
	})
	if err != nil {
		return nil, err
	}

	roster, ok := v.(presence.Roster)
	if !ok {
		return nil, fmt.Errorf("datasource: unexpected roster type %T", v)
	}
	return roster, nil
}

// Invalidate drops the cached dataset so the next call re-reads the CSV.
func (s *Source) Invalidate() {
	s.cache.Delete(s.cacheKey)
	s.logger.Info().Str("path", s.cfg.CSVPath).Msg("Dataset cache invalidated")
}

// BreakerState reports the CSV breaker as closed, half-open or open.
func (s *Source) BreakerState() string {
	return s.csvCB.State().String()
}

// RosterBreakerState reports the roster breaker as closed, half-open or open.
func (s *Source) RosterBreakerState() string {
	return s.rosterCB.State().String()
}

// CacheHitRate exposes the dataset cache hit percentage for health output.
func (s *Source) CacheHitRate() float64 {
	return s.cache.HitRate()
}

func (s *Source) loadDataset(ctx context.Context) (presence.Dataset, error) {
	start := time.Now()
	ds, stats, err := presence.LoadRecords(s.cfg.CSVPath)
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(elapsed, stats.Imported, stats.SkippedShape, stats.Malformed, err)
	if err != nil {
		return nil, err
	}

	event := logging.Ctx(ctx).Info()
	if stats.Malformed > 0 {
		event = logging.Ctx(ctx).Warn()
	}
	event.
		Str("path", s.cfg.CSVPath).
		Int64("rows", stats.Rows).
		Int64("imported", stats.Imported).
		Int64("skipped_shape", stats.SkippedShape).
		Int64("malformed", stats.Malformed).
		Int("users", len(ds)).
		Dur("elapsed", elapsed).
		Msg("Presence dataset loaded")
	return ds, nil
}

// execute runs fn under cb and maps rejections to ErrCircuitOpen.
func (s *Source) execute(cb *gobreaker.CircuitBreaker[interface{}], fn func() (interface{}, error)) (interface{}, error) {
	v, err := cb.Execute(fn)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.logger.Debug().Err(err).Str("breaker", cb.Name()).Msg("Read rejected by circuit breaker")
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	return nil, err
}
