// Package simulator deals many shuffled decks in parallel and tallies the
// categories of every hand dealt.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/randutil"
	"github.com/lox/carddeck/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Deals   int
	Workers int
	Seed    int64
	Deck    deck.Config
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Result is the outcome of a simulation run.
type Result struct {
	Stats   *statistics.Statistics
	Deals   int
	Elapsed time.Duration
}

// Simulator deals hands from freshly shuffled decks
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run deals Deals shuffled decks to exhaustion, hand by hand. Work is split
// across Workers goroutines, each with its own RNG derived from Seed, so the
// totals depend only on the configuration.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Deck.HandSize <= 0 {
		return nil, fmt.Errorf("hand size must be positive, got %d", s.config.Deck.HandSize)
	}

	start := s.config.Clock.Now()
	workers := min(s.config.Workers, max(s.config.Deals, 1))
	perWorker := s.config.Deals / workers
	remainder := s.config.Deals % workers
	seeds := randutil.Split(s.config.Seed, workers)

	s.config.Logger.Debug("Starting simulation",
		"deals", s.config.Deals, "workers", workers, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]*statistics.Statistics, workers)
	for w := range workers {
		deals := perWorker
		if w < remainder {
			deals++
		}
		g.Go(func() error {
			stats, err := s.runWorker(ctx, deals, seeds[w])
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := statistics.New()
	for _, r := range results {
		total.Merge(r)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	s.config.Logger.Info("Simulation complete",
		"deals", s.config.Deals, "hands", total.Hands, "skipped", total.Skipped, "elapsed", elapsed)

	return &Result{Stats: total, Deals: s.config.Deals, Elapsed: elapsed}, nil
}

func (s *Simulator) runWorker(ctx context.Context, deals int, seed int64) (*statistics.Statistics, error) {
	stats := statistics.New()
	rng := randutil.New(seed)
	for range deals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d := deck.New(deck.WithConfig(s.config.Deck), deck.WithShuffle(true), deck.WithRand(rng))
		if err := dealAll(d, stats); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// dealAll deals hands until the deck runs short, classifying each one.
func dealAll(d *deck.Deck, stats *statistics.Statistics) error {
	for {
		hand, err := d.DealHand()
		if errors.Is(err, deck.ErrInsufficientCards) {
			return nil
		}
		if err != nil {
			return err
		}

		category, err := hand.Category()
		switch {
		case errors.Is(err, deck.ErrUnsupportedHandSize):
			stats.Skipped++
		case err != nil:
			return err
		default:
			stats.Add(category)
		}
	}
}

// RunSimulation is a convenience wrapper for callers that don't need a custom clock.
func RunSimulation(ctx context.Context, deals, workers int, seed int64, cfg deck.Config, logger *log.Logger) (*Result, error) {
	return New(Config{
		Deals:   deals,
		Workers: workers,
		Seed:    seed,
		Deck:    cfg,
		Logger:  logger,
	}).Run(ctx)
}
