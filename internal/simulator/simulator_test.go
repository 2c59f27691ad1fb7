package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/carddeck/deck"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Deals: 10})
	assert.Equal(t, 1, s.config.Workers)
	assert.NotNil(t, s.config.Logger)
	assert.NotNil(t, s.config.Clock)
}

func TestRunCountsHands(t *testing.T) {
	s := New(Config{
		Deals:   20,
		Workers: 3,
		Seed:    12345,
		Deck:    deck.DefaultConfig(),
		Logger:  testLogger(),
		Clock:   quartz.NewMock(t),
	})

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	// 54 cards deal ten five-card hands with four left over.
	assert.Equal(t, 200, result.Stats.Hands)
	assert.Equal(t, 20, result.Deals)
	assert.Zero(t, result.Stats.Skipped)
	assert.Zero(t, result.Elapsed, "mock clock never advances")
	require.NoError(t, result.Stats.Validate())
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{
		Deals:   50,
		Workers: 4,
		Seed:    99,
		Deck:    deck.DefaultConfig(),
		Logger:  testLogger(),
	}

	a, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Stats.Counts, b.Stats.Counts)
}

func TestRunSkipsUnsupportedHandSizes(t *testing.T) {
	cfg := deck.DefaultConfig()
	cfg.HandSize = 2
	cfg.Jokers = nil

	result, err := RunSimulation(context.Background(), 5, 2, 1, cfg, testLogger())
	require.NoError(t, err)

	assert.Zero(t, result.Stats.Hands)
	assert.Equal(t, 5*26, result.Stats.Skipped)
}

func TestRunRejectsNonPositiveHandSize(t *testing.T) {
	cfg := deck.DefaultConfig()
	cfg.HandSize = 0

	_, err := New(Config{Deals: 1, Deck: cfg}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Deals: 10, Workers: 2, Deck: deck.DefaultConfig()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunZeroDeals(t *testing.T) {
	result, err := New(Config{Deals: 0, Workers: 4, Deck: deck.DefaultConfig()}).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Stats.Hands)
}
