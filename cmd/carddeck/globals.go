package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/carddeck/cmd/carddeck/shared"
	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/config"
	"github.com/lox/carddeck/internal/randutil"
)

// Globals are flags shared by every command. Flags override the config file.
type Globals struct {
	Config    string `help:"Path to HCL config file" default:"carddeck.hcl" env:"CARDDECK_CONFIG" type:"path"`
	Seed      *int64 `help:"Random seed for reproducible shuffles" env:"CARDDECK_SEED"`
	Decks     *int   `help:"Number of decks to combine"`
	HandSize  *int   `name:"hand-size" help:"Default number of cards per hand"`
	NoJokers  bool   `name:"no-jokers" help:"Build decks without jokers"`
	NoShuffle bool   `name:"no-shuffle" help:"Sort the deck instead of shuffling it"`
	NoColor   bool   `name:"no-color" help:"Disable coloured output" env:"NO_COLOR"`
	Debug     bool   `help:"Enable debug logging"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) logger() *log.Logger {
	return shared.SetupLogger(g.Stderr, g.Debug)
}

// settings loads the config file and applies flag overrides on top.
func (g *Globals) settings() (*config.Settings, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	s, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Decks != nil {
		s.Deck.Decks = *g.Decks
	}
	if g.HandSize != nil {
		s.Deck.HandSize = *g.HandSize
	}
	if g.NoJokers {
		s.Deck.Jokers = nil
	}
	if g.NoShuffle {
		s.Deck.Shuffle = false
	}
	return s, nil
}

func (g *Globals) seed() int64 {
	if g.Seed != nil {
		return *g.Seed
	}
	return time.Now().UnixNano()
}

func (g *Globals) newDeck(cfg deck.Config, seed int64) *deck.Deck {
	return deck.New(deck.WithConfig(cfg), deck.WithRand(randutil.New(seed)))
}
