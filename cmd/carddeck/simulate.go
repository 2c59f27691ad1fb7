package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/carddeck/cmd/carddeck/shared"
	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/simulator"
)

// SimulateCmd deals many shuffled decks and reports category frequencies.
type SimulateCmd struct {
	Deals   int `short:"d" help:"Number of decks to deal out (0 = config value)"`
	Workers int `short:"w" help:"Parallel workers (0 = config value)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	s, err := g.settings()
	if err != nil {
		return err
	}
	if c.Deals > 0 {
		s.Simulation.Deals = c.Deals
	}
	if c.Workers > 0 {
		s.Simulation.Workers = c.Workers
	}

	logger := g.logger()
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	result, err := simulator.New(simulator.Config{
		Deals:   s.Simulation.Deals,
		Workers: s.Simulation.Workers,
		Seed:    g.seed(),
		Deck:    s.Deck,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	out := g.stdout()
	stats := result.Stats
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d hands from %d deals", stats.Hands, result.Deals)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Category\tCount\tFrequency\t95% CI\t")
	for i := len(deck.Categories) - 1; i >= 0; i-- {
		category := deck.Categories[i]
		lo, hi := stats.ConfidenceInterval95(category)
		fmt.Fprintf(w, "%s\t%d\t%.4f%%\t%.4f-%.4f%%\t\n",
			category, stats.Counts[category], stats.Frequency(category)*100, lo*100, hi*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if stats.Skipped > 0 {
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d hands skipped (only %d-card hands are classified)", stats.Skipped, deck.PatternHandSize)))
	}
	return nil
}
