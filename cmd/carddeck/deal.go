package main

import (
	"errors"
	"fmt"

	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/fileutil"
)

// DealCmd deals hands from a freshly built deck.
type DealCmd struct {
	Hands int    `short:"n" help:"Number of hands to deal" default:"1"`
	Size  int    `short:"s" help:"Cards per hand (0 = configured hand size)"`
	Out   string `short:"o" help:"Write the dealt hands as JSON to this file" type:"path"`
}

// dealRecord is the JSON layout written by --out.
type dealRecord struct {
	Seed      int64        `json:"seed"`
	Hands     []handRecord `json:"hands"`
	Remaining int          `json:"remaining"`
}

type handRecord struct {
	Cards    *deck.Hand     `json:"cards"`
	Category *deck.Category `json:"category,omitempty"`
}

func (c *DealCmd) Run(g *Globals) error {
	s, err := g.settings()
	if err != nil {
		return err
	}
	logger := g.logger()
	seed := g.seed()
	d := g.newDeck(s.Deck, seed)
	logger.Debug("Built deck", "cards", d.Len(), "decks", s.Deck.Decks, "seed", seed)

	size := c.Size
	if size <= 0 {
		size = s.Deck.HandSize
	}

	record := dealRecord{Seed: seed}
	out := g.stdout()
	for i := range c.Hands {
		hand, err := d.Deal(size)
		if err != nil {
			return fmt.Errorf("dealing hand %d: %w", i+1, err)
		}

		hr := handRecord{Cards: hand}
		line := fmt.Sprintf("%s %s", headerStyle.Render(fmt.Sprintf("Hand %d:", i+1)), renderCards(hand.Cards()))
		category, err := hand.Category()
		switch {
		case errors.Is(err, deck.ErrUnsupportedHandSize):
		case err != nil:
			return err
		default:
			hr.Category = &category
			line += "  " + categoryStyle.Render(category.String())
		}
		fmt.Fprintln(out, line)
		record.Hands = append(record.Hands, hr)
	}

	record.Remaining = d.Len()
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d cards remaining", d.Len())))

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, record, 0o644); err != nil {
			return err
		}
		logger.Info("Wrote hands", "file", c.Out, "hands", len(record.Hands))
	}
	return nil
}
