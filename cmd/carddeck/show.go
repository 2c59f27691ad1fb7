package main

import (
	"fmt"
	"slices"
)

// ShowCmd prints the whole deck in order, the next card to be dealt last.
type ShowCmd struct {
	Width int `short:"w" help:"Cards per line" default:"13"`
}

func (c *ShowCmd) Run(g *Globals) error {
	s, err := g.settings()
	if err != nil {
		return err
	}
	d := g.newDeck(s.Deck, g.seed())

	out := g.stdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d cards", d.Len())))
	for line := range slices.Chunk(d.Cards(), max(c.Width, 1)) {
		fmt.Fprintln(out, renderCards(line))
	}
	return nil
}
