package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
)

// EvalCmd classifies a hand given as card labels.
type EvalCmd struct {
	Cards []string `arg:"" help:"Card labels such as 'King Spades' (quote each card)"`
}

func (c *EvalCmd) Run(g *Globals) error {
	s, err := g.settings()
	if err != nil {
		return err
	}
	s.Deck.Shuffle = false
	d := g.newDeck(s.Deck, 0)
	ranks := s.Deck.Ranks

	hand, err := d.ParseHand(c.Cards...)
	if err != nil {
		return err
	}

	out := g.stdout()
	fmt.Fprintln(out, renderCards(hand.Cards()))

	rankResult := func(rank int, ok bool) string {
		if !ok {
			return "no"
		}
		return ranks[rank]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Pair\t%s\n", rankResult(hand.Pair()))
	fmt.Fprintf(w, "Three of a kind\t%s\n", rankResult(hand.OfAKind(3)))
	fmt.Fprintf(w, "Flush\t%s\n", strconv.FormatBool(hand.Flush()))

	fullHouse, ok, err := hand.FullHouse()
	if err != nil {
		w.Flush()
		return err
	}
	fmt.Fprintf(w, "Full house\t%s\n", rankResult(fullHouse, ok))

	// Size was validated by FullHouse.
	straight, ok, _ := hand.Straight()
	fmt.Fprintf(w, "Straight\t%s\n", rankResult(straight, ok))
	straightFlush, ok, _ := hand.StraightFlush()
	fmt.Fprintf(w, "Straight flush\t%s\n", rankResult(straightFlush, ok))
	royal, _ := hand.RoyalFlush()
	fmt.Fprintf(w, "Royal flush\t%s\n", strconv.FormatBool(royal))
	if err := w.Flush(); err != nil {
		return err
	}

	category, _ := hand.Category()
	fmt.Fprintln(out, categoryStyle.Render(category.String()))
	return nil
}
