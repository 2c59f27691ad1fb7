// Package deck builds configurable multi-deck card sequences, deals hands from
// them and classifies five-card hands against the standard poker patterns.
//
// A Deck is not safe for concurrent use; shuffling, sorting and dealing all
// mutate it in place. Hands are independent once dealt.
package deck

import (
	"cmp"
	"fmt"
	"slices"
)

// Deck is an ordered sequence of cards. Cards are dealt from the end of the sequence.
type Deck struct {
	cfg   Config
	cards []Card
	rng   Source
}

// New creates a populated deck. The default configuration is overridden by opts;
// the deck is then shuffled or sorted according to Config.Shuffle.
//
// Example usage:
//
//	// Production - time-seeded RNG
//	d := deck.New()
//
//	// Testing - deterministic RNG, two decks, no jokers
//	d := deck.New(deck.WithRand(randutil.New(42)), deck.WithDecks(2), deck.WithJokers())
func New(opts ...Option) *Deck {
	o := newOptions(opts)
	d := &Deck{
		cfg: o.cfg,
		rng: o.rng,
	}

	d.Populate()
	if d.cfg.Shuffle {
		d.Shuffle()
	} else {
		d.Sort()
	}
	return d
}

// Populate discards the remaining cards and regenerates Decks copies of the
// full card set in deck ID order. The result is neither shuffled nor sorted.
func (d *Deck) Populate() *Deck {
	d.cards = make([]Card, 0, max(d.cfg.Decks, 0)*d.cfg.CardsPerDeck())
	for id := 0; id < d.cfg.Decks; id++ {
		d.cards = append(d.cards, createDeck(d.cfg, id)...)
	}
	return d
}

// createDeck generates one deck's cards. Both indexes are derived from the same
// counter, so with coprime rank and suit counts (13 and 4) every combination
// appears exactly once; other counts can repeat or skip combinations.
func createDeck(cfg Config, deckID int) []Card {
	n := len(cfg.Ranks) * len(cfg.Suits)
	cards := make([]Card, 0, n+len(cfg.Jokers))
	for i := range n {
		cards = append(cards, NewCard(cfg, i%len(cfg.Ranks), i%len(cfg.Suits), deckID))
	}
	for i := range cfg.Jokers {
		cards = append(cards, NewCard(cfg, i, len(cfg.Suits), deckID))
	}
	return cards
}

// Shuffle randomizes the remaining cards in place using Fisher-Yates.
func (d *Deck) Shuffle() *Deck {
	for m := len(d.cards); m > 0; {
		i := d.rng.IntN(m)
		m--
		d.cards[m], d.cards[i] = d.cards[i], d.cards[m]
	}
	return d
}

// Sort orders the remaining cards by suit index, then rank index. Jokers sort last.
func (d *Deck) Sort() *Deck {
	slices.SortStableFunc(d.cards, func(a, b Card) int {
		if c := cmp.Compare(a.SuitIndex, b.SuitIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.RankIndex, b.RankIndex)
	})
	return d
}

// DealHand deals a hand of the configured HandSize.
func (d *Deck) DealHand() (*Hand, error) {
	return d.Deal(d.cfg.HandSize)
}

// Deal removes n cards from the end of the deck and returns them as a hand in
// removal order. If fewer than n cards remain the deck is left untouched and
// ErrInsufficientCards is returned.
func (d *Deck) Deal(n int) (*Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDealSize, n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}

	h := NewHand(d)
	for range n {
		last := len(d.cards) - 1
		h.AddCard(d.cards[last])
		d.cards = d.cards[:last]
	}
	return h, nil
}

// Card builds a card from this deck's vocabulary with deck ID 0.
func (d *Deck) Card(rankIndex, suitIndex int) Card {
	return NewCard(d.cfg, rankIndex, suitIndex, 0)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards. The last element is dealt first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Config returns a copy of the deck's configuration.
func (d *Deck) Config() Config {
	return d.cfg.clone()
}
