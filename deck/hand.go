package deck

import (
	"encoding/json"
	"slices"
	"strings"
)

// Hand holds cards dealt from a Deck. The deck reference is only read for its
// rank vocabulary; a hand never mutates its deck.
type Hand struct {
	deck  *Deck
	cards []Card
}

// NewHand returns an empty hand bound to d.
func NewHand(d *Deck) *Hand {
	return &Hand{deck: d}
}

// AddCard appends c to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the hand's cards in deal order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// String renders the hand as "[2 Clubs, King Hearts, ...]".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the hand as its list of cards.
func (h *Hand) MarshalJSON() ([]byte, error) {
	cards := h.cards
	if cards == nil {
		cards = []Card{}
	}
	return json.Marshal(cards)
}

// rankCount is the size of the rank vocabulary the hand is evaluated against.
func (h *Hand) rankCount() int {
	if h.deck == nil {
		return len(DefaultRanks)
	}
	return len(h.deck.cfg.Ranks)
}

// rankCounts tallies cards per rank index, skipping jokers and excluded ranks.
func (h *Hand) rankCounts(exclude []int) []int {
	counts := make([]int, h.rankCount())
	for _, c := range h.cards {
		if c.Joker || slices.Contains(exclude, c.RankIndex) {
			continue
		}
		if c.RankIndex >= 0 && c.RankIndex < len(counts) {
			counts[c.RankIndex]++
		}
	}
	return counts
}
