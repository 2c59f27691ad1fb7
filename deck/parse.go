package deck

import (
	"fmt"
	"strings"
)

// ParseCard resolves a "<rank> <suit>" label, as produced by Card.String,
// against the deck's vocabulary. Matching is case-insensitive. Jokers parse
// from "<joker> Joker", e.g. "Red Joker". The returned card has deck ID 0.
func (d *Deck) ParseCard(s string) (Card, error) {
	s = strings.Join(strings.Fields(s), " ")

	for suit, label := range d.cfg.Suits {
		if rank, ok := cutSuffixFold(s, label); ok {
			if i := indexFold(d.cfg.Ranks, rank); i >= 0 {
				return d.Card(i, suit), nil
			}
		}
	}
	if rank, ok := cutSuffixFold(s, JokerSuit); ok {
		if i := indexFold(d.cfg.Jokers, rank); i >= 0 {
			return d.Card(i, len(d.cfg.Suits)), nil
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
}

// ParseHand parses each label with ParseCard into a hand bound to d. The deck
// itself is not modified.
func (d *Deck) ParseHand(labels ...string) (*Hand, error) {
	h := NewHand(d)
	for _, label := range labels {
		c, err := d.ParseCard(label)
		if err != nil {
			return nil, err
		}
		h.AddCard(c)
	}
	return h, nil
}

func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) <= len(suffix)+1 {
		return "", false
	}
	head, tail := s[:len(s)-len(suffix)], s[len(s)-len(suffix):]
	if !strings.EqualFold(tail, suffix) || !strings.HasSuffix(head, " ") {
		return "", false
	}
	return strings.TrimSuffix(head, " "), true
}

func indexFold(labels []string, s string) int {
	for i, label := range labels {
		if strings.EqualFold(label, s) {
			return i
		}
	}
	return -1
}
