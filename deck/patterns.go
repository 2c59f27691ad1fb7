package deck

import "fmt"

// PatternHandSize is the only hand size FullHouse, Straight and Category understand.
const PatternHandSize = 5

// OfAKind returns the highest rank index held exactly count times, ignoring
// jokers and cards whose rank index is in exclude.
func (h *Hand) OfAKind(count int, exclude ...int) (int, bool) {
	counts := h.rankCounts(exclude)
	for rank := len(counts) - 1; rank >= 0; rank-- {
		if counts[rank] == count {
			return rank, true
		}
	}
	return 0, false
}

// Pair returns the rank index of the highest pair.
func (h *Hand) Pair() (int, bool) {
	return h.OfAKind(2)
}

// Flush reports whether every card shares the first card's suit index.
// An empty hand is not a flush.
func (h *Hand) Flush() bool {
	if len(h.cards) == 0 {
		return false
	}
	suit := h.cards[0].SuitIndex
	for _, c := range h.cards[1:] {
		if c.SuitIndex != suit {
			return false
		}
	}
	return true
}

// FullHouse returns the rank index of the pair when the hand holds three of
// one rank and two of another.
func (h *Hand) FullHouse() (int, bool, error) {
	if err := h.requirePatternSize(); err != nil {
		return 0, false, err
	}
	trips, ok := h.OfAKind(3)
	if !ok {
		return 0, false, nil
	}
	pair, ok := h.OfAKind(2, trips)
	return pair, ok, nil
}

// Straight returns the highest rank index of five consecutive ranks. Any
// repeated rank rules a straight out.
func (h *Hand) Straight() (int, bool, error) {
	if err := h.requirePatternSize(); err != nil {
		return 0, false, err
	}
	counts := h.rankCounts(nil)
	for _, n := range counts {
		if n > 1 {
			return 0, false, nil
		}
	}

	for high := len(counts) - 1; high >= PatternHandSize-1; high-- {
		run := true
		for rank := high; rank > high-PatternHandSize; rank-- {
			if counts[rank] != 1 {
				run = false
				break
			}
		}
		if run {
			return high, true, nil
		}
	}
	return 0, false, nil
}

// StraightFlush returns the straight's high rank index when the hand is also a flush.
func (h *Hand) StraightFlush() (int, bool, error) {
	high, ok, err := h.Straight()
	if err != nil || !ok {
		return 0, false, err
	}
	if !h.Flush() {
		return 0, false, nil
	}
	return high, true, nil
}

// RoyalFlush reports a straight flush topped by the highest configured rank.
func (h *Hand) RoyalFlush() (bool, error) {
	high, ok, err := h.StraightFlush()
	if err != nil || !ok {
		return false, err
	}
	return high == h.rankCount()-1, nil
}

func (h *Hand) requirePatternSize() error {
	if len(h.cards) != PatternHandSize {
		return fmt.Errorf("%w: got %d cards, want %d", ErrUnsupportedHandSize, len(h.cards), PatternHandSize)
	}
	return nil
}
