// Package statistics tallies hand categories over many deals.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/carddeck/deck"
)

// Statistics counts how often each hand category was dealt.
type Statistics struct {
	Hands  int
	Counts map[deck.Category]int

	// Skipped counts hands that could not be classified (wrong size).
	Skipped int
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{Counts: make(map[deck.Category]int)}
}

// Add records one classified hand.
func (s *Statistics) Add(c deck.Category) {
	if s.Counts == nil {
		s.Counts = make(map[deck.Category]int)
	}
	s.Hands++
	s.Counts[c]++
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	for c, n := range other.Counts {
		if s.Counts == nil {
			s.Counts = make(map[deck.Category]int)
		}
		s.Counts[c] += n
	}
	s.Hands += other.Hands
	s.Skipped += other.Skipped
}

// Frequency returns the share of hands in category c
func (s *Statistics) Frequency(c deck.Category) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Counts[c]) / float64(s.Hands)
}

// StdError returns the standard error of Frequency(c)
func (s *Statistics) StdError(c deck.Category) float64 {
	if s.Hands == 0 {
		return 0
	}
	p := s.Frequency(c)
	return math.Sqrt(p * (1 - p) / float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for Frequency(c)
func (s *Statistics) ConfidenceInterval95(c deck.Category) (float64, float64) {
	p := s.Frequency(c)
	margin := 1.96 * s.StdError(c)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Validate checks that the per-category counts add up to Hands.
func (s *Statistics) Validate() error {
	total := 0
	for c, n := range s.Counts {
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, c)
		}
		total += n
	}
	if total != s.Hands {
		return fmt.Errorf("category counts sum to %d, expected %d hands", total, s.Hands)
	}
	return nil
}
