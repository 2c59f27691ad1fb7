package deck

import "fmt"

// JokerSuit is the suit label given to jokers when no suit label exists at the sentinel index.
const JokerSuit = "Joker"

// BlankRank is the rank label for a rank index outside the configured vocabulary.
const BlankRank = "Blank"

// Card is one physical card. Jokers have SuitIndex equal to the number of
// configured suits and a RankIndex into the joker labels.
type Card struct {
	RankIndex int    `json:"rank_index"`
	Rank      string `json:"rank"`
	SuitIndex int    `json:"suit_index"`
	Suit      string `json:"suit"`
	DeckID    int    `json:"deck_id"`
	Joker     bool   `json:"joker,omitempty"`
}

// NewCard resolves labels for the given indexes against cfg.
func NewCard(cfg Config, rankIndex, suitIndex, deckID int) Card {
	joker := suitIndex == len(cfg.Suits)

	labels := cfg.Ranks
	if joker {
		labels = cfg.Jokers
	}
	rank := BlankRank
	if rankIndex >= 0 && rankIndex < len(labels) {
		rank = labels[rankIndex]
	}

	var suit string
	switch {
	case suitIndex >= 0 && suitIndex < len(cfg.Suits):
		suit = cfg.Suits[suitIndex]
	case joker:
		suit = JokerSuit
	}

	return Card{
		RankIndex: rankIndex,
		Rank:      rank,
		SuitIndex: suitIndex,
		Suit:      suit,
		DeckID:    deckID,
		Joker:     joker,
	}
}

// String returns the card as "<rank> <suit>", e.g. "King Spades" or "Red Joker".
func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Rank, c.Suit)
}

// IsRed reports whether the card belongs to a red suit of the default vocabulary.
func (c Card) IsRed() bool {
	return c.Suit == "Diamonds" || c.Suit == "Hearts" || (c.Joker && c.Rank == "Red")
}
