package deck

import "errors"

var (
	// ErrUnsupportedHandSize is returned by evaluations that only understand five-card hands.
	ErrUnsupportedHandSize = errors.New("unsupported hand size")

	// ErrInsufficientCards is returned when a deal asks for more cards than remain.
	ErrInsufficientCards = errors.New("insufficient cards")

	// ErrInvalidDealSize is returned for negative deal sizes.
	ErrInvalidDealSize = errors.New("invalid deal size")

	// ErrUnknownCard is returned when a label does not name a card in the deck's vocabulary.
	ErrUnknownCard = errors.New("unknown card")
)
