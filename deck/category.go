package deck

// Category is the best pattern a five-card hand makes. Higher values are stronger.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind // only reachable with more than one deck
)

// Categories lists every category from weakest to strongest.
var Categories = []Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush,
	FullHouse, FourOfAKind, StraightFlush, RoyalFlush, FiveOfAKind,
}

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Category classifies a five-card hand.
func (h *Hand) Category() (Category, error) {
	if err := h.requirePatternSize(); err != nil {
		return HighCard, err
	}

	if _, ok := h.OfAKind(5); ok {
		return FiveOfAKind, nil
	}
	// Size is already checked, the remaining errors cannot occur.
	if royal, _ := h.RoyalFlush(); royal {
		return RoyalFlush, nil
	}
	if _, ok, _ := h.StraightFlush(); ok {
		return StraightFlush, nil
	}
	if _, ok := h.OfAKind(4); ok {
		return FourOfAKind, nil
	}
	if _, ok, _ := h.FullHouse(); ok {
		return FullHouse, nil
	}
	if h.Flush() {
		return Flush, nil
	}
	if _, ok, _ := h.Straight(); ok {
		return Straight, nil
	}
	if _, ok := h.OfAKind(3); ok {
		return ThreeOfAKind, nil
	}
	if high, ok := h.Pair(); ok {
		if _, ok := h.OfAKind(2, high); ok {
			return TwoPair, nil
		}
		return Pair, nil
	}
	return HighCard, nil
}
