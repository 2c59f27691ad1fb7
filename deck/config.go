package deck

import (
	"slices"
	"time"

	"github.com/lox/carddeck/internal/randutil"
)

// Default vocabulary, ranks ordered low to high.
var (
	DefaultRanks  = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}
	DefaultSuits  = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
	DefaultJokers = []string{"Black", "Red"}
)

const (
	DefaultDecks    = 1
	DefaultHandSize = 5
)

// Config describes how a Deck is built. It is copied into the Deck at
// construction and never changes afterwards.
type Config struct {
	// Decks is the number of standard decks combined. Zero or negative yields an empty deck.
	Decks int

	// HandSize is the number of cards DealHand deals.
	HandSize int

	// Ranks orders rank labels from lowest to highest.
	Ranks []string

	// Suits lists suit labels. Index len(Suits) is reserved for jokers.
	Suits []string

	// Jokers lists joker labels, one joker card per label per deck. May be empty.
	Jokers []string

	// Shuffle selects shuffling after construction; false sorts instead.
	Shuffle bool
}

// DefaultConfig returns a single 54-card deck (52 plus two jokers), shuffled, dealing five-card hands.
func DefaultConfig() Config {
	return Config{
		Decks:    DefaultDecks,
		HandSize: DefaultHandSize,
		Ranks:    slices.Clone(DefaultRanks),
		Suits:    slices.Clone(DefaultSuits),
		Jokers:   slices.Clone(DefaultJokers),
		Shuffle:  true,
	}
}

// CardsPerDeck returns the number of cards a single deck contributes.
func (c Config) CardsPerDeck() int {
	return len(c.Ranks)*len(c.Suits) + len(c.Jokers)
}

func (c Config) clone() Config {
	c.Ranks = slices.Clone(c.Ranks)
	c.Suits = slices.Clone(c.Suits)
	c.Jokers = slices.Clone(c.Jokers)
	return c
}

// Source is a uniform random source over [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Option configures a Deck during creation.
type Option func(*options)

type options struct {
	cfg Config
	rng Source
}

// WithConfig replaces the whole configuration. Later options still apply on top of it.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg.clone() }
}

// WithDecks sets how many standard decks are combined.
func WithDecks(n int) Option {
	return func(o *options) { o.cfg.Decks = n }
}

// WithHandSize sets the default dealt hand size.
func WithHandSize(n int) Option {
	return func(o *options) { o.cfg.HandSize = n }
}

// WithRanks sets rank labels, lowest first.
func WithRanks(ranks ...string) Option {
	return func(o *options) { o.cfg.Ranks = slices.Clone(ranks) }
}

// WithSuits sets suit labels.
func WithSuits(suits ...string) Option {
	return func(o *options) { o.cfg.Suits = slices.Clone(suits) }
}

// WithJokers sets joker labels. Call with no arguments for a deck without jokers.
func WithJokers(jokers ...string) Option {
	return func(o *options) { o.cfg.Jokers = slices.Clone(jokers) }
}

// WithShuffle chooses between shuffling (true) and sorting (false) after construction.
func WithShuffle(shuffle bool) Option {
	return func(o *options) { o.cfg.Shuffle = shuffle }
}

// WithRand sets the random source used by Shuffle. Tests should pass a seeded
// generator from randutil to get reproducible orderings.
func WithRand(rng Source) Option {
	return func(o *options) { o.rng = rng }
}

func newOptions(opts []Option) options {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = randutil.New(time.Now().UnixNano())
	}
	return o
}
