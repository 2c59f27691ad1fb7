package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rank indexes in the default vocabulary.
const (
	rankTwo   = 0
	rankThree = 1
	rankSix   = 4
	rankKing  = 11
	rankAce   = 12
)

func sortedDeck() *Deck {
	return New(WithShuffle(false))
}

func mustHand(t *testing.T, labels ...string) *Hand {
	t.Helper()
	h, err := sortedDeck().ParseHand(labels...)
	require.NoError(t, err)
	return h
}

func TestPair(t *testing.T) {
	h := mustHand(t, "2 Clubs", "2 Diamonds", "5 Hearts", "9 Spades", "King Clubs")

	rank, ok := h.Pair()
	require.True(t, ok)
	assert.Equal(t, rankTwo, rank)
}

func TestOfAKind(t *testing.T) {
	h := mustHand(t, "King Clubs", "King Hearts", "2 Clubs", "2 Spades", "5 Hearts")

	rank, ok := h.OfAKind(2)
	require.True(t, ok)
	assert.Equal(t, rankKing, rank, "highest pair wins")

	rank, ok = h.OfAKind(2, rankKing)
	require.True(t, ok)
	assert.Equal(t, rankTwo, rank)

	_, ok = h.OfAKind(2, rankKing, rankTwo)
	assert.False(t, ok)

	_, ok = h.OfAKind(3)
	assert.False(t, ok)
}

func TestOfAKindIsExact(t *testing.T) {
	h := mustHand(t, "3 Clubs", "3 Diamonds", "3 Hearts", "7 Spades", "9 Clubs")

	_, ok := h.Pair()
	assert.False(t, ok, "trips are not a pair")

	rank, ok := h.OfAKind(3)
	require.True(t, ok)
	assert.Equal(t, rankThree, rank)
}

func TestFlush(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"same suit", []string{"2 Clubs", "7 Clubs", "9 Clubs", "Jack Clubs", "Ace Clubs"}, true},
		{"mixed suits", []string{"2 Clubs", "7 Clubs", "9 Clubs", "Jack Clubs", "Ace Hearts"}, false},
		{"joker breaks flush", []string{"2 Clubs", "7 Clubs", "9 Clubs", "Jack Clubs", "Red Joker"}, false},
		{"single card", []string{"2 Clubs"}, true},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustHand(t, tt.labels...).Flush())
		})
	}
}

func TestFullHouse(t *testing.T) {
	h := mustHand(t, "3 Clubs", "3 Diamonds", "3 Hearts", "King Spades", "King Clubs")
	rank, ok, err := h.FullHouse()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rankKing, rank)

	h = mustHand(t, "3 Clubs", "3 Diamonds", "3 Hearts", "King Spades", "Queen Clubs")
	_, ok, err = h.FullHouse()
	require.NoError(t, err)
	assert.False(t, ok)

	h = mustHand(t, "3 Clubs", "3 Diamonds", "8 Hearts", "King Spades", "King Clubs")
	_, ok, err = h.FullHouse()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStraight(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		wantHigh int
		wantOK   bool
	}{
		{"six high", []string{"2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "6 Clubs"}, rankSix, true},
		{"ace high", []string{"10 Clubs", "Jack Diamonds", "Queen Hearts", "King Spades", "Ace Clubs"}, rankAce, true},
		{"unordered", []string{"8 Clubs", "6 Hearts", "7 Diamonds", "5 Spades", "4 Clubs"}, 6, true},
		{"gap", []string{"2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "7 Clubs"}, 0, false},
		{"repeated rank", []string{"2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "5 Hearts"}, 0, false},
		{"ace does not wrap low", []string{"Ace Clubs", "2 Clubs", "3 Hearts", "4 Clubs", "5 Spades"}, 0, false},
		{"joker", []string{"2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "Black Joker"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			high, ok, err := mustHand(t, tt.labels...).Straight()
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHigh, high)
			}
		})
	}
}

func TestStraightFlushAndRoyalFlush(t *testing.T) {
	low := mustHand(t, "2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "6 Clubs")
	assert.True(t, low.Flush())
	high, ok, err := low.StraightFlush()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rankSix, high)
	royal, err := low.RoyalFlush()
	require.NoError(t, err)
	assert.False(t, royal)

	royalHand := mustHand(t, "10 Hearts", "Jack Hearts", "Queen Hearts", "King Hearts", "Ace Hearts")
	royal, err = royalHand.RoyalFlush()
	require.NoError(t, err)
	assert.True(t, royal)

	mixed := mustHand(t, "10 Clubs", "Jack Diamonds", "Queen Hearts", "King Spades", "Ace Clubs")
	_, ok, err = mixed.StraightFlush()
	require.NoError(t, err)
	assert.False(t, ok)
	royal, err = mixed.RoyalFlush()
	require.NoError(t, err)
	assert.False(t, royal)
}

func TestUnsupportedHandSize(t *testing.T) {
	four := mustHand(t, "3 Clubs", "3 Diamonds", "3 Hearts", "King Spades")
	six := mustHand(t, "2 Clubs", "3 Clubs", "4 Clubs", "5 Clubs", "6 Clubs", "7 Clubs")

	for _, h := range []*Hand{four, six} {
		_, _, err := h.FullHouse()
		assert.ErrorIs(t, err, ErrUnsupportedHandSize)
		_, _, err = h.Straight()
		assert.ErrorIs(t, err, ErrUnsupportedHandSize)
		_, _, err = h.StraightFlush()
		assert.ErrorIs(t, err, ErrUnsupportedHandSize)
		_, err = h.RoyalFlush()
		assert.ErrorIs(t, err, ErrUnsupportedHandSize)
		_, err = h.Category()
		assert.ErrorIs(t, err, ErrUnsupportedHandSize)
	}

	// Size-agnostic queries still answer.
	_, ok := six.OfAKind(1)
	assert.True(t, ok)
	assert.True(t, six.Flush())
}

func TestCategory(t *testing.T) {
	tests := []struct {
		labels []string
		want   Category
	}{
		{[]string{"10 Spades", "Jack Spades", "Queen Spades", "King Spades", "Ace Spades"}, RoyalFlush},
		{[]string{"9 Spades", "10 Spades", "Jack Spades", "Queen Spades", "King Spades"}, StraightFlush},
		{[]string{"9 Spades", "9 Hearts", "9 Clubs", "9 Diamonds", "King Spades"}, FourOfAKind},
		{[]string{"9 Spades", "9 Hearts", "9 Clubs", "4 Diamonds", "4 Spades"}, FullHouse},
		{[]string{"2 Hearts", "7 Hearts", "9 Hearts", "Jack Hearts", "King Hearts"}, Flush},
		{[]string{"5 Spades", "6 Hearts", "7 Clubs", "8 Diamonds", "9 Spades"}, Straight},
		{[]string{"9 Spades", "9 Hearts", "9 Clubs", "4 Diamonds", "5 Spades"}, ThreeOfAKind},
		{[]string{"9 Spades", "9 Hearts", "4 Clubs", "4 Diamonds", "5 Spades"}, TwoPair},
		{[]string{"9 Spades", "9 Hearts", "3 Clubs", "4 Diamonds", "5 Spades"}, Pair},
		{[]string{"9 Spades", "Queen Hearts", "3 Clubs", "4 Diamonds", "5 Spades"}, HighCard},
		{[]string{"9 Spades", "9 Hearts", "3 Clubs", "Red Joker", "Black Joker"}, Pair},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := mustHand(t, tt.labels...).Category()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryFiveOfAKind(t *testing.T) {
	d := New(WithDecks(2), WithShuffle(false))
	h := NewHand(d)
	for suit := range 4 {
		h.AddCard(d.Card(rankAce, suit))
	}
	h.AddCard(NewCard(d.Config(), rankAce, 0, 1))

	got, err := h.Category()
	require.NoError(t, err)
	assert.Equal(t, FiveOfAKind, got)
	assert.Equal(t, "Five of a Kind", got.String())
}

func TestCustomVocabulary(t *testing.T) {
	d := New(
		WithRanks("One", "Two", "Three", "Four", "Five", "Six"),
		WithSuits("Stars"),
		WithJokers(),
		WithShuffle(false),
	)
	require.Equal(t, 6, d.Len())

	h, err := d.Deal(5)
	require.NoError(t, err)

	// Sorted deck deals Six..Two from the end.
	high, ok, err := h.StraightFlush()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, high)

	royal, err := h.RoyalFlush()
	require.NoError(t, err)
	assert.True(t, royal)
}

func TestHandWithoutDeckUsesDefaultRanks(t *testing.T) {
	h := NewHand(nil)
	for rank := 8; rank <= 12; rank++ {
		h.AddCard(NewCard(DefaultConfig(), rank, 2, 0))
	}
	royal, err := h.RoyalFlush()
	require.NoError(t, err)
	assert.True(t, royal)
}

func TestHandString(t *testing.T) {
	h := mustHand(t, "2 Clubs", "King Hearts", "red joker")
	assert.Equal(t, "[2 Clubs, King Hearts, Red Joker]", h.String())
	assert.Equal(t, "[]", NewHand(nil).String())
}

func TestHandJSON(t *testing.T) {
	h := mustHand(t, "Ace Spades", "Black Joker")
	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"rank_index":12,"rank":"Ace","suit_index":3,"suit":"Spades","deck_id":0},
		{"rank_index":0,"rank":"Black","suit_index":4,"suit":"Joker","deck_id":0,"joker":true}
	]`, string(data))

	data, err = json.Marshal(NewHand(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestCardsReturnsCopy(t *testing.T) {
	h := mustHand(t, "2 Clubs")
	cards := h.Cards()
	cards[0].Rank = "changed"
	assert.Equal(t, "2", h.Cards()[0].Rank)
}
