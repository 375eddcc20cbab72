package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is an error when a rank or suit is outside its valid domain
var ErrOutOfRange = errors.New("rank or suit out of range")

// ErrBadNotation is an error when a card string cannot be parsed
var ErrBadNotation = errors.New("could not parse card notation")

// rank constants. Two is the lowest rank and Ace the highest,
// except in the 5-4-3-2-A straight where the ace plays low.
const (
	Two = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// suit constants. Suits are interchangeable labels with no ordering.
const (
	Spades = iota
	Clubs
	Diamonds
	Hearts
)

const rankChars = "23456789XJQKA"
const suitChars = "SCDH"

// Card is an individual playing card
type Card struct {
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

// NewCard returns a card with the given rank and suit.
// Returns ErrOutOfRange if rank is not in [0,12] or suit is not in [0,3].
func NewCard(rank, suit int) (Card, error) {
	if rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: rank %d", ErrOutOfRange, rank)
	}

	if suit < Spades || suit > Hearts {
		return Card{}, fmt.Errorf("%w: suit %d", ErrOutOfRange, suit)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.SameRank(card) && c.SameSuit(card)
}

// SameRank returns true if the cards share a rank
func (c Card) SameRank(card Card) bool {
	return c.Rank == card.Rank
}

// SameSuit returns true if the cards share a suit
func (c Card) SameSuit(card Card) bool {
	return c.Suit == card.Suit
}

// String renders the card in two-character notation, i.e. "XC" for the ten of clubs
func (c Card) String() string {
	return string(rankChars[c.Rank]) + string(suitChars[c.Suit])
}

// CardFromString parses a card from two-character notation.
// The string must be <rank><suit> with rank in 23456789XJQKA and suit in SCDH
// (case-insensitive).
func CardFromString(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	upper := strings.ToUpper(s)

	rank := strings.IndexByte(rankChars, upper[0])
	if rank < 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrBadNotation, s)
	}

	suit := strings.IndexByte(suitChars, upper[1])
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrBadNotation, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString parses a comma-separated list of cards, i.e. "8C,7D,6S,4D,5S"
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(strings.TrimSpace(cs))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString converts a slice of cards to a string in the format of 8C,7D,6S,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
