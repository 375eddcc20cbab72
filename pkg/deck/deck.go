package deck

import (
	"errors"

	"pokercompare/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of 52 distinct cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Hearts; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle will shuffle the deck of cards using the supplied random source
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Remove takes the specified cards out of the deck.
// Used when some cards are already in play and must not be dealt again.
func (d *Deck) Remove(cards ...Card) {
	remaining := make([]Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		taken := false
		for _, rm := range cards {
			if c.Equal(rm) {
				taken = true
				break
			}
		}

		if !taken {
			remaining = append(remaining, c)
		}
	}

	d.Cards = remaining
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawHand draws n cards from the top of the deck
func (d *Deck) DrawHand(n int) ([]Card, error) {
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
