package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokercompare/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		a.False(seen[card])
		seen[card] = true

		a.GreaterOrEqual(card.Rank, Two)
		a.LessOrEqual(card.Rank, Ace)
		a.GreaterOrEqual(card.Suit, Spades)
		a.LessOrEqual(card.Suit, Hearts)
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(rng.Seeded(42))

	d2 := New()
	d2.Shuffle(rng.Seeded(42))

	a.Equal(d1.Cards, d2.Cards)

	d3 := New()
	d3.Shuffle(rng.Seeded(43))
	a.NotEqual(d1.Cards, d3.Cards)
}

func TestDeck_Remove(t *testing.T) {
	a := assert.New(t)

	d := New()
	taken, err := CardsFromString("AS,KS,QS,JS,XS")
	a.NoError(err)

	d.Remove(taken...)
	a.Equal(47, d.CardsLeft())

	for _, card := range d.Cards {
		for _, rm := range taken {
			a.False(card.Equal(rm))
		}
	}

	// removing an absent card is a no-op
	d.Remove(taken[0])
	a.Equal(47, d.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	first := d.Cards[0]

	card, err := d.Draw()
	a.NoError(err)
	a.True(first.Equal(card))
	a.Equal(51, d.CardsLeft())

	hand, err := d.DrawHand(5)
	a.NoError(err)
	a.Len(hand, 5)
	a.Equal(46, d.CardsLeft())

	d.Cards = nil
	_, err = d.Draw()
	a.ErrorIs(err, ErrEndOfDeck)

	_, err = d.DrawHand(5)
	a.ErrorIs(err, ErrEndOfDeck)
}
