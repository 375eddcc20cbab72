package poker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"pokercompare/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// ErrDuplicateCard is an error when the same card is supplied twice to a hand
var ErrDuplicateCard = errors.New("duplicate card in hand")

// ErrHandSize is an error when a hand is built from the wrong number of cards
var ErrHandSize = errors.New("a hand requires exactly five cards")

// Hand is a classified five-card poker hand.
// The cards are kept sorted descending by rank, except the 5-4-3-2-A straight
// which is stored with the ace last. The signature pairs each distinct rank
// with its frequency, ordered by frequency descending then rank descending.
// A Hand is immutable once constructed and safe to share.
type Hand struct {
	cards    []deck.Card
	sigRank  []int
	sigFreq  []int
	category Category
}

// New builds a hand from exactly five distinct cards.
// Returns ErrHandSize, ErrDuplicateCard, or deck.ErrOutOfRange on bad input.
func New(cards ...deck.Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	for i, card := range cards {
		if _, err := deck.NewCard(card.Rank, card.Suit); err != nil {
			return nil, err
		}

		for _, prev := range cards[:i] {
			if card.Equal(prev) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
		}
	}

	h := &Hand{cards: normalize(cards)}
	h.calcSignature()
	h.category = h.classify()

	return h, nil
}

// NewFromString builds a hand from comma-separated two-character notation,
// i.e. "8C,7D,6S,4D,5S"
func NewFromString(s string) (*Hand, error) {
	cards, err := deck.CardsFromString(s)
	if err != nil {
		return nil, err
	}

	return New(cards...)
}

// normalize sorts the cards descending by rank, then rotates A-5-4-3-2
// into the canonical 5-4-3-2-A. No other reordering takes place.
func normalize(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	if sorted[0].Rank == deck.Ace &&
		sorted[1].Rank == deck.Five &&
		sorted[2].Rank == deck.Four &&
		sorted[3].Rank == deck.Three &&
		sorted[4].Rank == deck.Two {
		sorted = append(sorted[1:], sorted[0])
	}

	return sorted
}

// calcSignature groups the cards by rank and orders the (rank, frequency)
// pairs by frequency descending, breaking ties by rank descending
func (h *Hand) calcSignature() {
	counts := make(map[int]int)
	for _, card := range h.cards {
		counts[card.Rank]++
	}

	type rankFreq struct {
		rank int
		freq int
	}

	pairs := make([]rankFreq, 0, len(counts))
	for rank, freq := range counts {
		pairs = append(pairs, rankFreq{rank: rank, freq: freq})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].freq != pairs[j].freq {
			return pairs[i].freq > pairs[j].freq
		}

		return pairs[i].rank > pairs[j].rank
	})

	h.sigRank = make([]int, len(pairs))
	h.sigFreq = make([]int, len(pairs))
	for i, p := range pairs {
		h.sigRank[i] = p.rank
		h.sigFreq[i] = p.freq
	}
}

// classify determines the hand's category. The frequency signature pins
// down every paired category outright; the five-distinct-rank shapes are
// split by the flush and straight predicates.
func (h *Hand) classify() Category {
	flush := h.isFlush()
	straight := h.isStraight()

	switch {
	case straight && flush:
		return StraightFlush
	case len(h.sigFreq) == 2 && h.sigFreq[0] == 4:
		return FourOfAKind
	case len(h.sigFreq) == 2:
		// [3,2]
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case len(h.sigFreq) == 3 && h.sigFreq[0] == 3:
		return ThreeOfAKind
	case len(h.sigFreq) == 3:
		// [2,2,1]
		return TwoPair
	case len(h.sigFreq) == 4:
		return OnePair
	default:
		return HighCard
	}
}

// isFlush returns true if all five cards share a suit
func (h *Hand) isFlush() bool {
	for _, card := range h.cards[1:] {
		if !card.SameSuit(h.cards[0]) {
			return false
		}
	}

	return true
}

// isStraight returns true if the normalized ranks run down consecutively,
// or if the hand is the canonical wheel (5-4-3-2-A)
func (h *Hand) isStraight() bool {
	if h.isWheel() {
		return true
	}

	for i := 1; i < len(h.cards); i++ {
		if h.cards[i].Rank+1 != h.cards[i-1].Rank {
			return false
		}
	}

	return true
}

// isWheel returns true if the hand is the low-ace straight in canonical order
func (h *Hand) isWheel() bool {
	return h.cards[0].Rank == deck.Five &&
		h.cards[1].Rank == deck.Four &&
		h.cards[2].Rank == deck.Three &&
		h.cards[3].Rank == deck.Two &&
		h.cards[4].Rank == deck.Ace
}

// Category returns the hand's category
func (h *Hand) Category() Category {
	return h.category
}

// Cards returns the cards in normalized order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s: %s", strings.ReplaceAll(deck.CardsToString(h.cards), ",", " "), h.category)
}
