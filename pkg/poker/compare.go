package poker

import (
	"errors"
	"fmt"
)

// ErrSharedCard is an error when the two hands being compared hold the same
// card. The hands must come from a single deck; this is a caller bug, not a
// gameplay outcome.
var ErrSharedCard = errors.New("hands share a card")

// Outcome is the three-way result of comparing two hands
type Outcome int

// Constants for outcome
const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first hand wins"
	case SecondWins:
		return "second hand wins"
	default:
		panic(fmt.Sprintf("unknown outcome: %d", int(o)))
	}
}

// Compare determines the winner between two hands.
// A higher category wins outright. Straights and straight flushes of the
// same category are decided by the top card of the run alone, which keeps
// the wheel (stored 5-4-3-2-A) the lowest straight. Every other category
// is decided by the first differing rank in the signature walk; if none
// differs the hands tie. Suits never break ties.
func Compare(first, second *Hand) (Outcome, error) {
	for _, c1 := range first.cards {
		for _, c2 := range second.cards {
			if c1.Equal(c2) {
				return Tie, fmt.Errorf("%w: %s", ErrSharedCard, c1)
			}
		}
	}

	if first.category != second.category {
		if first.category > second.category {
			return FirstWins, nil
		}

		return SecondWins, nil
	}

	if first.category == Straight || first.category == StraightFlush {
		switch {
		case first.cards[0].Rank > second.cards[0].Rank:
			return FirstWins, nil
		case first.cards[0].Rank < second.cards[0].Rank:
			return SecondWins, nil
		}

		return Tie, nil
	}

	// same category means the same signature shape on both sides
	for i := range first.sigRank {
		switch {
		case first.sigRank[i] > second.sigRank[i]:
			return FirstWins, nil
		case first.sigRank[i] < second.sigRank[i]:
			return SecondWins, nil
		}
	}

	return Tie, nil
}
