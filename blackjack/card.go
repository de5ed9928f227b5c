// Package blackjack implements a single-deck blackjack round with a
// triple-payout natural bonus, driven by frame ticks rather than
// wall-clock timers so rounds are deterministic under test.
package blackjack

import "fmt"

type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank is 1 (ace) through 13 (king).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Value is the rank's base score: face cards count 10, aces 11. Soft
// ace reduction happens in Score.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= 10:
		return 10
	default:
		return int(r)
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
