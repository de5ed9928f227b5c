package blackjack

// Score sums a hand with aces counted as 11, then downgrades aces to 1
// one at a time while the total is over 21. The result exceeds 21 only
// when no ace reduction can save the hand.
func Score(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.Rank.Value()
		if c.Rank == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural reports whether a two-card hand is a natural blackjack.
func IsNatural(hand []Card) bool {
	return len(hand) == 2 && Score(hand) == 21
}
