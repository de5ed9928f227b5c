package blackjack

import "math/rand"

// DeckSize is the number of cards in a fresh single deck.
const DeckSize = 52

// Deck is a shuffled single deck. Deal pops the top card; an exhausted
// deck reshuffles automatically instead of failing, so callers never
// see an underflow.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a freshly shuffled deck using the given source. A nil
// rng falls back to the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset regenerates all 52 cards and shuffles them uniformly.
func (d *Deck) Reset() {
	if cap(d.cards) < DeckSize {
		d.cards = make([]Card, 0, DeckSize)
	}
	d.cards = d.cards[:0]
	for s := Spades; s <= Clubs; s++ {
		for r := Ace; r <= King; r++ {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	shuffle := rand.Shuffle
	if d.rng != nil {
		shuffle = d.rng.Shuffle
	}
	shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card, reshuffling first if the deck
// is empty.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.Reset()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining reports how many cards are left before an automatic
// reshuffle.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
