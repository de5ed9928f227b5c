package blackjack

import (
	"math/rand"
	"testing"
)

// stack builds a deck that deals the given cards in order.
func stack(cards ...Card) *Deck {
	d := &Deck{}
	for i := len(cards) - 1; i >= 0; i-- {
		d.cards = append(d.cards, cards[i])
	}
	return d
}

// testWallet tracks debits and credits against a balance.
type testWallet struct {
	balance int
}

func (w *testWallet) Debit(amount int) bool {
	if amount > w.balance {
		return false
	}
	w.balance -= amount
	return true
}

func (w *testWallet) Credit(amount int) { w.balance += amount }

func card(r Rank, s Suit) Card { return Card{Rank: r, Suit: s} }

func TestScoreAceReduction(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"hard total", []Card{card(10, Spades), card(9, Hearts)}, 19},
		{"soft ace stays eleven", []Card{card(Ace, Spades), card(6, Hearts)}, 17},
		{"one ace reduced", []Card{card(Ace, Spades), card(9, Hearts), card(5, Clubs)}, 15},
		{"two aces, one reduced", []Card{card(Ace, Spades), card(Ace, Hearts)}, 12},
		{"all aces reduced", []Card{card(Ace, Spades), card(Ace, Hearts), card(10, Clubs), card(9, Diamonds)}, 21},
		{"bust past all reductions", []Card{card(10, Spades), card(9, Hearts), card(5, Clubs)}, 24},
		{"face cards count ten", []Card{card(King, Spades), card(Queen, Hearts), card(Jack, Clubs)}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.hand); got != tt.want {
				t.Fatalf("Score(%v) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestIsNatural(t *testing.T) {
	if !IsNatural([]Card{card(Ace, Spades), card(King, Hearts)}) {
		t.Fatalf("ace plus king should be a natural")
	}
	if IsNatural([]Card{card(7, Spades), card(7, Hearts), card(7, Clubs)}) {
		t.Fatalf("three-card 21 is not a natural")
	}
	if IsNatural([]Card{card(10, Spades), card(9, Hearts)}) {
		t.Fatalf("19 is not a natural")
	}
}

func TestDeckDealsAllUniqueAndReshuffles(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	seen := make(map[Card]bool)
	for i := 0; i < DeckSize; i++ {
		c := d.Deal()
		if seen[c] {
			t.Fatalf("duplicate card %v before reshuffle", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("expected %d unique cards, got %d", DeckSize, len(seen))
	}
	if d.Remaining() != 0 {
		t.Fatalf("deck should be empty, has %d", d.Remaining())
	}
	// The 53rd deal auto-reshuffles instead of failing.
	_ = d.Deal()
	if d.Remaining() != DeckSize-1 {
		t.Fatalf("expected automatic reshuffle, remaining=%d", d.Remaining())
	}
}

func TestDealerStandsAtSeventeenOrBust(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w := &testWallet{balance: 1000}
		r := NewRound(NewDeck(rng), w, 0)
		if err := r.Bet(10); err != nil {
			t.Fatalf("bet: %v", err)
		}
		if r.Phase() == PhasePlayer {
			if err := r.Stand(); err != nil {
				t.Fatalf("stand: %v", err)
			}
		}
		if r.Phase() != PhaseSettled {
			t.Fatalf("round did not settle")
		}
		ds := r.DealerScore()
		if ds < 17 && r.Outcome() != OutcomeBlackjack && r.Outcome() != OutcomeLose {
			t.Fatalf("dealer stopped below 17 at %d without a natural in play", ds)
		}
	}
}

func TestNaturalPaysTriple(t *testing.T) {
	w := &testWallet{balance: 500}
	d := stack(
		card(Ace, Spades), card(King, Hearts), // player natural
		card(9, Clubs), card(7, Diamonds), // dealer
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if r.Outcome() != OutcomeBlackjack {
		t.Fatalf("outcome = %d, want blackjack", r.Outcome())
	}
	// 500 - 100 wager + 300 payout.
	if w.balance != 700 {
		t.Fatalf("balance = %d, want 700", w.balance)
	}
	if r.HoleHidden() {
		t.Fatalf("hole card should be revealed on settle")
	}
}

func TestBothNaturalsPush(t *testing.T) {
	w := &testWallet{balance: 500}
	d := stack(
		card(Ace, Spades), card(King, Hearts),
		card(Ace, Clubs), card(Queen, Diamonds),
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if r.Outcome() != OutcomePush {
		t.Fatalf("outcome = %d, want push", r.Outcome())
	}
	if w.balance != 500 {
		t.Fatalf("push must return exactly the wager, balance=%d", w.balance)
	}
}

func TestPlayerBustLosesWager(t *testing.T) {
	w := &testWallet{balance: 200}
	d := stack(
		card(10, Spades), card(9, Hearts),
		card(6, Clubs), card(7, Diamonds),
		card(5, Spades), // player hit -> 24
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(50); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.Hit(); err != nil {
		t.Fatalf("hit: %v", err)
	}
	if r.Outcome() != OutcomeLose {
		t.Fatalf("outcome = %d, want lose", r.Outcome())
	}
	if w.balance != 150 {
		t.Fatalf("bust must forfeit the wager, balance=%d", w.balance)
	}
	if r.Phase() != PhaseSettled {
		t.Fatalf("busted round should be settled")
	}
}

func TestStandAtNineteenLosesToDealerTwenty(t *testing.T) {
	// Player 10♠ 9♥ = 19; dealer 6♣ hidden, 7♦ visible; dealer reveals
	// 13, hits a 7 to 20 and wins.
	w := &testWallet{balance: 1000}
	d := stack(
		card(10, Spades), card(9, Hearts),
		card(6, Clubs), card(7, Diamonds),
		card(7, Clubs),
	)
	r := NewRound(d, w, 0.5)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if r.Outcome() != OutcomeNone || r.Phase() != PhasePlayer {
		t.Fatalf("no natural dealt, player should be to move")
	}
	if !r.HoleHidden() {
		t.Fatalf("hole card should be hidden during the player turn")
	}
	if r.DealerVisibleScore() != 7 {
		t.Fatalf("visible dealer score = %d, want 7", r.DealerVisibleScore())
	}
	if err := r.Stand(); err != nil {
		t.Fatalf("stand: %v", err)
	}
	if r.DealerScore() != 13 {
		t.Fatalf("revealed dealer score = %d, want 13", r.DealerScore())
	}
	// Two paced draws: the first hits to 20, the second resolves.
	r.Step(0.5)
	r.Step(0.25)
	r.Step(0.25)
	if r.Phase() != PhaseSettled {
		t.Fatalf("dealer turn should have settled, phase=%d", r.Phase())
	}
	if r.DealerScore() != 20 {
		t.Fatalf("dealer score = %d, want 20", r.DealerScore())
	}
	if r.Outcome() != OutcomeLose {
		t.Fatalf("dealer 20 beats player 19, outcome=%d", r.Outcome())
	}
	if w.balance != 900 {
		t.Fatalf("loss credits nothing, balance=%d", w.balance)
	}
}

func TestDoubleDownWinPaysDouble(t *testing.T) {
	// Bet 100, double down, win: 200 wagered returns plus 200 profit,
	// net +200 over the pre-bet baseline.
	w := &testWallet{balance: 1000}
	d := stack(
		card(6, Spades), card(5, Hearts), // player 11
		card(10, Clubs), card(7, Diamonds), // dealer 17, stands
		card(9, Spades), // double-down card -> 20
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.DoubleDown(); err != nil {
		t.Fatalf("double down: %v", err)
	}
	if r.Wager() != 200 {
		t.Fatalf("wager = %d, want 200", r.Wager())
	}
	if r.Outcome() != OutcomeWin {
		t.Fatalf("outcome = %d, want win", r.Outcome())
	}
	if w.balance != 1200 {
		t.Fatalf("balance = %d, want 1200", w.balance)
	}
}

func TestDoubleDownRequiresFunds(t *testing.T) {
	w := &testWallet{balance: 150}
	d := stack(
		card(6, Spades), card(5, Hearts),
		card(10, Clubs), card(7, Diamonds),
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.DoubleDown(); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if r.Wager() != 100 {
		t.Fatalf("failed double must not change the wager, got %d", r.Wager())
	}
	if r.Phase() != PhasePlayer {
		t.Fatalf("failed double must leave the player to move")
	}
}

func TestDoubleDownOnlyOnFirstTwoCards(t *testing.T) {
	w := &testWallet{balance: 1000}
	d := stack(
		card(2, Spades), card(3, Hearts),
		card(10, Clubs), card(7, Diamonds),
		card(4, Spades),
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.Hit(); err != nil {
		t.Fatalf("hit: %v", err)
	}
	if err := r.DoubleDown(); err != ErrDoubleAfterHit {
		t.Fatalf("expected ErrDoubleAfterHit, got %v", err)
	}
}

func TestBetValidation(t *testing.T) {
	w := &testWallet{balance: 50}
	r := NewRound(NewDeck(rand.New(rand.NewSource(7))), w, 0)
	if err := r.Bet(0); err != ErrBadWager {
		t.Fatalf("expected ErrBadWager, got %v", err)
	}
	if err := r.Bet(100); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if w.balance != 50 {
		t.Fatalf("failed bet must not move funds, balance=%d", w.balance)
	}
	if err := r.Bet(50); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.Bet(10); err != ErrWrongPhase {
		t.Fatalf("second bet in one round should fail, got %v", err)
	}
}

func TestDealerBustPaysWin(t *testing.T) {
	w := &testWallet{balance: 1000}
	d := stack(
		card(10, Spades), card(8, Hearts), // player 18
		card(6, Clubs), card(10, Diamonds), // dealer 16
		card(10, Hearts), // dealer hit -> 26, bust
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(100); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.Stand(); err != nil {
		t.Fatalf("stand: %v", err)
	}
	if r.Outcome() != OutcomeWin {
		t.Fatalf("dealer bust should be a player win, got %d", r.Outcome())
	}
	if w.balance != 1100 {
		t.Fatalf("win pays wager plus profit, balance=%d", w.balance)
	}
}

func TestPushReturnsWager(t *testing.T) {
	w := &testWallet{balance: 300}
	d := stack(
		card(10, Spades), card(8, Hearts), // player 18
		card(10, Clubs), card(8, Diamonds), // dealer 18
	)
	r := NewRound(d, w, 0)
	if err := r.Bet(75); err != nil {
		t.Fatalf("bet: %v", err)
	}
	if err := r.Stand(); err != nil {
		t.Fatalf("stand: %v", err)
	}
	if r.Outcome() != OutcomePush {
		t.Fatalf("equal totals should push, got %d", r.Outcome())
	}
	if w.balance != 300 {
		t.Fatalf("push returns exactly the wager, balance=%d", w.balance)
	}
}

func TestStepIgnoredOutsideDealerPhase(t *testing.T) {
	w := &testWallet{balance: 100}
	r := NewRound(NewDeck(rand.New(rand.NewSource(3))), w, 0.5)
	r.Step(10) // betting phase, no-op
	if r.Phase() != PhaseBetting {
		t.Fatalf("step outside dealer phase changed state")
	}
}
