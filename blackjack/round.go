package blackjack

import "errors"

type Phase uint8

const (
	PhaseBetting Phase = iota
	PhasePlayer
	PhaseDealer
	PhaseSettled
)

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeBlackjack
	OutcomeLose
	OutcomePush
)

var (
	ErrWrongPhase        = errors.New("blackjack: action not allowed in this phase")
	ErrBadWager          = errors.New("blackjack: wager must be positive")
	ErrInsufficientFunds = errors.New("blackjack: insufficient funds")
	ErrDoubleAfterHit    = errors.New("blackjack: double down only on the first two cards")
)

// Wallet is the resource account a wager is placed against. Debit
// reports false without changing the balance when funds are short.
type Wallet interface {
	Debit(amount int) bool
	Credit(amount int)
}

// Round is one hand of blackjack against the dealer. Dealer draws are
// paced by Step with elapsed-time accumulation; a round constructed
// with no dealer delay resolves the dealer turn synchronously.
type Round struct {
	deck        *Deck
	wallet      Wallet
	dealerDelay float64

	player  []Card
	dealer  []Card
	phase   Phase
	outcome Outcome
	wager   int

	holeHidden bool
	acc        float64
}

func NewRound(deck *Deck, wallet Wallet, dealerDelay float64) *Round {
	return &Round{deck: deck, wallet: wallet, dealerDelay: dealerDelay}
}

// Bet debits the wager and deals the opening hands: two player cards,
// then the dealer's hole card and upcard. Naturals settle immediately,
// before any player action.
func (r *Round) Bet(amount int) error {
	if r.phase != PhaseBetting {
		return ErrWrongPhase
	}
	if amount <= 0 {
		return ErrBadWager
	}
	if !r.wallet.Debit(amount) {
		return ErrInsufficientFunds
	}
	r.wager = amount
	r.player = append(r.player[:0], r.deck.Deal(), r.deck.Deal())
	r.dealer = append(r.dealer[:0], r.deck.Deal(), r.deck.Deal())
	r.holeHidden = true

	playerNat := IsNatural(r.player)
	dealerNat := IsNatural(r.dealer)
	switch {
	case playerNat && dealerNat:
		r.holeHidden = false
		r.settle(OutcomePush)
	case playerNat:
		r.holeHidden = false
		r.settle(OutcomeBlackjack)
	case dealerNat:
		r.holeHidden = false
		r.settle(OutcomeLose)
	default:
		r.phase = PhasePlayer
	}
	return nil
}

// Hit deals the player one card; busting ends the round immediately.
func (r *Round) Hit() error {
	if r.phase != PhasePlayer {
		return ErrWrongPhase
	}
	r.player = append(r.player, r.deck.Deal())
	if Score(r.player) > 21 {
		r.holeHidden = false
		r.settle(OutcomeLose)
	}
	return nil
}

// Stand ends the player turn and reveals the hole card.
func (r *Round) Stand() error {
	if r.phase != PhasePlayer {
		return ErrWrongPhase
	}
	r.startDealer()
	return nil
}

// DoubleDown doubles the wager after validating the balance, deals
// exactly one card, then stands (or settles on bust). Only legal as the
// first player action.
func (r *Round) DoubleDown() error {
	if r.phase != PhasePlayer {
		return ErrWrongPhase
	}
	if len(r.player) != 2 {
		return ErrDoubleAfterHit
	}
	if !r.wallet.Debit(r.wager) {
		return ErrInsufficientFunds
	}
	r.wager *= 2
	r.player = append(r.player, r.deck.Deal())
	if Score(r.player) > 21 {
		r.holeHidden = false
		r.settle(OutcomeLose)
		return nil
	}
	r.startDealer()
	return nil
}

// Step advances dealer-draw pacing by dt seconds. It is a no-op outside
// the dealer phase.
func (r *Round) Step(dt float64) {
	if r.phase != PhaseDealer {
		return
	}
	r.acc += dt
	for r.phase == PhaseDealer && r.acc >= r.dealerDelay {
		r.acc -= r.dealerDelay
		r.dealerDraw()
	}
}

func (r *Round) startDealer() {
	r.holeHidden = false
	r.phase = PhaseDealer
	r.acc = 0
	if r.dealerDelay <= 0 {
		for r.phase == PhaseDealer {
			r.dealerDraw()
		}
	}
}

// dealerDraw performs one step of the dealer turn: hit below 17,
// otherwise resolve. Each call either draws a card or settles, so the
// turn always terminates with the dealer at 17+ or bust.
func (r *Round) dealerDraw() {
	ds := Score(r.dealer)
	if ds < 17 {
		r.dealer = append(r.dealer, r.deck.Deal())
		if Score(r.dealer) > 21 {
			r.settle(OutcomeWin)
		}
		return
	}
	ps := Score(r.player)
	switch {
	case ps > ds:
		r.settle(OutcomeWin)
	case ps < ds:
		r.settle(OutcomeLose)
	default:
		r.settle(OutcomePush)
	}
}

// settle credits the payout: an ordinary win returns the wager plus
// equal profit, a natural returns triple the wager, a push returns the
// wager unchanged and a loss credits nothing.
func (r *Round) settle(o Outcome) {
	r.outcome = o
	r.phase = PhaseSettled
	switch o {
	case OutcomeWin:
		r.wallet.Credit(2 * r.wager)
	case OutcomeBlackjack:
		r.wallet.Credit(3 * r.wager)
	case OutcomePush:
		r.wallet.Credit(r.wager)
	}
}

func (r *Round) Phase() Phase     { return r.phase }
func (r *Round) Outcome() Outcome { return r.outcome }
func (r *Round) Wager() int       { return r.wager }
func (r *Round) HoleHidden() bool { return r.holeHidden }

// Player returns the player hand; the slice is shared, callers must not
// modify it.
func (r *Round) Player() []Card { return r.player }

// Dealer returns the full dealer hand including the hole card.
func (r *Round) Dealer() []Card { return r.dealer }

// DealerVisible returns only the dealer cards the player may see; the
// hole card (dealt first) is omitted while hidden.
func (r *Round) DealerVisible() []Card {
	if r.holeHidden && len(r.dealer) > 0 {
		return r.dealer[1:]
	}
	return r.dealer
}

func (r *Round) PlayerScore() int { return Score(r.player) }
func (r *Round) DealerScore() int { return Score(r.dealer) }

// DealerVisibleScore scores only the visible dealer cards.
func (r *Round) DealerVisibleScore() int { return Score(r.DealerVisible()) }
