package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"stardrift/blackjack"
	"stardrift/ui"
)

// Blackjack lounge. One Round at a time against a shared deck; the
// dealer's draws are paced by the frame update so the reveal reads as
// animation instead of an instant settle.

const bjDealerDelay = 0.5

var (
	bjDeck     *blackjack.Deck
	bjRound    *blackjack.Round
	bjCurrency = ResourceGold

	bjBalanceTxt *ui.Item
	bjDealerTxt  *ui.Item
	bjPlayerTxt  *ui.Item
	bjStatusTxt  *ui.Item
	bjBetSlider  *ui.Item
	bjDealBtn    *ui.Item
	bjHitBtn     *ui.Item
	bjStandBtn   *ui.Item
	bjDoubleBtn  *ui.Item
)

func makeBlackjackWindow() {
	if blackjackWin != nil {
		return
	}
	bjDeck = blackjack.NewDeck(gameWorld.rng)

	blackjackWin = ui.NewWindow()
	blackjackWin.Title = "Blackjack"
	blackjackWin.AutoSize = true
	blackjackWin.Position = ui.Point{X: 560, Y: 320}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)
	const width float32 = 260

	bjBalanceTxt, _ = ui.NewText()
	bjBalanceTxt.Size = ui.Point{X: width, Y: 16}
	bjBalanceTxt.FontSize = 11
	flow.AddItem(bjBalanceTxt)

	currencyDD, currencyEvents := ui.NewDropdown()
	currencyDD.Size = ui.Point{X: width, Y: 22}
	currencyDD.FontSize = 11
	for _, r := range allResources() {
		currencyDD.Options = append(currencyDD.Options, r.String())
	}
	currencyEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventDropdownSelected {
			bjCurrency = allResources()[ev.Index]
			playSound(sndClick)
		}
	}
	flow.AddItem(currencyDD)

	bjBetSlider, _ = ui.NewSlider()
	bjBetSlider.Size = ui.Point{X: width, Y: 20}
	bjBetSlider.FontSize = 10
	bjBetSlider.MinValue = 10
	bjBetSlider.MaxValue = 500
	bjBetSlider.Value = 100
	bjBetSlider.IntOnly = true
	flow.AddItem(bjBetSlider)

	bjDealerTxt, _ = ui.NewText()
	bjDealerTxt.Size = ui.Point{X: width, Y: 18}
	bjDealerTxt.FontSize = 12
	flow.AddItem(bjDealerTxt)

	bjPlayerTxt, _ = ui.NewText()
	bjPlayerTxt.Size = ui.Point{X: width, Y: 18}
	bjPlayerTxt.FontSize = 12
	flow.AddItem(bjPlayerTxt)

	bjStatusTxt, _ = ui.NewText()
	bjStatusTxt.Size = ui.Point{X: width, Y: 18}
	bjStatusTxt.FontSize = 12
	flow.AddItem(bjStatusTxt)

	btnRow := ui.NewFlow(ui.FLOW_HORIZONTAL)
	var dealEvents, hitEvents, standEvents, doubleEvents *ui.EventHandler

	bjDealBtn, dealEvents = ui.NewButton()
	bjDealBtn.Text = "Deal"
	bjDealBtn.Size = ui.Point{X: 60, Y: 22}
	bjDealBtn.FontSize = 11
	dealEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventClick {
			return
		}
		if bjRound != nil && bjRound.Phase() != blackjack.PhaseSettled {
			return
		}
		bjRound = blackjack.NewRound(bjDeck, resourceWallet{ship: ship, res: bjCurrency}, bjDealerDelay)
		if err := bjRound.Bet(int(bjBetSlider.Value)); err != nil {
			showNotification("Bet refused: " + err.Error())
			bjRound = nil
			return
		}
		playSound(sndChip)
		playSound(sndDeal)
	}
	btnRow.AddItem(bjDealBtn)

	bjHitBtn, hitEvents = ui.NewButton()
	bjHitBtn.Text = "Hit"
	bjHitBtn.Size = ui.Point{X: 60, Y: 22}
	bjHitBtn.FontSize = 11
	hitEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventClick && bjRound != nil {
			if bjRound.Hit() == nil {
				playSound(sndDeal)
			}
		}
	}
	btnRow.AddItem(bjHitBtn)

	bjStandBtn, standEvents = ui.NewButton()
	bjStandBtn.Text = "Stand"
	bjStandBtn.Size = ui.Point{X: 60, Y: 22}
	bjStandBtn.FontSize = 11
	standEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventClick && bjRound != nil {
			bjRound.Stand()
		}
	}
	btnRow.AddItem(bjStandBtn)

	bjDoubleBtn, doubleEvents = ui.NewButton()
	bjDoubleBtn.Text = "Double"
	bjDoubleBtn.Size = ui.Point{X: 60, Y: 22}
	bjDoubleBtn.FontSize = 11
	doubleEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventClick || bjRound == nil {
			return
		}
		switch err := bjRound.DoubleDown(); err {
		case nil:
			playSound(sndChip)
			playSound(sndDeal)
		case blackjack.ErrInsufficientFunds:
			showNotification("Not enough " + bjCurrency.String() + " to double")
		case blackjack.ErrDoubleAfterHit:
			showNotification("Double down only on the first two cards")
		}
	}
	btnRow.AddItem(bjDoubleBtn)
	flow.AddItem(btnRow)

	blackjackWin.AddItem(flow)
	blackjackWin.Refresh()
}

func handString(cards []blackjack.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func bjStatus() string {
	if bjRound == nil {
		return "PLACE YOUR BET"
	}
	switch bjRound.Phase() {
	case blackjack.PhasePlayer:
		return "YOUR MOVE"
	case blackjack.PhaseDealer:
		return "DEALER DRAWS"
	case blackjack.PhaseSettled:
		switch bjRound.Outcome() {
		case blackjack.OutcomeBlackjack:
			return fmt.Sprintf("BLACKJACK! +%d %s", 3*bjRound.Wager(), bjCurrency)
		case blackjack.OutcomeWin:
			return fmt.Sprintf("YOU WIN +%d %s", 2*bjRound.Wager(), bjCurrency)
		case blackjack.OutcomePush:
			return "PUSH"
		default:
			return "DEALER WINS"
		}
	}
	return "PLACE YOUR BET"
}

func updateBlackjackWindow(dt float64) {
	if blackjackWin == nil || !blackjackWin.IsOpen() {
		return
	}
	if bjRound != nil {
		before := len(bjRound.Dealer())
		bjRound.Step(dt)
		if len(bjRound.Dealer()) > before {
			playSound(sndDeal)
		}
	}

	bjBalanceTxt.Text = fmt.Sprintf("%s: %s", bjCurrency,
		humanize.Comma(int64(ship.Balance(bjCurrency))))
	bjBetSlider.Text = fmt.Sprintf("Bet %d", int(bjBetSlider.Value))

	if bjRound == nil {
		bjDealerTxt.Text = "Dealer: -"
		bjPlayerTxt.Text = "You: -"
	} else {
		d := handString(bjRound.DealerVisible())
		if bjRound.HoleHidden() {
			bjDealerTxt.Text = fmt.Sprintf("Dealer: ?? %s (%d)", d, bjRound.DealerVisibleScore())
		} else {
			bjDealerTxt.Text = fmt.Sprintf("Dealer: %s (%d)", d, bjRound.DealerScore())
		}
		bjPlayerTxt.Text = fmt.Sprintf("You: %s (%d)", handString(bjRound.Player()), bjRound.PlayerScore())
	}
	bjStatusTxt.Text = bjStatus()

	inHand := bjRound != nil && bjRound.Phase() == blackjack.PhasePlayer
	bjDealBtn.Disabled = bjRound != nil && bjRound.Phase() != blackjack.PhaseSettled
	bjHitBtn.Disabled = !inHand
	bjStandBtn.Disabled = !inHand
	bjDoubleBtn.Disabled = !inHand || len(bjRound.Player()) != 2
	blackjackWin.Refresh()
}
