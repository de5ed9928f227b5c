package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"stardrift/ui"
)

// Docking panel for motherships and stargates: commodity trading,
// upgrades, repair and the blackjack lounge. Visibility is gated on
// docking range; drifting away closes the panel.

var (
	currentDock *Station

	dockTitleTxt *ui.Item
	tradeRows    map[Resource]*tradeRow
	upgradeBtns  map[string]*ui.Item
	repairBtn    *ui.Item
	loungeBtn    *ui.Item
)

type tradeRow struct {
	label *ui.Item
	buy   *ui.Item
	sell  *ui.Item
	res   Resource
}

func makeMothershipWindow() {
	if mothershipWin != nil {
		return
	}
	mothershipWin = ui.NewWindow()
	mothershipWin.Title = "Docking"
	mothershipWin.AutoSize = true
	mothershipWin.Position = ui.Point{X: 700, Y: 140}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)
	const width float32 = 300

	dockTitleTxt, _ = ui.NewText()
	dockTitleTxt.Size = ui.Point{X: width, Y: 18}
	dockTitleTxt.FontSize = 12
	flow.AddItem(dockTitleTxt)

	tradeRows = make(map[Resource]*tradeRow)
	for _, r := range []Resource{ResourceCrystal, ResourceTitanium} {
		r := r
		row := &tradeRow{res: r}
		rowFlow := ui.NewFlow(ui.FLOW_HORIZONTAL)

		row.label, _ = ui.NewText()
		row.label.Size = ui.Point{X: 150, Y: 20}
		row.label.FontSize = 11
		rowFlow.AddItem(row.label)

		var buyEvents, sellEvents *ui.EventHandler
		row.buy, buyEvents = ui.NewButton()
		row.buy.Text = fmt.Sprintf("Buy %d", tradeLot)
		row.buy.Size = ui.Point{X: 64, Y: 20}
		row.buy.FontSize = 10
		buyEvents.Handle = func(ev ui.Event) {
			if ev.Type != ui.EventClick || currentDock == nil {
				return
			}
			if currentDock.buyResource(ship, r) {
				playSound(sndChip)
			} else {
				showNotification("Purchase failed: cargo or gold short")
			}
		}
		rowFlow.AddItem(row.buy)

		row.sell, sellEvents = ui.NewButton()
		row.sell.Text = fmt.Sprintf("Sell %d", tradeLot)
		row.sell.Size = ui.Point{X: 64, Y: 20}
		row.sell.FontSize = 10
		sellEvents.Handle = func(ev ui.Event) {
			if ev.Type != ui.EventClick || currentDock == nil {
				return
			}
			if currentDock.sellResource(ship, r) {
				playSound(sndChip)
			} else {
				showNotification(fmt.Sprintf("Not enough %s to sell", r))
			}
		}
		rowFlow.AddItem(row.sell)

		tradeRows[r] = row
		flow.AddItem(rowFlow)
	}

	upgradeBtns = make(map[string]*ui.Item)
	upgrades := []struct {
		key    string
		action func() bool
	}{
		{"shield", func() bool { return currentDock.upgradeShield(ship) }},
		{"cargo", func() bool { return currentDock.upgradeCargo(ship) }},
		{"weapon", func() bool { return currentDock.upgradeWeapon(ship) }},
	}
	for _, up := range upgrades {
		up := up
		btn, events := ui.NewButton()
		btn.Size = ui.Point{X: width, Y: 22}
		btn.FontSize = 11
		events.Handle = func(ev ui.Event) {
			if ev.Type != ui.EventClick || currentDock == nil {
				return
			}
			if up.action() {
				playSound(sndChip)
			} else {
				showNotification("Upgrade failed: tier cap or gold short")
			}
		}
		upgradeBtns[up.key] = btn
		flow.AddItem(btn)
	}

	var repairEvents, loungeEvents *ui.EventHandler
	repairBtn, repairEvents = ui.NewButton()
	repairBtn.Size = ui.Point{X: width, Y: 22}
	repairBtn.FontSize = 11
	repairEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventClick || currentDock == nil {
			return
		}
		if currentDock.repairShip(ship) {
			showNotification("Hull repaired")
		} else {
			showNotification("Repair failed: gold short")
		}
	}
	flow.AddItem(repairBtn)

	loungeBtn, loungeEvents = ui.NewButton()
	loungeBtn.Text = "Blackjack lounge"
	loungeBtn.Size = ui.Point{X: width, Y: 22}
	loungeBtn.FontSize = 11
	loungeEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventClick && currentDock != nil {
			blackjackWin.MarkOpen()
		}
	}
	flow.AddItem(loungeBtn)

	mothershipWin.AddItem(flow)
	mothershipWin.Refresh()
}

func updateMothershipWindow() {
	if mothershipWin == nil {
		return
	}
	currentDock = dockedStation(gameWorld.stations, ship)

	if currentDock == nil {
		if mothershipWin.IsOpen() {
			mothershipWin.MarkClosed()
			if blackjackWin.IsOpen() {
				blackjackWin.MarkClosed()
			}
			showNotification("Undocked")
		}
		return
	}
	if !mothershipWin.IsOpen() {
		return
	}

	dockTitleTxt.Text = currentDock.Name
	for r, row := range tradeRows {
		price, ok := currentDock.Prices[r]
		if !ok {
			row.label.Text = fmt.Sprintf("%s: not traded", r)
			row.buy.Disabled = true
			row.sell.Disabled = true
			continue
		}
		row.label.Text = fmt.Sprintf("%s %d | buy %s / sell %s", r, ship.Balance(r),
			humanize.Comma(int64(price.Buy)), humanize.Comma(int64(price.Sell)))
		row.buy.Disabled = false
		row.sell.Disabled = false
	}

	upgradeBtns["shield"].Text = upgradeLabel("Shield", ship.ShieldTier)
	upgradeBtns["cargo"].Text = upgradeLabel("Cargo", ship.CargoTier)
	upgradeBtns["weapon"].Text = upgradeLabel("Weapon", ship.WeaponTier)

	missing := int(ship.MaxHull - ship.Hull)
	if missing > 0 {
		repairBtn.Text = fmt.Sprintf("Repair hull (%s gold)", humanize.Comma(int64(missing*repairCost)))
		repairBtn.Disabled = false
	} else {
		repairBtn.Text = "Hull intact"
		repairBtn.Disabled = true
	}
	mothershipWin.Refresh()
}

func upgradeLabel(name string, tier int) string {
	if tier >= maxUpgradeTier {
		return fmt.Sprintf("%s tier %d (max)", name, tier)
	}
	return fmt.Sprintf("%s tier %d > %d (%s gold)", name, tier, tier+1,
		humanize.Comma(int64(upgradeCost(tier))))
}
