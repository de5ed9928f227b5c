package main

import (
	"fmt"

	"stardrift/ui"
)

// Star map: system list with selection, jump cost readout and a travel
// request with a boolean-success contract.

var (
	selectedSystem string
	systemButtons  map[string]*ui.Item
	mapInfoTxt     *ui.Item
	travelBtn      *ui.Item
)

func makeStarMapWindow() {
	if starMapWin != nil {
		return
	}
	starMapWin = ui.NewWindow()
	starMapWin.Title = "Star Map [M]"
	starMapWin.AutoSize = true
	starMapWin.Position = ui.Point{X: 420, Y: 120}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)
	const width float32 = 220

	systemButtons = make(map[string]*ui.Item)
	for _, name := range nav.SystemNames() {
		btn, events := ui.NewButton()
		btn.Text = name
		btn.Size = ui.Point{X: width, Y: 22}
		btn.FontSize = 11
		name := name
		events.Handle = func(ev ui.Event) {
			if ev.Type == ui.EventClick {
				selectedSystem = name
				playSound(sndClick)
			}
		}
		systemButtons[name] = btn
		flow.AddItem(btn)
	}

	mapInfoTxt, _ = ui.NewText()
	mapInfoTxt.Size = ui.Point{X: width, Y: 44}
	mapInfoTxt.FontSize = 11
	mapInfoTxt.Margin = 6
	flow.AddItem(mapInfoTxt)

	var travelEvents *ui.EventHandler
	travelBtn, travelEvents = ui.NewButton()
	travelBtn.Text = "Travel"
	travelBtn.Size = ui.Point{X: width, Y: 24}
	travelBtn.FontSize = 12
	travelEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventClick || selectedSystem == "" {
			return
		}
		if !nav.TravelTo(selectedSystem) {
			showNotification("Jump failed: check fuel and destination")
			return
		}
	}
	flow.AddItem(travelBtn)

	starMapWin.AddItem(flow)
	starMapWin.OnClose = func() { selectedSystem = "" }
	starMapWin.Refresh()
}

func updateStarMapWindow() {
	if starMapWin == nil || !starMapWin.IsOpen() {
		return
	}
	cur := nav.CurrentSystem()
	accent := ui.Color{R: 60, G: 110, B: 80, A: 255}
	for name, btn := range systemButtons {
		switch name {
		case cur.Name:
			btn.Color = accent
		case selectedSystem:
			btn.Color = ui.Color{R: 70, G: 90, B: 140, A: 255}
		default:
			btn.Color = ui.Color{}
		}
	}

	if sel := nav.Find(selectedSystem); sel != nil && sel.Name != cur.Name {
		cost := fuelCostTo(cur, sel)
		dist := cur.Pos.Sub(sel.Pos).Length()
		mapInfoTxt.Text = fmt.Sprintf("%s (%s)\nDistance %.0f ly, fuel %.0f",
			sel.Name, sel.Security, dist, cost)
		travelBtn.Disabled = ship.Fuel < cost
	} else {
		mapInfoTxt.Text = fmt.Sprintf("Current: %s (%s)", cur.Name, cur.Security)
		travelBtn.Disabled = true
	}
	starMapWin.Refresh()
}
