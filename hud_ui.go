package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"

	"stardrift/ui"
)

// HUD: the persistent vitals window. Bars and labels are created once
// and hold direct references; the per-frame update only writes values.
var (
	shieldBar  *ui.Item
	hullBar    *ui.Item
	energyBar  *ui.Item
	fuelBar    *ui.Item
	creditsTxt *ui.Item
	cargoTxt   *ui.Item
	weaponTxt  *ui.Item
	hordeTxt   *ui.Item
	fpsTxt     *ui.Item
)

const hudBarW, hudBarH = 170, 16

func makeHUDBar(flow *ui.Item, c ui.Color) *ui.Item {
	bar := ui.NewProgressBar()
	bar.Size = ui.Point{X: hudBarW, Y: hudBarH}
	bar.FontSize = 10
	bar.Color = c
	bar.Margin = 4
	flow.AddItem(bar)
	return bar
}

func makeHUDText(flow *ui.Item) *ui.Item {
	t, _ := ui.NewText()
	t.Size = ui.Point{X: hudBarW, Y: 16}
	t.FontSize = 11
	t.Margin = 2
	flow.AddItem(t)
	return t
}

func makeHUDWindow() {
	if hudWin != nil {
		return
	}
	hudWin = ui.NewWindow()
	hudWin.Title = "Ship"
	hudWin.Closable = false
	hudWin.AutoSize = true
	hudWin.Position = ui.Point{X: 10, Y: 10}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)

	shieldBar = makeHUDBar(flow, ui.Color{R: 90, G: 170, B: 255, A: 255})
	hullBar = makeHUDBar(flow, ui.Color{R: 230, G: 120, B: 90, A: 255})
	energyBar = makeHUDBar(flow, ui.Color{R: 240, G: 210, B: 90, A: 255})
	fuelBar = makeHUDBar(flow, ui.Color{R: 150, G: 220, B: 130, A: 255})

	creditsTxt = makeHUDText(flow)
	cargoTxt = makeHUDText(flow)
	weaponTxt = makeHUDText(flow)
	hordeTxt = makeHUDText(flow)
	fpsTxt = makeHUDText(flow)

	hudWin.AddItem(flow)
	hudWin.Refresh()
}

func setBar(bar *ui.Item, label string, cur, max float64) {
	if bar == nil {
		return
	}
	if cur < 0 {
		cur = 0
	}
	bar.MinValue = 0
	bar.MaxValue = float32(max)
	bar.Value = float32(cur)
	bar.Text = fmt.Sprintf("%s %.0f/%.0f", label, cur, max)
}

func updateHUDWindow() {
	if hudWin == nil || !hudWin.IsOpen() || ship == nil {
		return
	}
	setBar(shieldBar, "SHD", ship.Shield, ship.MaxShield)
	setBar(hullBar, "HUL", ship.Hull, ship.MaxHull)
	setBar(energyBar, "NRG", ship.Energy, ship.MaxEnergy)
	setBar(fuelBar, "FUE", ship.Fuel, ship.MaxFuel)

	creditsTxt.Text = "Gold: " + humanize.Comma(int64(ship.Balance(ResourceGold)))
	cargoTxt.Text = fmt.Sprintf("Cargo: %d/%d", ship.CargoUsed, ship.CargoMax)
	if w := weapons.ActiveWeapon(); w != nil {
		weaponTxt.Text = "Weapon: " + w.Name
	}

	if gameWorld.horde.active {
		elapsed := time.Duration(gameWorld.horde.elapsed) * time.Second
		hordeTxt.Text = fmt.Sprintf("Wave %d - %s", gameWorld.horde.wave,
			durafmt.Parse(elapsed).LimitFirstN(2).String())
		hordeTxt.Invisible = false
	} else {
		hordeTxt.Invisible = true
	}

	if gs.ShowFPS {
		fpsTxt.Text = fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())
		fpsTxt.Invisible = false
	} else {
		fpsTxt.Invisible = true
	}
	hudWin.Refresh()
}
