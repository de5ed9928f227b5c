package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stardrift/mathx"
	"stardrift/ui"
)

var (
	enemyCountTxt *ui.Item
	targetNameTxt *ui.Item
	targetHPBar   *ui.Item
	targetDistTxt *ui.Item
	lockBtn       *ui.Item
	clearLockBtn  *ui.Item
	miningCB      *ui.Item
	turretCB      *ui.Item
	shieldCB      *ui.Item
)

func makeCombatWindow() {
	if combatWin != nil {
		return
	}
	combatWin = ui.NewWindow()
	combatWin.Title = "Combat"
	combatWin.AutoSize = true
	combatWin.Position = ui.Point{X: 10, Y: 260}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)
	const width float32 = 180

	enemyCountTxt, _ = ui.NewText()
	enemyCountTxt.Size = ui.Point{X: width, Y: 16}
	enemyCountTxt.FontSize = 11
	flow.AddItem(enemyCountTxt)

	targetNameTxt, _ = ui.NewText()
	targetNameTxt.Size = ui.Point{X: width, Y: 16}
	targetNameTxt.FontSize = 11
	flow.AddItem(targetNameTxt)

	targetHPBar = ui.NewProgressBar()
	targetHPBar.Size = ui.Point{X: width, Y: 14}
	targetHPBar.FontSize = 9
	targetHPBar.Color = ui.Color{R: 235, G: 80, B: 80, A: 255}
	flow.AddItem(targetHPBar)

	targetDistTxt, _ = ui.NewText()
	targetDistTxt.Size = ui.Point{X: width, Y: 16}
	targetDistTxt.FontSize = 11
	flow.AddItem(targetDistTxt)

	btnRow := ui.NewFlow(ui.FLOW_HORIZONTAL)
	var lockEvents, clearEvents *ui.EventHandler
	lockBtn, lockEvents = ui.NewButton()
	lockBtn.Text = "Lock [T]"
	lockBtn.Size = ui.Point{X: 86, Y: 22}
	lockBtn.FontSize = 11
	lockEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventClick {
			if _, ok := combat.CycleLock(); ok {
				playSound(sndLock)
			} else {
				showNotification("No targets in range")
			}
		}
	}
	btnRow.AddItem(lockBtn)

	clearLockBtn, clearEvents = ui.NewButton()
	clearLockBtn.Text = "Clear [Y]"
	clearLockBtn.Size = ui.Point{X: 86, Y: 22}
	clearLockBtn.FontSize = 11
	clearEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventClick {
			combat.ClearLock()
		}
	}
	btnRow.AddItem(clearLockBtn)
	flow.AddItem(btnRow)

	var miningEvents, turretEvents, shieldEvents *ui.EventHandler
	miningCB, miningEvents = ui.NewCheckbox()
	miningCB.Text = "Mining beam"
	miningCB.Size = ui.Point{X: width, Y: 18}
	miningCB.FontSize = 11
	miningEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventCheckboxChanged {
			miningCB.Checked = ship.ToggleMining()
		}
	}
	flow.AddItem(miningCB)

	turretCB, turretEvents = ui.NewCheckbox()
	turretCB.Text = "Auto turret"
	turretCB.Size = ui.Point{X: width, Y: 18}
	turretCB.FontSize = 11
	turretEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventCheckboxChanged {
			turretCB.Checked = ship.ToggleTurret()
		}
	}
	flow.AddItem(turretCB)

	shieldCB, shieldEvents = ui.NewCheckbox()
	shieldCB.Text = "Shield boost"
	shieldCB.Size = ui.Point{X: width, Y: 18}
	shieldCB.FontSize = 11
	shieldEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventCheckboxChanged {
			shieldCB.Checked = ship.ToggleShieldBoost()
		}
	}
	flow.AddItem(shieldCB)

	combatWin.AddItem(flow)
	combatWin.Refresh()
}

func updateCombatWindow() {
	if combatWin == nil || !combatWin.IsOpen() {
		return
	}
	enemyCountTxt.Text = fmt.Sprintf("Hostiles: %d", combat.EnemyCount())

	if info, ok := combat.LockInfo(); ok {
		targetNameTxt.Text = "Target: " + info.Name
		targetHPBar.Invisible = false
		targetHPBar.MinValue = 0
		targetHPBar.MaxValue = float32(info.Health.Max)
		targetHPBar.Value = float32(info.Health.Current)
		targetHPBar.Text = fmt.Sprintf("%.0f/%.0f", info.Health.Current, info.Health.Max)
		targetDistTxt.Text = fmt.Sprintf("Range: %.0f m", info.Distance)
	} else {
		targetNameTxt.Text = "Target: none"
		targetHPBar.Invisible = true
		targetDistTxt.Text = ""
	}

	// Keep the checkboxes honest when subsystems shut off on their own
	// (energy exhaustion).
	miningCB.Checked = ship.MiningActive
	turretCB.Checked = ship.TurretActive
	shieldCB.Checked = ship.ShieldBoost
	combatWin.Refresh()
}

// drawTargetOverlay renders the lock reticle and the lead indicator on
// top of the scene. Either degrades to nothing when the camera or the
// lock is missing.
func drawTargetOverlay(screen *ebiten.Image) {
	if cam == nil || combat == nil {
		return
	}
	target, ok := combat.Lock()
	if !ok {
		return
	}
	pos, ok := gameWorld.ents.Position(target)
	if !ok {
		return
	}
	w, h := ui.ScreenSize()
	sx, sy, onScreen := mathx.WorldToScreen(cam, pos, float64(w), float64(h))
	reticle := color.RGBA{R: 255, G: 90, B: 90, A: 230}
	if onScreen {
		vector.StrokeCircle(screen, float32(sx), float32(sy), 18, 2, reticle, true)
		vector.StrokeLine(screen, float32(sx)-26, float32(sy), float32(sx)-12, float32(sy), 2, reticle, true)
		vector.StrokeLine(screen, float32(sx)+12, float32(sy), float32(sx)+26, float32(sy), 2, reticle, true)
	}

	vel, _ := gameWorld.ents.Velocity(target)
	lead := mathx.LeadPoint(pos, vel, ship.Position, weapons.ActiveWeapon().ProjectileSpeed)
	lx, ly, leadOn := mathx.WorldToScreen(cam, lead, float64(w), float64(h))
	if leadOn {
		lc := color.RGBA{R: 255, G: 210, B: 90, A: 220}
		vector.StrokeLine(screen, float32(lx)-6, float32(ly), float32(lx)+6, float32(ly), 1.5, lc, true)
		vector.StrokeLine(screen, float32(lx), float32(ly)-6, float32(lx), float32(ly)+6, 1.5, lc, true)
	}
}

// drawDamageNumbers renders floating hit readouts that rise and fade.
func drawDamageNumbers(screen *ebiten.Image) {
	if cam == nil || combat == nil {
		return
	}
	w, h := ui.ScreenSize()
	for _, n := range combat.numbers {
		sx, sy, ok := mathx.WorldToScreen(cam, n.pos, float64(w), float64(h))
		if !ok {
			continue
		}
		frac := n.age / damageNumberTTL
		rise := float32(frac * 30)
		a := uint8(255 * (1 - frac))
		drawOverlayText(screen, fmt.Sprintf("%d", n.amount),
			float32(sx)+10, float32(sy)-rise, color.RGBA{R: 255, G: 200, B: 80, A: a})
	}
}
