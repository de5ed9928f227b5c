package main

import (
	"context"
	"errors"
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	dark "github.com/thiagokokada/dark-mode-go"

	"stardrift/ecs"
	"stardrift/mathx"
	"stardrift/ui"
)

const initialWindowW, initialWindowH = 1600, 900

var (
	gameCtx context.Context
	once    sync.Once

	gameWorld *GameWorld
	ship      *Spaceship
	weapons   *WeaponSystem
	combat    *CombatSystem
	nav       *Navigation
	cam       *mathx.Camera

	lastTick         time.Time
	lastSettingsSave time.Time
)

type Game struct{}

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return errors.New("shutdown")
	default:
	}
	ui.Update()

	once.Do(initGame)

	now := time.Now()
	dt := now.Sub(lastTick).Seconds()
	lastTick = now
	if dt < 0 || dt > 0.25 {
		dt = 0.25
	}

	handleShipInput(dt)
	handleShortcuts()

	ship.step(dt)
	gameWorld.step(dt, ship)
	combat.update(dt)
	updateCamera()
	updateNotifications(dt)

	updateHUDWindow()
	updateCombatWindow()
	updateRadarWindow()
	updateStarMapWindow()
	updateMothershipWindow()
	updateBlackjackWindow(dt)
	updateSettingsWindow()

	if time.Since(lastSettingsSave) >= 5*time.Second {
		if settingsDirty {
			saveSettings()
			settingsDirty = false
		}
		lastSettingsSave = time.Now()
	}
	return nil
}

// handleShipInput applies keyboard flight controls.
func handleShipInput(dt float64) {
	const turnRate = 1.6
	const thrust = 120.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		ship.Yaw += turnRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		ship.Yaw -= turnRate * dt
	}
	fwd := shipForward()
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		ship.Velocity = ship.Velocity.Add(fwd.Scale(thrust * dt))
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		ship.Velocity = ship.Velocity.Scale(1 - 2*dt)
	}
	// Drag keeps speeds bounded without a hard cap.
	ship.Velocity = ship.Velocity.Scale(1 - 0.3*dt)
}

func handleShortcuts() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if _, ok := combat.CycleLock(); ok {
			playSound(sndLock)
		} else {
			showNotification("No targets in range")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		combat.ClearLock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w := weapons.CycleWeapon()
		showNotification("Weapon: " + w.Name)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		starMapWin.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if dockedStation(gameWorld.stations, ship) != nil {
			mothershipWin.Toggle()
		} else {
			showNotification("No station in docking range")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settingsWin.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		closeAllPanels()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if gameWorld.horde.active {
			gameWorld.StopHorde()
			showNotification("Horde mode ended")
		} else {
			gameWorld.StartHorde()
			showNotification("Horde mode: wave 1")
		}
	}
}

func shipForward() mathx.Vec3 {
	c := mathx.Camera{Yaw: ship.Yaw}
	return c.Forward()
}

// updateCamera keeps a chase view behind and slightly above the ship.
func updateCamera() {
	fwd := shipForward()
	cam.Position = ship.Position.Sub(fwd.Scale(80)).Add(mathx.Vec3{Y: 25})
	cam.Yaw = ship.Yaw
	cam.Pitch = -0.12
}

func (g *Game) Draw(screen *ebiten.Image) {
	if gameWorld == nil {
		return
	}
	drawStarfield(screen)
	drawWorldObjects(screen)
	drawTargetOverlay(screen)
	drawDamageNumbers(screen)
	ui.Draw(screen)
	drawNotifications(screen)
}

func factionColor(f ecs.Faction) color.RGBA {
	switch f {
	case ecs.FactionEnemy:
		return color.RGBA{R: 235, G: 80, B: 80, A: 255}
	case ecs.FactionAsteroid:
		return color.RGBA{R: 150, G: 140, B: 120, A: 255}
	case ecs.FactionPlanet:
		return color.RGBA{R: 110, G: 170, B: 235, A: 255}
	case ecs.FactionStation:
		return color.RGBA{R: 120, G: 230, B: 160, A: 255}
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}

// drawWorldObjects projects every entity into the viewport and renders
// a distance-scaled marker. This stands in for the 3D engine's own
// scene; the overlays only need consistent screen positions.
func drawWorldObjects(screen *ebiten.Image) {
	w, h := ui.ScreenSize()
	gameWorld.ents.Each(func(e ecs.Entity) {
		p, _ := gameWorld.ents.Position(e)
		sx, sy, ok := mathx.WorldToScreen(cam, p, float64(w), float64(h))
		if !ok {
			return
		}
		dist := p.Sub(cam.Position).Length()
		r := float32(2000 / (dist + 100))
		if r < 1.5 {
			r = 1.5
		}
		if r > 22 {
			r = 22
		}
		f, _ := gameWorld.ents.FactionOf(e)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, factionColor(f), true)
	})
}

var overlayFace text.Face

func drawOverlayText(screen *ebiten.Image, s string, x, y float32, c color.Color) {
	if overlayFace == nil {
		src := ui.FontSource()
		if src == nil {
			return
		}
		overlayFace = &text.GoTextFace{Source: src, Size: 13}
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, overlayFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ui.Layout(outsideWidth, outsideHeight)
	if cam != nil && outsideHeight > 0 {
		cam.Aspect = float64(outsideWidth) / float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context) error {
	gameCtx = ctx
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(initialWindowW, initialWindowH)
	ebiten.SetWindowTitle("Stardrift")

	err := ebiten.RunGame(&Game{})
	if err != nil && err.Error() == "shutdown" {
		err = nil
	}
	saveSettings()
	return err
}

func initGame() {
	if gs.Theme == "" {
		theme := "dark"
		if darkMode, err := dark.IsDarkMode(); err == nil && !darkMode {
			theme = "light"
		}
		gs.Theme = theme
	}
	applySettings()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameWorld = newGameWorld(rng)
	ship = newSpaceship()
	weapons = newWeaponSystem()
	combat = newCombatSystem(gameWorld.ents, ship, weapons)
	cam = mathx.NewCamera()
	nav = newNavigation(ship)
	if gs.LastSystem != "" && !nav.SetCurrent(gs.LastSystem) {
		logDebug("unknown last system %q, starting at %s", gs.LastSystem, nav.CurrentSystem().Name)
	}
	nav.OnArrive = func(sys *StarSystem) {
		gs.LastSystem = sys.Name
		settingsDirty = true
		showNotification("Arrived in " + sys.Name)
		playSound(sndJump)
		setPresence(sys.Name)
	}

	initStarfield()
	initUI()
	lastTick = time.Now()
	lastSettingsSave = time.Now()
	setPresence(nav.CurrentSystem().Name)

	log.Printf("client ready in %s", nav.CurrentSystem().Name)
}
