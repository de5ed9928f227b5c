package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stardrift/ecs"
	"stardrift/mathx"
	"stardrift/ui"
)

// Radar minimap: player-forward-up, fixed pixel radius, linear fade at
// the range edge.

const radarSizePx = 170

var (
	radarItem  *ui.Item
	radarImage *ebiten.Image
)

func makeRadarWindow() {
	if radarWin != nil {
		return
	}
	radarWin = ui.NewWindow()
	radarWin.Title = "Radar"
	radarWin.Closable = false
	radarWin.AutoSize = true
	radarWin.Position = ui.Point{X: 10, Y: 470}

	radarItem, radarImage = ui.NewImageItem(radarSizePx, radarSizePx)
	radarWin.AddItem(radarItem)
	radarWin.Refresh()
}

func blipColor(f ecs.Faction, alpha float64) color.RGBA {
	c := factionColor(f)
	c.A = uint8(float64(c.A) * alpha)
	return c
}

func updateRadarWindow() {
	if radarWin == nil || !radarWin.IsOpen() || radarImage == nil || ship == nil {
		return
	}
	radarImage.Clear()

	const center = radarSizePx / 2
	const radius = float32(center - 4)
	ringCol := color.RGBA{R: 70, G: 110, B: 90, A: 180}
	vector.StrokeCircle(radarImage, center, center, radius, 1, ringCol, true)
	vector.StrokeCircle(radarImage, center, center, radius/2, 1, ringCol, true)

	gameWorld.ents.Each(func(e ecs.Entity) {
		p, _ := gameWorld.ents.Position(e)
		x, y, alpha, ok := mathx.RadarPoint(ship.Position, ship.Yaw, p, gs.RadarRange, float64(radius))
		if !ok {
			return
		}
		f, _ := gameWorld.ents.FactionOf(e)
		r := float32(2)
		if f == ecs.FactionPlanet || f == ecs.FactionStation {
			r = 3
		}
		vector.DrawFilledCircle(radarImage, center+float32(x), center+float32(y), r, blipColor(f, alpha), true)
	})

	// Player wedge at the center, always pointing up.
	pc := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	vector.StrokeLine(radarImage, center, center-6, center-4, center+4, 1.5, pc, true)
	vector.StrokeLine(radarImage, center, center-6, center+4, center+4, 1.5, pc, true)

	radarItem.Dirty = true
	radarWin.Refresh()
}
