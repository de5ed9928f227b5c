package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"

	"stardrift/ui"
)

// Parallax star backdrop. Each layer is a pre-rendered tile scrolled at
// its own rate against the ship heading; generation is parallelized
// with a bounded wait group since the high quality setting renders
// several large tiles.

const starTileSize = 1024

type starLayer struct {
	img   *ebiten.Image
	speed float64
}

var starLayers []*starLayer

func layerCountFor(quality string) int {
	switch quality {
	case "low":
		return 1
	case "medium":
		return 2
	default:
		return 3
	}
}

func initStarfield() {
	n := layerCountFor(gs.Quality)
	layers := make([]*starLayer, n)
	swg := sizedwaitgroup.New(2)
	for i := 0; i < n; i++ {
		swg.Add()
		go func(i int) {
			defer swg.Done()
			layers[i] = genStarLayer(int64(i), 120+60*i, 0.2+0.3*float64(i))
		}(i)
	}
	swg.Wait()
	starLayers = layers
}

// genStarLayer renders one star tile with its own deterministic rng so
// regenerating on a quality change produces the same sky.
func genStarLayer(seed int64, stars int, speed float64) *starLayer {
	rng := rand.New(rand.NewSource(seed*7919 + 17))
	img := ebiten.NewImage(starTileSize, starTileSize)
	for i := 0; i < stars; i++ {
		x := rng.Intn(starTileSize)
		y := rng.Intn(starTileSize)
		b := uint8(90 + rng.Intn(160))
		img.Set(x, y, color.RGBA{R: b, G: b, B: b, A: 255})
		if rng.Float64() < 0.1 {
			img.Set(x+1, y, color.RGBA{R: b, G: b, B: b, A: 255})
			img.Set(x, y+1, color.RGBA{R: b, G: b, B: b, A: 255})
		}
	}
	return &starLayer{img: img, speed: speed}
}

// drawStarfield tiles each layer across the screen, offset by ship
// position for parallax depth.
func drawStarfield(screen *ebiten.Image) {
	w, h := ui.ScreenSize()
	screen.Fill(color.RGBA{R: 4, G: 5, B: 12, A: 255})
	if ship == nil {
		return
	}
	for _, layer := range starLayers {
		if layer == nil || layer.img == nil {
			continue
		}
		offX := int(ship.Position.X*layer.speed) % starTileSize
		offY := int(ship.Position.Z*layer.speed) % starTileSize
		if offX < 0 {
			offX += starTileSize
		}
		if offY < 0 {
			offY += starTileSize
		}
		for x := -offX; x < w; x += starTileSize {
			for y := -offY; y < h; y += starTileSize {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(y))
				screen.DrawImage(layer.img, op)
			}
		}
	}
}
