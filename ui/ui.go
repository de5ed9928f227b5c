// Package ui is a small retained-mode widget toolkit for ebiten:
// draggable windows holding flows of buttons, labels, checkboxes,
// sliders, dropdowns, progress bars and image surfaces. Windows are
// updated and drawn once per frame by the game loop; interaction is
// delivered through per-widget event handlers.
package ui

import (
	"bytes"
	"log"
	"sync"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Point is a 2D position or size in unscaled UI units.
type Point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

func (r rect) contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

var (
	windows      []*Window
	activeWindow *Window

	screenWidth  = 1280
	screenHeight = 720
	uiScale      float32 = 1
)

// Windows returns the current window list, back to front.
func Windows() []*Window { return windows }

// Layout records the screen size; call from ebiten's Layout.
func Layout(w, h int) {
	if w > 0 && h > 0 {
		screenWidth, screenHeight = w, h
	}
}

// ScreenSize returns the last laid-out screen size.
func ScreenSize() (int, int) { return screenWidth, screenHeight }

// SetUIScale sets the global scale applied to all windows and widgets.
func SetUIScale(s float32) {
	if s < 0.5 {
		s = 0.5
	}
	if s > 3 {
		s = 3
	}
	uiScale = s
}

// UIScale returns the global UI scale factor.
func UIScale() float32 { return uiScale }

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// FontSource returns the shared UI font, parsing it on first use.
func FontSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("ui: parse font: %v", err)
			return
		}
		fontSource = src
	})
	return fontSource
}

// faceFor returns a text face at the given point size, already scaled.
func faceFor(size float32) text.Face {
	src := FontSource()
	if src == nil {
		return nil
	}
	if size <= 0 {
		size = 12
	}
	return &text.GoTextFace{Source: src, Size: float64(size * uiScale)}
}

// measureText returns the pixel bounds of s at the given point size.
func measureText(s string, size float32) (float32, float32) {
	face := faceFor(size)
	if face == nil || s == "" {
		return 0, 0
	}
	w, h := text.Measure(s, face, 0)
	return float32(w), float32(h)
}
