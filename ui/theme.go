package ui

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color usable anywhere color.Color is accepted.
type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// Theme holds the palette shared by all windows and widgets.
type Theme struct {
	Name string

	WindowBG    Color
	TitleBG     Color
	TitleText   Color
	Border      Color
	ItemBG      Color
	ItemHover   Color
	ItemClick   Color
	ItemText    Color
	ItemDim     Color
	Accent      Color
	SliderTrack Color
	BarFill     Color
	BarBack     Color
}

var darkTheme = &Theme{
	Name:        "dark",
	WindowBG:    Color{R: 16, G: 20, B: 30, A: 235},
	TitleBG:     Color{R: 28, G: 36, B: 54, A: 255},
	TitleText:   Color{R: 220, G: 230, B: 245, A: 255},
	Border:      Color{R: 70, G: 90, B: 130, A: 255},
	ItemBG:      Color{R: 34, G: 42, B: 62, A: 255},
	ItemHover:   Color{R: 52, G: 64, B: 94, A: 255},
	ItemClick:   Color{R: 90, G: 110, B: 160, A: 255},
	ItemText:    Color{R: 210, G: 220, B: 235, A: 255},
	ItemDim:     Color{R: 120, G: 130, B: 150, A: 255},
	Accent:      Color{R: 90, G: 170, B: 255, A: 255},
	SliderTrack: Color{R: 48, G: 56, B: 80, A: 255},
	BarFill:     Color{R: 80, G: 200, B: 140, A: 255},
	BarBack:     Color{R: 30, G: 36, B: 50, A: 255},
}

var lightTheme = &Theme{
	Name:        "light",
	WindowBG:    Color{R: 236, G: 240, B: 246, A: 245},
	TitleBG:     Color{R: 200, G: 210, B: 226, A: 255},
	TitleText:   Color{R: 30, G: 40, B: 60, A: 255},
	Border:      Color{R: 150, G: 165, B: 190, A: 255},
	ItemBG:      Color{R: 214, G: 222, B: 234, A: 255},
	ItemHover:   Color{R: 196, G: 208, B: 226, A: 255},
	ItemClick:   Color{R: 160, G: 180, B: 210, A: 255},
	ItemText:    Color{R: 30, G: 40, B: 60, A: 255},
	ItemDim:     Color{R: 120, G: 130, B: 150, A: 255},
	Accent:      Color{R: 30, G: 110, B: 220, A: 255},
	SliderTrack: Color{R: 176, G: 186, B: 204, A: 255},
	BarFill:     Color{R: 40, G: 160, B: 100, A: 255},
	BarBack:     Color{R: 190, G: 198, B: 212, A: 255},
}

var currentTheme = darkTheme

// ListThemes returns the available theme names.
func ListThemes() []string { return []string{"dark", "light"} }

// CurrentThemeName returns the active theme's name.
func CurrentThemeName() string { return currentTheme.Name }

// LoadTheme switches the active theme and marks every window dirty.
func LoadTheme(name string) error {
	switch name {
	case "dark":
		currentTheme = darkTheme
	case "light":
		currentTheme = lightTheme
	default:
		return fmt.Errorf("ui: unknown theme %q", name)
	}
	for _, win := range windows {
		win.Dirty = true
	}
	return nil
}
