package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"stardrift/ui"
)

// Settings is the flat user-preference record persisted as JSON under
// the base directory. Missing or corrupt data falls back to defaults
// field by field.
type Settings struct {
	Quality       string  `json:"quality"`
	MasterVolume  float64 `json:"masterVolume"`
	MusicVolume   float64 `json:"musicVolume"`
	EffectsVolume float64 `json:"effectsVolume"`
	FrameRateCap  int     `json:"frameRateCap"`
	ShowFPS       bool    `json:"showFPS"`
	Vsync         bool    `json:"vsync"`
	UIScale       float64 `json:"uiScale"`
	Theme         string  `json:"theme"`
	RadarRange    float64 `json:"radarRange"`
	LastSystem    string  `json:"lastSystem"`
}

const settingsFile = "settings.json"

var (
	gs            Settings
	settingsDirty bool
	qualityLevels = []string{"low", "medium", "high"}
)

func defaultSettings() Settings {
	return Settings{
		Quality:       "high",
		MasterVolume:  0.8,
		MusicVolume:   0.5,
		EffectsVolume: 0.7,
		FrameRateCap:  60,
		ShowFPS:       false,
		Vsync:         true,
		UIScale:       1.0,
		Theme:         "",
		RadarRange:    600,
		LastSystem:    "",
	}
}

func loadSettings() {
	gs = defaultSettings()
	path := filepath.Join(baseDir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	s := defaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		logError("load settings: %v", err)
		return
	}
	gs = sanitizeSettings(s)
}

// sanitizeSettings clamps out-of-range values back to defaults so a
// hand-edited file cannot wedge the client.
func sanitizeSettings(s Settings) Settings {
	def := defaultSettings()
	if !validQuality(s.Quality) {
		s.Quality = def.Quality
	}
	s.MasterVolume = clampUnit(s.MasterVolume, def.MasterVolume)
	s.MusicVolume = clampUnit(s.MusicVolume, def.MusicVolume)
	s.EffectsVolume = clampUnit(s.EffectsVolume, def.EffectsVolume)
	if s.FrameRateCap < 30 || s.FrameRateCap > 240 {
		s.FrameRateCap = def.FrameRateCap
	}
	if s.UIScale < 0.5 || s.UIScale > 3 {
		s.UIScale = def.UIScale
	}
	if s.RadarRange < 100 || s.RadarRange > 5000 {
		s.RadarRange = def.RadarRange
	}
	return s
}

func validQuality(q string) bool {
	for _, lvl := range qualityLevels {
		if q == lvl {
			return true
		}
	}
	return false
}

func clampUnit(v, def float64) float64 {
	if v < 0 || v > 1 {
		return def
	}
	return v
}

// applySettings pushes the current settings into ebiten and the UI.
func applySettings() {
	ebiten.SetVsyncEnabled(gs.Vsync)
	ebiten.SetTPS(gs.FrameRateCap)
	ui.SetUIScale(float32(gs.UIScale))
	if gs.Theme != "" {
		if err := ui.LoadTheme(gs.Theme); err != nil {
			logError("apply theme: %v", err)
		}
	}
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(baseDir, settingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}
