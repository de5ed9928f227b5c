package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	baseDir = t.TempDir()
	loadSettings()
	if gs != defaultSettings() {
		t.Errorf("missing file should yield defaults, got %+v", gs)
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	baseDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(baseDir, settingsFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	silent = true
	defer func() { silent = false }()
	loadSettings()
	if gs != defaultSettings() {
		t.Errorf("corrupt file should yield defaults, got %+v", gs)
	}
}

func TestLoadSettingsRoundTrip(t *testing.T) {
	baseDir = t.TempDir()
	gs = defaultSettings()
	gs.Quality = "low"
	gs.ShowFPS = true
	gs.FrameRateCap = 120
	gs.LastSystem = "Drossel"
	saveSettings()

	gs = Settings{}
	loadSettings()
	if gs.Quality != "low" || !gs.ShowFPS || gs.FrameRateCap != 120 || gs.LastSystem != "Drossel" {
		t.Errorf("round trip lost fields: %+v", gs)
	}
}

func TestSanitizeSettingsClamps(t *testing.T) {
	def := defaultSettings()
	cases := []struct {
		name string
		in   Settings
		want func(Settings) bool
	}{
		{"bad quality", Settings{Quality: "ultra"}, func(s Settings) bool { return s.Quality == def.Quality }},
		{"volume over 1", Settings{MasterVolume: 1.5}, func(s Settings) bool { return s.MasterVolume == def.MasterVolume }},
		{"negative volume", Settings{EffectsVolume: -0.1}, func(s Settings) bool { return s.EffectsVolume == def.EffectsVolume }},
		{"fps too low", Settings{FrameRateCap: 10}, func(s Settings) bool { return s.FrameRateCap == def.FrameRateCap }},
		{"fps too high", Settings{FrameRateCap: 1000}, func(s Settings) bool { return s.FrameRateCap == def.FrameRateCap }},
		{"ui scale", Settings{UIScale: 9}, func(s Settings) bool { return s.UIScale == def.UIScale }},
		{"radar range", Settings{RadarRange: 7}, func(s Settings) bool { return s.RadarRange == def.RadarRange }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeSettings(tc.in); !tc.want(got) {
				t.Errorf("sanitize(%+v) = %+v", tc.in, got)
			}
		})
	}
}

func TestSanitizeSettingsKeepsValid(t *testing.T) {
	in := Settings{
		Quality:      "medium",
		MasterVolume: 0.3,
		FrameRateCap: 144,
		UIScale:      2,
		RadarRange:   1200,
	}
	got := sanitizeSettings(in)
	if got.Quality != "medium" || got.MasterVolume != 0.3 || got.FrameRateCap != 144 ||
		got.UIScale != 2 || got.RadarRange != 1200 {
		t.Errorf("valid values changed: %+v", got)
	}
}

func TestSettingsJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(defaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"quality", "masterVolume", "frameRateCap", "uiScale", "radarRange", "lastSystem"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing json key %q", key)
		}
	}
}
