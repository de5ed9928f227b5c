package main

import (
	"fmt"

	"stardrift/ui"
)

// Settings panel. Every control writes straight into gs, marks the
// record dirty for the autosave pass and reapplies whatever needs an
// immediate effect.

var (
	masterVolSlider *ui.Item
	musicVolSlider  *ui.Item
	fxVolSlider     *ui.Item
	fpsCapSlider    *ui.Item
	uiScaleSlider   *ui.Item
	radarRngSlider  *ui.Item
	vsyncCB         *ui.Item
	showFPSCB       *ui.Item
)

func makeSettingsSlider(flow *ui.Item, min, max, val float32, intOnly bool,
	onChange func(float32)) *ui.Item {

	s, events := ui.NewSlider()
	s.Size = ui.Point{X: 220, Y: 20}
	s.FontSize = 10
	s.MinValue = min
	s.MaxValue = max
	s.Value = val
	s.IntOnly = intOnly
	events.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventSliderChanged {
			onChange(ev.Value)
			settingsDirty = true
		}
	}
	flow.AddItem(s)
	return s
}

func makeSettingsWindow() {
	if settingsWin != nil {
		return
	}
	settingsWin = ui.NewWindow()
	settingsWin.Title = "Settings [F1]"
	settingsWin.AutoSize = true
	settingsWin.Position = ui.Point{X: 1180, Y: 60}

	flow := ui.NewFlow(ui.FLOW_VERTICAL)
	const width float32 = 220

	themeDD, themeEvents := ui.NewDropdown()
	themeDD.Size = ui.Point{X: width, Y: 22}
	themeDD.FontSize = 11
	themeDD.Options = ui.ListThemes()
	for i, name := range themeDD.Options {
		if name == ui.CurrentThemeName() {
			themeDD.Selected = i
		}
	}
	themeEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventDropdownSelected {
			return
		}
		name := themeDD.Options[ev.Index]
		if err := ui.LoadTheme(name); err != nil {
			logError("load theme %q: %v", name, err)
			return
		}
		gs.Theme = name
		settingsDirty = true
	}
	flow.AddItem(themeDD)

	qualityDD, qualityEvents := ui.NewDropdown()
	qualityDD.Size = ui.Point{X: width, Y: 22}
	qualityDD.FontSize = 11
	qualityDD.Options = append(qualityDD.Options, qualityLevels...)
	for i, lvl := range qualityLevels {
		if lvl == gs.Quality {
			qualityDD.Selected = i
		}
	}
	qualityEvents.Handle = func(ev ui.Event) {
		if ev.Type != ui.EventDropdownSelected {
			return
		}
		gs.Quality = qualityLevels[ev.Index]
		settingsDirty = true
		initStarfield()
	}
	flow.AddItem(qualityDD)

	masterVolSlider = makeSettingsSlider(flow, 0, 1, float32(gs.MasterVolume), false,
		func(v float32) { gs.MasterVolume = float64(v) })
	musicVolSlider = makeSettingsSlider(flow, 0, 1, float32(gs.MusicVolume), false,
		func(v float32) { gs.MusicVolume = float64(v) })
	fxVolSlider = makeSettingsSlider(flow, 0, 1, float32(gs.EffectsVolume), false,
		func(v float32) {
			gs.EffectsVolume = float64(v)
			playSound(sndClick)
		})

	fpsCapSlider = makeSettingsSlider(flow, 30, 240, float32(gs.FrameRateCap), true,
		func(v float32) {
			gs.FrameRateCap = int(v)
			applySettings()
		})
	uiScaleSlider = makeSettingsSlider(flow, 0.5, 3, float32(gs.UIScale), false,
		func(v float32) {
			gs.UIScale = float64(v)
			ui.SetUIScale(v)
		})
	radarRngSlider = makeSettingsSlider(flow, 100, 5000, float32(gs.RadarRange), true,
		func(v float32) { gs.RadarRange = float64(v) })

	var vsyncEvents, fpsEvents *ui.EventHandler
	vsyncCB, vsyncEvents = ui.NewCheckbox()
	vsyncCB.Text = "Vsync"
	vsyncCB.Size = ui.Point{X: width, Y: 18}
	vsyncCB.FontSize = 11
	vsyncCB.Checked = gs.Vsync
	vsyncEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventCheckboxChanged {
			gs.Vsync = ev.Checked
			settingsDirty = true
			applySettings()
		}
	}
	flow.AddItem(vsyncCB)

	showFPSCB, fpsEvents = ui.NewCheckbox()
	showFPSCB.Text = "Show FPS"
	showFPSCB.Size = ui.Point{X: width, Y: 18}
	showFPSCB.FontSize = 11
	showFPSCB.Checked = gs.ShowFPS
	fpsEvents.Handle = func(ev ui.Event) {
		if ev.Type == ui.EventCheckboxChanged {
			gs.ShowFPS = ev.Checked
			settingsDirty = true
		}
	}
	flow.AddItem(showFPSCB)

	settingsWin.AddItem(flow)
	settingsWin.OnClose = func() {
		if settingsDirty {
			saveSettings()
			settingsDirty = false
		}
	}
	settingsWin.Refresh()
}

func updateSettingsWindow() {
	if settingsWin == nil || !settingsWin.IsOpen() {
		return
	}
	masterVolSlider.Text = fmt.Sprintf("Master %.0f%%", gs.MasterVolume*100)
	musicVolSlider.Text = fmt.Sprintf("Music %.0f%%", gs.MusicVolume*100)
	fxVolSlider.Text = fmt.Sprintf("Effects %.0f%%", gs.EffectsVolume*100)
	fpsCapSlider.Text = fmt.Sprintf("FPS cap %d", gs.FrameRateCap)
	uiScaleSlider.Text = fmt.Sprintf("UI scale %.2f", gs.UIScale)
	radarRngSlider.Text = fmt.Sprintf("Radar range %.0f", gs.RadarRange)
	settingsWin.Refresh()
}
