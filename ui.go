package main

import "stardrift/ui"

var (
	hudWin        *ui.Window
	combatWin     *ui.Window
	radarWin      *ui.Window
	starMapWin    *ui.Window
	mothershipWin *ui.Window
	blackjackWin  *ui.Window
	settingsWin   *ui.Window
)

func initUI() {
	makeHUDWindow()
	makeCombatWindow()
	makeRadarWindow()
	makeStarMapWindow()
	makeMothershipWindow()
	makeBlackjackWindow()
	makeSettingsWindow()

	hudWin.MarkOpen()
	combatWin.MarkOpen()
	radarWin.MarkOpen()
}

// closeAllPanels hides every transient window; the HUD stays.
func closeAllPanels() {
	for _, win := range []*ui.Window{starMapWin, mothershipWin, blackjackWin, settingsWin} {
		if win != nil && win.IsOpen() {
			win.MarkClosed()
		}
	}
}
