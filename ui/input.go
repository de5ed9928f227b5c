package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	dragWin      *Window
	activeSlider *Item
)

// Update routes pointer input to windows and widgets. Call once per
// frame before the game's own input handling; clicks landing on a
// window are consumed here.
func Update() {
	mx, my := ebiten.CursorPosition()
	mpos := Point{X: float32(mx), Y: float32(my)}
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if dragWin != nil {
		if held {
			s := uiScale
			dragWin.Position.X = mpos.X/s - dragWin.dragOff.X
			dragWin.Position.Y = mpos.Y/s - dragWin.dragOff.Y
			dragWin.clampToScreen()
			dragWin.Dirty = true
		} else {
			dragWin.dragging = false
			dragWin = nil
		}
		return
	}

	if activeSlider != nil {
		if held {
			activeSlider.dragTo(mpos)
		} else {
			activeSlider = nil
		}
		return
	}

	updateHover(mpos)

	if !click {
		return
	}

	// An open dropdown swallows the click wherever it lands.
	if it := openDropdown(); it != nil {
		it.clickDropdown(mpos)
		return
	}

	win := topWindowAt(mpos)
	if win == nil {
		return
	}
	win.BringForward()

	if win.Closable && win.closeRect().contains(mpos) {
		win.MarkClosed()
		return
	}
	if win.Movable && win.titleRect().contains(mpos) {
		win.dragging = true
		win.dragOff = Point{
			X: mpos.X/uiScale - win.Position.X,
			Y: mpos.Y/uiScale - win.Position.Y,
		}
		dragWin = win
		return
	}
	clickItems(win.Contents, mpos)
}

// PointerOverUI reports whether the cursor is over any open window, so
// the game can ignore clicks the UI will consume.
func PointerOverUI() bool {
	mx, my := ebiten.CursorPosition()
	return topWindowAt(Point{X: float32(mx), Y: float32(my)}) != nil
}

func topWindowAt(mpos Point) *Window {
	for i := len(windows) - 1; i >= 0; i-- {
		win := windows[i]
		if win.open && win.screenRect().contains(mpos) {
			return win
		}
	}
	return nil
}

func updateHover(mpos Point) {
	top := topWindowAt(mpos)
	for _, win := range windows {
		inTop := win == top
		hoverItems(win.Contents, mpos, inTop)
	}
}

func hoverItems(items []*Item, mpos Point, inTop bool) {
	for _, it := range items {
		it.Hovered = inTop && !it.Invisible && !it.Disabled && it.drawRect.contains(mpos)
		hoverItems(it.Contents, mpos, inTop)
	}
}

func openDropdown() *Item {
	for i := len(windows) - 1; i >= 0; i-- {
		if !windows[i].open {
			continue
		}
		if it := findOpenDropdown(windows[i].Contents); it != nil {
			return it
		}
	}
	return nil
}

func findOpenDropdown(items []*Item) *Item {
	for _, it := range items {
		if it.ItemType == ITEM_DROPDOWN && it.Open {
			return it
		}
		if sub := findOpenDropdown(it.Contents); sub != nil {
			return sub
		}
	}
	return nil
}

func clickItems(items []*Item, mpos Point) bool {
	// Front-most child wins; walk in reverse add order.
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Invisible {
			continue
		}
		if clickItems(it.Contents, mpos) {
			return true
		}
		if it.Disabled || !it.drawRect.contains(mpos) {
			continue
		}
		switch it.ItemType {
		case ITEM_BUTTON:
			it.Clicked = time.Now()
			it.Dirty = true
			it.Handler.Emit(Event{Item: it, Type: EventClick})
			return true
		case ITEM_CHECKBOX:
			it.Checked = !it.Checked
			it.Dirty = true
			it.Handler.Emit(Event{Item: it, Type: EventCheckboxChanged, Checked: it.Checked})
			return true
		case ITEM_SLIDER:
			activeSlider = it
			it.dragTo(mpos)
			return true
		case ITEM_DROPDOWN:
			it.Open = true
			it.Dirty = true
			return true
		}
	}
	return false
}

// dragTo updates a slider from a pointer position and emits the change.
func (item *Item) dragTo(mpos Point) {
	r := item.drawRect
	if r.X1 <= r.X0 {
		return
	}
	frac := (mpos.X - r.X0) / (r.X1 - r.X0)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	old := item.Value
	item.SetValue(item.MinValue + frac*(item.MaxValue-item.MinValue))
	if item.Value != old {
		item.Handler.Emit(Event{Item: item, Type: EventSliderChanged, Value: item.Value})
	}
}

// clickDropdown resolves a click while the dropdown list is open: an
// option click selects it, anything else just closes the list.
func (item *Item) clickDropdown(mpos Point) {
	defer func() {
		item.Open = false
		item.Dirty = true
	}()
	r := item.drawRect
	rowH := r.Y1 - r.Y0
	if rowH <= 0 {
		return
	}
	if mpos.X < r.X0 || mpos.X > r.X1 || mpos.Y < r.Y1 {
		return
	}
	idx := int((mpos.Y - r.Y1) / rowH)
	if idx < 0 || idx >= len(item.Options) {
		return
	}
	item.Selected = idx
	item.Handler.Emit(Event{Item: item, Type: EventDropdownSelected, Index: idx})
}
