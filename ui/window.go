package ui

// Window is a draggable, optionally closable panel. Windows live in a
// global list ordered back to front; the frontmost open window under
// the cursor receives input.
type Window struct {
	Title    string
	Position Point
	Size     Point

	Padding     float32
	TitleHeight float32

	Movable  bool
	Closable bool
	AutoSize bool

	Contents []*Item

	open  bool
	Dirty bool

	OnClose func()

	dragging bool
	dragOff  Point
}

// NewWindow returns a window with theme defaults, not yet in the
// window list; call AddWindow or MarkOpen.
func NewWindow() *Window {
	return &Window{
		Padding:     8,
		TitleHeight: 20,
		Movable:     true,
		Closable:    true,
		Dirty:       true,
	}
}

// AddWindow inserts the window into the global list if absent.
func (win *Window) AddWindow() {
	for _, w := range windows {
		if w == win {
			return
		}
	}
	windows = append(windows, win)
}

// RemoveWindow takes the window out of the global list.
func (win *Window) RemoveWindow() {
	for i, w := range windows {
		if w == win {
			windows = append(windows[:i], windows[i+1:]...)
			if activeWindow == win {
				activeWindow = nil
			}
			return
		}
	}
}

// AddItem appends a top-level item to the window.
func (win *Window) AddItem(item *Item) {
	item.win = win
	setWin(item.Contents, win)
	win.Contents = append(win.Contents, item)
	win.Dirty = true
}

func setWin(items []*Item, win *Window) {
	for _, it := range items {
		it.win = win
		setWin(it.Contents, win)
	}
}

// MarkOpen opens the window, adding it to the list if needed.
func (win *Window) MarkOpen() {
	win.AddWindow()
	win.open = true
	win.Dirty = true
	win.BringForward()
}

// MarkClosed hides the window without removing it.
func (win *Window) MarkClosed() {
	win.open = false
	if activeWindow == win {
		activeWindow = nil
	}
	if win.OnClose != nil {
		win.OnClose()
	}
}

func (win *Window) Open() bool { return win.open }

// IsOpen reports whether the window is currently shown.
func (win *Window) IsOpen() bool { return win.open }

// Toggle opens a closed window and closes an open one.
func (win *Window) Toggle() {
	if win.open {
		win.MarkClosed()
	} else {
		win.MarkOpen()
	}
}

// BringForward moves the window to the front of the draw order.
func (win *Window) BringForward() {
	for i, w := range windows {
		if w == win {
			windows = append(windows[:i], windows[i+1:]...)
			windows = append(windows, win)
			break
		}
	}
	activeWindow = win
}

// Refresh recomputes autosizing and marks the window for redraw.
func (win *Window) Refresh() {
	if win.AutoSize {
		win.updateAutoSize()
	}
	win.Dirty = true
}

// updateAutoSize grows the window to fit its contents plus padding.
func (win *Window) updateAutoSize() {
	var w, h float32
	for _, item := range win.Contents {
		if item.Invisible {
			continue
		}
		cs := item.contentSize()
		if x := item.Position.X + cs.X; x > w {
			w = x
		}
		if y := item.Position.Y + cs.Y; y > h {
			h = y
		}
	}
	win.Size = Point{
		X: w + 2*win.Padding,
		Y: h + 2*win.Padding + win.TitleHeight,
	}
}

// screenRect returns the window's scaled screen-space rectangle.
func (win *Window) screenRect() rect {
	s := uiScale
	return rect{
		X0: win.Position.X * s,
		Y0: win.Position.Y * s,
		X1: (win.Position.X + win.Size.X) * s,
		Y1: (win.Position.Y + win.Size.Y) * s,
	}
}

// titleRect returns the scaled titlebar rectangle.
func (win *Window) titleRect() rect {
	s := uiScale
	return rect{
		X0: win.Position.X * s,
		Y0: win.Position.Y * s,
		X1: (win.Position.X + win.Size.X) * s,
		Y1: (win.Position.Y + win.TitleHeight) * s,
	}
}

// closeRect returns the scaled close-box rectangle in the titlebar.
func (win *Window) closeRect() rect {
	s := uiScale
	side := win.TitleHeight
	return rect{
		X0: (win.Position.X + win.Size.X - side) * s,
		Y0: win.Position.Y * s,
		X1: (win.Position.X + win.Size.X) * s,
		Y1: (win.Position.Y + side) * s,
	}
}

// clampToScreen keeps at least the titlebar reachable.
func (win *Window) clampToScreen() {
	maxX := float32(screenWidth)/uiScale - 40
	maxY := float32(screenHeight)/uiScale - win.TitleHeight
	if win.Position.X > maxX {
		win.Position.X = maxX
	}
	if win.Position.Y > maxY {
		win.Position.Y = maxY
	}
	if win.Position.X+win.Size.X < 40 {
		win.Position.X = 40 - win.Size.X
	}
	if win.Position.Y < 0 {
		win.Position.Y = 0
	}
}
