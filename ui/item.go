package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type ItemType int

const (
	ITEM_FLOW ItemType = iota
	ITEM_TEXT
	ITEM_BUTTON
	ITEM_CHECKBOX
	ITEM_SLIDER
	ITEM_DROPDOWN
	ITEM_BAR
	ITEM_IMAGE
)

type FlowType int

const (
	FLOW_VERTICAL FlowType = iota
	FLOW_HORIZONTAL
)

// Item is a widget inside a window. Flows nest other items and stack
// them vertically or horizontally.
type Item struct {
	ItemType ItemType
	FlowType FlowType

	Text     string
	Label    string
	Tooltip  string
	Position Point // offset within the parent, before flow stacking
	Size     Point
	Margin   float32
	FontSize float32

	// Slider and progress-bar state.
	Value    float32
	MinValue float32
	MaxValue float32
	IntOnly  bool

	// Checkbox state.
	Checked bool

	// Dropdown state.
	Options  []string
	Selected int
	Open     bool

	Disabled  bool
	Invisible bool

	// Color overrides; zero values fall back to the theme.
	Color     Color
	TextColor Color

	Image *ebiten.Image

	Handler  *EventHandler
	Contents []*Item

	Hovered bool
	Clicked time.Time

	win      *Window
	parent   *Item
	drawRect rect // screen-space rect from the last draw, used for input
	Dirty    bool
}

// AddItem appends a child to a flow.
func (item *Item) AddItem(child *Item) {
	child.parent = item
	child.win = item.win
	item.Contents = append(item.Contents, child)
	if item.win != nil {
		item.win.Dirty = true
	}
}

func newItem(t ItemType) (*Item, *EventHandler) {
	h := newHandler()
	return &Item{
		ItemType: t,
		FontSize: 12,
		Margin:   4,
		Handler:  h,
	}, h
}

// NewButton returns a clickable button and its event handler.
func NewButton() (*Item, *EventHandler) {
	return newItem(ITEM_BUTTON)
}

// NewText returns a static label.
func NewText() (*Item, *EventHandler) {
	return newItem(ITEM_TEXT)
}

// NewCheckbox returns a toggle and its event handler.
func NewCheckbox() (*Item, *EventHandler) {
	return newItem(ITEM_CHECKBOX)
}

// NewSlider returns a horizontal slider and its event handler.
func NewSlider() (*Item, *EventHandler) {
	it, h := newItem(ITEM_SLIDER)
	it.MaxValue = 1
	return it, h
}

// NewDropdown returns an option picker and its event handler.
func NewDropdown() (*Item, *EventHandler) {
	return newItem(ITEM_DROPDOWN)
}

// NewProgressBar returns a read-only value bar; set MinValue/MaxValue
// and Value, with Text drawn over the fill.
func NewProgressBar() *Item {
	it, _ := newItem(ITEM_BAR)
	it.MaxValue = 1
	return it
}

// NewFlow returns an empty container flow.
func NewFlow(ft FlowType) *Item {
	it, _ := newItem(ITEM_FLOW)
	it.FlowType = ft
	return it
}

// NewImageItem returns an image widget and its backing texture, which
// the caller redraws each frame.
func NewImageItem(w, h int) (*Item, *ebiten.Image) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	it, _ := newItem(ITEM_IMAGE)
	it.Image = img
	it.Size = Point{X: float32(w), Y: float32(h)}
	return it, img
}

// SetValue clamps and stores a slider value without emitting an event.
func (item *Item) SetValue(v float32) {
	if v < item.MinValue {
		v = item.MinValue
	}
	if v > item.MaxValue {
		v = item.MaxValue
	}
	if item.IntOnly {
		v = float32(int(v + 0.5))
	}
	item.Value = v
	item.Dirty = true
}

// contentSize returns the laid-out size of an item including nested
// flow contents.
func (item *Item) contentSize() Point {
	if item.ItemType != ITEM_FLOW {
		return item.Size
	}
	var w, h float32
	for _, child := range item.Contents {
		if child.Invisible {
			continue
		}
		cs := child.contentSize()
		if item.FlowType == FLOW_VERTICAL {
			h += cs.Y + child.Margin
			if cs.X > w {
				w = cs.X
			}
		} else {
			w += cs.X + child.Margin
			if cs.Y > h {
				h = cs.Y
			}
		}
	}
	return Point{X: w, Y: h}
}
