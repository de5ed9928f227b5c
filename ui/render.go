package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders every open window back to front. Item screen rects are
// recorded as a side effect so the next Update can route input to the
// exact pixels that were drawn.
func Draw(screen *ebiten.Image) {
	for _, win := range windows {
		if win.open {
			win.draw(screen)
		}
	}
}

func fillRect(dst *ebiten.Image, r rect, c Color) {
	vector.DrawFilledRect(dst, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, c, false)
}

func strokeRect(dst *ebiten.Image, r rect, w float32, c Color) {
	vector.StrokeRect(dst, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, w, c, false)
}

func drawText(dst *ebiten.Image, s string, size, x, y float32, c Color) {
	if s == "" {
		return
	}
	face := faceFor(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(size*uiScale) * 1.3
	text.Draw(dst, s, face, op)
}

func (win *Window) draw(screen *ebiten.Image) {
	th := currentTheme
	wr := win.screenRect()
	tr := win.titleRect()

	fillRect(screen, wr, th.WindowBG)
	fillRect(screen, tr, th.TitleBG)
	strokeRect(screen, wr, 1, th.Border)

	if win.Title != "" {
		_, thh := measureText(win.Title, 12)
		drawText(screen, win.Title, 12, tr.X0+6*uiScale, tr.Y0+(tr.Y1-tr.Y0-thh)/2, th.TitleText)
	}
	if win.Closable {
		cr := win.closeRect()
		c := th.ItemDim
		mx, my := ebiten.CursorPosition()
		if cr.contains(Point{X: float32(mx), Y: float32(my)}) {
			c = th.ItemText
		}
		_, xh := measureText("×", 13)
		drawText(screen, "×", 13, cr.X0+(cr.X1-cr.X0)/2-4*uiScale, cr.Y0+(cr.Y1-cr.Y0-xh)/2, c)
	}

	origin := Point{
		X: win.Position.X + win.Padding,
		Y: win.Position.Y + win.TitleHeight + win.Padding,
	}
	for _, item := range win.Contents {
		item.draw(screen, Point{X: origin.X + item.Position.X, Y: origin.Y + item.Position.Y})
	}
	win.Dirty = false
}

// draw renders the item at the given unscaled position and records its
// screen rect.
func (item *Item) draw(screen *ebiten.Image, pos Point) {
	if item.Invisible {
		item.drawRect = rect{}
		return
	}
	s := uiScale
	size := item.Size
	if item.ItemType == ITEM_FLOW {
		size = item.contentSize()
	}
	item.drawRect = rect{
		X0: pos.X * s,
		Y0: pos.Y * s,
		X1: (pos.X + size.X) * s,
		Y1: (pos.Y + size.Y) * s,
	}

	th := currentTheme
	switch item.ItemType {
	case ITEM_FLOW:
		cur := pos
		for _, child := range item.Contents {
			if child.Invisible {
				child.drawRect = rect{}
				continue
			}
			child.draw(screen, Point{X: cur.X + child.Position.X, Y: cur.Y + child.Position.Y})
			cs := child.contentSize()
			if item.FlowType == FLOW_VERTICAL {
				cur.Y += cs.Y + child.Margin
			} else {
				cur.X += cs.X + child.Margin
			}
		}

	case ITEM_TEXT:
		c := item.TextColor
		if c == (Color{}) {
			c = th.ItemText
		}
		drawText(screen, item.Text, item.FontSize, item.drawRect.X0, item.drawRect.Y0, c)

	case ITEM_BUTTON:
		bg := item.Color
		if bg == (Color{}) {
			bg = th.ItemBG
		}
		if time.Since(item.Clicked) < 150*time.Millisecond {
			bg = th.ItemClick
		} else if item.Hovered {
			bg = th.ItemHover
		}
		if item.Disabled {
			bg = th.BarBack
		}
		fillRect(screen, item.drawRect, bg)
		strokeRect(screen, item.drawRect, 1, th.Border)
		tc := th.ItemText
		if item.Disabled {
			tc = th.ItemDim
		}
		tw, thh := measureText(item.Text, item.FontSize)
		cx := item.drawRect.X0 + (item.drawRect.X1-item.drawRect.X0-tw)/2
		cy := item.drawRect.Y0 + (item.drawRect.Y1-item.drawRect.Y0-thh)/2
		drawText(screen, item.Text, item.FontSize, cx, cy, tc)

	case ITEM_CHECKBOX:
		box := rect{
			X0: item.drawRect.X0,
			Y0: item.drawRect.Y0,
			X1: item.drawRect.X0 + (item.drawRect.Y1 - item.drawRect.Y0),
			Y1: item.drawRect.Y1,
		}
		fillRect(screen, box, th.ItemBG)
		strokeRect(screen, box, 1, th.Border)
		if item.Checked {
			inner := rect{X0: box.X0 + 4*s, Y0: box.Y0 + 4*s, X1: box.X1 - 4*s, Y1: box.Y1 - 4*s}
			fillRect(screen, inner, th.Accent)
		}
		_, thh := measureText(item.Text, item.FontSize)
		drawText(screen, item.Text, item.FontSize, box.X1+6*s, box.Y0+(box.Y1-box.Y0-thh)/2, th.ItemText)

	case ITEM_SLIDER:
		label := item.Text
		if item.Label != "" {
			label = item.Label
		}
		if label != "" {
			drawText(screen, label, item.FontSize, item.drawRect.X0, item.drawRect.Y0-14*s, th.ItemDim)
		}
		midY := (item.drawRect.Y0 + item.drawRect.Y1) / 2
		track := rect{X0: item.drawRect.X0, Y0: midY - 2*s, X1: item.drawRect.X1, Y1: midY + 2*s}
		fillRect(screen, track, th.SliderTrack)
		frac := float32(0)
		if item.MaxValue > item.MinValue {
			frac = (item.Value - item.MinValue) / (item.MaxValue - item.MinValue)
		}
		knobX := track.X0 + frac*(track.X1-track.X0)
		fillRect(screen, rect{X0: track.X0, Y0: track.Y0, X1: knobX, Y1: track.Y1}, th.Accent)
		vector.DrawFilledCircle(screen, knobX, midY, 6*s, th.ItemText, true)

	case ITEM_DROPDOWN:
		fillRect(screen, item.drawRect, th.ItemBG)
		strokeRect(screen, item.drawRect, 1, th.Border)
		sel := ""
		if item.Selected >= 0 && item.Selected < len(item.Options) {
			sel = item.Options[item.Selected]
		}
		if item.Label != "" {
			sel = item.Label + ": " + sel
		}
		_, thh := measureText(sel, item.FontSize)
		drawText(screen, sel, item.FontSize, item.drawRect.X0+6*s, item.drawRect.Y0+(item.drawRect.Y1-item.drawRect.Y0-thh)/2, th.ItemText)
		drawText(screen, "▾", item.FontSize, item.drawRect.X1-14*s, item.drawRect.Y0+(item.drawRect.Y1-item.drawRect.Y0-thh)/2, th.ItemDim)
		if item.Open {
			rowH := item.drawRect.Y1 - item.drawRect.Y0
			for i, opt := range item.Options {
				row := rect{
					X0: item.drawRect.X0,
					Y0: item.drawRect.Y1 + float32(i)*rowH,
					X1: item.drawRect.X1,
					Y1: item.drawRect.Y1 + float32(i+1)*rowH,
				}
				bg := th.ItemBG
				if i == item.Selected {
					bg = th.ItemClick
				}
				fillRect(screen, row, bg)
				strokeRect(screen, row, 1, th.Border)
				drawText(screen, opt, item.FontSize, row.X0+6*s, row.Y0+(rowH-thh)/2, th.ItemText)
			}
		}

	case ITEM_BAR:
		fillRect(screen, item.drawRect, th.BarBack)
		frac := float32(0)
		if item.MaxValue > item.MinValue {
			frac = (item.Value - item.MinValue) / (item.MaxValue - item.MinValue)
		}
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		fc := item.Color
		if fc == (Color{}) {
			fc = th.BarFill
		}
		fill := item.drawRect
		fill.X1 = fill.X0 + frac*(fill.X1-fill.X0)
		fillRect(screen, fill, fc)
		strokeRect(screen, item.drawRect, 1, th.Border)
		tw, thh := measureText(item.Text, item.FontSize)
		cx := item.drawRect.X0 + (item.drawRect.X1-item.drawRect.X0-tw)/2
		cy := item.drawRect.Y0 + (item.drawRect.Y1-item.drawRect.Y0-thh)/2
		drawText(screen, item.Text, item.FontSize, cx, cy, th.ItemText)

	case ITEM_IMAGE:
		if item.Image != nil {
			op := &ebiten.DrawImageOptions{}
			b := item.Image.Bounds()
			if b.Dx() > 0 && b.Dy() > 0 {
				sx := float64(item.drawRect.X1-item.drawRect.X0) / float64(b.Dx())
				sy := float64(item.drawRect.Y1-item.drawRect.Y0) / float64(b.Dy())
				op.GeoM.Scale(sx, sy)
			}
			op.GeoM.Translate(float64(item.drawRect.X0), float64(item.drawRect.Y0))
			screen.DrawImage(item.Image, op)
		}
	}
	item.Dirty = false
}
