package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/time/rate"

	"stardrift/ui"
)

// Transient on-screen messages. Entries fade out on the frame tick; a
// message shown again while still visible restarts its clock instead
// of stacking a duplicate.
type notification struct {
	text string
	age  float64
	ttl  float64
}

const (
	maxNotifications = 6
	notificationTTL  = 4.0
	notificationFade = 1.0 // fade window at end of life, seconds
)

var (
	notifications []notification

	// notifyLimiter suppresses bursts: repeated failures inside the
	// frame loop would otherwise spam a message per tick.
	notifyLimiter = rate.NewLimiter(rate.Every(200*time.Millisecond), 5)
)

func showNotification(msg string) {
	if msg == "" {
		return
	}
	for i := range notifications {
		if notifications[i].text == msg {
			notifications[i].age = 0
			return
		}
	}
	if !notifyLimiter.Allow() {
		logDebug("notification suppressed: %s", msg)
		return
	}
	if len(notifications) >= maxNotifications {
		notifications = notifications[1:]
	}
	notifications = append(notifications, notification{text: msg, ttl: notificationTTL})
}

func updateNotifications(dt float64) {
	out := notifications[:0]
	for _, n := range notifications {
		n.age += dt
		if n.age < n.ttl {
			out = append(out, n)
		}
	}
	notifications = out
}

// notificationAlpha returns the remaining opacity for an entry, linear
// over the final fade window.
func notificationAlpha(n notification) float64 {
	left := n.ttl - n.age
	if left >= notificationFade {
		return 1
	}
	if left <= 0 {
		return 0
	}
	return left / notificationFade
}

func drawNotifications(screen *ebiten.Image) {
	w, _ := ui.ScreenSize()
	y := float32(10)
	for _, n := range notifications {
		a := notificationAlpha(n)
		c := color.RGBA{R: 255, G: 230, B: 150, A: uint8(220 * a)}
		drawOverlayText(screen, n.text, float32(w)-310, y, c)
		y += 22
	}
}
