package ui

import "log"

// EventType is the kind of interaction a widget emitted.
type EventType int

const (
	EventClick EventType = iota
	EventCheckboxChanged
	EventSliderChanged
	EventDropdownSelected
)

// Event describes a user interaction with a widget.
type Event struct {
	Item    *Item
	Type    EventType
	Value   float32
	Index   int
	Checked bool
}

// EventHandler delivers widget events through an optional channel and
// an optional callback.
type EventHandler struct {
	Events chan Event
	Handle func(Event)
}

// Emit delivers ev without blocking; a full channel drops the event.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
			log.Printf("ui: event channel full, dropping event type %d", ev.Type)
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

func newHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 64)}
}
