package lineclip

import (
	"fmt"
	"sync"
)

// EventType identifies the type of an input event.
type EventType uint8

const (
	EvPointerPressed  EventType = iota // Pointer button went down
	EvPointerReleased                  // Pointer button went up
	EvPointerMoved                     // Pointer moved (or was sampled)
	EvKeyPressed                       // Key went down
	EvCloseRequested                   // Window close request
)

// eventTypeNames maps EventType values to their string representation.
var eventTypeNames = [...]string{
	EvPointerPressed:  "PointerPressed",
	EvPointerReleased: "PointerReleased",
	EvPointerMoved:    "PointerMoved",
	EvKeyPressed:      "KeyPressed",
	EvCloseRequested:  "CloseRequested",
}

// String returns the string representation of an EventType.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event is the interface implemented by all input events delivered by the
// presentation layer.
type Event interface {
	// Type returns the EventType for this event.
	Type() EventType
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key is a logical key. Presentation layers map physical keys onto these.
type Key uint8

const (
	KeyOther Key = iota
	KeyZoomIn
	KeyZoomOut
	KeyExit
)

// String returns the key name used in replay scripts.
func (k Key) String() string {
	switch k {
	case KeyZoomIn:
		return "zoom-in"
	case KeyZoomOut:
		return "zoom-out"
	case KeyExit:
		return "exit"
	default:
		return "other"
	}
}

// PointerPressed reports a button press at Pos.
type PointerPressed struct {
	Button Button
	Pos    Point
}

// Type implements Event.
func (PointerPressed) Type() EventType { return EvPointerPressed }

// PointerReleased reports a button release. Pos is informational only.
type PointerReleased struct {
	Button Button
	Pos    Point
}

// Type implements Event.
func (PointerReleased) Type() EventType { return EvPointerReleased }

// PointerMoved reports the current pointer location.
type PointerMoved struct {
	Pos Point
}

// Type implements Event.
func (PointerMoved) Type() EventType { return EvPointerMoved }

// KeyPressed reports a key press.
type KeyPressed struct {
	Key Key
}

// Type implements Event.
func (KeyPressed) Type() EventType { return EvKeyPressed }

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// Type implements Event.
func (CloseRequested) Type() EventType { return EvCloseRequested }

// DescribeEvent formats an event for logs and CLI output.
func DescribeEvent(e Event) string {
	switch ev := e.(type) {
	case PointerPressed:
		return fmt.Sprintf("press(%d) at (%g, %g)", ev.Button, ev.Pos.X, ev.Pos.Y)
	case PointerReleased:
		return fmt.Sprintf("release(%d)", ev.Button)
	case PointerMoved:
		return fmt.Sprintf("move to (%g, %g)", ev.Pos.X, ev.Pos.Y)
	case KeyPressed:
		return "key " + ev.Key.String()
	case CloseRequested:
		return "close"
	case nil:
		return "<nil>"
	default:
		return e.Type().String()
	}
}

// DefaultQueueCapacity is the number of events a Queue holds between drains.
const DefaultQueueCapacity = 256

// Queue buffers input events between frames. Presentation callbacks Push
// from any goroutine; the frame loop drains the whole queue once per frame,
// before any geometry update.
//
// The queue is bounded. Events pushed while it is full are dropped and
// counted; a CloseRequested always fits so a close is never lost.
type Queue struct {
	mu       sync.Mutex
	events   []Event
	capacity int
	dropped  uint64
	closed   bool
}

// NewQueue creates a queue holding at most capacity events.
// A non-positive capacity selects DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Push appends e. It returns false if the event was dropped.
func (q *Queue) Push(e Event) bool {
	if e == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := e.(CloseRequested); ok {
		if !q.closed {
			q.closed = true
			q.events = append(q.events, e)
		}
		return true
	}
	if len(q.events) >= q.capacity {
		q.dropped++
		if q.dropped == 1 || q.dropped%100 == 0 {
			Logger().Warn("input queue full, dropping events", "dropped", q.dropped)
		}
		return false
	}
	q.events = append(q.events, e)
	return true
}

// Drain removes and returns all queued events in arrival order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	q.closed = false
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Dropped returns the number of events dropped because the queue was full.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
