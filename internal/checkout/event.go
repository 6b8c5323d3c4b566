package checkout

import "time"

// EventType names a user action against the dialog.
type EventType string

const (
	EventOpen     EventType = "open"
	EventSelect   EventType = "select"
	EventProceed  EventType = "proceed"
	EventComplete EventType = "complete"
	EventClose    EventType = "close"
)

// Event is one user action. Product and Size apply to open and select;
// Error is the navigation failure a client reports with complete.
type Event struct {
	Type    EventType `json:"type"`
	Product string    `json:"product,omitempty"`
	Size    string    `json:"size,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Valid reports whether the event type is known.
func (e Event) Valid() bool {
	switch e.Type {
	case EventOpen, EventSelect, EventProceed, EventComplete, EventClose:
		return true
	}
	return false
}

// Timing tells a client how long to show the spinner before navigating and
// how long to keep the redirect notice before hiding the dialog.
type Timing struct {
	SubmitDelayMs int64 `json:"submitDelayMs"`
	CloseDelayMs  int64 `json:"closeDelayMs"`
}

// NewTiming converts delays to the millisecond form sent to clients.
func NewTiming(submit, closeDelay time.Duration) Timing {
	return Timing{
		SubmitDelayMs: submit.Milliseconds(),
		CloseDelayMs:  closeDelay.Milliseconds(),
	}
}
