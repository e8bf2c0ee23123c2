package domain

import (
	"context"
	"time"
)

// EventBase contains common fields for all playback events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Seq       int       `json:"seq"`
}

// CallEvent represents entry into or exit from a recursive call during playback.
type CallEvent struct {
	EventBase
	NodeID int `json:"node_id"`
	Disks  int `json:"disks"`
	From   Peg `json:"from"`
	To     Peg `json:"to"`
}

// MoveEvent represents one disk move applied during playback.
type MoveEvent struct {
	EventBase
	NodeID int   `json:"node_id"`
	Move   Move  `json:"move"`
	Board  State `json:"board"`
}

// PlaybackHooks defines callbacks for playback observability.
type PlaybackHooks struct {
	OnCallEnter func(context.Context, *CallEvent)
	OnCallLeave func(context.Context, *CallEvent)
	OnMove      func(context.Context, *MoveEvent)
}
