package board

import "github.com/vovakirdan/hexpop/internal/hex"

// EventKind identifies a board notification.
type EventKind int

const (
	// EventBoardChanged is emitted when any cell was written or cleared.
	EventBoardChanged EventKind = iota
	// EventBallsObtained carries one batch of removed balls.
	EventBallsObtained
	// EventPowerUpObtained is emitted when a cell with a live power-up is cleared.
	EventPowerUpObtained
	// EventSettled is emitted when a landing removed nothing.
	EventSettled
)

func (k EventKind) String() string {
	switch k {
	case EventBoardChanged:
		return "BoardChanged"
	case EventBallsObtained:
		return "BallsObtained"
	case EventPowerUpObtained:
		return "PowerUpObtained"
	case EventSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// Event is one entry of the board outbox.
type Event struct {
	Kind  EventKind
	Hex   hex.Hex   // Landing hex for Settled, cleared hex for PowerUpObtained
	Balls []Removal // Removed balls for BallsObtained
}

// emit appends to the outbox. BoardChanged is coalesced to one entry per drain.
func (b *Board) emit(e Event) {
	if e.Kind == EventBoardChanged {
		if b.changed {
			return
		}
		b.changed = true
	}
	b.outbox = append(b.outbox, e)
}

// Drain returns pending events in emission order and empties the outbox.
func (b *Board) Drain() []Event {
	events := b.outbox
	b.outbox = nil
	b.changed = false
	return events
}
