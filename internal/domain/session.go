// Package domain contains the core types and tariff rules for the hotel
// parking backend. Everything here is pure and I/O-free; it is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle state of a parking session.
// A session transitions Open → Closed exactly once.
type SessionState string

const (
	SessionOpen   SessionState = "open"
	SessionClosed SessionState = "closed"
)

// Session represents one vehicle's stay in a parking space.
// ExitTime is nil while the session is open.
//
// Nocturnal is decided at entry time from the night window active at
// that instant, stored with the session, and never recomputed — even if
// the configured window changes before the vehicle leaves. Only the rate
// values are read fresh at close time.
type Session struct {
	ID          uuid.UUID    `json:"id"`
	Plate       string       `json:"plate"` // canonical LLL-DDD[D] form
	SpaceNumber int          `json:"space_number"`
	EntryTime   time.Time    `json:"entry_time"`
	ExitTime    *time.Time   `json:"exit_time,omitempty"`
	Nocturnal   bool         `json:"nocturnal"`
	State       SessionState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsOpen reports whether the session is still open.
func (s Session) IsOpen() bool { return s.State == SessionOpen }
