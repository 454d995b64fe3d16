package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Invoice is the immutable record of a closed session's computed charge.
// It is created exactly once per session close and never mutated;
// archival and deletion are external concerns.
type Invoice struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	Plate       string    `json:"plate"`
	SpaceNumber int       `json:"space_number"`
	EntryTime   time.Time `json:"entry_time"`
	// ExitTime is the instant reports bucket by: a session is reported
	// in the day/month containing its departure.
	ExitTime       time.Time `json:"exit_time"`
	ElapsedMinutes int       `json:"elapsed_minutes"`
	Amount         Money     `json:"amount"`
	Nocturnal      bool      `json:"nocturnal"`
	Detail         string    `json:"detail"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// BuildInvoice assembles an invoice from a closed session and its
// computed charge. Pure construction: the only failure is a session that
// is not Closed (ErrSessionNotClosed).
func BuildInvoice(s Session, c Charge, now time.Time) (Invoice, error) {
	if s.State != SessionClosed || s.ExitTime == nil {
		return Invoice{}, fmt.Errorf("%w: session %s is %s", ErrSessionNotClosed, s.ID, s.State)
	}
	return Invoice{
		ID:             uuid.New(),
		SessionID:      s.ID,
		Plate:          s.Plate,
		SpaceNumber:    s.SpaceNumber,
		EntryTime:      s.EntryTime,
		ExitTime:       *s.ExitTime,
		ElapsedMinutes: c.ElapsedMinutes,
		Amount:         c.Amount,
		Nocturnal:      s.Nocturnal,
		Detail:         c.Detail,
		GeneratedAt:    now,
	}, nil
}

// FormatElapsed renders a minute count as "XhYm", omitting the hour part
// when zero, e.g. 125 → "2h5m", 20 → "20m". Presentation only — billing
// math never goes through this.
func FormatElapsed(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
