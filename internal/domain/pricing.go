package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PriceConfig is one effective version of the lot's price configuration.
// Updates never mutate in place: each one inserts a new version with a
// fresh EffectiveAt, and the active configuration is the latest version.
// Charge computations read the active version fresh at call time.
type PriceConfig struct {
	ID uuid.UUID

	// HalfHourRate is the base charge covering the first 30 minutes.
	HalfHourRate Money
	// ExtraHourRate is charged per started hour beyond the first 30 minutes.
	ExtraHourRate Money
	// NightRate is the flat fee for sessions flagged nocturnal at entry.
	NightRate Money

	// NightStart and NightEnd bound the night window; equal bounds mean
	// there is no night window.
	NightStart ClockTime
	NightEnd   ClockTime

	EffectiveAt time.Time
}

// NightWindow returns the configured night window.
func (c PriceConfig) NightWindow() NightWindow {
	return NightWindow{Start: c.NightStart, End: c.NightEnd}
}

// Validate enforces the configuration invariants: non-negative rates and
// window bounds inside a single day.
func (c PriceConfig) Validate() error {
	if c.HalfHourRate < 0 || c.ExtraHourRate < 0 || c.NightRate < 0 {
		return fmt.Errorf("%w: rates must be non-negative", ErrValidation)
	}
	if !c.NightWindow().Valid() {
		return fmt.Errorf("%w: night window bounds out of range", ErrInvalidTimeWindow)
	}
	return nil
}
