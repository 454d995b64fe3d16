package domain

import (
	"fmt"
	"math"
	"time"
)

// Charge is the result of a tariff computation.
type Charge struct {
	Amount         Money  `json:"amount"`
	ElapsedMinutes int    `json:"elapsed_minutes"`
	// Detail is a human-readable breakdown sufficient to reconstruct the
	// arithmetic for audit. It is not parsed anywhere.
	Detail string `json:"detail"`
}

// ComputeCharge computes the charge for a completed stay.
//
// A nocturnal session is billed the flat NightRate unconditionally,
// whatever the elapsed time: the flag was fixed at entry and locks the
// fee in, and must not be re-derived from the clock here because the
// session may have crossed the window boundary since.
//
// A normal session pays HalfHourRate for the first 30 minutes, plus
// ExtraHourRate per started hour beyond that (any fraction of an hour
// counts as a full hour).
//
// Returns ErrInvalidDuration when exit precedes entry — that is a
// session-store consistency bug, never clamped to zero.
func ComputeCharge(entry, exit time.Time, nocturnal bool, cfg PriceConfig) (Charge, error) {
	elapsed := int(math.Round(exit.Sub(entry).Minutes()))
	if elapsed < 0 {
		return Charge{}, fmt.Errorf("%w: exit %s precedes entry %s",
			ErrInvalidDuration, exit.Format(time.RFC3339), entry.Format(time.RFC3339))
	}

	if nocturnal {
		return Charge{
			Amount:         cfg.NightRate,
			ElapsedMinutes: elapsed,
			Detail:         fmt.Sprintf("fixed night rate %s", cfg.NightRate),
		}, nil
	}

	if elapsed <= 30 {
		return Charge{
			Amount:         cfg.HalfHourRate,
			ElapsedMinutes: elapsed,
			Detail:         fmt.Sprintf("half-hour base %s", cfg.HalfHourRate),
		}, nil
	}

	remaining := elapsed - 30
	extraUnits := (remaining + 59) / 60 // ceil(remaining/60) on integers
	amount := cfg.HalfHourRate + Money(extraUnits)*cfg.ExtraHourRate
	return Charge{
		Amount:         amount,
		ElapsedMinutes: elapsed,
		Detail: fmt.Sprintf("half-hour base %s + %d extra hour(s) at %s",
			cfg.HalfHourRate, extraUnits, cfg.ExtraHourRate),
	}, nil
}
