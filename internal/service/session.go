package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/repo"
)

// SessionService implements the session lifecycle: entry registration,
// lookup with a charge estimate, and exit registration with invoicing.
// It holds sessions, pricing, and invoices repos because closing a session
// must read the active configuration and persist the invoice in one call.
type SessionService struct {
	sessions repo.SessionRepo
	pricing  repo.PricingRepo
	invoices repo.InvoiceRepo

	// loc is the lot's wall-clock timezone: the night window is a
	// time-of-day rule and must be evaluated in local time.
	loc *time.Location

	// spaceCount caps SpaceNumber; 0 disables the upper bound.
	spaceCount int
}

// NewSessionService constructs a SessionService backed by the provided repos.
func NewSessionService(sessions repo.SessionRepo, pricing repo.PricingRepo, invoices repo.InvoiceRepo, loc *time.Location, spaceCount int) *SessionService {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionService{
		sessions:   sessions,
		pricing:    pricing,
		invoices:   invoices,
		loc:        loc,
		spaceCount: spaceCount,
	}
}

// Open registers a vehicle entry. The plate is strictly normalized, the
// space must be free, and the plate must not already have an open session.
//
// The nocturnal flag is decided here, from the night window active at this
// instant, and stored with the session. It is never recomputed afterwards.
func (s *SessionService) Open(ctx context.Context, rawPlate string, spaceNumber int, entryTime time.Time) (domain.Session, error) {
	plate, err := domain.NormalizePlate(rawPlate)
	if err != nil {
		return domain.Session{}, err
	}
	if spaceNumber < 1 || (s.spaceCount > 0 && spaceNumber > s.spaceCount) {
		return domain.Session{}, fmt.Errorf("%w: space number %d out of range", domain.ErrValidation, spaceNumber)
	}

	if _, err := s.sessions.GetOpenByPlate(ctx, plate); err == nil {
		return domain.Session{}, fmt.Errorf("%w: plate %s already has an open session", domain.ErrValidation, plate)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("service.SessionService.Open: %w", err)
	}
	if _, err := s.sessions.GetOpenBySpace(ctx, spaceNumber); err == nil {
		return domain.Session{}, fmt.Errorf("%w: space %d is occupied", domain.ErrValidation, spaceNumber)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("service.SessionService.Open: %w", err)
	}

	cfg, err := s.pricing.Active(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.SessionService.Open: %w", err)
	}

	session := domain.Session{
		Plate:       plate,
		SpaceNumber: spaceNumber,
		EntryTime:   entryTime,
		Nocturnal:   cfg.NightWindow().Contains(domain.ClockTimeOf(entryTime.In(s.loc))),
		State:       domain.SessionOpen,
	}

	result, err := s.sessions.Create(ctx, session)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.SessionService.Open: %w", err)
	}
	return result, nil
}

// Lookup finds the open session for a plate together with a charge
// estimate, priced as if the vehicle exited right now under the current
// configuration. Nocturnal sessions therefore show the flat night fee.
func (s *SessionService) Lookup(ctx context.Context, rawPlate string, at time.Time) (domain.Session, domain.Charge, error) {
	plate, err := domain.NormalizePlate(rawPlate)
	if err != nil {
		return domain.Session{}, domain.Charge{}, err
	}

	session, err := s.sessions.GetOpenByPlate(ctx, plate)
	if err != nil {
		return domain.Session{}, domain.Charge{}, fmt.Errorf("service.SessionService.Lookup: %w", err)
	}

	cfg, err := s.pricing.Active(ctx)
	if err != nil {
		return domain.Session{}, domain.Charge{}, fmt.Errorf("service.SessionService.Lookup: %w", err)
	}

	estimate, err := domain.ComputeCharge(session.EntryTime, at, session.Nocturnal, cfg)
	if err != nil {
		return domain.Session{}, domain.Charge{}, fmt.Errorf("service.SessionService.Lookup: %w", err)
	}
	return session, estimate, nil
}

// Close registers a vehicle exit: it computes the charge, closes the
// session, and persists the invoice, returning the invoice.
//
// The rate values come from the configuration active at this moment —
// not the one seen at entry — while the nocturnal flag stays frozen from
// entry time. If the configuration changed in between, the billed night
// fee may differ from the estimate shown at entry; that asymmetry is the
// lot's established billing behavior.
func (s *SessionService) Close(ctx context.Context, rawPlate string, exitTime time.Time) (domain.Invoice, error) {
	plate, err := domain.NormalizePlate(rawPlate)
	if err != nil {
		return domain.Invoice{}, err
	}

	session, err := s.sessions.GetOpenByPlate(ctx, plate)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("service.SessionService.Close: %w", err)
	}

	cfg, err := s.pricing.Active(ctx)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("service.SessionService.Close: %w", err)
	}

	// Charge first: an invalid duration must leave the session open.
	charge, err := domain.ComputeCharge(session.EntryTime, exitTime, session.Nocturnal, cfg)
	if err != nil {
		return domain.Invoice{}, err
	}

	closed, err := s.sessions.Close(ctx, session.ID, exitTime)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("service.SessionService.Close: %w", err)
	}

	invoice, err := domain.BuildInvoice(closed, charge, time.Now().UTC())
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("service.SessionService.Close: %w", err)
	}

	stored, err := s.invoices.Create(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("service.SessionService.Close: %w", err)
	}
	return stored, nil
}

// ListOpen returns all open sessions for the occupancy grid, ordered by
// space number. Always returns a non-nil slice.
func (s *SessionService) ListOpen(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessions.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SessionService.ListOpen: %w", err)
	}
	if sessions == nil {
		return []domain.Session{}, nil
	}
	return sessions, nil
}
