package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// InvoiceRepo defines the persistence operations for invoices.
// Invoices are insert-only: nothing in this layer updates or deletes them.
type InvoiceRepo interface {
	// Create inserts an invoice and returns the persisted record.
	Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)

	// GetBySessionID retrieves the invoice generated for a session.
	// Returns domain.ErrNotFound if the session has no invoice.
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (domain.Invoice, error)

	// ListByExitRange returns invoices whose exit_time falls in the
	// half-open window [from, to), ordered by exit_time ascending.
	ListByExitRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)

	// ListPaged returns invoices newest-departure-first plus the total row
	// count, for the history table.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error)

	// ListAll returns every invoice ordered by exit_time ascending.
	// Used by the full export; reports should prefer ListByExitRange.
	ListAll(ctx context.Context) ([]domain.Invoice, error)
}

// pgInvoiceRepo is the Postgres implementation of InvoiceRepo.
type pgInvoiceRepo struct {
	db db
}

// NewInvoiceRepo constructs an InvoiceRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewInvoiceRepo(db db) InvoiceRepo {
	return &pgInvoiceRepo{db: db}
}

const invoiceColumns = `id, session_id, plate, space_number, entry_time, exit_time,
		       elapsed_minutes, amount_cents, nocturnal, detail, generated_at`

// Create inserts an invoice row and returns the full persisted record.
func (r *pgInvoiceRepo) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	const q = `
		INSERT INTO invoices (id, session_id, plate, space_number, entry_time, exit_time,
		                      elapsed_minutes, amount_cents, nocturnal, detail, generated_at)
		VALUES (@id, @session_id, @plate, @space_number, @entry_time, @exit_time,
		        @elapsed_minutes, @amount_cents, @nocturnal, @detail, @generated_at)
		RETURNING ` + invoiceColumns

	args := pgx.NamedArgs{
		"id":              inv.ID,
		"session_id":      inv.SessionID,
		"plate":           inv.Plate,
		"space_number":    inv.SpaceNumber,
		"entry_time":      inv.EntryTime,
		"exit_time":       inv.ExitTime,
		"elapsed_minutes": inv.ElapsedMinutes,
		"amount_cents":    int64(inv.Amount),
		"nocturnal":       inv.Nocturnal,
		"detail":          inv.Detail,
		"generated_at":    inv.GeneratedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("repo.InvoiceRepo.Create: %w", err)
	}
	return result, nil
}

// GetBySessionID retrieves the invoice for a session.
func (r *pgInvoiceRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (domain.Invoice, error) {
	const q = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE session_id = @session_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"session_id": sessionID})
	result, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("repo.InvoiceRepo.GetBySessionID: %w", err)
	}
	return result, nil
}

// ListByExitRange returns invoices departing inside [from, to).
func (r *pgInvoiceRepo) ListByExitRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	const q = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE exit_time >= @from AND exit_time < @to
		ORDER BY exit_time`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("repo.InvoiceRepo.ListByExitRange: %w", err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.InvoiceRepo.ListByExitRange: %w", err)
	}
	return invoices, nil
}

// ListPaged returns one page of invoices, newest departure first, plus the
// total count for pagination metadata.
func (r *pgInvoiceRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	const countQ = `SELECT count(*) FROM invoices`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY exit_time DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.ListPaged: %w", err)
	}
	return invoices, total, nil
}

// ListAll returns the complete invoice set, oldest departure first.
func (r *pgInvoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	const q = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY exit_time`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.InvoiceRepo.ListAll: %w", err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.InvoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

// collectInvoices drains rows into a slice.
func collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return invoices, nil
}

// scanInvoice maps a single database row into a domain.Invoice.
func scanInvoice(s scanner) (domain.Invoice, error) {
	var (
		inv       domain.Invoice
		id        pgtype.UUID
		sessionID pgtype.UUID
		amount    int64
	)

	err := s.Scan(&id, &sessionID, &inv.Plate, &inv.SpaceNumber, &inv.EntryTime, &inv.ExitTime,
		&inv.ElapsedMinutes, &amount, &inv.Nocturnal, &inv.Detail, &inv.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrNotFound
		}
		return domain.Invoice{}, err
	}

	inv.ID = uuid.UUID(id.Bytes)
	inv.SessionID = uuid.UUID(sessionID.Bytes)
	inv.Amount = domain.Money(amount)
	return inv, nil
}
