package domain

import "time"

// ExportRow is a single row in the flat invoice export consumed by the
// CSV/JSON download endpoint. One row per invoice, fully denormalized so
// spreadsheet users need no joins.
//
// Times are pre-formatted by the service in the reporting timezone;
// Amount stays a Money so encoders pick the rendering.
type ExportRow struct {
	InvoiceID      string
	Plate          string
	SpaceNumber    int
	EntryTime      time.Time
	ExitTime       time.Time
	ElapsedMinutes int
	Elapsed        string // "XhYm" display form of ElapsedMinutes
	Amount         Money
	Nocturnal      bool
	Detail         string
}
