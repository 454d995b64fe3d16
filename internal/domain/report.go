package domain

import "time"

// Period is a day- or month-sized reporting window, pinned to the
// reporting timezone. The window is half-open: [Start, End).
type Period struct {
	start time.Time
	end   time.Time
	label string
}

// DayPeriod builds the period covering one calendar day in loc.
func DayPeriod(year int, month time.Month, day int, loc *time.Location) Period {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return Period{
		start: start,
		end:   start.AddDate(0, 0, 1),
		label: start.Format("2006-01-02"),
	}
}

// MonthPeriod builds the period covering one calendar month in loc.
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		start: start,
		end:   start.AddDate(0, 1, 0),
		label: start.Format("2006-01"),
	}
}

// Bounds returns the half-open [start, end) window.
func (p Period) Bounds() (start, end time.Time) { return p.start, p.end }

// Label returns "2006-01-02" for a day period, "2006-01" for a month.
func (p Period) Label() string { return p.label }

// Contains reports whether the instant t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

// Report is the per-period aggregate over a set of invoices, split by
// nocturnal/normal classification. It is never persisted — always
// recomputed on demand from the invoice set.
type Report struct {
	PeriodLabel   string `json:"period"`
	VehicleCount  int    `json:"vehicle_count"`
	NightCount    int    `json:"night_count"`
	NormalCount   int    `json:"normal_count"`
	NightRevenue  Money  `json:"night_revenue"`
	NormalRevenue Money  `json:"normal_revenue"`
	TotalRevenue  Money  `json:"total_revenue"`
}

// Add accumulates one invoice into the report. Charges are summed as
// recorded — aggregation never recomputes them.
func (r *Report) Add(inv Invoice) {
	r.VehicleCount++
	if inv.Nocturnal {
		r.NightCount++
		r.NightRevenue += inv.Amount
	} else {
		r.NormalCount++
		r.NormalRevenue += inv.Amount
	}
	r.TotalRevenue = r.NightRevenue + r.NormalRevenue
}

// AggregateInvoices filters invoices whose exit time falls inside the
// period and sums counts and revenue per classification. An empty
// filtered set yields an all-zero report, not an error.
//
// The aggregation is order-independent and associative: aggregating
// disjoint subsets and combining the results with CombineReports equals
// aggregating the whole set directly.
func AggregateInvoices(invoices []Invoice, p Period) Report {
	r := Report{PeriodLabel: p.Label()}
	for _, inv := range invoices {
		if !p.Contains(inv.ExitTime) {
			continue
		}
		r.Add(inv)
	}
	return r
}

// CombineReports sums counts and revenues piecewise. The label is taken
// from the first report; callers combine sub-reports of one period.
func CombineReports(reports ...Report) Report {
	var out Report
	for i, r := range reports {
		if i == 0 {
			out.PeriodLabel = r.PeriodLabel
		}
		out.VehicleCount += r.VehicleCount
		out.NightCount += r.NightCount
		out.NormalCount += r.NormalCount
		out.NightRevenue += r.NightRevenue
		out.NormalRevenue += r.NormalRevenue
	}
	out.TotalRevenue = out.NightRevenue + out.NormalRevenue
	return out
}
